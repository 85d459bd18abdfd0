// Command cursorbridge runs the cursor-crossing engine: it installs a
// global low-level mouse hook, tracks the monitor topology, and corrects the
// cursor position whenever it crosses from one monitor to another so the
// crossing preserves percentage-along-the-edge instead of jumping to a raw
// pixel coordinate.
//
// It takes no arguments and runs until interrupted (Ctrl+C) or terminated.
package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/rpdg/cursorbridge/dispatcher"
	"github.com/rpdg/cursorbridge/logging"
	"github.com/rpdg/cursorbridge/winapi"
)

func main() {
	fmt.Println("=== cursorbridge ===")

	if err := winapi.DeclarePerMonitorDPIAwareV2(); err != nil {
		fmt.Printf("⚠️  per-monitor DPI awareness not available: %v\n", err)
	}

	log, err := logging.New(logging.Options{
		Level:  os.Getenv("CURSORBRIDGE_LOG_LEVEL"),
		Format: os.Getenv("CURSORBRIDGE_LOG_FORMAT"),
	})
	if err != nil {
		fmt.Printf("❌ invalid logging configuration: %v\n", err)
		os.Exit(1)
	}

	d, err := dispatcher.New(log)
	if err != nil {
		fmt.Printf("❌ startup failed: %v\n", err)
		os.Exit(1)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		fmt.Println("👉 shutdown requested")
		d.RequestShutdown()
	}()

	fmt.Println("✅ running, press Ctrl+C to stop")
	if err := d.Run(); err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}

	fmt.Println("=== stopped ===")
}
