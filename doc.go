// Package cursorbridge corrects cursor motion across monitors of differing
// resolution. On a Windows desktop spanning multiple physical displays, it
// intercepts every raw mouse-move event globally, detects when the cursor
// crosses from one monitor to another, and replaces the post-crossing
// position with one that preserves the percentage traveled along the shared
// edge — eliminating the visible jump the OS produces by default when two
// monitors differ in extent along that edge.
//
// The interesting work lives in topology (monitor enumeration and change
// detection), geometry (exit-edge detection and percentage remapping), hook
// (the re-entrancy-safe mouse hook pipeline) and refresher (reacting to
// display-change notifications and a periodic tick). dispatcher ties all
// four together around the single message-loop thread Windows requires for
// a low-level mouse hook.
//
// cmd/cursorbridge is the process entry point: a parameterless executable
// that runs until interrupted.
package cursorbridge
