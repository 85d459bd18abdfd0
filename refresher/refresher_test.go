package refresher

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModel struct {
	changed bool
	err     error
	count   int
	calls   int
}

func (f *fakeModel) Refresh() (bool, error) {
	f.calls++
	return f.changed, f.err
}

func (f *fakeModel) Count() int { return f.count }

type fakeInvalidator struct {
	calls int
}

func (f *fakeInvalidator) InvalidateTrace() { f.calls++ }

func TestOnTick_InvalidatesTraceOnlyWhenTopologyChanged(t *testing.T) {
	model := &fakeModel{changed: true, count: 3}
	trace := &fakeInvalidator{}
	r := New(model, trace, nil)

	r.OnTick()

	require.Equal(t, 1, model.calls)
	assert.Equal(t, 1, trace.calls)
}

func TestOnTick_NoOpWhenTopologyUnchanged(t *testing.T) {
	model := &fakeModel{changed: false}
	trace := &fakeInvalidator{}
	r := New(model, trace, nil)

	r.OnTick()

	assert.Equal(t, 0, trace.calls)
}

func TestOnTick_LogsAndSkipsInvalidationOnError(t *testing.T) {
	model := &fakeModel{err: errors.New("enumeration boom")}
	trace := &fakeInvalidator{}
	r := New(model, trace, nil)

	r.OnTick()

	assert.Equal(t, 0, trace.calls)
}

func TestOnDisplayChangeNotification_InvalidatesOnChange(t *testing.T) {
	model := &fakeModel{changed: true}
	trace := &fakeInvalidator{}
	r := New(model, trace, nil)

	r.OnDisplayChangeNotification()

	assert.Equal(t, 1, trace.calls)
}
