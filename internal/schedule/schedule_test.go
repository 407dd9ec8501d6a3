package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/Ben62534/Shadowstrengthwebsite/internal/schedule"
)

func TestManual(t *testing.T) {
	m := schedule.NewManual()

	var order []string
	m.AfterFunc(3*time.Second, func() { order = append(order, "reset") })
	m.AfterFunc(time.Second, func() { order = append(order, "banner") })
	cancelled := m.AfterFunc(2*time.Second, func() { order = append(order, "cancelled") })

	assert.Equal(t, 3, m.Pending())
	assert.True(t, cancelled.Cancel())
	assert.False(t, cancelled.Cancel())

	m.Advance(999 * time.Millisecond)
	assert.Empty(t, order)

	m.Advance(5 * time.Second)
	assert.Equal(t, []string{"banner", "reset"}, order)
	assert.Zero(t, m.Pending())
}

func TestManualCancelAfterRun(t *testing.T) {
	m := schedule.NewManual()

	ran := 0
	h := m.AfterFunc(time.Second, func() { ran++ })
	m.Advance(time.Second)

	assert.Equal(t, 1, ran)
	assert.False(t, h.Cancel())
}

func TestRealCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	fired := make(chan struct{}, 1)
	h := schedule.Real().AfterFunc(time.Hour, func() { fired <- struct{}{} })
	require.True(t, h.Cancel())

	select {
	case <-fired:
		t.Fatal("cancelled callback ran")
	default:
	}
}

func TestRealFires(t *testing.T) {
	defer goleak.VerifyNone(t)

	fired := make(chan struct{})
	schedule.Real().AfterFunc(10*time.Millisecond, func() { close(fired) })

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("callback did not run")
	}
}
