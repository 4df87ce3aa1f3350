package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvery_FiresOncePerPeriod(t *testing.T) {
	s := NewScheduler()
	calls := 0
	s.Every(time.Second, func() { calls++ })

	s.Advance(999 * time.Millisecond)
	assert.Equal(t, 0, calls, "should not fire before a full period")

	s.Advance(time.Millisecond)
	assert.Equal(t, 1, calls)

	for i := 0; i < 60; i++ {
		s.Advance(time.Second / 60)
	}
	assert.Equal(t, 2, calls)
}

func TestAdvance_CatchesUpMissedPeriods(t *testing.T) {
	s := NewScheduler()
	calls := 0
	s.Every(time.Second, func() { calls++ })

	s.Advance(3500 * time.Millisecond)
	assert.Equal(t, 3, calls)

	s.Advance(500 * time.Millisecond)
	assert.Equal(t, 4, calls)
}

func TestStop_PreventsFurtherCalls(t *testing.T) {
	s := NewScheduler()
	calls := 0
	iv := s.Every(time.Second, func() { calls++ })

	s.Advance(time.Second)
	iv.Stop()
	iv.Stop()
	s.Advance(5 * time.Second)

	assert.Equal(t, 1, calls)
	assert.False(t, iv.Active())
	assert.Equal(t, 0, s.Len())
}

func TestStop_FromInsideCallbackDuringCatchUp(t *testing.T) {
	s := NewScheduler()
	calls := 0
	var iv *Interval
	iv = s.Every(time.Second, func() {
		calls++
		iv.Stop()
	})

	s.Advance(10 * time.Second)
	assert.Equal(t, 1, calls)
}

func TestEvery_RegisteredFromCallbackWaitsForNextAdvance(t *testing.T) {
	s := NewScheduler()
	inner := 0
	s.Every(time.Second, func() {
		s.Every(time.Second, func() { inner++ })
	})

	s.Advance(time.Second)
	assert.Equal(t, 0, inner)
	require.Equal(t, 2, s.Len())
}

func TestEvery_PanicsOnZeroPeriod(t *testing.T) {
	assert.Panics(t, func() { NewScheduler().Every(0, func() {}) })
}

func TestStopAll(t *testing.T) {
	s := NewScheduler()
	a := s.Every(time.Second, func() {})
	b := s.Every(2*time.Second, func() {})

	s.StopAll()

	assert.False(t, a.Active())
	assert.False(t, b.Active())
	assert.Equal(t, 0, s.Len())
}

func TestStopAll_FromInsideCallback(t *testing.T) {
	s := NewScheduler()
	second := 0
	s.Every(time.Second, func() { s.StopAll() })
	s.Every(time.Second, func() { second++ })

	require.NotPanics(t, func() { s.Advance(time.Second) })

	assert.Equal(t, 0, second)
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.intervals)

	s.Every(time.Second, func() { second++ })
	s.Advance(time.Second)
	assert.Equal(t, 1, second)
}
