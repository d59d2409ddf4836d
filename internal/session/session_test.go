package session

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-gameclock/internal/gametime"
)

func TestSession_DelegatesToClock(t *testing.T) {
	s := New(gametime.NewClock(10))

	res := s.Wait(1)
	require.True(t, res.Success)
	assert.Equal(t, 9, res.NewHour)

	res = s.WaitUntil(8)
	require.True(t, res.Success)
	assert.Equal(t, 23, res.HoursWaited)
	assert.Equal(t, 2, res.NewDay)

	ok, st := s.SpendActionPoint()
	assert.True(t, ok)
	assert.Equal(t, 9, st.ActionPoints)
	assert.Equal(t, st, s.Status())
}

func TestSession_OnChange(t *testing.T) {
	s := New(gametime.NewClock(1))

	var got []gametime.Status
	s.OnChange = func(st gametime.Status) { got = append(got, st) }

	s.Wait(2)
	s.Wait(0)       // rejected, no notification
	s.WaitUntil(10) // already at 10, rejected
	s.SpendActionPoint()
	s.SpendActionPoint() // depleted, no notification

	require.Len(t, got, 2)
	assert.Equal(t, 10, got[0].Hour)
	assert.Equal(t, 0, got[1].ActionPoints)
}

// TestSession_Concurrent hammers one session from many goroutines; run with
// -race to catch unsynchronized access.
func TestSession_Concurrent(t *testing.T) {
	s := New(gametime.NewClock(1000))

	var notified atomic.Int64
	s.OnChange = func(gametime.Status) { notified.Add(1) }

	var wg sync.WaitGroup
	const workers = 50
	const iterations = 200

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				switch (i + j) % 3 {
				case 0:
					s.Wait(1)
				case 1:
					s.SpendActionPoint()
				default:
					_ = s.Status()
				}
			}
		}(i)
	}
	wg.Wait()

	st := s.Status()
	assert.GreaterOrEqual(t, st.Hour, 0)
	assert.LessOrEqual(t, st.Hour, 23)
	assert.GreaterOrEqual(t, st.ActionPoints, 0)
	assert.LessOrEqual(t, st.ActionPoints, st.MaxActionPoints)

	// Every Wait(1) succeeds, so total hours elapsed equal the number of waits.
	waits := 0
	for i := 0; i < workers; i++ {
		for j := 0; j < iterations; j++ {
			if (i+j)%3 == 0 {
				waits++
			}
		}
	}
	assert.Equal(t, waits, (st.Day-1)*24+st.Hour-8)
	assert.Greater(t, notified.Load(), int64(waits-1))
}
