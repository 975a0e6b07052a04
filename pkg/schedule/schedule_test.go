package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/circle/pkg/circle"
	"laptudirm.com/x/circle/pkg/schedule"
)

func drain(scheduler schedule.Scheduler, n int) []circle.Match {
	scheduler.Initialize(n)

	matches := make([]circle.Match, 0, scheduler.TotalEncounters())
	for i := 0; i < scheduler.TotalEncounters(); i++ {
		p1, p2 := scheduler.NextEncounter()
		matches = append(matches, circle.Match{First: p1, Second: p2})
	}

	return matches
}

func TestNew(t *testing.T) {
	for name, want := range map[string]schedule.Scheduler{
		"":            &schedule.RoundRobin{},
		"round-robin": &schedule.RoundRobin{},
		"fair-break":  &schedule.FairBreak{},
	} {
		got, err := schedule.New(name)
		require.NoError(t, err)
		assert.IsType(t, want, got)
	}

	_, err := schedule.New("gauntlet")
	assert.Error(t, err)
}

func TestRoundRobin(t *testing.T) {
	for n := 0; n <= 17; n++ {
		want, err := circle.New(n)
		require.NoError(t, err)

		assert.Equal(t, want.Collect(), drain(&schedule.RoundRobin{}, n), "n=%d", n)
	}
}

func TestFairBreak(t *testing.T) {
	for n := 0; n <= 17; n++ {
		want, err := circle.NewWithFairBreak(n)
		require.NoError(t, err)

		assert.Equal(t, want.Collect(), drain(&schedule.FairBreak{}, n), "n=%d", n)
	}
}

func TestScheduler_Reinitialize(t *testing.T) {
	rr := &schedule.RoundRobin{}
	first := drain(rr, 6)
	assert.Equal(t, first, drain(rr, 6))

	assert.Len(t, drain(rr, 5), 10)
}

func TestScheduler_Exhausted(t *testing.T) {
	fb := &schedule.FairBreak{}
	drain(fb, 4)
	assert.Panics(t, func() { fb.NextEncounter() })
}

func TestScheduler_Round(t *testing.T) {
	rr := &schedule.RoundRobin{}
	rr.Initialize(6)
	assert.Equal(t, 0, rr.Round())

	for i := 0; i < rr.TotalEncounters(); i++ {
		rr.NextEncounter()
		assert.Equal(t, i/3, rr.Round())
	}
}

func TestScheduler_InvalidPlayers(t *testing.T) {
	assert.Panics(t, func() { (&schedule.RoundRobin{}).Initialize(-2) })
}
