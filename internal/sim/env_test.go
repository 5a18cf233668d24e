package sim

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/lifesim/internal/chance"
	"github.com/talgya/lifesim/internal/config"
	"github.com/talgya/lifesim/internal/entity"
)

func testEnv() *Env {
	bal := config.Default()
	return New(&bal, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestStepBeforeReset(t *testing.T) {
	env := testEnv()
	_, _, _, _, err := env.Step(entity.ActDefault)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestInvalidAction(t *testing.T) {
	env := testEnv()
	env.Reset(1)

	_, _, _, _, err := env.Step(entity.Action(-1))
	assert.ErrorIs(t, err, ErrInvalidAction)
	_, _, _, _, err = env.Step(entity.Action(entity.NumActions))
	assert.ErrorIs(t, err, ErrInvalidAction)

	// A rejected action must not advance the world.
	assert.Equal(t, 0, env.World().Day)
	_, _, _, _, err = env.Step(entity.ActDefault)
	assert.NoError(t, err)
	assert.Equal(t, 1, env.World().Day)
}

func TestStepAfterDone(t *testing.T) {
	bal := config.Default()
	bal.Episode.LengthDays = 5
	env := New(&bal, slog.New(slog.NewTextHandler(io.Discard, nil)))
	env.Reset(2)

	var done bool
	for i := 0; i < 5; i++ {
		var err error
		_, _, done, _, err = env.Step(entity.ActDefault)
		require.NoError(t, err)
	}
	require.True(t, done)
	assert.Equal(t, StateTerminated, env.State())

	_, _, _, _, err := env.Step(entity.ActDefault)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestResetRestartsMidEpisode(t *testing.T) {
	env := testEnv()
	env.Reset(3)
	for i := 0; i < 50; i++ {
		_, _, _, _, err := env.Step(entity.ActDefault)
		require.NoError(t, err)
	}

	obs := env.Reset(4)
	assert.Equal(t, 0, env.World().Day)
	assert.Equal(t, StateRunning, env.State())
	assert.Len(t, obs, ObsSize)
}

func TestSameSeedSameEpisode(t *testing.T) {
	a := testEnv()
	b := testEnv()
	obsA := a.Reset(42)
	obsB := b.Reset(42)
	require.Equal(t, obsA, obsB)

	actions := chance.New(7)
	for step := 0; step < 3700; step++ {
		act := entity.Action(actions.Intn(entity.NumActions))

		nextA, rA, doneA, evA, errA := a.Step(act)
		nextB, rB, doneB, evB, errB := b.Step(act)

		require.NoError(t, errA)
		require.NoError(t, errB)
		require.Equal(t, nextA, nextB, "observations diverged at step %d", step)
		require.Equal(t, rA, rB, "rewards diverged at step %d", step)
		require.Equal(t, evA, evB, "events diverged at step %d", step)
		require.Equal(t, doneA, doneB)
		if doneA {
			break
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := testEnv()
	b := testEnv()
	a.Reset(1)
	b.Reset(2)

	diverged := false
	for step := 0; step < 200 && !diverged; step++ {
		nextA, _, doneA, _, err := a.Step(entity.ActDefault)
		require.NoError(t, err)
		nextB, _, doneB, _, err := b.Step(entity.ActDefault)
		require.NoError(t, err)
		for i := range nextA {
			if nextA[i] != nextB[i] {
				diverged = true
				break
			}
		}
		if doneA || doneB {
			break
		}
	}
	assert.True(t, diverged, "distinct seeds should produce distinct lives")
}

func TestObservationAlwaysNormalized(t *testing.T) {
	env := testEnv()
	obs := env.Reset(9)
	actions := chance.New(10)

	for step := 0; ; step++ {
		require.Len(t, obs, ObsSize)
		for i, v := range obs {
			require.GreaterOrEqual(t, v, 0.0, "step %d element %d", step, i)
			require.LessOrEqual(t, v, 1.0, "step %d element %d", step, i)
		}

		next, _, done, _, err := env.Step(entity.Action(actions.Intn(entity.NumActions)))
		require.NoError(t, err)
		obs = next
		if done || step >= 3000 {
			break
		}
	}
}

func TestFullEpisodeRunsToCompletion(t *testing.T) {
	bal := config.Default()
	bal.Episode.LengthDays = 3650
	env := New(&bal, slog.New(slog.NewTextHandler(io.Discard, nil)))
	env.Reset(42)

	startAge := env.Player().AgeDays
	var done bool
	var steps int
	for !done {
		var err error
		_, _, done, _, err = env.Step(entity.ActDefault)
		require.NoError(t, err)
		steps++
		require.LessOrEqual(t, steps, 3650)
	}

	assert.Equal(t, StateTerminated, env.State())
	assert.Equal(t, startAge+env.World().Day, env.Player().AgeDays, "age tracks days exactly")
	if !env.Player().Alive {
		assert.NotEmpty(t, env.Player().CauseOfDeath)
	} else {
		assert.Equal(t, 3650, env.World().Day)
	}
	assert.Greater(t, env.Events().Len(), 0, "a decade of life leaves a record")
}

func TestEventLogIsAppendOnlyAndOrdered(t *testing.T) {
	env := testEnv()
	env.Reset(11)

	lastDay := 0
	for i := 0; i < 500; i++ {
		_, _, done, _, err := env.Step(entity.ActSocialize)
		require.NoError(t, err)
		if done {
			break
		}
	}
	for _, ev := range env.Events().All() {
		require.GreaterOrEqual(t, ev.Day, lastDay, "events must be recorded in day order")
		lastDay = ev.Day
	}
}
