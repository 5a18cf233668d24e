package persistence

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/lifesim/internal/config"
	"github.com/talgya/lifesim/internal/entity"
	"github.com/talgya/lifesim/internal/sim"
)

func finishedEpisode(t *testing.T) *sim.Env {
	t.Helper()
	bal := config.Default()
	bal.Episode.LengthDays = 30
	env := sim.New(&bal, slog.New(slog.NewTextHandler(io.Discard, nil)))
	env.Reset(77)

	for {
		_, _, done, _, err := env.Step(entity.ActDefault)
		require.NoError(t, err)
		if done {
			return env
		}
	}
}

func TestSaveAndLoadEpisode(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	env := finishedEpisode(t)
	id, err := db.SaveEpisode(env, 12.5)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	rows, err := db.RecentEpisodes(10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, id, rows[0].ID)
	assert.Equal(t, int64(77), rows[0].Seed)
	assert.Equal(t, 12.5, rows[0].TotalReward)

	events, err := db.EpisodeEvents(id)
	require.NoError(t, err)
	assert.Len(t, events, env.Events().Len())
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopening migrates against the existing schema without error.
	db, err = Open(path)
	require.NoError(t, err)
	assert.NoError(t, db.Close())
}
