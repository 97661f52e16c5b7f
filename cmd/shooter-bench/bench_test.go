package main

import (
	"bytes"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/plus3/shooter/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{4, 1, 3, 2}}
	s.Finalize()

	assert.Equal(t, time.Duration(1), s.Min)
	assert.Equal(t, time.Duration(4), s.Max)
	assert.Equal(t, time.Duration(2), s.Avg)
	assert.Equal(t, time.Duration(4), s.P99)
	assert.Equal(t, []time.Duration{4, 1, 3, 2}, s.Samples, "samples keep their order")

	empty := Stats{}
	empty.Finalize()
	assert.Zero(t, empty.Max)
}

func TestBench(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Rand = game.NewRand(7)
	cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg.NumDecorations = 10

	input := game.NewScriptedInput()
	g, err := game.NewGame(cfg, input)
	require.NoError(t, err)

	report, err := bench(g, game.NewBot(input), options{
		duration: time.Minute,
		frames:   180,
		tps:      60,
		seed:     7,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(180), report.TotalUpdates)
	assert.Equal(t, 3*time.Second, report.SimulatedTime.Round(time.Millisecond))
	assert.Len(t, report.UpdateTime.Samples, 180)
	assert.Len(t, report.Systems, 14)
	assert.GreaterOrEqual(t, report.Enemies+report.Kills, 20, "at least two spawn batches in three seconds")
	assert.Equal(t, g.World.EntityCount(), report.Entities)
	assert.Positive(t, report.Shots)

	var out bytes.Buffer
	require.NoError(t, report.Generate(&out))
	assert.Contains(t, out.String(), "**Total Updates:** 180")
	assert.Contains(t, out.String(), "| EnemySpawnSystem | 180 |")
	assert.NotContains(t, out.String(), "GC Pause")
}
