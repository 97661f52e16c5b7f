package view

import (
	"io"
	"log/slog"
	"testing"

	"github.com/plus3/shooter/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityRows(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Rand = game.NewRand(3)
	cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg.NumDecorations = 5

	g, err := game.NewGame(cfg, game.NewScriptedInput())
	require.NoError(t, err)
	g.Update(1.0 / 60)

	rows := EntityRows(g.World)
	assert.Len(t, rows, g.World.EntityCount())

	kinds := map[string]int{}
	for _, r := range rows {
		kinds[r.Kind]++
	}
	assert.Equal(t, 1, kinds["Player"])
	assert.Equal(t, 1, kinds["Gun"])
	assert.Equal(t, 5, kinds["Decoration"])
	assert.Equal(t, g.World.Enemies.Len(), kinds["Enemy"])

	assert.Equal(t, "Idle hp=100", rows[0].Summary)
	assert.Same(t, g.World.Player.Get(), rows[0].Record, "rows point at live records")

	info := tableInfo(g.World)
	require.Len(t, info, 3)
	assert.Equal(t, "Decorations", info[2].Name)
	assert.Equal(t, 5, info[2].Len)
}
