package config

import (
	"os"
	"path/filepath"
	"testing"

	"gomoku/experiments/metrics"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 15, cfg.Height)
	require.Equal(t, "alphabeta", cfg.Agents[0].Algorithm)
	require.Equal(t, "minimax", cfg.Agents[1].Algorithm)
}

func TestParse(t *testing.T) {
	t.Run("empty document keeps defaults", func(t *testing.T) {
		cfg, err := Parse(nil)
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})

	t.Run("overrides selected fields", func(t *testing.T) {
		cfg, err := Parse([]byte(`
name: random-baseline
height: 9
width: 11
games: 4
log_level: debug
agents:
  - id: 1
    kind: search
    algorithm: alphabeta
    depth: 3
    goroutines: 4
  - id: 2
    kind: random
    seed: 99
`))
		require.NoError(t, err)
		require.Equal(t, "random-baseline", cfg.Name)
		require.Equal(t, 9, cfg.Height)
		require.Equal(t, 11, cfg.Width)
		require.Equal(t, 4, cfg.Games)
		require.Equal(t, "experiments", cfg.OutputDir, "Unset fields keep defaults")
		require.Equal(t, 4, cfg.Agents[0].Goroutines)
		require.Equal(t, KindRandom, cfg.Agents[1].Kind)
		require.Equal(t, uint64(99), cfg.Agents[1].Seed)
	})

	t.Run("agent entries fall back to the default agent", func(t *testing.T) {
		cfg, err := Parse([]byte(`
agents:
  - {id: 1, kind: search, algorithm: minimax}
  - {id: 2, kind: search, algorithm: alphabeta}
`))
		require.NoError(t, err)
		defaults := Default().Agents
		for i, a := range cfg.Agents {
			require.Equal(t, defaults[i].Depth, a.Depth, "agent %d should keep the default depth", i+1)
			require.Equal(t, defaults[i].Goroutines, a.Goroutines, "agent %d should keep the default goroutines", i+1)
		}
		require.Equal(t, "minimax", cfg.Agents[0].Algorithm)
		require.Equal(t, "alphabeta", cfg.Agents[1].Algorithm)
	})

	t.Run("random agent drops search settings", func(t *testing.T) {
		cfg, err := Parse([]byte("agents:\n  - {id: 1, kind: search, algorithm: minimax, depth: 1}\n  - {id: 2, kind: random, seed: 5}\n"))
		require.NoError(t, err)
		require.Equal(t, 1, cfg.Agents[0].Depth)
		require.Equal(t, metrics.AgentConfig{ID: 2, Kind: KindRandom, Seed: 5}, cfg.Agents[1])
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		_, err := Parse([]byte("board_size: 15\n"))
		require.Error(t, err)
	})

	invalid := map[string]string{
		"zero height":       "height: 0\n",
		"no games":          "games: 0\n",
		"bad log level":     "log_level: loud\n",
		"unknown algorithm": "agents:\n  - {id: 1, kind: search, algorithm: mcts, depth: 2}\n  - {id: 2, kind: random}\n",
		"unknown kind":      "agents:\n  - {id: 1, kind: oracle}\n  - {id: 2, kind: random}\n",
		"negative depth":    "agents:\n  - {id: 1, kind: search, algorithm: minimax, depth: -1}\n  - {id: 2, kind: random}\n",
		"zero depth":        "agents:\n  - {id: 1, kind: search, algorithm: minimax, depth: 0}\n  - {id: 2, kind: random}\n",
		"unknown agent key": "agents:\n  - {id: 1, kind: random, level: 3}\n  - {id: 2, kind: random}\n",
		"duplicate ids":     "agents:\n  - {id: 3, kind: random}\n  - {id: 3, kind: random}\n",
	}
	for name, doc := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			require.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("reads a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "match.yaml")
		require.NoError(t, os.WriteFile(path, []byte("games: 7\n"), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, 7, cfg.Games)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
