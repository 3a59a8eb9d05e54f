package config_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"deedles.dev/gameutil/heuristic"
	"deedles.dev/gameutil/internal/config"
	"deedles.dev/gameutil/xcolor"
	"deedles.dev/gameutil/xstrings"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
}

func TestDefault(t *testing.T) {
	isolate(t)

	cfg, err := config.Load("")
	require.Nil(t, err)
	require.Equal(t, config.Default(), cfg)

	m, err := cfg.Metric()
	require.Nil(t, err)
	require.Equal(t, heuristic.KindOctile, m.Heuristic)
	require.InDelta(t, math.Sqrt2, m.DiagonalCost, 1e-12)

	require.Equal(t, xstrings.Numbers|xstrings.Lower, cfg.IDClasses())
	require.Equal(t, 12, cfg.ID.Length)

	light, dark, pick, err := cfg.TextColors()
	require.Nil(t, err)
	require.Equal(t, xcolor.White, light)
	require.Equal(t, xcolor.Black, dark)
	require.Equal(t, dark, pick(xcolor.Gray, light, dark))
}

func TestLoadCustom(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	err := os.WriteFile(path, []byte("heuristic:\n  kind: minkowski\nid:\n  upper: true\ntext:\n  mode: simple\n"), 0o644)
	require.Nil(t, err)

	cfg, err := config.Load(path)
	require.Nil(t, err)

	m, err := cfg.Metric()
	require.Nil(t, err)
	require.Equal(t, heuristic.KindMinkowski, m.Heuristic)
	require.Equal(t, 3.0, m.P)
	require.Equal(t, xstrings.Alphanumeric, cfg.IDClasses())

	_, _, pick, err := cfg.TextColors()
	require.Nil(t, err)
	require.Equal(t, xcolor.White, pick(xcolor.Gray, xcolor.White, xcolor.Black))
}

func TestLoadUser(t *testing.T) {
	isolate(t)

	path := config.UserPath()
	require.NotEmpty(t, path)
	require.Nil(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.Nil(t, os.WriteFile(path, []byte("id:\n  length: 4\n"), 0o644))

	cfg, err := config.Load("")
	require.Nil(t, err)
	require.Equal(t, 4, cfg.ID.Length)
	require.Equal(t, "octile", cfg.Heuristic.Kind)
}

func TestLoadErrors(t *testing.T) {
	isolate(t)

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	cfg := config.Default()
	cfg.Heuristic.Kind = "teleport"
	_, err = cfg.Metric()
	require.ErrorIs(t, err, heuristic.ErrUnknown)

	cfg = config.Default()
	cfg.Text.Light = "white"
	_, _, _, err = cfg.TextColors()
	require.ErrorIs(t, err, xcolor.ErrInvalidHex)

	cfg = config.Default()
	cfg.Text.Mode = "fancy"
	_, _, _, err = cfg.TextColors()
	require.ErrorIs(t, err, config.ErrUnknownMode)
}
