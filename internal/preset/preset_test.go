package preset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alkime/selector/internal/blend"
	"github.com/alkime/selector/internal/preset"
	"github.com/alkime/selector/internal/selector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
default: heat
presets:
  - name: traffic
    modes: [STOP, WAIT, GO]
    colors: ["#e74c3c", "#f1c40f", "#2ecc71"]
  - name: heat
    mode_count: 5
    blend: {start: "#3498db", end: "#3f98db"}
  - name: plain
`

func TestParse(t *testing.T) {
	t.Parallel()

	f, err := preset.Parse([]byte(sample))
	require.NoError(t, err)
	assert.Equal(t, []string{"traffic", "heat", "plain"}, f.Names())

	p, err := f.Lookup("")
	require.NoError(t, err)
	assert.Equal(t, "heat", p.Name)

	cfg, err := p.Config()
	require.NoError(t, err)
	s, err := selector.New(cfg)
	require.NoError(t, err)
	assert.Equal(t, 5, s.ModeCount())
	assert.Equal(t, "MODE 5", s.ModeName(4))

	p, err = f.Lookup("traffic")
	require.NoError(t, err)
	cfg, err = p.Config()
	require.NoError(t, err)
	s, err = selector.New(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"STOP", "WAIT", "GO"}, s.ModeNames())
	assert.Equal(t, "#2ecc71", blend.Hex(s.DialColors()[2]))

	p, err = f.Lookup("plain")
	require.NoError(t, err)
	cfg, err = p.Config()
	require.NoError(t, err)
	s, err = selector.New(cfg)
	require.NoError(t, err)
	assert.Equal(t, selector.DefaultNames(), s.ModeNames())

	_, err = f.Lookup("nope")
	require.ErrorIs(t, err, preset.ErrUnknownPreset)
}

func TestParseRejects(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"empty file":       `presets: []`,
		"unknown key":      "presets:\n  - name: a\n    colour: red\n",
		"missing name":     "presets:\n  - modes: [A, B, C]\n",
		"duplicate name":   "presets:\n  - name: a\n  - name: a\n",
		"bad hex":          "presets:\n  - name: a\n    colors: [\"#zzzzzz\"]\n",
		"bad blend":        "presets:\n  - name: a\n    blend: {start: \"#000000\", end: \"red\"}\n",
		"colors and blend": "presets:\n  - name: a\n    colors: [\"#000000\"]\n    blend: {start: \"#000000\", end: \"#ffffff\"}\n",
		"too many modes":   "presets:\n  - name: a\n    mode_count: 9\n    blend: {start: \"#000000\", end: \"#111111\"}\n",
		"names mismatch":   "presets:\n  - name: a\n    modes: [A, B]\n    colors: [\"#000000\", \"#111111\", \"#222222\"]\n",
		"unknown default":  "default: b\npresets:\n  - name: a\n",
		"trailing doc":     "presets:\n  - name: a\n---\npresets: []\n",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := preset.Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	f, err := preset.Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Presets, 3)

	_, err = preset.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = preset.Load("")
	require.Error(t, err)
}
