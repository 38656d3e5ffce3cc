// Package preset loads named dial layouts from a YAML file.
//
//	default: traffic
//	presets:
//	  - name: traffic
//	    modes: [STOP, WAIT, GO]
//	    colors: ["#e74c3c", "#f1c40f", "#2ecc71"]
//	  - name: heat
//	    mode_count: 5
//	    blend: {start: "#3498db", end: "#3f98db"}
package preset

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alkime/selector/internal/blend"
	"github.com/alkime/selector/internal/selector"
	"github.com/alkime/selector/pkg/collections"
)

// ErrUnknownPreset is returned by Lookup for names the file does not define.
var ErrUnknownPreset = errors.New("unknown preset")

// Range is a blend from Start to End, both hex colours.
type Range struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// Preset is one named dial layout.
type Preset struct {
	Name      string   `yaml:"name"`
	Modes     []string `yaml:"modes,omitempty"`
	Colors    []string `yaml:"colors,omitempty"`
	Blend     *Range   `yaml:"blend,omitempty"`
	ModeCount int      `yaml:"mode_count,omitempty"`
}

// File is the top-level preset document.
type File struct {
	Default string   `yaml:"default,omitempty"`
	Presets []Preset `yaml:"presets"`
}

// Load reads and validates a preset file.
func Load(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("preset path is empty")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset file: %w", err)
	}

	return Parse(b)
}

// Parse decodes and validates a preset document. Unknown keys are rejected.
func Parse(b []byte) (*File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode preset yaml: %w", err)
	}

	if err := dec.Decode(&struct{}{}); err == nil {
		return nil, errors.New("decode preset yaml: unexpected trailing document")
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Validate checks every preset builds a valid switch and that names are unique.
func (f *File) Validate() error {
	if len(f.Presets) == 0 {
		return errors.New("preset file defines no presets")
	}

	seen := make(map[string]bool, len(f.Presets))
	for i, p := range f.Presets {
		if p.Name == "" {
			return fmt.Errorf("preset %d: missing name", i)
		}

		if seen[p.Name] {
			return fmt.Errorf("preset %q: defined twice", p.Name)
		}
		seen[p.Name] = true

		cfg, err := p.Config()
		if err != nil {
			return err
		}

		// building the switch runs the same checks a host would hit later
		if _, err := selector.New(cfg); err != nil {
			return fmt.Errorf("preset %q: %w", p.Name, err)
		}
	}

	if f.Default != "" && !seen[f.Default] {
		return fmt.Errorf("default %w %q", ErrUnknownPreset, f.Default)
	}

	return nil
}

// Names lists the presets in file order.
func (f *File) Names() []string {
	return collections.Apply(f.Presets, func(p Preset) string { return p.Name })
}

// Lookup returns the named preset. An empty name selects the file default, or
// the first preset when there is none.
func (f *File) Lookup(name string) (Preset, error) {
	if name == "" {
		name = f.Default
	}

	if name == "" && len(f.Presets) > 0 {
		return f.Presets[0], nil
	}

	for _, p := range f.Presets {
		if p.Name == name {
			return p, nil
		}
	}

	return Preset{}, fmt.Errorf("%w %q", ErrUnknownPreset, name)
}

// Config converts the preset into a switch configuration with default metrics
// and animation.
func (p Preset) Config() (selector.Config, error) {
	cfg := selector.DefaultConfig()
	cfg.Names = p.Modes
	cfg.Colors = nil
	cfg.ModeCount = p.ModeCount

	switch {
	case len(p.Colors) > 0 && p.Blend != nil:
		return selector.Config{}, fmt.Errorf("preset %q: colors and blend are mutually exclusive", p.Name)

	case len(p.Colors) > 0:
		colors, at, err := collections.ApplyErr(p.Colors, blend.ParseHex)
		if err != nil {
			return selector.Config{}, fmt.Errorf("preset %q: color %d: %w", p.Name, at, err)
		}
		cfg.Colors = colors

	case p.Blend != nil:
		r, err := parseRange(*p.Blend)
		if err != nil {
			return selector.Config{}, fmt.Errorf("preset %q: blend: %w", p.Name, err)
		}
		cfg.Blend = r
	}

	return cfg, nil
}

func parseRange(r Range) (*selector.ColorRange, error) {
	start, err := blend.ParseHex(r.Start)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}

	end, err := blend.ParseHex(r.End)
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}

	return &selector.ColorRange{Start: start, End: end}, nil
}
