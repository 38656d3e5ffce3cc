package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/alkime/selector/internal/blend"
	"github.com/alkime/selector/internal/config"
	"github.com/alkime/selector/internal/logger"
	"github.com/alkime/selector/internal/preset"
	"github.com/alkime/selector/internal/selector"
	"github.com/alkime/selector/internal/server"
	"github.com/alkime/selector/internal/tui"
	"github.com/alkime/selector/internal/tui/style"
	tea "github.com/charmbracelet/bubbletea"
)

// CLI defines the selector command structure.
type CLI struct {
	// Default TUI command (runs when no subcommand given)
	TUI TUICmd `cmd:"" default:"withargs" help:"Turn the selector in the terminal"`

	Serve   ServeCmd   `cmd:"" help:"Serve the selector over HTTP and websocket"`
	Palette PaletteCmd `cmd:"" help:"Print the colours blended between two endpoints"`
	Presets PresetsCmd `cmd:"" help:"List the presets in a preset file"`
}

// DialFlags override the dial settings from the environment.
type DialFlags struct {
	PresetFile string `flag:"" help:"YAML preset file"`
	Preset     string `flag:"" help:"Preset name (default: the file's default)"`
	Easing     string `flag:"" help:"Knob easing: linear, ease or spring"`
}

func (f DialFlags) apply(cfg *config.Config) {
	if f.PresetFile != "" {
		cfg.PresetFile = f.PresetFile
	}
	if f.Preset != "" {
		cfg.Preset = f.Preset
	}
	if f.Easing != "" {
		cfg.Easing = f.Easing
	}
}

// TUICmd is the default command that runs the TUI.
type TUICmd struct {
	DialFlags

	Title string `flag:"" default:"Selector" help:"Header text"`
	Rows  int    `flag:"" default:"15" help:"Dial height in rows"`
}

// Run executes the TUI command.
func (c *TUICmd) Run(cfg *config.Config) error {
	c.apply(cfg)

	out, err := logger.Output(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer out.Close()

	logger.SetupLogger(cfg, out, logger.FormatText)

	sw, err := newSwitch(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan selector.Event, 64)
	if err := sw.Subscribe(events); err != nil {
		return err
	}

	go sw.Run(ctx)

	p := tea.NewProgram(
		tui.New(cancel, sw, events, tui.Config{Title: c.Title, DialRows: c.Rows}),
		tea.WithAltScreen(),
	)

	_, err = p.Run()

	return err
}

// ServeCmd runs the HTTP host.
type ServeCmd struct {
	DialFlags

	Port      string `flag:"" help:"Listen port (default from SELECTOR_PORT)"`
	StaticDir string `flag:"" help:"Directory served at /"`
}

// Run executes the serve command.
func (c *ServeCmd) Run(cfg *config.Config) error {
	c.apply(cfg)
	if c.Port != "" {
		cfg.Port = c.Port
	}
	if c.StaticDir != "" {
		cfg.StaticDir = c.StaticDir
	}

	out, err := logger.Output(cfg, os.Stdout)
	if err != nil {
		return err
	}
	defer out.Close()

	log := logger.SetupLogger(cfg, out, logger.FormatJSON)

	sw, err := newSwitch(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sw.Run(ctx)

	log.Info("Starting selector server",
		"env", cfg.Env,
		"port", cfg.Port,
		"modes", sw.ModeCount(),
	)

	return server.Run(ctx, server.New(cfg, sw, log))
}

// PaletteCmd prints a blended palette.
type PaletteCmd struct {
	Start string `arg:"" help:"Start colour, #rrggbb"`
	End   string `arg:"" help:"End colour, #rrggbb"`
	Count int    `flag:"" short:"n" default:"5" help:"Number of colours"`
}

// Run executes the palette command.
//
//nolint:unparam // error return required by Kong interface
func (c *PaletteCmd) Run() error {
	start, err := blend.ParseHex(c.Start)
	if err != nil {
		return err
	}

	end, err := blend.ParseHex(c.End)
	if err != nil {
		return err
	}

	for i, col := range blend.Blend(c.Count, start, end) {
		fmt.Printf("%2d %s %s\n", i, style.Swatch(col).Render("████"), blend.Hex(col))
	}

	return nil
}

// PresetsCmd lists presets.
type PresetsCmd struct {
	File string `arg:"" type:"existingfile" help:"YAML preset file"`
}

// Run executes the presets command.
func (c *PresetsCmd) Run() error {
	f, err := preset.Load(c.File)
	if err != nil {
		return err
	}

	for _, name := range f.Names() {
		p, err := f.Lookup(name)
		if err != nil {
			return err
		}

		cfg, err := p.Config()
		if err != nil {
			return err
		}

		sw, err := selector.New(cfg)
		if err != nil {
			return fmt.Errorf("preset %q: %w", name, err)
		}

		marker := " "
		if name == f.Default {
			marker = "*"
		}

		fmt.Printf("%s %-12s", marker, name)
		for i, col := range sw.DialColors() {
			fmt.Printf(" %s", style.Swatch(col).Render(sw.ModeName(i)))
		}
		fmt.Println()
	}

	return nil
}

// newSwitch builds the switch from a preset when one is configured, otherwise
// from the dial settings in cfg.
func newSwitch(cfg *config.Config) (*selector.Switch, error) {
	sc, err := cfg.Selector()
	if err != nil {
		return nil, fmt.Errorf("dial settings: %w", err)
	}

	if cfg.PresetFile != "" {
		f, err := preset.Load(cfg.PresetFile)
		if err != nil {
			return nil, err
		}

		p, err := f.Lookup(cfg.Preset)
		if err != nil {
			return nil, err
		}

		pc, err := p.Config()
		if err != nil {
			return nil, err
		}

		// presets only describe the dial; motion and size still come from cfg
		pc.Metrics = sc.Metrics
		pc.Animation = sc.Animation
		sc = pc
	}

	return selector.New(sc)
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cli := &CLI{} //nolint:exhaustruct // Kong fills in command fields
	ctx := kong.Parse(cli,
		kong.Name("selector"),
		kong.Description("A rotary multi-position selector switch."),
		kong.Bind(cfg),
	)
	err = ctx.Run()
	ctx.FatalIfErrorf(err)
	os.Exit(0)
}
