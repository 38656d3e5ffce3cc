package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/alkime/selector/internal/animate"
	"github.com/alkime/selector/internal/blend"
	"github.com/alkime/selector/internal/selector"
	"github.com/alkime/selector/pkg/collections"
)

const (
	// EnvProduction represents the production environment.
	EnvProduction = "production"

	// Prefix is prepended to every environment variable, e.g. SELECTOR_PORT.
	Prefix = "selector"
)

// Config holds all application configuration.
type Config struct {
	Env string `envconfig:"ENV" default:"development"`

	// Dial settings
	Modes      []string `envconfig:"MODES"`
	Colors     []string `envconfig:"COLORS"`
	StartColor string   `envconfig:"START_COLOR"`
	EndColor   string   `envconfig:"END_COLOR"`
	ModeCount  int      `envconfig:"MODE_COUNT"`
	Density    float64  `envconfig:"DENSITY" default:"1"`

	// Preset settings
	PresetFile string `envconfig:"PRESET_FILE"`
	Preset     string `envconfig:"PRESET"`

	// Animation settings
	StepAngle     float64       `envconfig:"STEP_ANGLE" default:"3"`
	StepDelay     time.Duration `envconfig:"STEP_DELAY" default:"4ms"`
	FrameInterval time.Duration `envconfig:"FRAME_INTERVAL" default:"16ms"`
	Easing        string        `envconfig:"EASING" default:"linear"`

	// Server settings
	Port           string   `envconfig:"PORT" default:"8080"`
	AllowedHosts   []string `envconfig:"ALLOWED_HOSTS"`
	TrustedProxies []string `envconfig:"TRUSTED_PROXIES" default:"127.0.0.1"`
	StaticDir      string   `envconfig:"STATIC_DIR"`

	// Security settings
	HSTSMaxAge int    `envconfig:"HSTS_MAX_AGE" default:"31536000"`
	CSPMode    string `envconfig:"CSP_MODE" default:"relaxed"`

	// Logging settings
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile  string `envconfig:"LOG_FILE"`
}

// LoadConfig loads configuration from .env file and SELECTOR_ environment variables.
func LoadConfig() (*Config, error) {
	// Try to load .env file (optional)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	var config Config
	if err := envconfig.Process(Prefix, &config); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	return &config, nil
}

// Animation returns the animator settings.
func (c *Config) Animation() (animate.Config, error) {
	easing, ok := animate.EasingByName(c.Easing)
	if !ok {
		return animate.Config{}, fmt.Errorf("unknown easing %q", c.Easing)
	}

	return animate.Config{
		StepAngle:     c.StepAngle,
		StepDelay:     c.StepDelay,
		FrameInterval: c.FrameInterval,
		Easing:        easing,
	}, nil
}

// Selector builds the switch configuration from the dial and animation
// settings. Explicit colours win over a start/end pair.
func (c *Config) Selector() (selector.Config, error) {
	anim, err := c.Animation()
	if err != nil {
		return selector.Config{}, err
	}

	cfg := selector.Config{
		ModeCount: c.ModeCount,
		Names:     c.Modes,
		Metrics:   selector.DefaultMetrics(),
		Animation: anim,
	}
	cfg.Metrics.Density = c.Density

	switch {
	case len(c.Colors) > 0:
		colors, at, err := collections.ApplyErr(c.Colors, blend.ParseHex)
		if err != nil {
			return selector.Config{}, fmt.Errorf("colour %d: %w", at, err)
		}
		cfg.Colors = colors

	case c.StartColor != "" || c.EndColor != "":
		start, err := blend.ParseHex(c.StartColor)
		if err != nil {
			return selector.Config{}, fmt.Errorf("start colour: %w", err)
		}
		end, err := blend.ParseHex(c.EndColor)
		if err != nil {
			return selector.Config{}, fmt.Errorf("end colour: %w", err)
		}
		cfg.Blend = &selector.ColorRange{Start: start, End: end}
	}

	return cfg, nil
}

// BuildCSP constructs Content Security Policy based on mode.
func BuildCSP(mode string) string {
	if mode == "strict" {
		return "default-src 'self'; " +
			"style-src 'self' 'unsafe-inline'; " +
			"script-src 'self'; " +
			"connect-src 'self'; " +
			"img-src 'self' data:; " +
			"object-src 'none'; " +
			"base-uri 'self'; " +
			"form-action 'self'"
	}

	// websocket clients on other local ports need ws: in relaxed mode
	return "default-src 'self'; " +
		"style-src 'self' 'unsafe-inline'; " +
		"script-src 'self' 'unsafe-inline'; " +
		"connect-src 'self' ws: wss:; " +
		"img-src 'self' data:"
}
