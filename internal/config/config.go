package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/five82/curtain/internal/splash"
)

// Config captures the splash options read from the embedding application's
// config file.
type Config struct {
	Path            string // resolved file the values came from; empty for defaults
	Enabled         bool
	AnimationLight  string
	AnimationDark   string
	BackgroundLight string
	BackgroundDark  string
	AutoHide        bool
	Loop            bool
	LoopEvents      string // "every" or "first"
	LoopDismiss     string // "immediate" or "boundary"
	FPS             int    // default frame rate for plain-text animations
	Appearance      string // "auto", "light" or "dark"

	// Diagnostics lists the adjustments made while loading.
	Diagnostics []string
}

const (
	defaultConfigPath      = "~/.config/curtain/config.toml"
	defaultBackgroundLight = "#FFFFFF"
	defaultBackgroundDark  = "#000000"
	defaultFPS             = 12
	maxFPS                 = 60

	LoopEventsEvery     = "every"
	LoopEventsFirst     = "first"
	LoopDismissNow      = "immediate"
	LoopDismissBoundary = "boundary"
	AppearanceAuto      = "auto"
	AppearanceLight     = "light"
	AppearanceDark      = "dark"
)

// raw mirrors the file layout. Pointers distinguish "absent" from "false".
type raw struct {
	Enabled         *bool   `toml:"enabled" yaml:"enabled"`
	AnimationLight  string  `toml:"animationLight" yaml:"animationLight"`
	AnimationDark   string  `toml:"animationDark" yaml:"animationDark"`
	BackgroundLight *string `toml:"backgroundLight" yaml:"backgroundLight"`
	BackgroundDark  *string `toml:"backgroundDark" yaml:"backgroundDark"`
	AutoHide        bool    `toml:"autoHide" yaml:"autoHide"`
	Loop            bool    `toml:"loop" yaml:"loop"`
	LoopEvents      string  `toml:"loopEvents" yaml:"loopEvents"`
	LoopDismiss     string  `toml:"loopDismiss" yaml:"loopDismiss"`
	FPS             int     `toml:"fps" yaml:"fps"`
	Appearance      string  `toml:"appearance" yaml:"appearance"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Enabled:         true,
		BackgroundLight: defaultBackgroundLight,
		BackgroundDark:  defaultBackgroundDark,
		LoopEvents:      LoopEventsEvery,
		LoopDismiss:     LoopDismissNow,
		FPS:             defaultFPS,
		Appearance:      AppearanceAuto,
	}
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Load locates and parses the config, falling back to defaults when missing.
// Diagnostics are logged to logger (nil discards them).
func Load(path string, logger *slog.Logger) (Config, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.finish(logger)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var r raw
	if err := decode(resolved, bytes, &r); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Path = resolved
	baseDir := filepath.Dir(resolved)

	if r.Enabled != nil {
		cfg.Enabled = *r.Enabled
	}
	cfg.AnimationLight = resolveAsset(r.AnimationLight, baseDir)
	cfg.AnimationDark = resolveAsset(r.AnimationDark, baseDir)
	if r.BackgroundLight != nil {
		cfg.BackgroundLight = strings.TrimSpace(*r.BackgroundLight)
	}
	if r.BackgroundDark != nil {
		cfg.BackgroundDark = strings.TrimSpace(*r.BackgroundDark)
	}
	cfg.AutoHide = r.AutoHide
	cfg.Loop = r.Loop
	if v := strings.TrimSpace(r.LoopEvents); v != "" {
		cfg.LoopEvents = strings.ToLower(v)
	}
	if v := strings.TrimSpace(r.LoopDismiss); v != "" {
		cfg.LoopDismiss = strings.ToLower(v)
	}
	if r.FPS != 0 {
		cfg.FPS = r.FPS
	}
	if v := strings.TrimSpace(r.Appearance); v != "" {
		cfg.Appearance = strings.ToLower(v)
	}

	cfg.finish(logger)
	return cfg, nil
}

// finish normalizes conflicting or invalid values and records diagnostics.
func (c *Config) finish(logger *slog.Logger) {
	note := func(msg string, args ...any) {
		c.Diagnostics = append(c.Diagnostics, msg)
		logger.Warn(msg, args...)
	}

	if c.Enabled && c.AnimationLight == "" {
		note("animationLight must be provided; splash disabled")
	}

	autoHide, loop, changed := Normalize(c.AutoHide, c.Loop)
	if changed {
		note("autoHide and loop cannot both be true; loop disabled")
	}
	c.AutoHide, c.Loop = autoHide, loop

	switch c.LoopEvents {
	case LoopEventsEvery, LoopEventsFirst:
	default:
		note("unknown loopEvents value; using every", "value", c.LoopEvents)
		c.LoopEvents = LoopEventsEvery
	}
	switch c.LoopDismiss {
	case LoopDismissNow, LoopDismissBoundary:
	default:
		note("unknown loopDismiss value; using immediate", "value", c.LoopDismiss)
		c.LoopDismiss = LoopDismissNow
	}
	switch c.Appearance {
	case AppearanceAuto, AppearanceLight, AppearanceDark:
	default:
		note("unknown appearance value; using auto", "value", c.Appearance)
		c.Appearance = AppearanceAuto
	}
	if c.FPS <= 0 || c.FPS > maxFPS {
		note("fps out of range; using default", "value", c.FPS, "default", defaultFPS)
		c.FPS = defaultFPS
	}
}

// Settings converts the file values into controller settings.
func (c Config) Settings() splash.Settings {
	s := splash.Settings{
		Enabled:         c.Enabled,
		AnimationLight:  c.AnimationLight,
		AnimationDark:   c.AnimationDark,
		BackgroundLight: splash.ParseColor(c.BackgroundLight),
		AutoHide:        c.AutoHide,
		Loop:            c.Loop,
	}
	if strings.TrimSpace(c.BackgroundDark) != "" {
		dark := splash.ParseColor(c.BackgroundDark)
		s.BackgroundDark = &dark
	}
	if c.LoopEvents == LoopEventsFirst {
		s.LoopEvents = splash.LoopEventsFirst
	}
	if c.LoopDismiss == LoopDismissBoundary {
		s.LoopDismiss = splash.LoopDismissBoundary
	}
	return s
}

// ForcedDarkMode returns the appearance forced by config, or nil for auto.
func (c Config) ForcedDarkMode() *bool {
	var dark bool
	switch c.Appearance {
	case AppearanceDark:
		dark = true
	case AppearanceLight:
		dark = false
	default:
		return nil
	}
	return &dark
}

func decode(path string, data []byte, r *raw) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, r)
	default:
		return toml.Unmarshal(data, r)
	}
}

// resolveAsset anchors relative file references at the config directory.
// References of the form "scheme:value" are left alone.
func resolveAsset(ref, baseDir string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" || hasScheme(ref) {
		return ref
	}
	if strings.HasPrefix(ref, "~") {
		return mustExpand(ref)
	}
	if filepath.IsAbs(ref) {
		return ref
	}
	return filepath.Join(baseDir, ref)
}

func hasScheme(ref string) bool {
	idx := strings.Index(ref, ":")
	if idx <= 1 {
		return false
	}
	return !strings.ContainsAny(ref[:idx], `/\.`)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
