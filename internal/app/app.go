package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/five82/curtain/internal/assets"
	"github.com/five82/curtain/internal/bridge"
	"github.com/five82/curtain/internal/config"
	"github.com/five82/curtain/internal/overlay"
	"github.com/five82/curtain/internal/splash"
	"github.com/five82/curtain/internal/state"
	"github.com/five82/curtain/internal/ui"
)

// Options configure the demo application.
type Options struct {
	ConfigPath string
	Logger     *slog.Logger
	LoadTime   time.Duration // simulated start-up; zero uses the default

	// Per-run overrides of the config file.
	Animation  string // replaces both configured animations
	Appearance string // "auto", "light" or "dark"
	ThemeName  string

	// DetectDark reports the terminal appearance; nil asks lipgloss.
	DetectDark func() bool
}

// components is everything Run wires before the program starts.
type components struct {
	cfg    config.Config
	store  *state.Store
	bridge *bridge.Bridge
	layer  *overlay.Layer
	ctrl   *splash.Controller
	model  ui.Model
	dark   bool
}

// Run boots the demo host with the splash shown until the context is
// cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cfg, err := LoadConfig(opts, logger)
	if err != nil {
		return err
	}

	width, height := terminalSize()
	c := build(cfg, opts, logger, width, height)

	logger.Info("starting",
		"config", cfg.Path,
		"splash_active", cfg.Settings().Active(),
		"dark", c.dark,
		"width", width,
		"height", height,
	)

	// The launch splash is queued before the loop starts and shown on its
	// first pass.
	c.bridge.Show(bridge.ShowOptions{})

	return ui.Run(ctx, c.model, func(p *tea.Program) {
		c.bridge.Attach(ctx, p)
		StartLoader(ctx, p, c.bridge, opts.LoadTime, logger)
	})
}

// LoadConfig reads the config file and applies the per-run overrides.
func LoadConfig(opts Options, logger *slog.Logger) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath, logger)
	if err != nil {
		return config.Config{}, fmt.Errorf("load splash config: %w", err)
	}
	applyOverrides(&cfg, opts)
	return cfg, nil
}

func applyOverrides(cfg *config.Config, opts Options) {
	if anim := strings.TrimSpace(opts.Animation); anim != "" {
		cfg.AnimationLight = anim
		cfg.AnimationDark = ""
	}
	switch strings.ToLower(strings.TrimSpace(opts.Appearance)) {
	case config.AppearanceLight:
		cfg.Appearance = config.AppearanceLight
	case config.AppearanceDark:
		cfg.Appearance = config.AppearanceDark
	case config.AppearanceAuto:
		cfg.Appearance = config.AppearanceAuto
	}
}

func build(cfg config.Config, opts Options, logger *slog.Logger, width, height int) components {
	dark := hostIsDark(cfg, opts.DetectDark)

	store := &state.Store{}
	b := bridge.New(store, logger)

	var notifier splash.Notifier
	notifier.SetListener(b.Notify)

	layer := overlay.New(overlay.Options{
		Source: assets.Loader{FPS: cfg.FPS},
		Logger: logger,
		Width:  width,
		Height: height,
	})

	ctrl := splash.NewController(splash.Options{
		Settings:   cfg.Settings(),
		Presenter:  layer,
		Appearance: splash.FixedAppearance(dark),
		Notifier:   &notifier,
		Observer:   store,
		Logger:     logger,
	})

	model := ui.New(ui.Options{
		Controller: ctrl,
		Layer:      layer,
		Bridge:     b,
		Logger:     logger,
		Dark:       dark,
		ThemeName:  opts.ThemeName,
	})

	return components{
		cfg:    cfg,
		store:  store,
		bridge: b,
		layer:  layer,
		ctrl:   ctrl,
		model:  model,
		dark:   dark,
	}
}

// hostIsDark resolves the host appearance once, before the program owns the
// terminal.
func hostIsDark(cfg config.Config, detect func() bool) bool {
	if forced := cfg.ForcedDarkMode(); forced != nil {
		return *forced
	}
	if detect == nil {
		detect = lipgloss.HasDarkBackground
	}
	return detect()
}

func terminalSize() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}
