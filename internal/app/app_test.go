package app

import (
	"path/filepath"
	"testing"

	"github.com/five82/curtain/internal/config"
	"github.com/five82/curtain/internal/splash"
)

func TestApplyOverrides(t *testing.T) {
	cfg := config.Default()
	cfg.AnimationLight = "light.txt"
	cfg.AnimationDark = "dark.txt"

	applyOverrides(&cfg, Options{Animation: " spinner:moon ", Appearance: "DARK"})

	if cfg.AnimationLight != "spinner:moon" || cfg.AnimationDark != "" {
		t.Fatalf("animations = %q/%q, want spinner:moon/empty", cfg.AnimationLight, cfg.AnimationDark)
	}
	if cfg.Appearance != config.AppearanceDark {
		t.Fatalf("Appearance = %q, want dark", cfg.Appearance)
	}

	applyOverrides(&cfg, Options{Appearance: "sepia"})
	if cfg.Appearance != config.AppearanceDark {
		t.Fatalf("unknown appearance changed config to %q", cfg.Appearance)
	}
}

func TestHostIsDark(t *testing.T) {
	detectCalls := 0
	detect := func() bool {
		detectCalls++
		return true
	}

	cfg := config.Default()
	if !hostIsDark(cfg, detect) {
		t.Fatalf("auto appearance should use detection")
	}
	cfg.Appearance = config.AppearanceLight
	if hostIsDark(cfg, detect) {
		t.Fatalf("forced light appearance reported dark")
	}
	if detectCalls != 1 {
		t.Fatalf("detect called %d times, want 1", detectCalls)
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(Options{
		ConfigPath: filepath.Join(t.TempDir(), "none.toml"),
		Animation:  "spinner:dot",
	}, nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !cfg.Settings().Active() {
		t.Fatalf("override animation should activate the splash")
	}
}

func TestBuild_WiresControllerToBridge(t *testing.T) {
	cfg := config.Default()
	cfg.AnimationLight = "spinner:line"

	c := build(cfg, Options{DetectDark: func() bool { return false }}, nil, 40, 10)

	ended := 0
	c.bridge.AddListener(splash.AnimationEnd.String(), func() { ended++ })

	if cmd := c.ctrl.Show(splash.ShowRequest{}); cmd == nil {
		t.Fatalf("Show returned nil command")
	}
	if !c.layer.Attached() {
		t.Fatalf("overlay not attached after Show")
	}
	if !c.bridge.IsAnimating().IsAnimating {
		t.Fatalf("bridge does not see the published status")
	}

	c.ctrl.PlaybackCompleted(c.ctrl.Generation())
	if ended != 1 {
		t.Fatalf("onAnimationEnd delivered %d times, want 1", ended)
	}

	c.ctrl.AppLoaded()
	if c.layer.Attached() {
		t.Fatalf("overlay still attached after appLoaded")
	}
	if c.store.Snapshot().Visible() {
		t.Fatalf("store still reports a visible splash")
	}
}
