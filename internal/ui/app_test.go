package ui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/curtain/internal/assets"
	"github.com/five82/curtain/internal/bridge"
	"github.com/five82/curtain/internal/overlay"
	"github.com/five82/curtain/internal/splash"
	"github.com/five82/curtain/internal/state"
)

type chanSender chan tea.Msg

func (c chanSender) Send(msg tea.Msg) { c <- msg }

type harness struct {
	model  Model
	ctrl   *splash.Controller
	layer  *overlay.Layer
	sent   chanSender
	stamp  time.Time
	bridge *bridge.Bridge
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	store := &state.Store{}
	b := bridge.New(store, nil)
	sent := make(chanSender, 8)
	b.Attach(ctx, sent)

	var notifier splash.Notifier
	notifier.SetListener(b.Notify)

	layer := overlay.New(overlay.Options{Source: assets.Loader{}})
	ctrl := splash.NewController(splash.Options{
		Settings: splash.Settings{
			Enabled:         true,
			AnimationLight:  "spinner:line",
			BackgroundLight: splash.White,
		},
		Presenter:  layer,
		Appearance: splash.FixedAppearance(false),
		Notifier:   &notifier,
		Observer:   store,
	})

	stamp := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	h := &harness{ctrl: ctrl, layer: layer, sent: sent, stamp: stamp, bridge: b}
	h.model = New(Options{
		Controller: ctrl,
		Layer:      layer,
		Bridge:     b,
		Now:        func() time.Time { return stamp },
	})
	h.update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return h
}

func (h *harness) update(msg tea.Msg) tea.Cmd {
	next, cmd := h.model.Update(msg)
	h.model = next.(Model)
	return cmd
}

func (h *harness) press(keys string) tea.Cmd {
	return h.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)})
}

func (h *harness) receive(t *testing.T) tea.Msg {
	t.Helper()
	select {
	case msg := <-h.sent:
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for bridge message")
		return nil
	}
}

func TestModel_SplashLifecycle(t *testing.T) {
	h := newHarness(t)

	cmd := h.update(splash.ShowMsg{})
	require.NotNil(t, cmd)
	require.True(t, h.layer.Attached())
	assert.Equal(t, h.layer.View(), h.model.View(), "overlay covers the host")
	assert.True(t, h.bridge.IsAnimating().IsAnimating)

	h.update(splash.PlaybackCompletedMsg{Generation: h.ctrl.Generation()})
	assert.True(t, h.layer.Attached(), "waits for appLoaded")
	assert.Len(t, h.model.events.snapshot(), 1)
	assert.False(t, h.bridge.IsAnimating().IsAnimating)

	h.update(splash.AppLoadedMsg{})
	assert.False(t, h.layer.Attached())

	view := h.model.View()
	assert.Contains(t, view, "demo host")
	assert.Contains(t, view, "onAnimationEnd (1)")
	assert.Contains(t, view, "03:04:05.000")
}

func TestModel_FrameTicksReachOverlay(t *testing.T) {
	h := newHarness(t)

	cmd := h.update(splash.ShowMsg{})
	require.NotNil(t, cmd)

	// The first frame tick comes back through the host Update.
	h.update(cmd())
	assert.Equal(t, 1, h.layer.Frame())
}

func TestModel_KeysCallBridge(t *testing.T) {
	h := newHarness(t)

	h.press("s")
	show := h.receive(t).(splash.ShowMsg)
	assert.Empty(t, show.Animation)
	assert.Nil(t, show.DarkMode)

	h.press("d")
	show = h.receive(t).(splash.ShowMsg)
	require.NotNil(t, show.DarkMode)
	assert.True(t, *show.DarkMode)

	h.press("l")
	show = h.receive(t).(splash.ShowMsg)
	require.NotNil(t, show.DarkMode)
	assert.False(t, *show.DarkMode)

	h.press("o")
	show = h.receive(t).(splash.ShowMsg)
	assert.Equal(t, "spinner:globe", show.Animation)

	h.press("h")
	assert.Equal(t, splash.HideMsg{}, h.receive(t))

	h.press("a")
	assert.Equal(t, splash.AppLoadedMsg{}, h.receive(t))
}

func TestModel_Quit(t *testing.T) {
	h := newHarness(t)

	cmd := h.press("q")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestModel_HelpToggle(t *testing.T) {
	h := newHarness(t)

	h.press("?")
	assert.True(t, h.model.showHelp)
	assert.Contains(t, h.model.View(), "Keyboard Shortcuts")
	assert.Contains(t, h.model.View(), "Show override animation")

	h.press("x")
	assert.False(t, h.model.showHelp)
}

func TestModel_CycleTheme(t *testing.T) {
	h := newHarness(t)
	require.Equal(t, "Dayfox", h.model.theme.Name)

	h.press("T")
	assert.Equal(t, "Nightfox", h.model.theme.Name)
	assert.Equal(t, progressWidth(80), h.model.progress.Width)
}

func TestModel_LoadProgress(t *testing.T) {
	h := newHarness(t)

	h.update(LoadProgressMsg{Percent: 0.5, Step: "reading config"})
	assert.Equal(t, 0.5, h.model.percent)
	assert.Contains(t, h.model.View(), "Reading Config")

	h.update(LoadProgressMsg{Percent: 3})
	assert.Equal(t, 1.0, h.model.percent)
	assert.Equal(t, "reading config", h.model.step)
	assert.Contains(t, h.model.View(), "loaded")
}

func TestRun_RequiresCollaborators(t *testing.T) {
	err := Run(context.Background(), New(Options{}), nil)
	assert.Error(t, err)
}

func TestProgressWidth(t *testing.T) {
	assert.Equal(t, 10, progressWidth(0))
	assert.Equal(t, 24, progressWidth(40))
	assert.Equal(t, 60, progressWidth(200))
}

func TestThemes(t *testing.T) {
	assert.Equal(t, "Nightfox", GetTheme("missing").Name)
	assert.Equal(t, "Nightfox", ThemeFor(true).Name)
	assert.Equal(t, "Dayfox", ThemeFor(false).Name)
	assert.Equal(t, "Nightfox", NextTheme("Dayfox"))
	assert.Equal(t, "Nightfox", NextTheme("unknown"))
	assert.Equal(t, []string{"Nightfox", "Dayfox"}, ThemeNames())
}
