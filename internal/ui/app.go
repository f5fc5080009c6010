package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/curtain/internal/bridge"
	"github.com/five82/curtain/internal/overlay"
	"github.com/five82/curtain/internal/splash"
)

const maxEventRows = 5

// Options configures the UI.
type Options struct {
	Controller *splash.Controller
	Layer      *overlay.Layer
	Bridge     *bridge.Bridge
	Logger     *slog.Logger

	// Dark selects the default theme when ThemeName is empty.
	Dark      bool
	ThemeName string

	// OverrideAnimation is shown by the override key.
	OverrideAnimation string

	// Now stamps received events; tests pin it.
	Now func() time.Time
}

// LoadProgressMsg reports simulated application loading. Send it from the
// loader goroutine with Program.Send.
type LoadProgressMsg struct {
	Percent float64
	Step    string
}

// eventLog records onAnimationEnd deliveries. The bridge calls it from the
// UI loop; View reads it on the same loop, the lock covers other callers.
type eventLog struct {
	mu    sync.Mutex
	times []time.Time
	now   func() time.Time
}

func (l *eventLog) record() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.times = append(l.times, l.now())
}

func (l *eventLog) snapshot() []time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]time.Time(nil), l.times...)
}

// Model is the demo host program. The splash overlay, when attached, covers
// the whole host screen.
type Model struct {
	ctrl   *splash.Controller
	layer  *overlay.Layer
	bridge *bridge.Bridge
	logger *slog.Logger
	events *eventLog

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	progress progress.Model
	override string
	width    int
	height   int
	showHelp bool

	// Loading state
	percent float64
	step    string
}

// New creates the host model and subscribes it to onAnimationEnd.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	theme := ThemeFor(opts.Dark)
	if opts.ThemeName != "" {
		theme = GetTheme(opts.ThemeName)
	}

	override := opts.OverrideAnimation
	if override == "" {
		override = "spinner:globe"
	}

	events := &eventLog{now: now}
	if opts.Bridge != nil {
		opts.Bridge.AddListener(splash.AnimationEnd.String(), events.record)
	}

	m := Model{
		ctrl:     opts.Controller,
		layer:    opts.Layer,
		bridge:   opts.Bridge,
		logger:   logger,
		events:   events,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		override: override,
		step:     "starting",
	}
	m.applyTheme(theme)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model. Splash messages go to the controller first;
// frame ticks fall through to the overlay.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.ctrl.Update(msg); ok {
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.progress.Width = progressWidth(msg.Width)
		return m, m.layer.Update(msg)

	case LoadProgressMsg:
		m.percent = clampPercent(msg.Percent)
		if msg.Step != "" {
			m.step = msg.Step
		}
		return m, nil

	case spinner.TickMsg:
		if m.loaded() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, m.layer.Update(msg)
}

// View implements tea.Model.
func (m Model) View() string {
	if v := m.layer.View(); v != "" {
		return v
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey maps keys onto bridge calls. They are queued like calls from any
// other goroutine and come back through Update as splash messages.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.applyTheme(GetTheme(NextTheme(m.theme.Name)))

	case key.Matches(msg, m.keys.Show):
		m.bridge.Show(bridge.ShowOptions{})

	case key.Matches(msg, m.keys.ShowDark):
		dark := true
		m.bridge.Show(bridge.ShowOptions{IsDarkMode: &dark})

	case key.Matches(msg, m.keys.ShowLight):
		dark := false
		m.bridge.Show(bridge.ShowOptions{IsDarkMode: &dark})

	case key.Matches(msg, m.keys.Override):
		m.bridge.Show(bridge.ShowOptions{Animation: m.override})

	case key.Matches(msg, m.keys.Hide):
		m.bridge.Hide()

	case key.Matches(msg, m.keys.AppLoaded):
		m.bridge.AppLoaded()
	}
	return m, nil
}

func (m *Model) applyTheme(t Theme) {
	m.theme = t
	styles := t.Styles()
	m.spinner.Style = styles.AccentText
	m.help.Styles.ShortKey = styles.WarningText
	m.help.Styles.ShortDesc = styles.MutedText
	m.help.Styles.ShortSeparator = styles.FaintText

	width := m.progress.Width
	m.progress = progress.New(progress.WithGradient(t.ProgressFrom, t.ProgressTo))
	if width > 0 {
		m.progress.Width = width
	}
}

func (m Model) loaded() bool {
	return m.percent >= 1
}

func progressWidth(windowWidth int) int {
	w := windowWidth - 16
	if w > 60 {
		w = 60
	}
	if w < 10 {
		w = 10
	}
	return w
}

func clampPercent(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}

// Run starts the Bubble Tea program. ready receives the program before it
// starts so other goroutines can send to it.
func Run(ctx context.Context, m Model, ready func(*tea.Program)) error {
	if m.ctrl == nil || m.layer == nil || m.bridge == nil {
		return fmt.Errorf("ui requires a splash controller, overlay and bridge")
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if ready != nil {
		ready(p)
	}
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
