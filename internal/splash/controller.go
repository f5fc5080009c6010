package splash

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// State is the lifecycle state of the overlay.
type State int

const (
	Idle State = iota
	Presenting
	Ended
)

func (s State) String() string {
	switch s {
	case Presenting:
		return "presenting"
	case Ended:
		return "ended"
	default:
		return "idle"
	}
}

// LoopEventPolicy controls how often AnimationEnd fires while looping.
type LoopEventPolicy int

const (
	// LoopEventsEvery emits AnimationEnd at every loop boundary.
	LoopEventsEvery LoopEventPolicy = iota
	// LoopEventsFirst emits AnimationEnd only at the first boundary of a
	// show-cycle.
	LoopEventsFirst
)

// LoopDismissPolicy controls when AppLoaded dismisses a looping overlay.
type LoopDismissPolicy int

const (
	// LoopDismissImmediate hides a looping overlay as soon as the app loads.
	LoopDismissImmediate LoopDismissPolicy = iota
	// LoopDismissBoundary waits for the next loop boundary.
	LoopDismissBoundary
)

// Status is the observable state of the controller.
type Status struct {
	State      State
	Animating  bool
	AppLoaded  bool
	Generation uint64
	Asset      string
	Background Color
	Loop       LoopMode
	Cycles     int
	Changed    time.Time
}

// Observer receives the controller status after every transition.
type Observer interface {
	Update(Status)
}

// Options wire a Controller to its collaborators.
type Options struct {
	Settings   Settings
	Presenter  Presenter
	Appearance Appearance
	Notifier   *Notifier
	Observer   Observer
	Logger     *slog.Logger
	Now        func() time.Time
}

// Controller is the splash lifecycle state machine. Every method must run on
// the UI loop; other goroutines reach it through the messages in this package.
type Controller struct {
	settings   Settings
	presenter  Presenter
	appearance Appearance
	notifier   *Notifier
	observer   Observer
	logger     *slog.Logger
	now        func() time.Time

	state          State
	animationEnded bool
	appLoaded      bool
	loopMode       LoopMode
	generation     uint64
	cycles         int
	selection      Selection
}

// NewController builds a controller in the Idle state.
func NewController(opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	c := &Controller{
		presenter:  opts.Presenter,
		appearance: opts.Appearance,
		notifier:   opts.Notifier,
		observer:   opts.Observer,
		logger:     logger,
		now:        now,
	}
	c.Configure(opts.Settings)
	return c
}

// Configure stores settings for subsequent shows. It never touches an overlay
// that is already on screen.
func (c *Controller) Configure(s Settings) {
	c.settings = s
	c.loopMode = PlayOnce
	if s.Loop {
		c.loopMode = Loop
	}
	// Until the first show, "ended" mirrors enablement.
	if c.generation == 0 {
		c.animationEnded = !s.Active()
	}
	if !s.Active() {
		c.logger.Info("splash disabled", "enabled", s.Enabled, "has_animation", s.AnimationLight != "")
	}
	c.publish()
}

// Settings returns the active configuration.
func (c *Controller) Settings() Settings {
	return c.settings
}

// Show starts a new show-cycle, superseding any cycle in progress.
func (c *Controller) Show(req ShowRequest) tea.Cmd {
	if !c.settings.Active() {
		c.logger.Debug("show ignored, splash disabled")
		return nil
	}

	useDark := resolveDark(req.DarkMode, c.appearance)
	sel, err := Select(req.Animation, useDark, c.settings)
	if err != nil {
		c.logger.Warn("show ignored", "error", err)
		return nil
	}

	c.generation++
	c.state = Presenting
	c.animationEnded = false
	c.cycles = 0
	c.selection = sel

	c.logger.Info("showing splash",
		"generation", c.generation,
		"asset", sel.Asset,
		"background", sel.Background.Hex(),
		"dark", sel.Dark,
		"loop", c.loopMode.String(),
	)

	cmd, err := c.present(Presentation{
		Generation: c.generation,
		Asset:      sel.Asset,
		Background: sel.Background,
		Loop:       c.loopMode,
	})
	if err != nil {
		// Nothing is on screen; finish the cycle now so startup never waits on
		// a broken asset.
		c.logger.Warn("splash presentation failed", "generation", c.generation, "asset", sel.Asset, "error", err)
		return c.PlaybackCompleted(c.generation)
	}
	c.publish()
	return cmd
}

// PlaybackCompleted handles the end of a playback cycle. Completions from a
// superseded or hidden cycle are dropped.
func (c *Controller) PlaybackCompleted(generation uint64) tea.Cmd {
	if generation != c.generation || c.state == Idle {
		c.logger.Debug("stale playback completion dropped", "generation", generation, "current", c.generation, "state", c.state.String())
		return nil
	}

	c.cycles++
	c.state = Ended
	c.animationEnded = true

	if c.loopMode == PlayOnce || c.settings.LoopEvents == LoopEventsEvery || c.cycles == 1 {
		c.notifier.Emit(AnimationEnd)
	}

	if c.appLoaded || c.settings.AutoHide {
		return c.Hide()
	}
	c.logger.Debug("splash animation ended, waiting for app", "generation", generation, "cycles", c.cycles)
	c.publish()
	return nil
}

// AppLoaded records that the embedding application finished loading and hides
// the overlay when nothing else is pending.
func (c *Controller) AppLoaded() tea.Cmd {
	c.appLoaded = true
	c.logger.Info("app loaded", "state", c.state.String())

	switch {
	case c.state == Idle:
	case c.loopMode == Loop:
		if c.settings.LoopDismiss == LoopDismissImmediate {
			return c.Hide()
		}
	case c.state == Ended:
		return c.Hide()
	}
	c.publish()
	return nil
}

// Hide dismisses the overlay. It is safe to call in any state.
func (c *Controller) Hide() tea.Cmd {
	if c.state != Idle {
		c.logger.Info("hiding splash", "generation", c.generation, "cycles", c.cycles)
	}
	c.state = Idle
	c.animationEnded = true
	var cmd tea.Cmd
	if c.presenter != nil {
		cmd = c.presenter.Dismiss()
	}
	c.publish()
	return cmd
}

// IsAnimating reports whether the current animation has not yet finished.
func (c *Controller) IsAnimating() bool {
	return !c.animationEnded
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	return c.state
}

// Generation returns the tag of the current show-cycle.
func (c *Controller) Generation() uint64 {
	return c.generation
}

// Status returns a copy of the observable state.
func (c *Controller) Status() Status {
	return Status{
		State:      c.state,
		Animating:  !c.animationEnded,
		AppLoaded:  c.appLoaded,
		Generation: c.generation,
		Asset:      c.selection.Asset,
		Background: c.selection.Background,
		Loop:       c.loopMode,
		Cycles:     c.cycles,
		Changed:    c.now(),
	}
}

// Update routes splash messages. The bool reports whether msg was one of them.
func (c *Controller) Update(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case ShowMsg:
		return c.Show(ShowRequest(msg)), true
	case HideMsg:
		return c.Hide(), true
	case AppLoadedMsg:
		return c.AppLoaded(), true
	case PlaybackCompletedMsg:
		return c.PlaybackCompleted(msg.Generation), true
	case ConfigureMsg:
		c.Configure(msg.Settings)
		return nil, true
	}
	return nil, false
}

func (c *Controller) present(p Presentation) (tea.Cmd, error) {
	if c.presenter == nil {
		return nil, errNoPresenter
	}
	return c.presenter.Present(p)
}

func (c *Controller) publish() {
	if c.observer == nil {
		return
	}
	c.observer.Update(c.Status())
}
