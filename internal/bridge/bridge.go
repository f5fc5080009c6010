// Package bridge exposes the splash controller to the embedding application:
// show, hide, appLoaded, isAnimating and the onAnimationEnd event.
//
// Calls may come from any goroutine, including the UI loop itself. Mutating
// calls are queued and forwarded in order with Program.Send, so they return
// immediately; isAnimating reads the published status without touching the
// loop.
package bridge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/curtain/internal/splash"
	"github.com/five82/curtain/internal/state"
)

// ErrUnknownMethod is returned by Call for names outside the method table.
var ErrUnknownMethod = errors.New("unknown method")

// queueSize bounds the calls waiting for the UI loop.
const queueSize = 64

// Sender delivers messages to the UI loop. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// ShowOptions are the optional inputs of Show.
type ShowOptions struct {
	Animation  string
	IsDarkMode *bool
}

// IsAnimatingResult is the answer to IsAnimating.
type IsAnimatingResult struct {
	IsAnimating bool `json:"isAnimating"`
}

type listener struct {
	id    int
	event string
	fn    func()
}

// Bridge is the boundary between the embedding application and the splash
// controller.
type Bridge struct {
	store  *state.Store
	logger *slog.Logger

	queue chan tea.Msg

	mu        sync.RWMutex
	attached  bool
	listeners []listener
	nextID    int
}

// New creates a Bridge reading status from store. Mutating calls reach the
// controller once Attach is called.
func New(store *state.Store, logger *slog.Logger) *Bridge {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if store == nil {
		store = &state.Store{}
	}
	return &Bridge{
		store:  store,
		logger: logger,
		queue:  make(chan tea.Msg, queueSize),
	}
}

// Attach starts forwarding queued calls to sender, in order, until ctx is
// done. Calls made before Attach wait in the queue.
func (b *Bridge) Attach(ctx context.Context, sender Sender) {
	b.mu.Lock()
	if b.attached {
		b.mu.Unlock()
		return
	}
	b.attached = true
	b.mu.Unlock()

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-b.queue:
				sender.Send(msg)
			}
		}
	}()
}

// Show starts a new show-cycle.
func (b *Bridge) Show(opts ShowOptions) {
	b.send("show", splash.ShowMsg{Animation: opts.Animation, DarkMode: opts.IsDarkMode})
}

// Hide dismisses the overlay.
func (b *Bridge) Hide() {
	b.send("hide", splash.HideMsg{})
}

// AppLoaded reports that the embedding application finished loading.
func (b *Bridge) AppLoaded() {
	b.send("appLoaded", splash.AppLoadedMsg{})
}

// IsAnimating reports whether the splash animation is still running.
func (b *Bridge) IsAnimating() IsAnimatingResult {
	return IsAnimatingResult{IsAnimating: b.store.Snapshot().IsAnimating()}
}

// AddListener registers fn for event (for example "onAnimationEnd"). The
// returned func removes the registration.
func (b *Bridge) AddListener(event string, fn func()) (remove func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.listeners = append(b.listeners, listener{id: id, event: event, fn: fn})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, l := range b.listeners {
			if l.id == id {
				b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
				return
			}
		}
	}
}

// Notify fans a controller event out to the registered listeners. Install it
// as the splash.Notifier listener.
func (b *Bridge) Notify(ev splash.Event) {
	name := ev.String()

	b.mu.RLock()
	var fns []func()
	for _, l := range b.listeners {
		if l.event == name {
			fns = append(fns, l.fn)
		}
	}
	b.mu.RUnlock()

	b.logger.Debug("splash event", "event", name, "listeners", len(fns))
	for _, fn := range fns {
		fn()
	}
}

// Call dispatches a method by name the way a plugin bridge does. Only
// isAnimating returns data.
func (b *Bridge) Call(method string, args map[string]any) (map[string]any, error) {
	switch method {
	case "show":
		opts, err := showOptions(args)
		if err != nil {
			return nil, fmt.Errorf("call show: %w", err)
		}
		b.Show(opts)
		return nil, nil
	case "hide":
		b.Hide()
		return nil, nil
	case "appLoaded":
		b.AppLoaded()
		return nil, nil
	case "isAnimating":
		return map[string]any{"isAnimating": b.IsAnimating().IsAnimating}, nil
	default:
		return nil, fmt.Errorf("call %q: %w", method, ErrUnknownMethod)
	}
}

func showOptions(args map[string]any) (ShowOptions, error) {
	var opts ShowOptions
	if v, ok := args["animation"]; ok && v != nil {
		s, ok := v.(string)
		if !ok {
			return opts, fmt.Errorf("animation must be a string, got %T", v)
		}
		opts.Animation = s
	}
	if v, ok := args["isDarkMode"]; ok && v != nil {
		dark, ok := v.(bool)
		if !ok {
			return opts, fmt.Errorf("isDarkMode must be a bool, got %T", v)
		}
		opts.IsDarkMode = &dark
	}
	return opts, nil
}

// send queues msg without blocking the caller, which may be the UI loop
// itself.
func (b *Bridge) send(method string, msg tea.Msg) {
	select {
	case b.queue <- msg:
		b.logger.Debug("splash call queued", "method", method)
	default:
		b.logger.Warn("splash call dropped, queue full", "method", method)
	}
}
