package splash

import "sync"

// Event is a lifecycle event surfaced to the embedding application.
type Event int

const (
	AnimationEnd Event = iota
)

// String returns the listener-facing event name.
func (e Event) String() string {
	switch e {
	case AnimationEnd:
		return "onAnimationEnd"
	default:
		return "unknown"
	}
}

// Notifier forwards events to a single listener slot. Events emitted before a
// listener is set are dropped.
type Notifier struct {
	once     sync.Once
	listener func(Event)
}

// SetListener installs the listener. Only the first call has any effect.
func (n *Notifier) SetListener(fn func(Event)) {
	n.once.Do(func() {
		n.listener = fn
	})
}

// Emit delivers ev to the listener, if any.
func (n *Notifier) Emit(ev Event) {
	if n == nil || n.listener == nil {
		return
	}
	n.listener(ev)
}
