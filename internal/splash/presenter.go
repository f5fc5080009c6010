package splash

import tea "github.com/charmbracelet/bubbletea"

// LoopMode selects whether playback runs once or repeats.
type LoopMode int

const (
	PlayOnce LoopMode = iota
	Loop
)

func (m LoopMode) String() string {
	if m == Loop {
		return "loop"
	}
	return "playOnce"
}

// Presentation describes what a Presenter should put on screen.
type Presentation struct {
	Generation uint64
	Asset      string
	Background Color
	Loop       LoopMode
}

// Presenter owns the on-screen overlay. Both methods run on the UI loop.
//
// Present replaces whatever is currently attached. When a playback cycle
// reaches its terminal frame the presenter delivers a PlaybackCompletedMsg
// carrying the presentation's generation; in Loop mode it delivers one per
// cycle and keeps playing. An error means nothing was attached.
//
// Dismiss detaches the overlay and must be safe to call when nothing is
// attached.
type Presenter interface {
	Present(p Presentation) (tea.Cmd, error)
	Dismiss() tea.Cmd
}
