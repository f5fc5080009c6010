// Package overlay draws the splash animation over the host program's frame.
package overlay

import (
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/five82/curtain/internal/assets"
	"github.com/five82/curtain/internal/splash"
)

// Source decodes animation references. assets.Loader satisfies it.
type Source interface {
	Load(ref string) (assets.Animation, error)
}

// Options configure a Layer.
type Options struct {
	Source Source
	Logger *slog.Logger
	Width  int // initial size until the first tea.WindowSizeMsg
	Height int
}

// frameMsg advances playback of one presentation.
type frameMsg struct {
	generation uint64
}

// Layer is the terminal implementation of splash.Presenter: a full-window
// background in the selected color with the current frame centered on it.
type Layer struct {
	source Source
	logger *slog.Logger
	width  int
	height int

	attached   bool
	generation uint64
	anim       assets.Animation
	frame      int
	loop       splash.LoopMode
	background splash.Color
}

var _ splash.Presenter = (*Layer)(nil)

// New creates a detached Layer.
func New(opts Options) *Layer {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	source := opts.Source
	if source == nil {
		source = assets.Loader{}
	}
	return &Layer{
		source: source,
		logger: logger,
		width:  opts.Width,
		height: opts.Height,
	}
}

// Present implements splash.Presenter. Any overlay already attached is
// replaced; on error nothing stays attached.
func (l *Layer) Present(p splash.Presentation) (tea.Cmd, error) {
	l.detach()

	anim, err := l.source.Load(p.Asset)
	if err != nil {
		return nil, err
	}

	l.attached = true
	l.generation = p.Generation
	l.anim = anim
	l.frame = 0
	l.loop = p.Loop
	l.background = p.Background

	w, h := anim.Size()
	l.logger.Debug("overlay attached",
		"generation", p.Generation,
		"frames", len(anim.Frames),
		"interval", anim.Interval,
		"frame_width", w,
		"frame_height", h,
	)
	return l.tick(), nil
}

// Dismiss implements splash.Presenter.
func (l *Layer) Dismiss() tea.Cmd {
	if l.attached {
		l.logger.Debug("overlay detached", "generation", l.generation)
	}
	l.detach()
	return nil
}

// Attached reports whether an overlay is on screen.
func (l *Layer) Attached() bool {
	return l.attached
}

// Frame returns the index of the frame on screen.
func (l *Layer) Frame() int {
	return l.frame
}

// Update advances playback and tracks the window size. Frames from a
// presentation that is no longer attached are ignored.
func (l *Layer) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		l.width = msg.Width
		l.height = msg.Height
		return nil

	case frameMsg:
		if !l.attached || msg.generation != l.generation {
			return nil
		}
		if l.frame+1 < len(l.anim.Frames) {
			l.frame++
			return l.tick()
		}
		done := completed(l.generation)
		if l.loop == splash.Loop {
			l.frame = 0
			return tea.Batch(done, l.tick())
		}
		// Play-once holds the terminal frame until the overlay is dismissed.
		return done
	}
	return nil
}

// View renders the overlay, or "" when detached.
func (l *Layer) View() string {
	if !l.attached || len(l.anim.Frames) == 0 {
		return ""
	}

	bg := lipgloss.Color(l.background.Hex())
	style := lipgloss.NewStyle().
		Background(bg).
		Foreground(foregroundFor(l.background))

	frame := fit(l.anim.Frames[l.frame], l.width, l.height)
	if l.width <= 0 || l.height <= 0 {
		return style.Render(frame)
	}
	return lipgloss.Place(
		l.width,
		l.height,
		lipgloss.Center,
		lipgloss.Center,
		style.Render(frame),
		lipgloss.WithWhitespaceBackground(bg),
	)
}

func (l *Layer) tick() tea.Cmd {
	generation := l.generation
	interval := l.anim.Interval
	if interval <= 0 {
		interval = time.Second / 12
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return frameMsg{generation: generation}
	})
}

func (l *Layer) detach() {
	l.attached = false
	l.anim = assets.Animation{}
	l.frame = 0
}

func completed(generation uint64) tea.Cmd {
	return func() tea.Msg {
		return splash.PlaybackCompletedMsg{Generation: generation}
	}
}

// fit crops a frame to the window: the middle rows survive and long lines are
// cut at the right edge.
func fit(frame string, width, height int) string {
	lines := strings.Split(frame, "\n")
	if height > 0 && len(lines) > height {
		start := (len(lines) - height) / 2
		lines = lines[start : start+height]
	}
	if width > 0 {
		for i, line := range lines {
			if runewidth.StringWidth(line) > width {
				lines[i] = runewidth.Truncate(line, width, "")
			}
		}
	}
	return strings.Join(lines, "\n")
}

// foregroundFor picks black or white text, whichever reads better on bg.
func foregroundFor(bg splash.Color) lipgloss.Color {
	// ITU-R BT.601 luma.
	luma := (299*int(bg.R) + 587*int(bg.G) + 114*int(bg.B)) / 1000
	if luma > 128 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#FFFFFF")
}
