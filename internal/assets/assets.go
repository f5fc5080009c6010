// Package assets turns asset references into frame sequences the overlay can
// play.
package assets

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrEmptyAnimation is returned when a source yields no frames.
	ErrEmptyAnimation = errors.New("animation has no frames")
	// ErrUnknownSpinner is returned for spinner references without a preset.
	ErrUnknownSpinner = errors.New("unknown spinner preset")
)

const (
	schemeSpinner = "spinner:"
	schemeFiglet  = "figlet:"

	defaultFPS = 12
)

// Animation is a decoded frame sequence.
type Animation struct {
	Frames   []string
	Interval time.Duration // time each frame stays on screen
}

// Duration is the length of one playback cycle.
func (a Animation) Duration() time.Duration {
	return time.Duration(len(a.Frames)) * a.Interval
}

// Size returns the widest frame width and tallest frame height in cells.
func (a Animation) Size() (width, height int) {
	for _, f := range a.Frames {
		w, h := frameSize(f)
		width = max(width, w)
		height = max(height, h)
	}
	return width, height
}

// Loader resolves asset references.
type Loader struct {
	// FPS is the frame rate for sources that do not carry their own.
	FPS int
	// Figlet renders banner text; nil uses the figlet binary.
	Figlet func(text string) (string, error)
}

// Load decodes the animation behind ref:
//
//   - "spinner:<name>" plays a bubbles spinner preset
//   - "figlet:<text>" reveals a figlet banner line by line
//   - anything else is a file path (see LoadFile)
func (l Loader) Load(ref string) (Animation, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Animation{}, fmt.Errorf("load animation: empty reference")
	}

	var (
		anim Animation
		err  error
	)
	switch {
	case strings.HasPrefix(ref, schemeSpinner):
		anim, err = spinnerAnimation(strings.TrimPrefix(ref, schemeSpinner))
	case strings.HasPrefix(ref, schemeFiglet):
		anim, err = l.figletAnimation(strings.TrimPrefix(ref, schemeFiglet))
	default:
		anim, err = LoadFile(ref, l.fps())
	}
	if err != nil {
		return Animation{}, fmt.Errorf("load animation %q: %w", ref, err)
	}
	if len(anim.Frames) == 0 {
		return Animation{}, fmt.Errorf("load animation %q: %w", ref, ErrEmptyAnimation)
	}
	if anim.Interval <= 0 {
		anim.Interval = intervalFor(l.fps())
	}
	return anim, nil
}

func (l Loader) fps() int {
	if l.FPS <= 0 {
		return defaultFPS
	}
	return l.FPS
}

func intervalFor(fps int) time.Duration {
	if fps <= 0 {
		fps = defaultFPS
	}
	return time.Second / time.Duration(fps)
}

func frameSize(frame string) (width, height int) {
	lines := strings.Split(frame, "\n")
	for _, line := range lines {
		width = max(width, cellWidth(line))
	}
	return width, len(lines)
}
