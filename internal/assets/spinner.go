package assets

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
)

var spinners = map[string]spinner.Spinner{
	"line":      spinner.Line,
	"dot":       spinner.Dot,
	"minidot":   spinner.MiniDot,
	"jump":      spinner.Jump,
	"pulse":     spinner.Pulse,
	"points":    spinner.Points,
	"globe":     spinner.Globe,
	"moon":      spinner.Moon,
	"monkey":    spinner.Monkey,
	"meter":     spinner.Meter,
	"hamburger": spinner.Hamburger,
	"ellipsis":  spinner.Ellipsis,
}

// SpinnerNames lists the presets usable as "spinner:<name>".
func SpinnerNames() []string {
	return []string{"line", "dot", "minidot", "jump", "pulse", "points", "globe", "moon", "monkey", "meter", "hamburger", "ellipsis"}
}

func spinnerAnimation(name string) (Animation, error) {
	s, ok := spinners[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Animation{}, ErrUnknownSpinner
	}
	frames := make([]string, len(s.Frames))
	copy(frames, s.Frames)
	return Animation{Frames: frames, Interval: s.FPS}, nil
}
