package assets

import (
	"os/exec"
	"strings"
)

// runFiglet renders text with the figlet binary.
func runFiglet(text string) (string, error) {
	cmd := exec.Command("figlet", "-f", "slant", text)
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(output), nil
}

// figletAnimation reveals a banner one line per frame. When figlet is missing
// the plain upper-cased text is revealed one rune at a time instead.
func (l Loader) figletAnimation(text string) (Animation, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Animation{}, ErrEmptyAnimation
	}

	render := l.Figlet
	if render == nil {
		render = runFiglet
	}

	banner, err := render(text)
	if err != nil || strings.TrimSpace(banner) == "" {
		return typewriter(strings.ToUpper(text)), nil
	}
	return reveal(bannerLines(banner)), nil
}

// bannerLines drops blank lines around the banner.
func bannerLines(banner string) []string {
	lines := strings.Split(strings.TrimRight(banner, "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// reveal builds one frame per line; unrevealed lines stay blank so the frame
// height never changes.
func reveal(lines []string) Animation {
	frames := make([]string, 0, len(lines))
	for i := range lines {
		shown := make([]string, len(lines))
		copy(shown, lines[:i+1])
		frames = append(frames, strings.Join(shown, "\n"))
	}
	return Animation{Frames: frames}
}

func typewriter(text string) Animation {
	runes := []rune(text)
	frames := make([]string, 0, len(runes))
	for i := range runes {
		frames = append(frames, string(runes[:i+1]))
	}
	return Animation{Frames: frames}
}
