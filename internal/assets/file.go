package assets

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// frameSeparator splits frames in plain-text animation files.
const frameSeparator = "---"

// document is the structured animation layout for .toml and .yaml files.
type document struct {
	FPS    int      `toml:"fps" yaml:"fps"`
	Frames []string `toml:"frames" yaml:"frames"`
}

// LoadFile reads an animation from disk. .toml, .yaml and .yml files hold a
// document with an optional fps and a list of frames. Any other file is plain
// text with frames separated by lines containing only "---"; it plays at fps.
func LoadFile(path string, fps int) (Animation, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".yaml", ".yml":
		return loadDocument(path, fps)
	default:
		return loadText(path, fps)
	}
}

func loadDocument(path string, fps int) (Animation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Animation{}, fmt.Errorf("read animation: %w", err)
	}

	var doc document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &doc)
	default:
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return Animation{}, fmt.Errorf("parse animation: %w", err)
	}

	if doc.FPS > 0 {
		fps = doc.FPS
	}
	frames := make([]string, 0, len(doc.Frames))
	for _, f := range doc.Frames {
		frames = append(frames, strings.TrimRight(f, "\n"))
	}
	return Animation{Frames: frames, Interval: intervalFor(fps)}, nil
}

func loadText(path string, fps int) (Animation, error) {
	file, err := os.Open(path)
	if err != nil {
		return Animation{}, fmt.Errorf("open animation: %w", err)
	}
	defer file.Close()

	var (
		frames  []string
		current []string
	)
	flush := func() {
		if len(current) > 0 {
			frames = append(frames, strings.Join(current, "\n"))
		}
		current = nil
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == frameSeparator {
			flush()
			continue
		}
		current = append(current, line)
	}
	if err := scanner.Err(); err != nil {
		return Animation{}, fmt.Errorf("read animation: %w", err)
	}
	flush()

	return Animation{Frames: frames, Interval: intervalFor(fps)}, nil
}

func cellWidth(s string) int {
	return runewidth.StringWidth(s)
}
