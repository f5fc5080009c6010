package config

import (
	"fmt"
	"io"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Encode writes the effective values in file form. format is "toml" or
// "yaml"; anything else is an error.
func (c Config) Encode(w io.Writer, format string) error {
	enabled := c.Enabled
	light := c.BackgroundLight
	dark := c.BackgroundDark
	r := raw{
		Enabled:         &enabled,
		AnimationLight:  c.AnimationLight,
		AnimationDark:   c.AnimationDark,
		BackgroundLight: &light,
		BackgroundDark:  &dark,
		AutoHide:        c.AutoHide,
		Loop:            c.Loop,
		LoopEvents:      c.LoopEvents,
		LoopDismiss:     c.LoopDismiss,
		FPS:             c.FPS,
		Appearance:      c.Appearance,
	}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "toml":
		return toml.NewEncoder(w).Encode(r)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
