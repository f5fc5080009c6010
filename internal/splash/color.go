package splash

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

var (
	White = Color{R: 0xFF, G: 0xFF, B: 0xFF}
	Black = Color{}
)

// ParseColor resolves a "#RRGGBB" (or "RRGGBB") string. Surrounding whitespace
// and letter case are ignored. Anything that is not exactly six hex digits
// resolves to White so a bad config value never blocks startup.
func ParseColor(hex string) Color {
	c := strings.ToUpper(strings.TrimSpace(hex))
	c = strings.TrimPrefix(c, "#")
	if len(c) != 6 {
		return White
	}
	rgb, err := strconv.ParseUint(c, 16, 32)
	if err != nil {
		return White
	}
	return Color{
		R: uint8(rgb >> 16),
		G: uint8(rgb >> 8),
		B: uint8(rgb),
	}
}

// Hex renders the color as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}
