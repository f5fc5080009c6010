package splash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Color
	}{
		{"with hash", "#1A2B3C", Color{0x1A, 0x2B, 0x3C}},
		{"without hash", "1a2b3c", Color{0x1A, 0x2B, 0x3C}},
		{"mixed case", "#aBcDeF", Color{0xAB, 0xCD, 0xEF}},
		{"surrounding whitespace", "  #000000\n", Black},
		{"black", "#000000", Black},
		{"white", "#ffffff", White},
		{"empty", "", White},
		{"too short", "#FFF", White},
		{"too long", "#1234567", White},
		{"not hex", "#GGGGGG", White},
		{"double hash", "##123456", White},
		{"signed", "+12345", White},
		{"inner space", "#12 456", White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseColor(tt.in))
		})
	}
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, "#0A0B0C", Color{0x0A, 0x0B, 0x0C}.Hex())
	assert.Equal(t, "#FFFFFF", White.String())
}
