package config

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEncode_ReloadsToSameSettings(t *testing.T) {
	for _, format := range []string{"toml", "yaml"} {
		t.Run(format, func(t *testing.T) {
			cfg := Default()
			cfg.AnimationLight = "spinner:dot"
			cfg.AnimationDark = "spinner:moon"
			cfg.Loop = true
			cfg.LoopEvents = LoopEventsFirst
			cfg.FPS = 30

			var buf bytes.Buffer
			if err := cfg.Encode(&buf, format); err != nil {
				t.Fatalf("Encode: %v", err)
			}

			path := filepath.Join(t.TempDir(), "config."+format)
			if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			got, err := Load(path, nil)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if !reflect.DeepEqual(got.Settings(), cfg.Settings()) {
				t.Fatalf("Settings = %+v, want %+v", got.Settings(), cfg.Settings())
			}
			if got.FPS != 30 {
				t.Fatalf("FPS = %d, want 30", got.FPS)
			}
		})
	}
}

func TestEncode_UsesFileKeys(t *testing.T) {
	var buf bytes.Buffer
	if err := Default().Encode(&buf, ""); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	for _, key := range []string{"animationLight", "backgroundDark", "loopDismiss"} {
		if !strings.Contains(buf.String(), key) {
			t.Fatalf("output %q missing key %q", buf.String(), key)
		}
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	if err := Default().Encode(&bytes.Buffer{}, "json"); err == nil {
		t.Fatalf("Encode returned nil error for json")
	}
}
