package splash

import (
	"errors"
	"strings"
)

// ErrNoAsset is returned when neither an override nor a light animation is
// available to show.
var ErrNoAsset = errors.New("no splash animation configured")

var errNoPresenter = errors.New("no presenter attached")

// Settings is the configuration record handed to the controller.
type Settings struct {
	Enabled         bool
	AnimationLight  string
	AnimationDark   string
	BackgroundLight Color
	BackgroundDark  *Color // nil when not configured
	AutoHide        bool
	Loop            bool
	LoopEvents      LoopEventPolicy
	LoopDismiss     LoopDismissPolicy
}

// Active reports whether the overlay can ever be presented.
func (s Settings) Active() bool {
	return s.Enabled && strings.TrimSpace(s.AnimationLight) != ""
}

// Selection is the asset and background picked for one show-cycle.
type Selection struct {
	Asset      string
	Background Color
	Dark       bool
}

// Select picks the animation and background for a show-cycle.
//
// An override replaces only the animation: its background is the dark one when
// dark mode is in effect and a dark background is configured, otherwise the
// light one.
func Select(override string, useDark bool, s Settings) (Selection, error) {
	if o := strings.TrimSpace(override); o != "" {
		bg := s.BackgroundLight
		if useDark && s.BackgroundDark != nil {
			bg = *s.BackgroundDark
		}
		return Selection{Asset: o, Background: bg, Dark: useDark}, nil
	}

	if dark := strings.TrimSpace(s.AnimationDark); useDark && dark != "" {
		bg := s.BackgroundLight
		if s.BackgroundDark != nil {
			bg = *s.BackgroundDark
		}
		return Selection{Asset: dark, Background: bg, Dark: true}, nil
	}

	light := strings.TrimSpace(s.AnimationLight)
	if light == "" {
		return Selection{}, ErrNoAsset
	}
	return Selection{Asset: light, Background: s.BackgroundLight, Dark: false}, nil
}

// Appearance reports the host's current interface appearance.
type Appearance interface {
	IsDark() bool
}

// AppearanceFunc adapts a function to Appearance.
type AppearanceFunc func() bool

// IsDark implements Appearance.
func (f AppearanceFunc) IsDark() bool { return f() }

// FixedAppearance is an Appearance that never changes.
type FixedAppearance bool

// IsDark implements Appearance.
func (a FixedAppearance) IsDark() bool { return bool(a) }

func resolveDark(override *bool, appearance Appearance) bool {
	if override != nil {
		return *override
	}
	if appearance == nil {
		return false
	}
	return appearance.IsDark()
}
