package overlay

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/curtain/internal/assets"
	"github.com/five82/curtain/internal/splash"
)

type fakeSource map[string]assets.Animation

func (s fakeSource) Load(ref string) (assets.Animation, error) {
	anim, ok := s[ref]
	if !ok {
		return assets.Animation{}, errors.New("no such asset")
	}
	return anim, nil
}

func newTestLayer() *Layer {
	return New(Options{
		Source: fakeSource{
			"three": {Frames: []string{"a", "b", "c"}, Interval: time.Millisecond},
			"big":   {Frames: []string{"1\n22222222\n3\n4\n5"}, Interval: time.Millisecond},
		},
		Width:  20,
		Height: 5,
	})
}

// runCmd executes cmd and flattens batches into their messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func completions(msgs []tea.Msg) []splash.PlaybackCompletedMsg {
	var out []splash.PlaybackCompletedMsg
	for _, m := range msgs {
		if done, ok := m.(splash.PlaybackCompletedMsg); ok {
			out = append(out, done)
		}
	}
	return out
}

func TestLayer_PlayOnceCompletesAfterLastFrame(t *testing.T) {
	l := newTestLayer()

	cmd, err := l.Present(splash.Presentation{Generation: 7, Asset: "three", Background: splash.White})
	require.NoError(t, err)
	require.NotNil(t, cmd)
	assert.True(t, l.Attached())

	msgs := runCmd(cmd)
	require.Equal(t, []tea.Msg{frameMsg{generation: 7}}, msgs)

	assert.Empty(t, completions(runCmd(l.Update(frameMsg{generation: 7}))))
	assert.Equal(t, 1, l.Frame())
	assert.Empty(t, completions(runCmd(l.Update(frameMsg{generation: 7}))))
	assert.Equal(t, 2, l.Frame())

	done := completions(runCmd(l.Update(frameMsg{generation: 7})))
	assert.Equal(t, []splash.PlaybackCompletedMsg{{Generation: 7}}, done)
	assert.Equal(t, 2, l.Frame(), "play-once holds the last frame")
	assert.True(t, l.Attached())
}

func TestLayer_LoopCompletesEveryCycle(t *testing.T) {
	l := newTestLayer()

	_, err := l.Present(splash.Presentation{Generation: 1, Asset: "three", Loop: splash.Loop})
	require.NoError(t, err)

	var done []splash.PlaybackCompletedMsg
	var frames []tea.Msg
	for i := 0; i < 6; i++ {
		msgs := runCmd(l.Update(frameMsg{generation: 1}))
		done = append(done, completions(msgs)...)
		for _, m := range msgs {
			if _, ok := m.(frameMsg); ok {
				frames = append(frames, m)
			}
		}
	}
	assert.Len(t, done, 2)
	assert.Len(t, frames, 6, "looping keeps ticking")
	assert.Equal(t, 0, l.Frame())
}

func TestLayer_StaleFramesIgnored(t *testing.T) {
	l := newTestLayer()

	_, err := l.Present(splash.Presentation{Generation: 1, Asset: "three"})
	require.NoError(t, err)
	_, err = l.Present(splash.Presentation{Generation: 2, Asset: "three"})
	require.NoError(t, err)

	assert.Nil(t, l.Update(frameMsg{generation: 1}))
	assert.Equal(t, 0, l.Frame())

	l.Dismiss()
	assert.Nil(t, l.Update(frameMsg{generation: 2}))
}

func TestLayer_PresentErrorDetaches(t *testing.T) {
	l := newTestLayer()

	_, err := l.Present(splash.Presentation{Generation: 1, Asset: "three"})
	require.NoError(t, err)

	_, err = l.Present(splash.Presentation{Generation: 2, Asset: "missing"})
	require.Error(t, err)
	assert.False(t, l.Attached())
	assert.Equal(t, "", l.View())
}

func TestLayer_DismissIdempotent(t *testing.T) {
	l := newTestLayer()

	assert.NotPanics(t, func() {
		l.Dismiss()
		l.Dismiss()
	})
	assert.False(t, l.Attached())
}

func TestLayer_ViewFillsWindow(t *testing.T) {
	l := newTestLayer()
	l.Update(tea.WindowSizeMsg{Width: 10, Height: 4})

	_, err := l.Present(splash.Presentation{Generation: 1, Asset: "big", Background: splash.Black})
	require.NoError(t, err)

	view := l.View()
	lines := strings.Split(view, "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, view, "22222222")
}

func TestFit(t *testing.T) {
	assert.Equal(t, "2\n3", fit("1\n2\n3\n4", 10, 2))
	assert.Equal(t, "abc\nde", fit("abcdef\nde", 3, 0))
	assert.Equal(t, "xy", fit("xy", 0, 0))
}

func TestForegroundFor(t *testing.T) {
	assert.Equal(t, "#000000", string(foregroundFor(splash.White)))
	assert.Equal(t, "#FFFFFF", string(foregroundFor(splash.Black)))
}
