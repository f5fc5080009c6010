package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// renderMain renders the host screen shown whenever the splash is detached.
func (m Model) renderMain() string {
	styles := m.theme.Styles()

	header := styles.Header.Render(
		styles.AccentText.Bold(true).Render("curtain") + styles.MutedText.Render("  demo host"),
	)

	sections := []string{
		header,
		styles.Panel.Render(m.renderLoading()),
		styles.Panel.Render(m.renderSplash()),
		styles.Panel.Render(m.renderEvents()),
		styles.Footer.Render(m.help.View(m.keys)),
	}
	body := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, body)
}

func (m Model) renderLoading() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Application"))
	b.WriteString("\n")
	if m.loaded() {
		b.WriteString(styles.SuccessText.Render("✓ loaded"))
	} else {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(styles.MutedText.Render(cases.Title(language.English).String(m.step)))
	}
	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(m.percent))
	return b.String()
}

func (m Model) renderSplash() string {
	styles := m.theme.Styles()
	status := m.ctrl.Status()
	answer := m.bridge.IsAnimating()

	animating := styles.MutedText.Render("false")
	if answer.IsAnimating {
		animating = styles.WarningText.Render("true")
	}

	asset := status.Asset
	if asset == "" {
		asset = "-"
	}

	rows := [][2]string{
		{"state", status.State.String()},
		{"generation", fmt.Sprintf("%d", status.Generation)},
		{"asset", asset},
		{"mode", status.Loop.String()},
		{"cycles", fmt.Sprintf("%d", status.Cycles)},
		{"isAnimating", animating},
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Splash"))
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Width(13).Render(row[0]))
		b.WriteString(styles.Text.Render(row[1]))
	}
	return b.String()
}

func (m Model) renderEvents() string {
	styles := m.theme.Styles()
	times := m.events.snapshot()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(fmt.Sprintf("onAnimationEnd (%d)", len(times))))
	if len(times) == 0 {
		b.WriteString("\n")
		b.WriteString(styles.FaintText.Render("no events yet"))
		return b.String()
	}

	start := 0
	if len(times) > maxEventRows {
		start = len(times) - maxEventRows
	}
	for i := len(times) - 1; i >= start; i-- {
		b.WriteString("\n")
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("#%d", i+1)))
		b.WriteString(" ")
		b.WriteString(styles.Text.Render(times[i].Format("15:04:05.000")))
	}
	return b.String()
}
