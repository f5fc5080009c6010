package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the host screen.
type keyMap struct {
	// Splash bridge
	Show      key.Binding
	ShowDark  key.Binding
	ShowLight key.Binding
	Override  key.Binding
	Hide      key.Binding
	AppLoaded key.Binding

	// Global
	CycleTheme key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Show: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Show splash"),
		),
		ShowDark: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Show dark"),
		),
		ShowLight: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "Show light"),
		),
		Override: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Show override animation"),
		),
		Hide: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "Hide splash"),
		),
		AppLoaded: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Report app loaded"),
		),

		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Show, k.Hide, k.AppLoaded, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Splash
		{k.Show, k.ShowDark, k.ShowLight, k.Override},
		{k.Hide, k.AppLoaded},
		// General
		{k.CycleTheme, k.Help, k.Quit},
	}
}
