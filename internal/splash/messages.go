package splash

// ShowRequest is the transient input of a show call. An empty Animation uses
// the configured assets; a nil DarkMode defers to the host appearance.
type ShowRequest struct {
	Animation string
	DarkMode  *bool
}

// Messages marshal boundary calls onto the UI loop.
type (
	ShowMsg      ShowRequest
	HideMsg      struct{}
	AppLoadedMsg struct{}

	// ConfigureMsg replaces the controller settings for subsequent shows.
	ConfigureMsg struct {
		Settings Settings
	}

	// PlaybackCompletedMsg is delivered by a Presenter when a playback cycle
	// reaches its terminal frame.
	PlaybackCompletedMsg struct {
		Generation uint64
	}
)
