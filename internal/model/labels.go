package model

// Text shared by every rendering of the widget
const (
	AppTitle           = "YouTube MP3 Downloader"
	URLPlaceholder     = "Paste YouTube video link here"
	InvalidURLHint     = "Invalid YouTube URL format"
	DownloadButtonText = "Download MP3"
	RecentTitle        = "Recent Downloads"
)

// Display mode button icons. The button shows the mode it switches to.
const (
	IconSun  = "☀"
	IconMoon = "☾"
)

// ModeIcon returns the icon shown on the toggle while in mode m
func ModeIcon(m DisplayMode) string {
	if m.IsDark() {
		return IconSun
	}
	return IconMoon
}
