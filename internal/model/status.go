package model

// DownloadStatus represents the state shown on the widget's status line
type DownloadStatus string

const (
	// StatusIdle means no message is shown
	StatusIdle DownloadStatus = "Idle"

	// StatusProcessing means the simulated download is pending
	StatusProcessing DownloadStatus = "Processing"

	// StatusCompleted means the last download finished successfully
	StatusCompleted DownloadStatus = "Completed"

	// StatusFailed means the last download returned an error
	StatusFailed DownloadStatus = "Failed"
)

// Status line messages
const (
	MessageProcessing = "Processing..."
	MessageCompleted  = "Download completed!"
	MessageFailed     = "Download failed. Please try again."
)

// String returns the string representation of DownloadStatus
func (ds DownloadStatus) String() string {
	return string(ds)
}

// Message returns the human-readable status line; empty for StatusIdle.
func (ds DownloadStatus) Message() string {
	switch ds {
	case StatusProcessing:
		return MessageProcessing
	case StatusCompleted:
		return MessageCompleted
	case StatusFailed:
		return MessageFailed
	default:
		return ""
	}
}

// IsActive returns true while a download is pending
func (ds DownloadStatus) IsActive() bool {
	return ds == StatusProcessing
}

// IsFailure returns true if the status line should use error styling
func (ds DownloadStatus) IsFailure() bool {
	return ds == StatusFailed
}

// DisplayMode selects which presentation palette is rendered
type DisplayMode int

const (
	ModeLight DisplayMode = iota
	ModeDark
)

// Toggle returns the other mode. Toggling twice yields the original mode.
func (m DisplayMode) Toggle() DisplayMode {
	if m == ModeDark {
		return ModeLight
	}
	return ModeDark
}

// IsDark reports whether m is ModeDark
func (m DisplayMode) IsDark() bool {
	return m == ModeDark
}

func (m DisplayMode) String() string {
	if m == ModeDark {
		return "dark"
	}
	return "light"
}
