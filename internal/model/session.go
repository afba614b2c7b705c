package model

import (
	"time"

	"github.com/ytget/yt-grab/internal/platform"
)

// Session is the widget state for one page view. It is not safe for
// concurrent use; download.Service serializes access to it.
type Session struct {
	URL     string
	Loading bool
	Status  DownloadStatus
	Mode    DisplayMode
	Recent  *RecentDownloads
}

// NewSession creates an empty session in light mode
func NewSession() *Session {
	return &Session{
		Status: StatusIdle,
		Mode:   ModeLight,
		Recent: NewRecentDownloads(MaxRecentDownloads),
	}
}

// IsValid is derived from URL on every call and is never stored.
func (s *Session) IsValid() bool {
	return platform.ValidateYouTubeURL(s.URL)
}

// CanDownload returns true if a download may be triggered now
func (s *Session) CanDownload() bool {
	return s.IsValid() && !s.Loading
}

// BeginDownload enters the pending state and returns the URL being
// downloaded. It returns false if the URL is invalid or a download is
// already pending.
func (s *Session) BeginDownload() (string, bool) {
	if !s.CanDownload() {
		return "", false
	}
	s.Loading = true
	s.Status = StatusProcessing
	return s.URL, true
}

// CompleteDownload records url as downloaded and clears the input
func (s *Session) CompleteDownload(url string, at time.Time) {
	s.Status = StatusCompleted
	s.Recent.Append(NewDownloadRecord(url, at))
	s.URL = ""
	s.Loading = false
}

// FailDownload leaves the input and the recent list untouched
func (s *Session) FailDownload() {
	s.Status = StatusFailed
	s.Loading = false
}

// ClearStatus resets the status line
func (s *Session) ClearStatus() {
	s.Status = StatusIdle
}

// ToggleMode flips the display mode
func (s *Session) ToggleMode() {
	s.Mode = s.Mode.Toggle()
}

// Snapshot is an immutable copy of a Session for rendering
type Snapshot struct {
	URL             string
	Valid           bool
	Loading         bool
	CanDownload     bool
	ShowInvalidHint bool
	Status          DownloadStatus
	StatusMessage   string
	Mode            DisplayMode
	Recent          []DownloadRecord
}

// Snapshot copies the current state
func (s *Session) Snapshot() Snapshot {
	valid := s.IsValid()
	return Snapshot{
		URL:             s.URL,
		Valid:           valid,
		Loading:         s.Loading,
		CanDownload:     valid && !s.Loading,
		ShowInvalidHint: s.URL != "" && !valid,
		Status:          s.Status,
		StatusMessage:   s.Status.Message(),
		Mode:            s.Mode,
		Recent:          s.Recent.Records(),
	}
}

// RecentURLs returns the URLs of the snapshot's recent downloads, oldest first
func (s Snapshot) RecentURLs() []string {
	urls := make([]string, 0, len(s.Recent))
	for _, r := range s.Recent {
		urls = append(urls, r.URL)
	}
	return urls
}
