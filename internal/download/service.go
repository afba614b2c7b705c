package download

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ytget/yt-grab/internal/config"
	"github.com/ytget/yt-grab/internal/model"
	"github.com/ytget/yt-grab/internal/platform"
)

var (
	// ErrBusy is returned when a download is already pending
	ErrBusy = errors.New("download already in progress")
	// ErrInvalidURL is returned when the current URL fails validation
	ErrInvalidURL = errors.New("invalid YouTube URL")
)

// Service handles download operations for one session
type Service struct {
	mu         sync.RWMutex
	session    *model.Session
	fetcher    Fetcher
	clearDelay time.Duration
	statusGen  uint64
	clearTimer *time.Timer
	onUpdate   func(model.Snapshot) // callback for UI updates
}

// NewService creates a download service backed by a Simulator
func NewService(opts config.Options) *Service {
	return NewServiceWithFetcher(NewSimulator(opts.SimulatedDelay), opts.StatusClearDelay)
}

// NewServiceWithFetcher creates a download service using fetcher
func NewServiceWithFetcher(fetcher Fetcher, clearDelay time.Duration) *Service {
	return &Service{
		session:    model.NewSession(),
		fetcher:    fetcher,
		clearDelay: clearDelay,
	}
}

// SetUpdateCallback sets the callback function for state updates
func (s *Service) SetUpdateCallback(callback func(model.Snapshot)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// SetURL replaces the candidate URL
func (s *Service) SetURL(url string) {
	s.mu.Lock()
	if s.session.URL == url {
		s.mu.Unlock()
		return
	}
	s.session.URL = url
	snap := s.session.Snapshot()
	s.mu.Unlock()

	s.notifyUpdate(snap)
}

// ToggleDisplayMode flips between light and dark presentation
func (s *Service) ToggleDisplayMode() {
	s.mu.Lock()
	s.session.ToggleMode()
	snap := s.session.Snapshot()
	s.mu.Unlock()

	log.Printf("Display mode switched to %s", snap.Mode)
	s.notifyUpdate(snap)
}

// SetOptions applies new timings. A download already pending keeps the
// delay it started with.
func (s *Service) SetOptions(opts config.Options) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.fetcher.(*Simulator); ok {
		s.fetcher = NewSimulator(opts.SimulatedDelay)
	}
	s.clearDelay = opts.StatusClearDelay
}

// Snapshot returns a copy of the current session state
func (s *Service) Snapshot() model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Snapshot()
}

// Download runs one download of the current URL and blocks until the fetcher
// returns. It returns ErrBusy while another download is pending and
// ErrInvalidURL if the URL does not validate; neither changes any state.
// The status line is cleared once the configured delay has passed.
func (s *Service) Download(ctx context.Context) error {
	s.mu.Lock()
	if s.session.Loading {
		s.mu.Unlock()
		return ErrBusy
	}
	url, ok := s.session.BeginDownload()
	if !ok {
		s.mu.Unlock()
		return ErrInvalidURL
	}
	s.statusGen++
	snap := s.session.Snapshot()
	s.mu.Unlock()

	log.Printf("Starting download: url=%s kind=%s", url, platform.URLKind(url))
	s.notifyUpdate(snap)

	s.mu.RLock()
	fetcher := s.fetcher
	s.mu.RUnlock()

	started := time.Now()
	err := fetcher.Fetch(ctx, url)

	s.mu.Lock()
	if err != nil {
		s.session.FailDownload()
	} else {
		s.session.CompleteDownload(url, time.Now())
	}
	s.statusGen++
	gen := s.statusGen
	snap = s.session.Snapshot()
	s.scheduleClearLocked(gen)
	s.mu.Unlock()

	if err != nil {
		log.Printf("Download failed for %s: %s (%v)", url, FailureReason(err), err)
	} else {
		log.Printf("Download completed for %s in %s", url, time.Since(started).Round(time.Millisecond))
	}
	s.notifyUpdate(snap)

	if err != nil {
		return fmt.Errorf("download %s: %w", url, err)
	}
	return nil
}

// Close stops a pending status clear
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.clearTimer != nil {
		s.clearTimer.Stop()
		s.clearTimer = nil
	}
}

// scheduleClearLocked arms the status clear for generation gen.
// Caller must hold s.mu.
func (s *Service) scheduleClearLocked(gen uint64) {
	if s.clearTimer != nil {
		s.clearTimer.Stop()
	}
	s.clearTimer = time.AfterFunc(s.clearDelay, func() {
		s.clearStatus(gen)
	})
}

// clearStatus resets the status line unless it changed since gen was issued
func (s *Service) clearStatus(gen uint64) bool {
	s.mu.Lock()
	if gen != s.statusGen || s.session.Loading {
		s.mu.Unlock()
		return false
	}
	s.session.ClearStatus()
	s.clearTimer = nil
	snap := s.session.Snapshot()
	s.mu.Unlock()

	s.notifyUpdate(snap)
	return true
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(snap model.Snapshot) {
	s.mu.RLock()
	callback := s.onUpdate
	s.mu.RUnlock()

	if callback != nil {
		callback(snap)
	}
}
