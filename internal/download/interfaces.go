package download

import (
	"context"

	"github.com/ytget/yt-grab/internal/config"
	"github.com/ytget/yt-grab/internal/model"
)

// Fetcher retrieves the media behind a validated URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) error
}

// Downloader defines the interface for the download service.
type Downloader interface {
	SetUpdateCallback(func(model.Snapshot))
	SetURL(url string)
	ToggleDisplayMode()
	Snapshot() model.Snapshot
	Download(ctx context.Context) error

	// SetOptions updates the simulated delay and the status clear delay
	SetOptions(opts config.Options)
}
