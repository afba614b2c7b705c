package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/ytget/yt-grab/internal/platform"
)

// MaxRecentDownloads is the capacity of the recent-downloads list
const MaxRecentDownloads = 5

// DownloadRecord is one entry of the recent-downloads list
type DownloadRecord struct {
	ID          string
	URL         string    // submitted text, rendered as-is
	VideoID     string    // 11-character identifier, empty if URL was not valid
	CompletedAt time.Time // when the download finished
}

// NewDownloadRecord creates a record for url completed at the given time
func NewDownloadRecord(url string, completedAt time.Time) DownloadRecord {
	videoID, _ := platform.ExtractVideoID(url)
	return DownloadRecord{
		ID:          "dl-" + uuid.NewString(),
		URL:         url,
		VideoID:     videoID,
		CompletedAt: completedAt,
	}
}

// GetDisplayTitle returns the text shown for the record in the list
func (r DownloadRecord) GetDisplayTitle() string {
	return r.URL
}

// RecentDownloads keeps the most recent records in insertion order.
// When full, appending evicts the oldest record.
type RecentDownloads struct {
	records  []DownloadRecord
	capacity int
}

// NewRecentDownloads creates an empty list holding at most capacity records.
// A non-positive capacity falls back to MaxRecentDownloads.
func NewRecentDownloads(capacity int) *RecentDownloads {
	if capacity <= 0 {
		capacity = MaxRecentDownloads
	}
	return &RecentDownloads{
		records:  make([]DownloadRecord, 0, capacity),
		capacity: capacity,
	}
}

// Append adds record as the newest entry
func (rd *RecentDownloads) Append(record DownloadRecord) {
	if len(rd.records) == rd.capacity {
		copy(rd.records, rd.records[1:])
		rd.records = rd.records[:len(rd.records)-1]
	}
	rd.records = append(rd.records, record)
}

// Len returns the number of records held
func (rd *RecentDownloads) Len() int {
	return len(rd.records)
}

// Capacity returns the maximum number of records held
func (rd *RecentDownloads) Capacity() int {
	return rd.capacity
}

// Records returns a copy of the records, oldest first
func (rd *RecentDownloads) Records() []DownloadRecord {
	out := make([]DownloadRecord, len(rd.records))
	copy(out, rd.records)
	return out
}

// URLs returns the recorded URLs, oldest first
func (rd *RecentDownloads) URLs() []string {
	urls := make([]string, 0, len(rd.records))
	for _, r := range rd.records {
		urls = append(urls, r.URL)
	}
	return urls
}
