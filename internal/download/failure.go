package download

import (
	"context"
	"errors"

	"github.com/ytget/ytdlp/v2/errs"
)

// Failure reasons reported in logs
const (
	ReasonUnavailable   = "video unavailable"
	ReasonPrivate       = "video is private"
	ReasonAgeRestricted = "age restricted"
	ReasonGeoBlocked    = "geo blocked"
	ReasonRateLimited   = "rate limited"
	ReasonTimeout       = "timed out"
	ReasonCanceled      = "canceled"
	ReasonUnknown       = "unknown error"
)

var failureReasons = []struct {
	err    error
	reason string
}{
	{errs.ErrVideoUnavailable, ReasonUnavailable},
	{errs.ErrPrivate, ReasonPrivate},
	{errs.ErrAgeRestricted, ReasonAgeRestricted},
	{errs.ErrGeoBlocked, ReasonGeoBlocked},
	{errs.ErrRateLimited, ReasonRateLimited},
	{context.DeadlineExceeded, ReasonTimeout},
	{context.Canceled, ReasonCanceled},
}

// FailureReason classifies a fetch error for logging. The status line always
// shows the generic failure message regardless of the reason.
func FailureReason(err error) string {
	if err == nil {
		return ""
	}
	for _, fr := range failureReasons {
		if errors.Is(err, fr.err) {
			return fr.reason
		}
	}
	return ReasonUnknown
}
