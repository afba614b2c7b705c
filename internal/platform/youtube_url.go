package platform

import (
	"regexp"
)

// VideoIDLength is the length of a YouTube video identifier.
const VideoIDLength = 11

// URL shapes accepted by the validator
const (
	KindWatch = "watch"
	KindShort = "short"
)

// youtubeURLPattern matches from the start of the input only; anything after
// the 11-character identifier is ignored.
var youtubeURLPattern = regexp.MustCompile(`^(https?://)?(www\.)?(youtube\.com/watch\?v=|youtu\.be/)([a-zA-Z0-9_-]{11})`)

// ValidateYouTubeURL reports whether s starts with a YouTube watch or
// short-link URL followed by a video identifier. No network check is made.
func ValidateYouTubeURL(s string) bool {
	return youtubeURLPattern.MatchString(s)
}

// ExtractVideoID returns the video identifier carried by s
func ExtractVideoID(s string) (string, bool) {
	m := youtubeURLPattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[4], true
}

// URLKind returns KindWatch or KindShort for a valid URL, or "" otherwise.
func URLKind(s string) string {
	m := youtubeURLPattern.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	if m[3] == "youtu.be/" {
		return KindShort
	}
	return KindWatch
}
