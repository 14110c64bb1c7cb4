package youtube

import (
	"errors"
	"regexp"
)

// ErrInvalidVideoURL is returned when no video ID can be extracted from a URL.
var ErrInvalidVideoURL = errors.New("not a recognized YouTube video URL")

// YouTube video IDs are always exactly 11 characters.
var videoURLRegex = regexp.MustCompile(`(?:https?://)?(?:www\.|m\.)?(?:youtube\.com/(?:v/|watch\?v=|embed/)|youtu\.be/)([a-zA-Z0-9_-]{11})`)

// ExtractVideoID extracts the 11-character video ID from a YouTube URL.
// Supported shapes: watch?v=, /v/, /embed/ and the youtu.be short link.
func ExtractVideoID(url string) (string, error) {
	matches := videoURLRegex.FindStringSubmatch(url)
	if len(matches) > 1 {
		return matches[1], nil
	}
	return "", ErrInvalidVideoURL
}
