package boards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidboard/vidboard/internal/services/youtube"
)

func detailsWithThumbnails(t *testing.T, thumbnailsJSON string) *youtube.VideoDetails {
	t.Helper()

	var set youtube.ThumbnailSet
	require.NoError(t, set.UnmarshalJSON([]byte(thumbnailsJSON)))

	return &youtube.VideoDetails{
		ID: "dQw4w9WgXcQ",
		Snippet: youtube.Snippet{
			Title:      "Never Gonna Give You Up",
			Thumbnails: set,
		},
		Statistics: youtube.Statistics{
			ViewCount: "1500000000",
			LikeCount: "16000000",
		},
	}
}

func TestBuildVideoRecord(t *testing.T) {
	details := detailsWithThumbnails(t, `{
		"default": {"url": "u-default"},
		"high": {"url": "u-high"},
		"maxres": {"url": "u-maxres"}
	}`)

	record := buildVideoRecord(details)

	assert.Equal(t, "dQw4w9WgXcQ", record.ExternalID)
	assert.Equal(t, "Never Gonna Give You Up", record.Title)
	assert.Equal(t, "u-maxres", record.ThumbnailURL)
	assert.Equal(t, int64(1500000000), record.ViewCount)
	assert.Equal(t, int64(16000000), record.LikeCount)
	assert.False(t, record.AddedAt.IsZero())
}

func TestBuildVideoRecordTakesLastThumbnailKey(t *testing.T) {
	// The rule is "last key in the provider's iteration order", not "highest
	// resolution" - a reversed response must pick the default variant.
	details := detailsWithThumbnails(t, `{
		"maxres": {"url": "u-maxres"},
		"default": {"url": "u-default"}
	}`)

	record := buildVideoRecord(details)
	assert.Equal(t, "u-default", record.ThumbnailURL)
}

func TestBuildVideoRecordLenientStatistics(t *testing.T) {
	details := detailsWithThumbnails(t, `{"default": {"url": "u-default"}}`)
	details.Statistics.ViewCount = "abc"
	details.Statistics.LikeCount = ""

	record := buildVideoRecord(details)

	assert.Equal(t, int64(0), record.ViewCount)
	assert.Equal(t, int64(0), record.LikeCount)
}

func TestBuildVideoRecordNoThumbnails(t *testing.T) {
	details := detailsWithThumbnails(t, `{}`)

	record := buildVideoRecord(details)
	assert.Empty(t, record.ThumbnailURL)
}
