package boards

import (
	"strconv"
	"time"

	"github.com/vidboard/vidboard/internal/models"
	"github.com/vidboard/vidboard/internal/services/youtube"
)

// buildVideoRecord turns fetched metadata into a persistable record.
//
// The thumbnail is the last variant in the provider's own key order. That
// usually favors the higher resolutions but is not guaranteed to be the
// highest; the rule is kept as-is for parity with the upstream response
// shape rather than replaced with an explicit resolution ranking.
func buildVideoRecord(details *youtube.VideoDetails) models.VideoRecord {
	record := models.VideoRecord{
		ExternalID: details.ID,
		Title:      details.Snippet.Title,
		ViewCount:  parseCount(details.Statistics.ViewCount),
		LikeCount:  parseCount(details.Statistics.LikeCount),
		AddedAt:    time.Now().UTC(),
	}

	if thumb, ok := details.Snippet.Thumbnails.Last(); ok {
		record.ThumbnailURL = thumb.URL
	}

	return record
}

// parseCount parses a decimal-string counter. Missing or malformed stats
// become 0 instead of failing the whole add-video flow.
func parseCount(s string) int64 {
	count, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return count
}
