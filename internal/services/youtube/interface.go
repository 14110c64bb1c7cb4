package youtube

import (
	"context"
)

// MetadataProvider fetches canonical video metadata for a video ID.
type MetadataProvider interface {
	// GetVideoDetails returns the metadata for a single video.
	// Returns ErrVideoNotFound if the provider has no item for the ID.
	GetVideoDetails(ctx context.Context, videoID string) (*VideoDetails, error)
}

// VideoDetails is one item of the provider's videos.list response, limited
// to the parts this service consumes.
type VideoDetails struct {
	ID             string         `json:"id"`
	Snippet        Snippet        `json:"snippet"`
	ContentDetails ContentDetails `json:"contentDetails"`
	Statistics     Statistics     `json:"statistics"`
}

type Snippet struct {
	PublishedAt  string       `json:"publishedAt"`
	ChannelTitle string       `json:"channelTitle"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Thumbnails   ThumbnailSet `json:"thumbnails"`
}

type ContentDetails struct {
	Duration   string `json:"duration"`
	Definition string `json:"definition"`
}

// Statistics counters arrive as decimal strings on the wire.
type Statistics struct {
	ViewCount string `json:"viewCount"`
	LikeCount string `json:"likeCount"`
}

type Thumbnail struct {
	Name   string
	URL    string
	Width  int
	Height int
}
