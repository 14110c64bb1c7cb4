package models

import (
	"time"
)

// VideoRecord is a denormalized snapshot of a YouTube video, captured once
// when the video is added to a board. Records are never mutated afterwards.
type VideoRecord struct {
	ExternalID   string    `bson:"external_id" json:"externalId"`
	Title        string    `bson:"title" json:"title"`
	ThumbnailURL string    `bson:"thumbnail_url" json:"thumbnailUrl"`
	ViewCount    int64     `bson:"view_count" json:"viewCount"`
	LikeCount    int64     `bson:"like_count" json:"likeCount"`
	AddedAt      time.Time `bson:"added_at" json:"addedAt"`
}

// Board owns its embedded video list. Videos keep server-side append order;
// each append creates a fresh record even for duplicate URLs.
type Board struct {
	ID        string        `bson:"_id" json:"id"`
	Owner     string        `bson:"owner" json:"owner"`
	Name      string        `bson:"name" json:"name"`
	Videos    []VideoRecord `bson:"videos" json:"videos"`
	CreatedAt time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updated_at" json:"updatedAt"`
}

type CreateBoardRequest struct {
	Name string `json:"name" binding:"required"`
}

type DeleteBoardRequest struct {
	BoardID string `json:"boardId"`
}

type DeleteBoardResponse struct {
	Message      string `json:"message"`
	DeletedBoard *Board `json:"deletedBoard"`
}

type AddVideoRequest struct {
	YouTubeVideoURL string `json:"youtubeVideoUrl" binding:"required"`
}
