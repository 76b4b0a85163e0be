package models

import "time"

// ChannelSource is the normalized form of a channels.list item, carrying only
// what the analyzer consumes.
type ChannelSource struct {
	ID              string
	Title           string
	PublishedAt     time.Time
	SubscriberCount int64
	ViewCount       int64
	VideoCount      int64
	TopicCategories []string
}

// VideoSource is the normalized form of a videos.list item.
type VideoSource struct {
	ID           string
	Title        string
	PublishedAt  time.Time
	Duration     string // ISO 8601, e.g. "PT4M13S"
	ViewCount    int64
	LikeCount    int64
	CommentCount int64
	CategoryID   string
}
