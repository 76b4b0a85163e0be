// Package models defines the request and response types shared between the
// analyzer service, the HTTP handlers, and the client.
package models

import "time"

// Allowed sort_order values.
const (
	SortNewest = "newest"
	SortOldest = "oldest"
)

// VideoCounts lists the video_count values the analyzer accepts.
var VideoCounts = []int{5, 10, 20, 50}

// AnalysisRequest is the body of POST /api/analyze-channel.
type AnalysisRequest struct {
	ChannelURL string `json:"channel_url" binding:"required"`
	VideoCount int    `json:"video_count"`
	SortOrder  string `json:"sort_order"`
	Timezone   string `json:"timezone"`
}

// ApplyDefaults fills unset optional fields with the server defaults.
func (r *AnalysisRequest) ApplyDefaults() {
	if r.VideoCount == 0 {
		r.VideoCount = 20
	}
	if r.SortOrder == "" {
		r.SortOrder = SortNewest
	}
	if r.Timezone == "" {
		r.Timezone = "UTC"
	}
}

// UploadFrequency summarizes recent upload cadence.
type UploadFrequency struct {
	Last30Days int `json:"last_30_days"`
	Last90Days int `json:"last_90_days"`
}

// ChannelInfo is the channel-level portion of an analysis. All display values
// are computed server-side; clients render them as-is.
type ChannelInfo struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	CreationDate       string          `json:"creation_date"`
	SubscriberCount    string          `json:"subscriber_count"`
	TotalViews         int64           `json:"total_views"`
	RecentViews30Days  int64           `json:"recent_views_30_days"`
	TotalUploads       int64           `json:"total_uploads"`
	PrimaryCategory    string          `json:"primary_category"`
	MonetizationStatus string          `json:"monetization_status"`
	UploadFrequency    UploadFrequency `json:"upload_frequency"`
}

// VideoRecord is one analyzed video. TimeGapText describes the elapsed time
// to the upload immediately preceding this one in the returned ordering; the
// last element of the sequence carries no meaningful gap.
type VideoRecord struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	UploadDate      time.Time `json:"upload_date"`
	UploadDateUTC   string    `json:"upload_date_utc"`
	UploadDateLocal string    `json:"upload_date_local"`
	Duration        string    `json:"duration"`
	Views           int64     `json:"views"`
	Likes           int64     `json:"likes"`
	Comments        int64     `json:"comments"`
	EngagementRate  float64   `json:"engagement_rate"`
	TimeGapHours    float64   `json:"time_gap_hours"`
	TimeGapText     string    `json:"time_gap_text"`
	ThumbnailURL    string    `json:"thumbnail_url"`
	Category        string    `json:"category"`
	CategoryID      string    `json:"category_id"`
}

// AnalysisResult is the full response of a channel analysis. The order of
// Videos follows the requested sort order and is never re-sorted downstream.
type AnalysisResult struct {
	ChannelInfo       ChannelInfo   `json:"channel_info"`
	Videos            []VideoRecord `json:"videos"`
	AnalysisTimestamp time.Time     `json:"analysis_timestamp"`
	TotalLikes        int64         `json:"total_likes"`
	TotalComments     int64         `json:"total_comments"`
	AvgViewsPerVideo  float64       `json:"avg_views_per_video"`
	AvgLikesPerVideo  float64       `json:"avg_likes_per_video"`
}

// ErrorResponse carries a human-readable failure description. The field name
// matches what clients of the original analyzer API expect.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
