// Package youtube wraps the YouTube Data API v3 calls the analyzer needs.
package youtube

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/channel-lens/channel-analyzer-go/internal/models"
)

// Approximate quota unit costs per operation, per the Data API v3 pricing.
const (
	CostChannelsList        = 1
	CostSearchList          = 100
	CostVideosList          = 1
	CostVideoCategoriesList = 1
)

const maxBatchSize = 50

// Client wraps the YouTube Data API v3 client.
type Client struct {
	service    *youtube.Service
	regionCode string
}

// NewClient creates a new YouTube API client.
func NewClient(apiKey, regionCode string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("YouTube API key is required")
	}
	if regionCode == "" {
		regionCode = "US"
	}

	service, err := youtube.NewService(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &Client{
		service:    service,
		regionCode: regionCode,
	}, nil
}

// ResolveChannel looks up a channel by the identifier extracted from a URL.
// It tries a channel ID first, then a legacy username, then a channel search.
// A nil result with nil error means no channel matched.
func (c *Client) ResolveChannel(ctx context.Context, identifier string) (*models.ChannelSource, error) {
	parts := []string{"snippet", "statistics", "topicDetails"}

	byID, err := c.service.Channels.List(parts).Id(identifier).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("channels.list by id: %w", err)
	}
	if len(byID.Items) > 0 {
		return mapChannel(byID.Items[0]), nil
	}

	byUser, err := c.service.Channels.List(parts).ForUsername(identifier).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("channels.list by username: %w", err)
	}
	if len(byUser.Items) > 0 {
		return mapChannel(byUser.Items[0]), nil
	}

	search, err := c.service.Search.List([]string{"snippet"}).
		Q(identifier).
		Type("channel").
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("search.list for channel: %w", err)
	}
	if len(search.Items) == 0 || search.Items[0].Snippet == nil {
		return nil, nil
	}

	resolved, err := c.service.Channels.List(parts).
		Id(search.Items[0].Snippet.ChannelId).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("channels.list resolved id: %w", err)
	}
	if len(resolved.Items) == 0 {
		return nil, nil
	}

	return mapChannel(resolved.Items[0]), nil
}

// ListVideoIDs returns up to maxResults video IDs for a channel, newest
// uploads first, following page tokens as needed.
func (c *Client) ListVideoIDs(ctx context.Context, channelID string, maxResults int) ([]string, error) {
	var ids []string
	pageToken := ""

	for len(ids) < maxResults {
		pageSize := maxResults - len(ids)
		if pageSize > maxBatchSize {
			pageSize = maxBatchSize
		}

		call := c.service.Search.List([]string{"snippet"}).
			ChannelId(channelID).
			Type("video").
			Order("date").
			MaxResults(int64(pageSize)).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("search.list videos: %w", err)
		}

		for _, item := range resp.Items {
			if item.Id != nil && item.Id.VideoId != "" {
				ids = append(ids, item.Id.VideoId)
			}
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}

	if len(ids) > maxResults {
		ids = ids[:maxResults]
	}

	return ids, nil
}

// FetchVideoDetails retrieves snippet, statistics and contentDetails for the
// given video IDs, batching requests at the API limit of 50.
func (c *Client) FetchVideoDetails(ctx context.Context, videoIDs []string) ([]models.VideoSource, error) {
	videos := make([]models.VideoSource, 0, len(videoIDs))

	for start := 0; start < len(videoIDs); start += maxBatchSize {
		end := start + maxBatchSize
		if end > len(videoIDs) {
			end = len(videoIDs)
		}

		resp, err := c.service.Videos.List([]string{"snippet", "statistics", "contentDetails"}).
			Id(videoIDs[start:end]...).
			Context(ctx).
			Do()
		if err != nil {
			return nil, fmt.Errorf("videos.list: %w", err)
		}

		for _, item := range resp.Items {
			videos = append(videos, mapVideo(item))
		}
	}

	return videos, nil
}

// FetchCategories returns the category ID to title mapping for the configured
// region. On API failure it falls back to a fixed table of common categories
// rather than failing the analysis.
func (c *Client) FetchCategories(ctx context.Context) (map[string]string, error) {
	resp, err := c.service.VideoCategories.List([]string{"snippet"}).
		RegionCode(c.regionCode).
		Context(ctx).
		Do()
	if err != nil {
		return fallbackCategories(), nil
	}

	categories := make(map[string]string, len(resp.Items))
	for _, item := range resp.Items {
		if item.Snippet != nil {
			categories[item.Id] = item.Snippet.Title
		}
	}

	return categories, nil
}

func mapChannel(ch *youtube.Channel) *models.ChannelSource {
	source := &models.ChannelSource{ID: ch.Id}

	if ch.Snippet != nil {
		source.Title = ch.Snippet.Title
		if t, err := time.Parse(time.RFC3339, ch.Snippet.PublishedAt); err == nil {
			source.PublishedAt = t
		}
	}

	if ch.Statistics != nil {
		source.SubscriberCount = int64(ch.Statistics.SubscriberCount)
		source.ViewCount = int64(ch.Statistics.ViewCount)
		source.VideoCount = int64(ch.Statistics.VideoCount)
	}

	if ch.TopicDetails != nil {
		source.TopicCategories = ch.TopicDetails.TopicCategories
	}

	return source
}

func mapVideo(v *youtube.Video) models.VideoSource {
	source := models.VideoSource{ID: v.Id}

	if v.Snippet != nil {
		source.Title = v.Snippet.Title
		source.CategoryID = v.Snippet.CategoryId
		if t, err := time.Parse(time.RFC3339, v.Snippet.PublishedAt); err == nil {
			source.PublishedAt = t
		}
	}

	if v.ContentDetails != nil {
		source.Duration = v.ContentDetails.Duration
	}

	if v.Statistics != nil {
		source.ViewCount = int64(v.Statistics.ViewCount)
		source.LikeCount = int64(v.Statistics.LikeCount)
		source.CommentCount = int64(v.Statistics.CommentCount)
	}

	return source
}

// fallbackCategories covers the common category IDs when the categories
// endpoint is unavailable.
func fallbackCategories() map[string]string {
	return map[string]string{
		"1":  "Film & Animation",
		"2":  "Autos & Vehicles",
		"10": "Music",
		"15": "Pets & Animals",
		"17": "Sports",
		"19": "Travel & Events",
		"20": "Gaming",
		"22": "People & Blogs",
		"23": "Comedy",
		"24": "Entertainment",
		"25": "News & Politics",
		"26": "Howto & Style",
		"27": "Education",
		"28": "Science & Technology",
	}
}
