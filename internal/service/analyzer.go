// Package service implements the channel analysis pipeline.
package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/channel-lens/channel-analyzer-go/internal/metrics"
	"github.com/channel-lens/channel-analyzer-go/internal/models"
	"github.com/channel-lens/channel-analyzer-go/internal/service/quota"
	"github.com/channel-lens/channel-analyzer-go/internal/service/youtube"
	"github.com/channel-lens/channel-analyzer-go/pkg/logger"
)

// VideoProvider is the slice of the YouTube API the analyzer consumes.
type VideoProvider interface {
	ResolveChannel(ctx context.Context, identifier string) (*models.ChannelSource, error)
	ListVideoIDs(ctx context.Context, channelID string, maxResults int) ([]string, error)
	FetchVideoDetails(ctx context.Context, videoIDs []string) ([]models.VideoSource, error)
	FetchCategories(ctx context.Context) (map[string]string, error)
}

// Analyzer orchestrates channel resolution, video listing and metric
// computation for one analysis request.
type Analyzer struct {
	provider VideoProvider
	quota    *quota.Manager
	now      func() time.Time
}

// NewAnalyzer creates an Analyzer. The quota manager may be nil, disabling
// quota checks.
func NewAnalyzer(provider VideoProvider, quotaManager *quota.Manager) *Analyzer {
	return &Analyzer{
		provider: provider,
		quota:    quotaManager,
		now:      time.Now,
	}
}

// analysisCost is a conservative per-request quota estimate: channel lookup
// (worst case two channels.list plus a search), one video search page, one
// videos.list batch and the categories call.
const analysisCost = youtube.CostChannelsList*2 +
	youtube.CostSearchList*2 +
	youtube.CostVideosList +
	youtube.CostVideoCategoriesList

// Analyze runs the full pipeline for one request. The request must already
// carry defaults for unset optional fields.
func (a *Analyzer) Analyze(ctx context.Context, req *models.AnalysisRequest) (*models.AnalysisResult, error) {
	identifier := ExtractChannelIdentifier(req.ChannelURL)
	if identifier == "" {
		return nil, ErrInvalidChannelURL
	}

	loc, err := time.LoadLocation(req.Timezone)
	if err != nil {
		return nil, &UnknownTimezoneError{Name: req.Timezone}
	}

	if a.quota != nil {
		if !a.quota.Available(analysisCost) {
			return nil, ErrQuotaExhausted
		}
		a.quota.Charge(analysisCost)
		metrics.AddQuotaUnits(analysisCost)
	}

	channel, err := a.provider.ResolveChannel(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("resolve channel %q: %w", identifier, err)
	}
	if channel == nil {
		return nil, ErrChannelNotFound
	}

	videoIDs, err := a.provider.ListVideoIDs(ctx, channel.ID, req.VideoCount)
	if err != nil {
		return nil, fmt.Errorf("list videos for %s: %w", channel.ID, err)
	}
	if len(videoIDs) == 0 {
		return nil, ErrNoVideos
	}

	details, err := a.provider.FetchVideoDetails(ctx, videoIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch video details: %w", err)
	}

	categories, err := a.provider.FetchCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch categories: %w", err)
	}

	result := a.buildResult(req, loc, channel, details, categories)

	logger.Log.Info("channel analyzed",
		zap.String("channel_id", channel.ID),
		zap.String("channel", channel.Title),
		zap.Int("videos", len(result.Videos)),
		zap.String("sort_order", req.SortOrder),
	)

	return result, nil
}

func (a *Analyzer) buildResult(
	req *models.AnalysisRequest,
	loc *time.Location,
	channel *models.ChannelSource,
	details []models.VideoSource,
	categories map[string]string,
) *models.AnalysisResult {
	sort.Slice(details, func(i, j int) bool {
		if req.SortOrder == models.SortNewest {
			return details[i].PublishedAt.After(details[j].PublishedAt)
		}
		return details[i].PublishedAt.Before(details[j].PublishedAt)
	})

	now := a.now().UTC()

	videos := make([]models.VideoRecord, 0, len(details))
	var previous time.Time
	var totalLikes, totalComments, totalViews, recentViews int64

	for _, v := range details {
		engagement := 0.0
		if v.ViewCount > 0 {
			engagement = round2(float64(v.LikeCount+v.CommentCount) / float64(v.ViewCount) * 100)
		}

		gapHours, gapText := timeGap(v.PublishedAt, previous)

		if now.Sub(v.PublishedAt) <= 30*24*time.Hour {
			recentViews += v.ViewCount
		}

		category := categories[v.CategoryID]
		if category == "" {
			category = "Unknown"
		}

		videos = append(videos, models.VideoRecord{
			ID:              v.ID,
			Title:           v.Title,
			UploadDate:      v.PublishedAt,
			UploadDateUTC:   v.PublishedAt.UTC().Format(dateTimeLayout),
			UploadDateLocal: v.PublishedAt.In(loc).Format(dateTimeLayout),
			Duration:        FormatDuration(v.Duration),
			Views:           v.ViewCount,
			Likes:           v.LikeCount,
			Comments:        v.CommentCount,
			EngagementRate:  engagement,
			TimeGapHours:    math.Round(gapHours*10) / 10,
			TimeGapText:     gapText,
			ThumbnailURL:    fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", v.ID),
			Category:        category,
			CategoryID:      v.CategoryID,
		})

		previous = v.PublishedAt
		totalLikes += v.LikeCount
		totalComments += v.CommentCount
		totalViews += v.ViewCount
	}

	frequency := models.UploadFrequency{}
	for _, v := range videos {
		age := now.Sub(v.UploadDate)
		if age <= 30*24*time.Hour {
			frequency.Last30Days++
		}
		if age <= 90*24*time.Hour {
			frequency.Last90Days++
		}
	}

	totalUploads := channel.VideoCount
	if totalUploads == 0 {
		totalUploads = int64(len(videos))
	}

	info := models.ChannelInfo{
		ID:                 channel.ID,
		Name:               channel.Title,
		CreationDate:       channel.PublishedAt.Format(dateLayout),
		SubscriberCount:    FormatCompactCount(channel.SubscriberCount),
		TotalViews:         channel.ViewCount,
		RecentViews30Days:  recentViews,
		TotalUploads:       totalUploads,
		PrimaryCategory:    primaryCategory(channel.TopicCategories),
		MonetizationStatus: monetizationStatus(channel, details),
		UploadFrequency:    frequency,
	}

	result := &models.AnalysisResult{
		ChannelInfo:       info,
		Videos:            videos,
		AnalysisTimestamp: now,
		TotalLikes:        totalLikes,
		TotalComments:     totalComments,
	}
	if len(videos) > 0 {
		result.AvgViewsPerVideo = math.Round(float64(totalViews) / float64(len(videos)))
		result.AvgLikesPerVideo = math.Round(float64(totalLikes) / float64(len(videos)))
	}

	return result
}

// monetizationStatus applies the indicator heuristic: healthy average views
// over a meaningful sample plus a subscriber base above the partner-program
// floor.
func monetizationStatus(channel *models.ChannelSource, details []models.VideoSource) string {
	indicators := 0

	if len(details) > 10 {
		var sum int64
		for _, v := range details {
			sum += v.ViewCount
		}
		if float64(sum)/float64(len(details)) > 10000 {
			indicators++
		}
	}

	if channel.SubscriberCount > 1000 {
		indicators++
	}

	switch {
	case indicators >= 2:
		return "Likely Monetized"
	case indicators == 1:
		return "Possibly Monetized"
	default:
		return "Unknown"
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
