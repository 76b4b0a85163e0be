// Package handler provides HTTP request handlers for the analyzer API.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/channel-lens/channel-analyzer-go/internal/cache"
	"github.com/channel-lens/channel-analyzer-go/internal/metrics"
	"github.com/channel-lens/channel-analyzer-go/internal/models"
	"github.com/channel-lens/channel-analyzer-go/internal/queue"
	"github.com/channel-lens/channel-analyzer-go/internal/service"
	"github.com/channel-lens/channel-analyzer-go/internal/validation"
	"github.com/channel-lens/channel-analyzer-go/pkg/logger"
)

// ChannelAnalyzer runs one channel analysis.
type ChannelAnalyzer interface {
	Analyze(ctx context.Context, req *models.AnalysisRequest) (*models.AnalysisResult, error)
}

// SnapshotEnqueuer queues a completed analysis for persistence.
type SnapshotEnqueuer interface {
	EnqueueStoreSnapshot(payload *queue.StoreSnapshotPayload) error
}

// AnalyzeHandler handles channel analysis requests.
type AnalyzeHandler struct {
	analyzer ChannelAnalyzer
	cache    *cache.Cache
	enqueuer SnapshotEnqueuer
}

// NewAnalyzeHandler creates a new AnalyzeHandler. The enqueuer may be nil,
// in which case completed analyses are not persisted.
func NewAnalyzeHandler(analyzer ChannelAnalyzer, responseCache *cache.Cache, enqueuer SnapshotEnqueuer) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer: analyzer,
		cache:    responseCache,
		enqueuer: enqueuer,
	}
}

// HandleAnalyzeChannel processes POST /api/analyze-channel.
func (h *AnalyzeHandler) HandleAnalyzeChannel(c *gin.Context) {
	var req models.AnalysisRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("invalid request payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Detail: "Invalid request payload: " + err.Error(),
		})
		return
	}

	req.ApplyDefaults()

	if err := validation.ValidateAnalysisRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Detail: err.Error()})
		return
	}

	ctx := c.Request.Context()

	if h.cache.Enabled() {
		data, err := h.cache.Get(ctx, &req)
		if err != nil {
			logger.Log.Warn("cache lookup failed", zap.Error(err))
		}
		if data != nil {
			metrics.ObserveCache(true)
			logger.Log.Info("serving cached analysis", zap.String("key", cache.Key(&req)))
			c.Data(http.StatusOK, "application/json; charset=utf-8", data)
			return
		}
		metrics.ObserveCache(false)
	}

	start := time.Now()
	result, err := h.analyzer.Analyze(ctx, &req)
	if err != nil {
		h.handleError(c, err, time.Since(start))
		return
	}
	metrics.ObserveAnalysis("success", time.Since(start).Seconds())

	data, err := json.Marshal(result)
	if err != nil {
		logger.Log.Error("failed to serialize analysis result", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Detail: "Error analyzing channel: " + err.Error(),
		})
		return
	}

	if err := h.cache.Set(ctx, &req, data); err != nil {
		logger.Log.Warn("cache store failed", zap.Error(err))
	}

	h.persistSnapshot(&req, result, data)

	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

func (h *AnalyzeHandler) persistSnapshot(req *models.AnalysisRequest, result *models.AnalysisResult, data []byte) {
	if h.enqueuer == nil {
		return
	}

	payload, err := queue.NewStoreSnapshotPayload(
		result.ChannelInfo.ID,
		result.ChannelInfo.Name,
		req.VideoCount,
		req.SortOrder,
		req.Timezone,
		data,
	)
	if err != nil {
		logger.Log.Warn("snapshot payload rejected", zap.Error(err))
		return
	}

	if err := h.enqueuer.EnqueueStoreSnapshot(payload); err != nil {
		logger.Log.Warn("failed to enqueue snapshot",
			zap.String("channel_id", result.ChannelInfo.ID),
			zap.Error(err),
		)
	}
}

func (h *AnalyzeHandler) handleError(c *gin.Context, err error, elapsed time.Duration) {
	var tzErr *service.UnknownTimezoneError

	switch {
	case errors.Is(err, service.ErrInvalidChannelURL):
		metrics.ObserveAnalysis("invalid_url", elapsed.Seconds())
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Detail: "Invalid YouTube channel URL"})
	case errors.Is(err, service.ErrChannelNotFound):
		metrics.ObserveAnalysis("channel_not_found", elapsed.Seconds())
		c.JSON(http.StatusNotFound, models.ErrorResponse{Detail: "Channel not found or is private"})
	case errors.Is(err, service.ErrNoVideos):
		metrics.ObserveAnalysis("no_videos", elapsed.Seconds())
		c.JSON(http.StatusNotFound, models.ErrorResponse{Detail: "No videos found for this channel"})
	case errors.As(err, &tzErr):
		metrics.ObserveAnalysis("unknown_timezone", elapsed.Seconds())
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Detail: fmt.Sprintf("Unknown timezone: %s", tzErr.Name),
		})
	case errors.Is(err, service.ErrQuotaExhausted):
		metrics.ObserveAnalysis("quota_exhausted", elapsed.Seconds())
		c.JSON(http.StatusTooManyRequests, models.ErrorResponse{Detail: "YouTube API quota exhausted"})
	default:
		metrics.ObserveAnalysis("internal", elapsed.Seconds())
		logger.Log.Error("analysis failed",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
		)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Detail: "Error analyzing channel: " + err.Error(),
		})
	}
}
