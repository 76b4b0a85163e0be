package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/channel-lens/channel-analyzer-go/internal/db"
	"github.com/channel-lens/channel-analyzer-go/internal/db/repository"
	"github.com/channel-lens/channel-analyzer-go/internal/models"
	"github.com/channel-lens/channel-analyzer-go/pkg/logger"
)

const (
	defaultLimit = 50
	maxLimit     = 1000
)

// HistoryHandler serves stored analysis snapshots.
type HistoryHandler struct {
	repo repository.SnapshotRepository
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(repo repository.SnapshotRepository) *HistoryHandler {
	return &HistoryHandler{repo: repo}
}

// HandleList processes GET /api/analyses.
func (h *HistoryHandler) HandleList(c *gin.Context) {
	filters := &repository.SnapshotFilters{
		ChannelID: c.Query("channel_id"),
		Limit:     parseLimit(c),
		Offset:    parseOffset(c),
	}

	snapshots, total, err := h.repo.List(c.Request.Context(), filters)
	if err != nil {
		logger.Log.Error("failed to list analyses", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Detail: "Failed to list analyses",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"analyses": snapshots,
		"count":    len(snapshots),
		"total":    total,
		"limit":    filters.Limit,
		"offset":   filters.Offset,
	})
}

// HandleGet processes GET /api/analyses/:id.
func (h *HistoryHandler) HandleGet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Detail: "Invalid analysis ID",
		})
		return
	}

	snapshot, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if db.IsNotFound(err) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Detail: "Analysis not found",
			})
			return
		}
		logger.Log.Error("failed to get analysis", zap.Error(err), zap.String("id", id.String()))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Detail: "Failed to retrieve analysis",
		})
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

func parseLimit(c *gin.Context) int {
	limitStr := c.Query("limit")
	if limitStr == "" {
		return defaultLimit
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

func parseOffset(c *gin.Context) int {
	offsetStr := c.Query("offset")
	if offsetStr == "" {
		return 0
	}

	offset, err := strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		return 0
	}
	return offset
}
