// Package models defines the persistence records for analysis snapshots.
package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AnalysisSnapshot is one stored channel analysis. Result holds the full
// AnalysisResult JSON exactly as it was returned to the caller.
type AnalysisSnapshot struct {
	ID          uuid.UUID       `json:"id"`
	ChannelID   string          `json:"channel_id"`
	ChannelName string          `json:"channel_name"`
	VideoCount  int             `json:"video_count"`
	SortOrder   string          `json:"sort_order"`
	Timezone    string          `json:"timezone"`
	Result      json.RawMessage `json:"result"`
	CreatedAt   time.Time       `json:"created_at"`
}
