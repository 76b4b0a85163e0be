package queue

import (
	"encoding/json"
	"fmt"

	"github.com/channel-lens/channel-analyzer-go/internal/db/models"
)

// TypeStoreSnapshot is the task type for persisting a completed analysis.
const TypeStoreSnapshot = "analysis:store"

// StoreSnapshotPayload carries a finished analysis to the persistence worker.
// Result is the serialized AnalysisResult exactly as returned to the caller.
type StoreSnapshotPayload struct {
	ChannelID   string          `json:"channel_id"`
	ChannelName string          `json:"channel_name"`
	VideoCount  int             `json:"video_count"`
	SortOrder   string          `json:"sort_order"`
	Timezone    string          `json:"timezone"`
	Result      json.RawMessage `json:"result"`
}

// NewStoreSnapshotPayload validates and builds a snapshot task payload.
func NewStoreSnapshotPayload(channelID, channelName string, videoCount int, sortOrder, timezone string, result []byte) (*StoreSnapshotPayload, error) {
	if channelID == "" {
		return nil, fmt.Errorf("channel ID is required")
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("result payload is required")
	}

	return &StoreSnapshotPayload{
		ChannelID:   channelID,
		ChannelName: channelName,
		VideoCount:  videoCount,
		SortOrder:   sortOrder,
		Timezone:    timezone,
		Result:      result,
	}, nil
}

// snapshot converts the payload to its persistence record.
func (p *StoreSnapshotPayload) snapshot() *models.AnalysisSnapshot {
	return &models.AnalysisSnapshot{
		ChannelID:   p.ChannelID,
		ChannelName: p.ChannelName,
		VideoCount:  p.VideoCount,
		SortOrder:   p.SortOrder,
		Timezone:    p.Timezone,
		Result:      p.Result,
	}
}

// Marshal serializes the payload to JSON.
func (p *StoreSnapshotPayload) Marshal() ([]byte, error) {
	return json.Marshal(p)
}

// UnmarshalStoreSnapshotPayload deserializes JSON to a payload.
func UnmarshalStoreSnapshotPayload(data []byte) (*StoreSnapshotPayload, error) {
	var payload StoreSnapshotPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}
	return &payload, nil
}
