// Package validation checks analysis request parameters before any API
// quota is spent.
package validation

import (
	"fmt"

	"github.com/channel-lens/channel-analyzer-go/internal/models"
)

// ValidateAnalysisRequest checks the option fields of a request. The channel
// URL itself is resolved later against the provider; only the enumerated
// options are validated here. Defaults must already be applied.
func ValidateAnalysisRequest(req *models.AnalysisRequest) error {
	validCount := false
	for _, n := range models.VideoCounts {
		if req.VideoCount == n {
			validCount = true
			break
		}
	}
	if !validCount {
		return fmt.Errorf("video_count must be one of 5, 10, 20 or 50")
	}

	if req.SortOrder != models.SortNewest && req.SortOrder != models.SortOldest {
		return fmt.Errorf("sort_order must be 'newest' or 'oldest'")
	}

	if req.Timezone == "" {
		return fmt.Errorf("timezone must not be empty")
	}

	return nil
}
