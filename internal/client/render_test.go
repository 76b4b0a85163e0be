package client

import (
	"strings"
	"testing"

	"github.com/channel-lens/channel-analyzer-go/internal/models"
)

func sampleVideos() []models.VideoRecord {
	return []models.VideoRecord{
		{
			ID:             "vid1",
			Title:          "Newest upload",
			Category:       "Education",
			Views:          1234567,
			Likes:          45000,
			Comments:       1200,
			EngagementRate: 3.74,
			TimeGapText:    "",
			ThumbnailURL:   "https://img.youtube.com/vi/vid1/hqdefault.jpg",
		},
		{
			ID:             "vid2",
			Title:          "Middle upload",
			Views:          500,
			EngagementRate: 1,
			TimeGapText:    "2 days",
			ThumbnailURL:   "https://img.youtube.com/vi/vid2/hqdefault.jpg",
		},
		{
			ID:             "vid3",
			Title:          "Oldest upload",
			Views:          200,
			EngagementRate: 11.25,
			TimeGapText:    "37 days",
		},
	}
}

func TestRenderRows(t *testing.T) {
	result := &models.AnalysisResult{Videos: sampleVideos()}

	rows := RenderRows(result)
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}

	// Input order preserved.
	if rows[0].VideoID != "vid1" || rows[2].VideoID != "vid3" {
		t.Errorf("order not preserved: %s, %s", rows[0].VideoID, rows[2].VideoID)
	}

	// Middle row keeps the backend gap text verbatim; the last row always
	// shows the sentinel even though the backend supplied "37 days".
	if rows[1].TimeGap != "2 days" {
		t.Errorf("middle gap = %q, want %q", rows[1].TimeGap, "2 days")
	}
	if rows[2].TimeGap != NoGapSentinel {
		t.Errorf("last gap = %q, want %q", rows[2].TimeGap, NoGapSentinel)
	}

	if rows[0].Views != "1,234,567" {
		t.Errorf("views = %q, want grouped digits", rows[0].Views)
	}
	if rows[0].Likes != "45,000" || rows[0].Comments != "1,200" {
		t.Errorf("likes/comments = %q/%q", rows[0].Likes, rows[0].Comments)
	}
}

func TestRenderRows_EngagementRate(t *testing.T) {
	rows := RenderRows(&models.AnalysisResult{Videos: sampleVideos()})

	// Backend-provided precision is preserved, nothing more appended.
	if rows[0].EngagementRate != "3.74%" {
		t.Errorf("engagement = %q, want %q", rows[0].EngagementRate, "3.74%")
	}
	if rows[1].EngagementRate != "1%" {
		t.Errorf("engagement = %q, want %q", rows[1].EngagementRate, "1%")
	}
	if rows[2].EngagementRate != "11.25%" {
		t.Errorf("engagement = %q, want %q", rows[2].EngagementRate, "11.25%")
	}
}

func TestRenderRows_ThumbnailFallback(t *testing.T) {
	rows := RenderRows(&models.AnalysisResult{Videos: sampleVideos()})

	if rows[0].ThumbnailURL != "https://img.youtube.com/vi/vid1/hqdefault.jpg" {
		t.Errorf("thumbnail = %q, want original URL", rows[0].ThumbnailURL)
	}

	// Missing thumbnail gets the placeholder, which is inline data and can
	// never point back at a broken URL.
	if rows[2].ThumbnailURL != PlaceholderThumbnail {
		t.Errorf("thumbnail = %q, want placeholder", rows[2].ThumbnailURL)
	}
	if !strings.HasPrefix(PlaceholderThumbnail, "data:") {
		t.Errorf("placeholder must be inline data, got %q", PlaceholderThumbnail)
	}
}

func TestRenderRows_SingleVideo(t *testing.T) {
	result := &models.AnalysisResult{
		Videos: []models.VideoRecord{{ID: "only", TimeGapText: "5 hours"}},
	}

	rows := RenderRows(result)
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].TimeGap != NoGapSentinel {
		t.Errorf("gap = %q, want sentinel", rows[0].TimeGap)
	}
}

func TestRenderRows_NilAndEmpty(t *testing.T) {
	if rows := RenderRows(nil); rows != nil {
		t.Errorf("RenderRows(nil) = %v, want nil", rows)
	}
	if rows := RenderRows(&models.AnalysisResult{}); len(rows) != 0 {
		t.Errorf("RenderRows(empty) = %d rows, want 0", len(rows))
	}
}
