package client

import (
	"strconv"

	"github.com/channel-lens/channel-analyzer-go/internal/models"
)

// NoGapSentinel is shown in the time-gap column of the final row.
const NoGapSentinel = "No gap"

// PlaceholderThumbnail is an inline image used whenever a video thumbnail is
// missing or fails to load. Being a data URI it never issues a network
// request, so a broken thumbnail cannot fail twice.
const PlaceholderThumbnail = "data:image/svg+xml;utf8," +
	"<svg xmlns='http://www.w3.org/2000/svg' width='120' height='90'>" +
	"<rect width='120' height='90' fill='%23ddd'/>" +
	"<text x='60' y='50' text-anchor='middle' fill='%23888' font-size='12'>no preview</text>" +
	"</svg>"

// DisplayRow is one rendered table row. All values are final display
// strings; numeric fields carry locale digit grouping.
type DisplayRow struct {
	VideoID         string
	Title           string
	Category        string
	UploadDateUTC   string
	UploadDateLocal string
	Duration        string
	Views           string
	Likes           string
	Comments        string
	EngagementRate  string
	TimeGap         string
	ThumbnailURL    string
}

// RenderRows maps an analysis result to display rows, one per video in
// order. The last row's time gap is always the sentinel, whatever gap text
// the backend supplied for that element.
func RenderRows(result *models.AnalysisResult) []DisplayRow {
	if result == nil {
		return nil
	}

	rows := make([]DisplayRow, 0, len(result.Videos))
	for i, v := range result.Videos {
		gap := v.TimeGapText
		if i == len(result.Videos)-1 {
			gap = NoGapSentinel
		}

		thumbnail := v.ThumbnailURL
		if thumbnail == "" {
			thumbnail = PlaceholderThumbnail
		}

		rows = append(rows, DisplayRow{
			VideoID:         v.ID,
			Title:           v.Title,
			Category:        v.Category,
			UploadDateUTC:   v.UploadDateUTC,
			UploadDateLocal: v.UploadDateLocal,
			Duration:        v.Duration,
			Views:           FormatGroupedInt(v.Views),
			Likes:           FormatGroupedInt(v.Likes),
			Comments:        FormatGroupedInt(v.Comments),
			EngagementRate:  FormatEngagementRate(v.EngagementRate),
			TimeGap:         gap,
			ThumbnailURL:    thumbnail,
		})
	}

	return rows
}

// FormatEngagementRate appends a percent sign without further rounding.
func FormatEngagementRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64) + "%"
}
