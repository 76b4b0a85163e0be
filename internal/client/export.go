package client

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/channel-lens/channel-analyzer-go/internal/models"
)

// csvHeader is the fixed export column order.
var csvHeader = []string{
	"Title",
	"Video ID",
	"Category",
	"Upload Date (UTC)",
	"Upload Date (Local)",
	"Duration",
	"Views",
	"Likes",
	"Comments",
	"Engagement Rate %",
	"Time Gap",
}

// ExportCSV writes the result as CSV. Free-text fields (title, category,
// the upload date strings and the time gap) are always double-quoted with
// internal quotes doubled; numeric fields are emitted bare. A nil result is
// a guarded no-op.
func ExportCSV(result *models.AnalysisResult, w io.Writer) error {
	if result == nil {
		return nil
	}

	if _, err := io.WriteString(w, strings.Join(csvHeader, ",")+"\n"); err != nil {
		return err
	}

	for _, v := range result.Videos {
		fields := []string{
			quoteCSV(v.Title),
			v.ID,
			quoteCSV(v.Category),
			quoteCSV(v.UploadDateUTC),
			quoteCSV(v.UploadDateLocal),
			v.Duration,
			strconv.FormatInt(v.Views, 10),
			strconv.FormatInt(v.Likes, 10),
			strconv.FormatInt(v.Comments, 10),
			strconv.FormatFloat(v.EngagementRate, 'f', -1, 64),
			quoteCSV(v.TimeGapText),
		}
		if _, err := io.WriteString(w, strings.Join(fields, ",")+"\n"); err != nil {
			return err
		}
	}

	return nil
}

// quoteCSV wraps a value in double quotes, doubling internal quotes.
func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// ExportJSON writes the complete result as pretty-printed JSON with two
// space indentation. A nil result is a guarded no-op.
func ExportJSON(result *models.AnalysisResult, w io.Writer) error {
	if result == nil {
		return nil
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}

	_, err = w.Write(append(data, '\n'))
	return err
}

// CSVFileName derives the download name for a CSV export.
func CSVFileName(result *models.AnalysisResult) string {
	return fmt.Sprintf("%s_analysis.csv", result.ChannelInfo.Name)
}

// JSONFileName derives the download name for a JSON export.
func JSONFileName(result *models.AnalysisResult) string {
	return fmt.Sprintf("%s_analysis.json", result.ChannelInfo.Name)
}

// SaveCSV writes the CSV export to dir and returns the file path. The file
// is closed before returning, whatever the outcome.
func SaveCSV(result *models.AnalysisResult, dir string) (string, error) {
	if result == nil {
		return "", nil
	}
	return saveExport(filepath.Join(dir, CSVFileName(result)), func(w io.Writer) error {
		return ExportCSV(result, w)
	})
}

// SaveJSON writes the JSON export to dir and returns the file path.
func SaveJSON(result *models.AnalysisResult, dir string) (string, error) {
	if result == nil {
		return "", nil
	}
	return saveExport(filepath.Join(dir, JSONFileName(result)), func(w io.Writer) error {
		return ExportJSON(result, w)
	})
}

func saveExport(path string, write func(io.Writer) error) (string, error) {
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := write(f); err != nil {
		return "", err
	}
	return path, nil
}
