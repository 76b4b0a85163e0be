// Command analyze submits one channel analysis to a running analyzer server
// and prints the resulting table, optionally exporting it to CSV or JSON.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/channel-lens/channel-analyzer-go/internal/client"
)

func main() {
	var (
		serverURL  string
		channelURL string
		videoCount int
		sortOrder  string
		timezone   string
		csvOut     bool
		jsonOut    bool
		outDir     string
	)

	flag.StringVar(&serverURL, "server", "http://localhost:8080", "Analyzer server base URL")
	flag.StringVar(&channelURL, "url", "", "YouTube channel URL to analyze")
	flag.IntVar(&videoCount, "count", 20, "Number of videos to analyze (5, 10, 20 or 50)")
	flag.StringVar(&sortOrder, "sort", "newest", "Sort order: newest or oldest")
	flag.StringVar(&timezone, "timezone", "UTC", "IANA timezone for local upload dates")
	flag.BoolVar(&csvOut, "csv", false, "Export the result as CSV")
	flag.BoolVar(&jsonOut, "json", false, "Export the result as JSON")
	flag.StringVar(&outDir, "out", ".", "Directory for exported files")
	flag.Parse()

	controller := client.NewController(client.New(serverURL))

	state, err := controller.Submit(context.Background(), client.FormState{
		ChannelURL: channelURL,
		VideoCount: videoCount,
		SortOrder:  sortOrder,
		Timezone:   timezone,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", state.ErrorMessage)
		os.Exit(1)
	}

	result := state.Result
	info := result.ChannelInfo

	fmt.Printf("Channel:       %s\n", info.Name)
	fmt.Printf("Subscribers:   %s\n", info.SubscriberCount)
	fmt.Printf("Created:       %s\n", info.CreationDate)
	fmt.Printf("Category:      %s\n", info.PrimaryCategory)
	fmt.Printf("Monetization:  %s\n", info.MonetizationStatus)
	fmt.Printf("Total views:   %s\n", client.FormatGroupedInt(info.TotalViews))
	fmt.Printf("Total uploads: %s\n", client.FormatGroupedInt(info.TotalUploads))
	fmt.Printf("Uploads (30d/90d): %d / %d\n\n",
		info.UploadFrequency.Last30Days, info.UploadFrequency.Last90Days)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TITLE\tUPLOADED (LOCAL)\tDURATION\tVIEWS\tLIKES\tCOMMENTS\tENGAGEMENT\tGAP")
	for _, row := range controller.Rows() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			truncate(row.Title, 48),
			row.UploadDateLocal,
			row.Duration,
			row.Views,
			row.Likes,
			row.Comments,
			row.EngagementRate,
			row.TimeGap,
		)
	}
	w.Flush()

	fmt.Printf("\nTotal likes: %s   Total comments: %s   Avg views/video: %.0f\n",
		client.FormatGroupedInt(result.TotalLikes),
		client.FormatGroupedInt(result.TotalComments),
		result.AvgViewsPerVideo,
	)

	if csvOut {
		path, err := client.SaveCSV(result, outDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "CSV export failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("CSV written to %s\n", path)
	}

	if jsonOut {
		path, err := client.SaveJSON(result, outDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "JSON export failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("JSON written to %s\n", path)
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
