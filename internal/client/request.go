package client

import (
	"errors"
	"strings"

	"github.com/channel-lens/channel-analyzer-go/internal/models"
)

// ErrMissingChannelURL is returned when the channel URL is blank after
// trimming. No request may be issued in that case.
var ErrMissingChannelURL = errors.New("please enter a YouTube channel URL")

// FormState holds the raw form field values as entered.
type FormState struct {
	ChannelURL string
	VideoCount int
	SortOrder  string
	Timezone   string
}

// BuildRequest validates the form and produces the request payload. Fields
// other than the channel URL pass through untouched.
func BuildRequest(form FormState) (*models.AnalysisRequest, error) {
	url := strings.TrimSpace(form.ChannelURL)
	if url == "" {
		return nil, ErrMissingChannelURL
	}

	return &models.AnalysisRequest{
		ChannelURL: url,
		VideoCount: form.VideoCount,
		SortOrder:  form.SortOrder,
		Timezone:   form.Timezone,
	}, nil
}
