package client

import (
	"errors"
	"testing"
)

func TestBuildRequest(t *testing.T) {
	form := FormState{
		ChannelURL: "  https://youtube.com/@demo  ",
		VideoCount: 5,
		SortOrder:  "newest",
		Timezone:   "UTC",
	}

	req, err := BuildRequest(form)
	if err != nil {
		t.Fatalf("BuildRequest() error = %v", err)
	}

	if req.ChannelURL != "https://youtube.com/@demo" {
		t.Errorf("channel URL = %q, want trimmed", req.ChannelURL)
	}
	if req.VideoCount != 5 || req.SortOrder != "newest" || req.Timezone != "UTC" {
		t.Errorf("fields not passed through: %+v", req)
	}
}

func TestBuildRequest_MissingChannelURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"empty", ""},
		{"whitespace only", "   \t  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := BuildRequest(FormState{ChannelURL: tt.url})
			if !errors.Is(err, ErrMissingChannelURL) {
				t.Errorf("error = %v, want ErrMissingChannelURL", err)
			}
			if req != nil {
				t.Errorf("request = %+v, want nil", req)
			}
		})
	}
}
