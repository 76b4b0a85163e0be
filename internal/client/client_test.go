package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/channel-lens/channel-analyzer-go/internal/models"
)

func TestAnalyzeChannel_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/analyze-channel" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var req models.AnalysisRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if req.ChannelURL != "https://youtube.com/@demo" {
			t.Errorf("channel_url = %q", req.ChannelURL)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(&models.AnalysisResult{
			ChannelInfo: models.ChannelInfo{ID: "UCdemo", Name: "Demo"},
			Videos:      []models.VideoRecord{{ID: "vid1"}},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	result, err := c.AnalyzeChannel(context.Background(), &models.AnalysisRequest{
		ChannelURL: "https://youtube.com/@demo",
		VideoCount: 5,
		SortOrder:  "newest",
		Timezone:   "UTC",
	})
	if err != nil {
		t.Fatalf("AnalyzeChannel() error = %v", err)
	}
	if result.ChannelInfo.ID != "UCdemo" || len(result.Videos) != 1 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestAnalyzeChannel_ErrorDetailVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(models.ErrorResponse{Detail: "channel not found"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.AnalyzeChannel(context.Background(), &models.AnalysisRequest{ChannelURL: "x"})
	if err == nil {
		t.Fatal("expected error")
	}

	reqErr, ok := AsRequestError(err)
	if !ok {
		t.Fatalf("error type = %T", err)
	}
	if reqErr.Detail != "channel not found" {
		t.Errorf("detail = %q, want %q", reqErr.Detail, "channel not found")
	}
	if reqErr.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", reqErr.StatusCode)
	}
}

func TestAnalyzeChannel_GenericFallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.AnalyzeChannel(context.Background(), &models.AnalysisRequest{ChannelURL: "x"})

	reqErr, ok := AsRequestError(err)
	if !ok {
		t.Fatalf("error type = %T", err)
	}
	if reqErr.Detail != "failed to analyze channel" {
		t.Errorf("detail = %q, want generic fallback", reqErr.Detail)
	}
}

func TestAnalyzeChannel_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := New(srv.URL)
	_, err := c.AnalyzeChannel(context.Background(), &models.AnalysisRequest{ChannelURL: "x"})

	reqErr, ok := AsRequestError(err)
	if !ok {
		t.Fatalf("error type = %T", err)
	}
	if reqErr.Detail != "failed to analyze channel" {
		t.Errorf("detail = %q, want generic fallback", reqErr.Detail)
	}
	if reqErr.Unwrap() == nil {
		t.Error("underlying transport error not preserved")
	}
}
