package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/channel-lens/channel-analyzer-go/internal/cache"
)

func TestHealthHandler_Root(t *testing.T) {
	h := NewHealthHandler(nil, cache.New("", time.Minute))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)

	h.Root(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["message"] != "YouTube Channel Analyzer API" {
		t.Errorf("message = %q", resp["message"])
	}
}

func TestHealthHandler_LivenessProbe(t *testing.T) {
	h := NewHealthHandler(nil, cache.New("", time.Minute))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/health/live", nil)

	h.LivenessProbe(c)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestHealthHandler_ReadinessProbe_NoDependencies(t *testing.T) {
	h := NewHealthHandler(nil, cache.New("", time.Minute))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/health/ready", nil)

	h.ReadinessProbe(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["cache"] != "disabled" {
		t.Errorf("cache = %v, want disabled", resp["cache"])
	}
}
