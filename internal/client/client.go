// Package client implements the analyzer's consumer-side workflow as a
// reusable library: request validation, local-time formatting, display row
// rendering and CSV/JSON export of analysis results.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/channel-lens/channel-analyzer-go/internal/models"
)

// genericFailure is surfaced when the backend gives no usable detail.
const genericFailure = "failed to analyze channel"

// RequestError is any failure of the analyze call: transport errors,
// non-success statuses and malformed responses. Detail is the user-visible
// message.
type RequestError struct {
	StatusCode int
	Detail     string
	Err        error
}

func (e *RequestError) Error() string {
	return e.Detail
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Client talks to the analyzer backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// AnalyzeChannel submits one analysis request. On a non-success status the
// returned error carries the backend's detail message verbatim when present.
func (c *Client) AnalyzeChannel(ctx context.Context, req *models.AnalysisRequest) (*models.AnalysisResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, &RequestError{Detail: genericFailure, Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/analyze-channel", bytes.NewReader(body))
	if err != nil {
		return nil, &RequestError{Detail: genericFailure, Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &RequestError{Detail: genericFailure, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp models.ErrorResponse
		detail := genericFailure
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Detail != "" {
			detail = errResp.Detail
		}
		return nil, &RequestError{StatusCode: resp.StatusCode, Detail: detail}
	}

	var result models.AnalysisResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &RequestError{StatusCode: resp.StatusCode, Detail: genericFailure, Err: err}
	}

	return &result, nil
}

// AsRequestError extracts a RequestError from an error chain.
func AsRequestError(err error) (*RequestError, bool) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr, true
	}
	return nil, false
}
