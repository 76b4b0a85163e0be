package client

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/channel-lens/channel-analyzer-go/internal/models"
)

// ErrRequestInFlight rejects a submit while another request is pending.
var ErrRequestInFlight = errors.New("an analysis is already in progress")

// Phase is the controller's lifecycle position.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseFailure
)

// State is the immutable UI state record. Result and ErrorMessage are never
// both set.
type State struct {
	Phase        Phase
	Result       *models.AnalysisResult
	ErrorMessage string
}

// Analyzer is the backend call the controller drives.
type Analyzer interface {
	AnalyzeChannel(ctx context.Context, req *models.AnalysisRequest) (*models.AnalysisResult, error)
}

// Controller owns the single result/error slot and enforces the state
// transitions submit -> loading -> success | failure.
type Controller struct {
	mu      sync.Mutex
	state   State
	backend Analyzer
}

// NewController creates a Controller around a backend client.
func NewController(backend Analyzer) *Controller {
	return &Controller{backend: backend}
}

// State returns the current state record.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Submit validates the form and runs one analysis. A submit while a request
// is outstanding is rejected with ErrRequestInFlight and leaves the state
// untouched, even when the new form would fail validation. Validation
// failures and backend failures both clear any prior result and surface an
// error message instead.
func (c *Controller) Submit(ctx context.Context, form FormState) (State, error) {
	c.mu.Lock()
	if c.state.Phase == PhaseLoading {
		state := c.state
		c.mu.Unlock()
		return state, ErrRequestInFlight
	}

	req, err := BuildRequest(form)
	if err != nil {
		c.state = State{Phase: PhaseFailure, ErrorMessage: err.Error()}
		state := c.state
		c.mu.Unlock()
		return state, err
	}

	c.state = State{Phase: PhaseLoading}
	c.mu.Unlock()

	result, err := c.backend.AnalyzeChannel(ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = State{Phase: PhaseFailure, ErrorMessage: err.Error()}
		return c.state, err
	}
	c.state = State{Phase: PhaseSuccess, Result: result}
	return c.state, nil
}

// Rows renders the current result, or nil when there is none.
func (c *Controller) Rows() []DisplayRow {
	return RenderRows(c.State().Result)
}

// ExportCSV writes the current result as CSV; a no-op without one.
func (c *Controller) ExportCSV(w io.Writer) error {
	return ExportCSV(c.State().Result, w)
}

// ExportJSON writes the current result as JSON; a no-op without one.
func (c *Controller) ExportJSON(w io.Writer) error {
	return ExportJSON(c.State().Result, w)
}
