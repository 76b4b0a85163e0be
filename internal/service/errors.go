package service

import (
	"errors"
	"fmt"
)

// Sentinel errors mapped by handlers to client-facing failures.
var (
	ErrInvalidChannelURL = errors.New("invalid YouTube channel URL")
	ErrChannelNotFound   = errors.New("channel not found or is private")
	ErrNoVideos          = errors.New("no videos found for this channel")
	ErrQuotaExhausted    = errors.New("YouTube API quota exhausted")
)

// UnknownTimezoneError reports a request timezone the host has no zone data
// for.
type UnknownTimezoneError struct {
	Name string
}

func (e *UnknownTimezoneError) Error() string {
	return fmt.Sprintf("unknown timezone: %s", e.Name)
}
