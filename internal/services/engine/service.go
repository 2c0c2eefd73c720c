package engine

import (
	"context"
	"errors"

	"github.com/probelab/genmock/internal/gemini"
)

// Service defines the mock response engine operations.
type Service interface {
	// Generate produces one complete mock response after the simulated
	// inference latency has elapsed.
	Generate(ctx context.Context, model string, req *gemini.GenerateContentRequest) (*gemini.GenerateContentResponse, error)

	// Stream produces the same response incrementally: one growing
	// snapshot per word, scheduled against the stream start time. The
	// emit callback is invoked once per snapshot, in word order.
	Stream(ctx context.Context, model string, req *gemini.GenerateContentRequest, emit func(*gemini.GenerateContentResponse) error) error

	// CountTokens estimates the token count of the request contents.
	CountTokens(req *gemini.GenerateContentRequest) int
}

// ErrMissingContents is returned when the payload lacks a usable
// contents array. Handlers map it to INVALID_ARGUMENT.
var ErrMissingContents = errors.New("contents is required and must contain at least one turn")

// ValidateRequest confirms the request carries at least one turn. It is
// a pure check with no side effects; no other field is mandatory.
func ValidateRequest(req *gemini.GenerateContentRequest) error {
	if req == nil || len(req.Contents) == 0 {
		return ErrMissingContents
	}
	return nil
}
