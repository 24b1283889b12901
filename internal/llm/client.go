package llm

import (
	"context"
	"errors"
	"fmt"
)

// Options are the sampling parameters for a single generation call.
type Options struct {
	Temperature     float32
	TopK            int
	TopP            float32
	MaxOutputTokens int
}

// Client issues exactly one generation request per Generate call.
type Client interface {
	Generate(ctx context.Context, prompt string, opts Options) (string, error)
}

var (
	// ErrMissingCredential means no API key is configured; callers fall
	// back to the offline resolver instead of failing the request.
	ErrMissingCredential = errors.New("generation API credential is not set")

	// ErrNoCandidates means the upstream answered but produced nothing.
	ErrNoCandidates = errors.New("no response generated from model")

	// ErrEmptyResponse means a candidate existed but carried no text.
	ErrEmptyResponse = errors.New("empty response from model")
)

// RequestError is a non-success upstream status, carried with whatever
// message the upstream included.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API request failed: %d", e.StatusCode)
	}
	return fmt.Sprintf("API request failed: %d - %s", e.StatusCode, e.Message)
}
