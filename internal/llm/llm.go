package llm

import (
	"context"
	"errors"
)

// Upstream failure taxonomy. Every call is attempted exactly once; these are
// terminal for the current request.
var (
	ErrNotConfigured = errors.New("API key not configured")
	ErrAuth          = errors.New("invalid API key")
	ErrRateLimited   = errors.New("try again later")
	ErrBadRequest    = errors.New("invalid request format")
	ErrUpstream      = errors.New("failed to get AI feedback")
)

// Client generates a critique for a fully built prompt.
type Client interface {
	Roast(ctx context.Context, prompt string) (string, error)
}
