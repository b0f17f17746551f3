package ai

import (
	"context"
	"errors"
)

// Client abstracts generative text providers.
type Client interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("text generation not configured")

// PlaceholderClient is a stub implementation used when no provider credentials exist.
type PlaceholderClient struct{}

// GenerateText returns ErrNotConfigured.
func (PlaceholderClient) GenerateText(context.Context, string) (string, error) {
	return "", ErrNotConfigured
}
