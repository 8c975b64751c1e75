// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package llm wraps the text-completion backends used by the generation
// pipeline. Both backends take a plain prompt and return the model's text;
// everything about prompt construction and response parsing lives with the
// callers.
package llm

import (
	"context"
	"fmt"
	"time"
)

// Provider is a text-completion backend.
type Provider interface {
	// Name identifies the backend in logs and errors.
	Name() string

	// Generate sends one prompt and returns the model's text response.
	Generate(ctx context.Context, prompt string) (string, error)
}

// retryBackoff is the pause between retry attempts. Package-level var so
// tests can shrink it.
var retryBackoff = 3 * time.Second

// GenerateWithRetry calls the provider up to maxRetries times, pausing a
// fixed interval between attempts. It returns the first success or the last
// error.
func GenerateWithRetry(ctx context.Context, p Provider, prompt string, maxRetries int) (string, error) {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		text, err := p.Generate(ctx, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if attempt < maxRetries {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(retryBackoff):
			}
		}
	}
	return "", fmt.Errorf("%s: %d attempts failed: %w", p.Name(), maxRetries, lastErr)
}
