// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/journal-engine/internal/httputil"
	"github.com/pdiddy/journal-engine/pkg/types"
)

// googleAPIURL is the Google translate web endpoint. Package-level var for
// test substitution.
var googleAPIURL = "https://translate.googleapis.com/translate_a/single"

// Google translates through the free Google translate web endpoint.
type Google struct {
	Client *http.Client
}

// NewGoogle builds a Google translator with the configured HTTP timeout.
func NewGoogle(cfg types.TranslateConfig) *Google {
	return &Google{Client: &http.Client{Timeout: cfg.Timeout}}
}

// Translate implements Translator. The endpoint answers with nested JSON
// arrays; the first element holds the translated segments.
func (g *Google) Translate(ctx context.Context, text, targetLang string) (string, error) {
	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", "auto")
	q.Set("tl", targetLang)
	q.Set("dt", "t")
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, googleAPIURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	client := g.Client
	if client == nil {
		client = http.DefaultClient
	}
	// The free endpoint rate-limits aggressively; back off on 429 before
	// giving up.
	resp, err := httputil.DoWithRetry(ctx, client, req, 2)
	if err != nil {
		return "", fmt.Errorf("calling translation API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("translation API returned %d: %s", resp.StatusCode, string(body))
	}

	var payload []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decoding translation response: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("empty translation response")
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", fmt.Errorf("decoding translation segments: %w", err)
	}

	var sb strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		var part string
		if err := json.Unmarshal(seg[0], &part); err != nil {
			continue
		}
		sb.WriteString(part)
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("translation response had no text")
	}
	return sb.String(), nil
}
