// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs the staged content generation flow: harvest ten
// references, synthesize the body sections, synthesize a title, then
// assemble everything into the output record.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/journal-engine/internal/brand"
	"github.com/pdiddy/journal-engine/internal/llm"
	"github.com/pdiddy/journal-engine/pkg/types"
)

// RefCount is the number of references every article carries.
const RefCount = 10

// regenPause is the wait before regenerating after a malformed model
// response. Package-level var so tests can shrink it.
var regenPause = 2 * time.Second

// parseRetries is how many model responses may be malformed before the run
// fails terminally.
const parseRetries = 3

// Generator drives the model-backed stages.
type Generator struct {
	Provider   llm.Provider
	MaxRetries int
	Logger     *zap.Logger
}

// generateParsed calls the model with the prompt, extracts and decodes the
// JSON object, and applies the caller's shape check. A malformed or
// wrong-shaped response triggers a fresh generation, up to parseRetries
// attempts. Transient provider failures are retried inside each attempt.
func (g *Generator) generateParsed(ctx context.Context, prompt string, decode func(raw string) error) error {
	var lastErr error
	for attempt := 1; attempt <= parseRetries; attempt++ {
		text, err := llm.GenerateWithRetry(ctx, g.Provider, prompt, g.MaxRetries)
		if err != nil {
			return err
		}
		raw, err := llm.ExtractJSON(text)
		if err == nil {
			err = decode(raw)
		}
		if err == nil {
			return nil
		}
		lastErr = err
		g.Logger.Warn("malformed model response, regenerating",
			zap.Int("attempt", attempt),
			zap.Error(err))
		if attempt < parseRetries {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(regenPause):
			}
		}
	}
	return fmt.Errorf("model response stayed malformed after %d attempts: %w", parseRetries, lastErr)
}

// unwrapContent decodes raw JSON that is either {"content": {...}} or the
// bare inner object, into dst.
func unwrapContent(raw string, dst any) error {
	var wrapped struct {
		Content json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal([]byte(raw), &wrapped); err != nil {
		return fmt.Errorf("parsing model JSON: %w", err)
	}
	inner := wrapped.Content
	if len(inner) == 0 {
		inner = json.RawMessage(raw)
	}
	if err := json.Unmarshal(inner, dst); err != nil {
		return fmt.Errorf("parsing content object: %w", err)
	}
	return nil
}

// HarvestReferences runs the first stage: exactly RefCount bibliographic
// entries keyed C001..C010.
func (g *Generator) HarvestReferences(ctx context.Context, sub *types.SubmissionRecord, p brand.Profile) (map[string]types.RawReference, error) {
	prompt, err := renderReferencesPrompt(sub, p)
	if err != nil {
		return nil, err
	}

	var refs map[string]types.RawReference
	err = g.generateParsed(ctx, prompt, func(raw string) error {
		refs = nil
		if err := unwrapContent(raw, &refs); err != nil {
			return err
		}
		if len(refs) != RefCount {
			return fmt.Errorf("expected %d references, got %d", RefCount, len(refs))
		}
		for i := 1; i <= RefCount; i++ {
			key := types.RefKey(i)
			ref, ok := refs[key]
			if !ok {
				return fmt.Errorf("missing reference key %s", key)
			}
			if strings.TrimSpace(ref.Title) == "" {
				return fmt.Errorf("reference %s has no title", key)
			}
			if len(ref.Authors) == 0 {
				return fmt.Errorf("reference %s has no authors", key)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("harvesting references: %w", err)
	}
	return refs, nil
}

// SynthesizeSections runs the second stage: the long-form body sections,
// with citation markers keyed to the harvested reference order.
func (g *Generator) SynthesizeSections(ctx context.Context, refs map[string]types.RawReference) (types.Sections, error) {
	refsJSON, err := json.Marshal(map[string]any{"content": refs})
	if err != nil {
		return types.Sections{}, fmt.Errorf("encoding references for prompt: %w", err)
	}
	prompt, err := renderSectionsPrompt(string(refsJSON))
	if err != nil {
		return types.Sections{}, err
	}

	var sections types.Sections
	err = g.generateParsed(ctx, prompt, func(raw string) error {
		sections = types.Sections{}
		if err := unwrapContent(raw, &sections); err != nil {
			return err
		}
		for name, text := range map[string]string{
			"introduction": sections.Introduction,
			"description":  sections.Description,
			"summary":      sections.Summary,
			"abstract":     sections.Abstract,
			"discussion":   sections.Discussion,
			"keywords":     sections.Keywords,
		} {
			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("section %s is empty", name)
			}
		}
		return nil
	})
	if err != nil {
		return types.Sections{}, fmt.Errorf("synthesizing sections: %w", err)
	}
	return sections, nil
}

// SynthesizeTitle runs the third stage. The title loses a single trailing
// period; brands with RecapTitle get each colon-delimited segment
// re-capitalized independently.
func (g *Generator) SynthesizeTitle(ctx context.Context, summary string, p brand.Profile) (string, error) {
	prompt, err := renderTitlePrompt(summary)
	if err != nil {
		return "", err
	}
	text, err := llm.GenerateWithRetry(ctx, g.Provider, prompt, g.MaxRetries)
	if err != nil {
		return "", fmt.Errorf("synthesizing title: %w", err)
	}

	title := strings.TrimSpace(text)
	title = strings.TrimSuffix(title, ".")
	if p.RecapTitle {
		title = recapitalize(title)
	}
	return title, nil
}

// recapitalize capitalizes each ": "-delimited segment of a title
// independently, lowering the rest of the segment.
func recapitalize(title string) string {
	segments := strings.Split(title, ": ")
	for i, seg := range segments {
		segments[i] = capitalizeSentence(seg)
	}
	return strings.Join(segments, ": ")
}

func capitalizeSentence(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
