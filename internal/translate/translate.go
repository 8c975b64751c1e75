// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package translate renders an article's long-form text into another
// language. Translation is best effort: the provider may fail, and a failed
// chunk falls back to the original text instead of failing the run.
package translate

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/journal-engine/internal/brand"
	"github.com/pdiddy/journal-engine/pkg/types"
)

// Translator converts text into the target language.
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}

// retryPause is the wait before the single retry after a failed provider
// call. Package-level var so tests can shrink it.
var retryPause = 2 * time.Second

// Service chunks, translates, and reassembles text.
type Service struct {
	Translator  Translator
	MaxChunkLen int
	Logger      *zap.Logger
}

// NewService builds a Service from config.
func NewService(t Translator, cfg types.TranslateConfig, logger *zap.Logger) *Service {
	return &Service{Translator: t, MaxChunkLen: cfg.MaxChunkLen, Logger: logger}
}

// Text translates one string. Long text is split on paragraph boundaries
// into chunks under the provider's character ceiling, translated chunk by
// chunk, and rejoined. Provider failure triggers exactly one retry; if that
// also fails the original text is returned unchanged.
func (s *Service) Text(ctx context.Context, text, targetLang string) string {
	if text == "" {
		return ""
	}
	if len(text) <= s.MaxChunkLen {
		return s.safeTranslate(ctx, text, targetLang)
	}
	chunks := SplitChunks(text, s.MaxChunkLen)
	translated := make([]string, len(chunks))
	for i, chunk := range chunks {
		translated[i] = s.safeTranslate(ctx, chunk, targetLang)
	}
	return strings.Join(translated, "\n\n")
}

func (s *Service) safeTranslate(ctx context.Context, text, targetLang string) string {
	out, err := s.Translator.Translate(ctx, text, targetLang)
	if err == nil {
		return out
	}
	s.Logger.Warn("translation failed, retrying once",
		zap.String("lang", targetLang),
		zap.Error(err))
	select {
	case <-ctx.Done():
		return text
	case <-time.After(retryPause):
	}
	out, err = s.Translator.Translate(ctx, text, targetLang)
	if err != nil {
		s.Logger.Warn("translation failed again, keeping original text",
			zap.String("lang", targetLang),
			zap.Error(err))
		return text
	}
	return out
}

// SplitChunks splits text on blank lines into chunks no longer than max,
// keeping paragraphs intact. A single paragraph above max becomes its own
// chunk; the provider has to cope.
func SplitChunks(text string, max int) []string {
	paragraphs := strings.Split(text, "\n\n")
	var chunks []string
	var current strings.Builder
	for _, para := range paragraphs {
		if current.Len() > 0 && current.Len()+len(para)+2 > max {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
		}
		current.WriteString(para)
		current.WriteString("\n\n")
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		chunks = append(chunks, s)
	}
	return chunks
}

// Record produces a translated copy of an output record: the long-form text
// fields are translated, the language bookkeeping fields are rewritten for
// the brand's preamble, and everything else is copied unchanged.
func (s *Service) Record(ctx context.Context, rec *types.OutputRecord, p brand.Profile, targetLang string) *types.OutputRecord {
	out := *rec
	out.Introduction = s.Text(ctx, rec.Introduction, targetLang)
	out.Description = s.Text(ctx, rec.Description, targetLang)
	out.Abstract = s.Text(ctx, rec.Abstract, targetLang)
	out.Keywords = s.Text(ctx, rec.Keywords, targetLang)
	out.Conclusion = s.Text(ctx, rec.Conclusion, targetLang)

	out.Lang = targetLang
	out.LangName = brand.LangName(targetLang)
	out.Preamble = p.Preamble(targetLang)
	return &out
}
