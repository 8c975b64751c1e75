// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package translate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/journal-engine/internal/brand"
	"github.com/pdiddy/journal-engine/internal/httputil"
	"github.com/pdiddy/journal-engine/pkg/types"
)

// fakeTranslator uppercases text, optionally failing the first n calls.
type fakeTranslator struct {
	failFirst int
	calls     int
}

func (f *fakeTranslator) Translate(ctx context.Context, text, targetLang string) (string, error) {
	f.calls++
	if f.calls <= f.failFirst {
		return "", fmt.Errorf("provider unavailable")
	}
	return strings.ToUpper(text), nil
}

func newService(t Translator, maxLen int) *Service {
	return &Service{Translator: t, MaxChunkLen: maxLen, Logger: zap.NewNop()}
}

func TestSplitChunks(t *testing.T) {
	paras := []string{
		strings.Repeat("a", 40),
		strings.Repeat("b", 40),
		strings.Repeat("c", 40),
	}
	text := strings.Join(paras, "\n\n")

	chunks := SplitChunks(text, 100)
	if len(chunks) != 2 {
		t.Fatalf("len(chunks) = %d, want 2", len(chunks))
	}
	for i, chunk := range chunks {
		if len(chunk) > 100 {
			t.Errorf("chunk %d exceeds limit: %d chars", i, len(chunk))
		}
	}
	// Rejoining recovers every paragraph.
	joined := strings.Join(chunks, "\n\n")
	for _, p := range paras {
		if !strings.Contains(joined, p) {
			t.Errorf("paragraph lost: %s...", p[:8])
		}
	}
}

func TestSplitChunksOversizeParagraph(t *testing.T) {
	big := strings.Repeat("x", 250)
	chunks := SplitChunks(big, 100)
	if len(chunks) != 1 || chunks[0] != big {
		t.Errorf("oversize paragraph should stay one chunk, got %d", len(chunks))
	}
}

func TestSplitChunksShortText(t *testing.T) {
	chunks := SplitChunks("hello\n\nworld", 100)
	if len(chunks) != 1 || chunks[0] != "hello\n\nworld" {
		t.Errorf("chunks = %q", chunks)
	}
}

func TestTextChunksAndRejoins(t *testing.T) {
	oldPause := retryPause
	retryPause = 0
	defer func() { retryPause = oldPause }()

	text := strings.Repeat("p", 60) + "\n\n" + strings.Repeat("q", 60)
	s := newService(&fakeTranslator{}, 80)
	got := s.Text(context.Background(), text, "hi")
	want := strings.ToUpper(strings.Repeat("p", 60)) + "\n\n" + strings.ToUpper(strings.Repeat("q", 60))
	if got != want {
		t.Errorf("Text = %q, want %q", got, want)
	}
}

func TestTextRetriesOnceThenFallsBack(t *testing.T) {
	oldPause := retryPause
	retryPause = 0
	defer func() { retryPause = oldPause }()

	t.Run("second attempt succeeds", func(t *testing.T) {
		f := &fakeTranslator{failFirst: 1}
		s := newService(f, 100)
		if got := s.Text(context.Background(), "hello", "hi"); got != "HELLO" {
			t.Errorf("Text = %q", got)
		}
		if f.calls != 2 {
			t.Errorf("calls = %d, want 2", f.calls)
		}
	})

	t.Run("both attempts fail", func(t *testing.T) {
		f := &fakeTranslator{failFirst: 10}
		s := newService(f, 100)
		if got := s.Text(context.Background(), "hello", "hi"); got != "hello" {
			t.Errorf("fallback = %q, want original", got)
		}
		if f.calls != 2 {
			t.Errorf("calls = %d, want 2", f.calls)
		}
	})
}

func TestRecordTranslatesLongFormFieldsOnly(t *testing.T) {
	oldPause := retryPause
	retryPause = 0
	defer func() { retryPause = oldPause }()

	p := brand.Lookup(brand.Omics)
	rec := &types.OutputRecord{
		Title:        "Stays English",
		Author:       "Arupa Nanda Swain",
		Introduction: "intro text",
		Description:  "desc text",
		Abstract:     "abstract text",
		Keywords:     "Key; Words",
		Conclusion:   "conclusion text",
		Citation:     "Swain AN. Stays English...",
		Lang:         "en",
		LangName:     "english",
		Preamble:     p.Preamble("en"),
	}

	s := newService(&fakeTranslator{}, 100)
	got := s.Record(context.Background(), rec, p, "hi")

	if got.Introduction != "INTRO TEXT" || got.Conclusion != "CONCLUSION TEXT" {
		t.Errorf("long-form fields not translated: %+v", got)
	}
	if got.Title != "Stays English" || got.Citation != "Swain AN. Stays English..." {
		t.Error("metadata fields must not be translated")
	}
	if got.Lang != "hi" || got.LangName != "hindi" {
		t.Errorf("lang bookkeeping = %q/%q", got.Lang, got.LangName)
	}
	if !strings.Contains(got.Preamble, `\setdefaultlanguage{hindi}`) {
		t.Errorf("preamble not rewritten: %s", got.Preamble)
	}
	// The source record is untouched.
	if rec.Introduction != "intro text" || rec.Lang != "en" {
		t.Error("source record mutated")
	}
}

func TestGoogleTranslate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("tl") != "fr" || r.URL.Query().Get("client") != "gtx" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		fmt.Fprint(w, `[[["Bonjour ","Hello ",null,null],["le monde","world",null,null]],null,"en"]`)
	}))
	defer srv.Close()

	oldURL := googleAPIURL
	googleAPIURL = srv.URL
	defer func() { googleAPIURL = oldURL }()

	g := &Google{}
	got, err := g.Translate(context.Background(), "Hello world", "fr")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Bonjour le monde" {
		t.Errorf("Translate = %q", got)
	}
}

func TestGoogleTranslateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	oldURL := googleAPIURL
	googleAPIURL = srv.URL
	oldDelay := httputil.RetryBaseDelay
	httputil.RetryBaseDelay = time.Millisecond
	defer func() {
		googleAPIURL = oldURL
		httputil.RetryBaseDelay = oldDelay
	}()

	g := &Google{}
	if _, err := g.Translate(context.Background(), "Hello", "fr"); err == nil {
		t.Fatal("expected error")
	}
}
