// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"raw object", `{"a": 1}`, `{"a": 1}`, false},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`, false},
		{"bare fence", "```\n{\"a\": 1}\n```", `{"a": 1}`, false},
		{"prose around object", `Sure! Here it is: {"a": 1} Hope that helps.`, `{"a": 1}`, false},
		{"fence with prose", "Here you go:\n```json\n{\"a\": 1}\n```\nDone.", `{"a": 1}`, false},
		{"nested braces", `{"a": {"b": 2}}`, `{"a": {"b": 2}}`, false},
		{"no object", "I cannot help with that.", "", true},
		{"empty", "", "", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ExtractJSON(c.in)
			if c.wantErr {
				if err == nil {
					t.Fatalf("ExtractJSON(%q) = %q, want error", c.in, got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != c.want {
				t.Errorf("ExtractJSON(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestGeminiGenerate(t *testing.T) {
	var gotKey, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-goog-api-key")
		gotPath = r.URL.Path
		var req geminiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if len(req.Contents) != 1 || req.Contents[0].Parts[0].Text != "hello" {
			t.Errorf("unexpected request: %+v", req)
		}
		fmt.Fprint(w, `{"candidates": [{"content": {"parts": [{"text": "world"}]}}]}`)
	}))
	defer srv.Close()

	oldBase := geminiAPIBase
	geminiAPIBase = srv.URL
	defer func() { geminiAPIBase = oldBase }()

	g := &Gemini{Model: "gemini-2.5-flash", APIKey: "secret"}
	got, err := g.Generate(context.Background(), "hello")
	if err != nil {
		t.Fatal(err)
	}
	if got != "world" {
		t.Errorf("Generate = %q", got)
	}
	if gotKey != "secret" {
		t.Errorf("x-goog-api-key = %q", gotKey)
	}
	if gotPath != "/models/gemini-2.5-flash:generateContent" {
		t.Errorf("path = %q", gotPath)
	}
}

func TestGeminiGenerateAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "overloaded"}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	oldBase := geminiAPIBase
	geminiAPIBase = srv.URL
	defer func() { geminiAPIBase = oldBase }()

	g := &Gemini{Model: "gemini-2.5-flash"}
	if _, err := g.Generate(context.Background(), "hello"); err == nil {
		t.Fatal("expected error on 503")
	}
}

func TestGroqGenerate(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		var req groqRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if req.Model != "llama-3.3-70b-versatile" || req.Messages[0].Role != "user" {
			t.Errorf("unexpected request: %+v", req)
		}
		fmt.Fprint(w, `{"choices": [{"message": {"role": "assistant", "content": "answer"}}]}`)
	}))
	defer srv.Close()

	oldURL := groqAPIURL
	groqAPIURL = srv.URL
	defer func() { groqAPIURL = oldURL }()

	g := &Groq{Model: "llama-3.3-70b-versatile", APIKey: "gk"}
	got, err := g.Generate(context.Background(), "question")
	if err != nil {
		t.Fatal(err)
	}
	if got != "answer" {
		t.Errorf("Generate = %q", got)
	}
	if gotAuth != "Bearer gk" {
		t.Errorf("Authorization = %q", gotAuth)
	}
}

// flakyProvider fails a fixed number of times before succeeding.
type flakyProvider struct {
	failures int
	calls    int
}

func (f *flakyProvider) Name() string { return "flaky" }

func (f *flakyProvider) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	if f.calls <= f.failures {
		return "", fmt.Errorf("transient failure %d", f.calls)
	}
	return "ok", nil
}

func TestGenerateWithRetry(t *testing.T) {
	oldBackoff := retryBackoff
	retryBackoff = 0
	defer func() { retryBackoff = oldBackoff }()

	t.Run("recovers", func(t *testing.T) {
		p := &flakyProvider{failures: 2}
		got, err := GenerateWithRetry(context.Background(), p, "x", 3)
		if err != nil {
			t.Fatal(err)
		}
		if got != "ok" || p.calls != 3 {
			t.Errorf("got %q after %d calls", got, p.calls)
		}
	})

	t.Run("exhausts", func(t *testing.T) {
		p := &flakyProvider{failures: 10}
		_, err := GenerateWithRetry(context.Background(), p, "x", 3)
		if err == nil {
			t.Fatal("expected error")
		}
		if p.calls != 3 {
			t.Errorf("calls = %d, want 3", p.calls)
		}
	})

	t.Run("canceled context stops retries", func(t *testing.T) {
		retryBackoff = oldBackoff
		defer func() { retryBackoff = 0 }()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		p := &flakyProvider{failures: 10}
		if _, err := GenerateWithRetry(ctx, p, "x", 3); err == nil {
			t.Fatal("expected context error")
		}
		if p.calls != 1 {
			t.Errorf("calls = %d, want 1", p.calls)
		}
	})
}
