// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/pdiddy/journal-engine/pkg/types"
)

// groqAPIURL is the Groq chat-completions endpoint. Package-level var for
// test substitution.
var groqAPIURL = "https://api.groq.com/openai/v1/chat/completions"

// Groq calls the Groq OpenAI-compatible chat API.
type Groq struct {
	Model  string
	APIKey string
	Client *http.Client
}

// NewGroq builds a Groq backend from config.
func NewGroq(cfg types.AIConfig, client *http.Client) *Groq {
	return &Groq{Model: cfg.Model, APIKey: cfg.APIKey, Client: client}
}

type groqRequest struct {
	Model    string        `json:"model"`
	Messages []groqMessage `json:"messages"`
}

type groqMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type groqResponse struct {
	Choices []struct {
		Message groqMessage `json:"message"`
	} `json:"choices"`
}

// Name implements Provider.
func (g *Groq) Name() string { return "groq" }

// Generate implements Provider.
func (g *Groq) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := groqRequest{
		Model:    g.Model,
		Messages: []groqMessage{{Role: "user", Content: prompt}},
	}
	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, groqAPIURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.APIKey)

	client := g.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling Groq API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Groq API returned %d: %s", resp.StatusCode, string(body))
	}

	var gResp groqResponse
	if err := json.NewDecoder(resp.Body).Decode(&gResp); err != nil {
		return "", fmt.Errorf("decoding Groq response: %w", err)
	}
	if len(gResp.Choices) == 0 {
		return "", fmt.Errorf("Groq API returned no choices")
	}
	return gResp.Choices[0].Message.Content, nil
}
