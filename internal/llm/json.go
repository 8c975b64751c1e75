// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"fmt"
	"regexp"
	"strings"
)

// fencedJSON matches a Markdown code fence wrapping a JSON object, with or
// without the json language tag.
var fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*\\})\\s*```")

// ExtractJSON pulls the JSON object out of a model response. Models wrap
// their output in Markdown fences often enough that callers never see the
// raw text; a response with no object at all is an error.
func ExtractJSON(text string) (string, error) {
	if m := fencedJSON.FindStringSubmatch(text); m != nil {
		return m[1], nil
	}
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return "", fmt.Errorf("no JSON object in model response")
	}
	return text[start : end+1], nil
}
