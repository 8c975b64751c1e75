// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/pdiddy/journal-engine/internal/brand"
	"github.com/pdiddy/journal-engine/pkg/types"
)

// referencesPromptTmpl asks the model for exactly ten bibliographic entries
// keyed C001..C010 as a strict JSON object.
var referencesPromptTmpl = template.Must(template.New("references").Parse(`You are provided a topic:
topic: "{{.Topic}}"
journal name: "{{.JournalName}}"
department: "{{.Department}}" ignore the university name if mentioned; use the department name only as reference.

Generate structured output for the given topic containing subContent (a concise summary of the article's key insights) and all remaining required fields. All references must be authentic, peer-reviewed journal articles published within the last five years, each with at least three legitimate authors. Use only reputable journals indexed in PubMed, Scopus, or Web of Science. Every reference must include authors, year, title, journal name, volume, issue, page range, DOI, and a working URL that leads to the real article. Do not create or fabricate any data, authors, journals, DOIs, or links.

The house citation style is: {{.CiteHint}}

The final structure must look like:
"content": {
  "C001": {
    "subContent": "...",
    "title": "...",
    "journalShortName": "...",
    "authors": ["...", "...", "..."],
    "published": "...",
    "pageRangeOrNumber": "...",
    "volume": "...",
    "issues": "...",
    "DOI": "...",
    "url": "...",
    "parentLink": "..."
  },
  ...
}
Give exactly 10 references (..., C009, C010).

Write like a confident, clear-thinking human speaking to another smart human. Keep sentences varied in length and rhythm. No filler.
IMPORTANT: Your response must be ONLY a valid JSON object with no additional text, explanations, or markdown formatting. Do not include any text before or after the JSON.
`))

// sectionsPromptTmpl asks the model for the long-form body sections, citing
// the already-harvested references by ordinal markers.
var sectionsPromptTmpl = template.Must(template.New("sections").Parse(`You are given the following reference data: {{.References}}
Each reference is keyed "C001", "C002", and so on, with full bibliographic information.

Process this data and generate structured content in JSON format. Follow these instructions carefully:

1. Output Structure
Produce only a valid JSON object with the following keys:

"content": {
  "introduction": "...",
  "description": "...",
  "summary": "...",
  "abstract": "...",
  "discussion": "...",
  "keywords": "..."
}

- All sections must be filled.
- Remove all special characters, escape sequences, and formatting symbols from the text.
- Keep only brackets, commas, periods, and characters necessary for JSON and citation markers.

2. Section Requirements

Introduction
- Word count: 500-700.
- Include sequential citation markers from the references: "C001" becomes [1], "C002" becomes [2], and so on.
- The Introduction must contain exactly 10 paragraphs, each corresponding to one reference.
- The citation marker must be placed at the end of the paragraph, immediately before the period, followed by two line breaks.

Description
- Word count: 500-700.
- Include sequential citation markers from the references: "C001" becomes [1], "C002" becomes [2], and so on.
- The Description must also contain exactly 10 paragraphs, each corresponding to one reference.
- The citation marker must be placed at the end of the paragraph, immediately before the period, followed by two line breaks.

Summary
- Word count: 150-300.
- Do not include citations.
- Focus on key points from the content in a concise manner.

Abstract
- Word count: 90-100.
- Provide a brief summary of the content.
- No citations required.

Discussion
- Word count: 200-400.
- Include analysis, implications, or commentary derived from the content.
- Citation markers can be included in ascending order, one per paragraph, placed at the end and before the period.

Keywords
- Extract 5-10 keywords directly from the content.
- Keywords should be in Title Case and separated by semicolon(;).

3. Writing Style
- Formal academic tone.
- Clear, concise sentences.
- Use natural transitions and sentence variation.

4. JSON Output Rules
- Only return the JSON object.
- No introductory phrases, explanations, or meta-commentary.
- Ensure all text is clean and compliant with JSON formatting.
`))

// titlePromptTmpl asks for a short Title-Case title from the summary.
var titlePromptTmpl = template.Must(template.New("title").Parse(`Generate a 5-7 word title based on this summary: {{.Summary}}

IMPORTANT: Respond with ONLY the title. The title should be in title case. No additional text, explanations, or formatting.
`))

func renderReferencesPrompt(sub *types.SubmissionRecord, p brand.Profile) (string, error) {
	var buf bytes.Buffer
	err := referencesPromptTmpl.Execute(&buf, struct {
		Topic, JournalName, Department, CiteHint string
	}{sub.Topic, sub.JournalName, sub.AuthorsDepartment, p.CiteHint})
	if err != nil {
		return "", fmt.Errorf("rendering references prompt: %w", err)
	}
	return buf.String(), nil
}

func renderSectionsPrompt(referencesJSON string) (string, error) {
	var buf bytes.Buffer
	err := sectionsPromptTmpl.Execute(&buf, struct{ References string }{referencesJSON})
	if err != nil {
		return "", fmt.Errorf("rendering sections prompt: %w", err)
	}
	return buf.String(), nil
}

func renderTitlePrompt(summary string) (string, error) {
	var buf bytes.Buffer
	if err := titlePromptTmpl.Execute(&buf, struct{ Summary string }{summary}); err != nil {
		return "", fmt.Errorf("rendering title prompt: %w", err)
	}
	return buf.String(), nil
}
