// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns an assembled output record into the HTML preview and
// the LaTeX source for the PDF.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/pdiddy/journal-engine/internal/brand"
	"github.com/pdiddy/journal-engine/internal/cite"
	"github.com/pdiddy/journal-engine/pkg/types"
)

//go:embed templates
var templatesFS embed.FS

var htmlTmpl = template.Must(template.ParseFS(templatesFS, "templates/Format.html"))

// BodySection is one titled block of the HTML preview. Placeholder sections
// (Acknowledgement, Conflict of Interest) have empty content.
type BodySection struct {
	Name string
	HTML template.HTML
}

type htmlData struct {
	*types.OutputRecord
	Body             []BodySection
	RefPart          template.HTML
	PrefixDepartment template.HTML
	SuffixDepartment template.HTML
}

// RenderHTML builds the article preview page: citation markers become
// anchors into the reference list, paragraph breaks become tags, and the
// body carries the brand's section set in order.
func RenderHTML(rec *types.OutputRecord, p brand.Profile) (string, error) {
	intro := rec.Introduction
	desc := rec.Description
	disc := rec.Discussion

	if p.AuthorYearMarkers {
		for i, key := range rec.RefKeys() {
			ref := rec.Content[key]
			name := firstAuthor(ref.AuthorsShort)
			anchor := fmt.Sprintf("[<a href='#%d' title='%d'>%s et al., %s</a>].</p><p>",
				i+1, i+1, name, ref.Published)
			marker := fmt.Sprintf("[%d].", i+1)
			intro = strings.ReplaceAll(intro, marker, anchor)
			desc = strings.ReplaceAll(desc, marker, anchor)
			disc = strings.ReplaceAll(disc, marker, anchor)
		}
	} else {
		for i := 1; i <= len(rec.Content); i++ {
			anchor := fmt.Sprintf("[<a href='#%d' title='%d'>%d</a>].</p><p>", i, i, i)
			intro = strings.ReplaceAll(intro, fmt.Sprintf("[%d].", i), anchor)
		}
	}
	desc = strings.ReplaceAll(desc, "\n\n", "</p><p>")
	desc = strings.ReplaceAll(desc, "\n", "</p><p>")

	sectionText := map[string]string{
		"Abstract":             rec.Abstract,
		"Keywords":             rec.Keywords,
		"Introduction":         intro,
		"Description":          desc,
		"Discussion":           disc,
		"Conclusion":           rec.Conclusion,
		"Acknowledgement":      "",
		"Conflict of Interest": "",
	}
	body := make([]BodySection, 0, len(p.Sections))
	for _, name := range p.Sections {
		body = append(body, BodySection{Name: name, HTML: template.HTML(sectionText[name])})
	}

	prefix, suffix := SplitDepartment(rec.AuthorsDepartment)

	var buf bytes.Buffer
	err := htmlTmpl.Execute(&buf, htmlData{
		OutputRecord:     rec,
		Body:             body,
		RefPart:          template.HTML(cite.ReferenceList(rec, p)),
		PrefixDepartment: template.HTML(prefix),
		SuffixDepartment: template.HTML(suffix),
	})
	if err != nil {
		return "", fmt.Errorf("rendering HTML: %w", err)
	}
	return buf.String(), nil
}

// SplitDepartment splits the department line at its first comma into the
// address prefix and suffix blocks.
func SplitDepartment(dept string) (prefix, suffix string) {
	parts := strings.SplitN(dept, ",", 2)
	if len(parts) == 1 {
		return dept, "<br />"
	}
	return parts[0] + "<br />", strings.TrimSpace(parts[1]) + ".<br />"
}

// firstAuthor returns the first name in a comma-separated author string.
func firstAuthor(authors string) string {
	if i := strings.Index(authors, ", "); i >= 0 {
		return authors[:i]
	}
	return authors
}
