// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"fmt"
	"strings"
	texttemplate "text/template"

	"github.com/pdiddy/journal-engine/internal/brand"
	"github.com/pdiddy/journal-engine/pkg/types"
)

// latexTmpl holds the brand .tex templates. LaTeX uses braces for its own
// syntax, so the engine runs with \VAR{ } delimiters instead of the
// defaults.
var latexTmpl = texttemplate.Must(
	texttemplate.New("latex").Delims(`\VAR{`, `}`).ParseFS(templatesFS, "templates/*.tex"),
)

// latexEscaper rewrites the characters LaTeX reserves.
var latexEscaper = strings.NewReplacer(
	"\\", `\textbackslash{}`,
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
	"^", `\^{}`,
	"~", `\textasciitilde{}`,
)

// Escape makes free text safe for LaTeX.
func Escape(text string) string {
	return latexEscaper.Replace(text)
}

// latexRef is one escaped reference entry, in citation order.
type latexRef struct {
	Index int
	types.Reference
}

// latexData is the escaped record handed to the .tex templates. Preamble is
// the only field that passes through raw; it is LaTeX itself.
type latexData struct {
	types.OutputRecord
	Refs []latexRef
}

// RenderLaTeX builds the LaTeX source for the record's brand template. All
// text fields are escaped; brands with author-year markers get their
// citation markers rewritten into bold inline citations.
func RenderLaTeX(rec *types.OutputRecord, p brand.Profile) (string, error) {
	data := latexData{OutputRecord: *rec}
	data.Title = Escape(rec.Title)
	data.JournalName = Escape(rec.JournalName)
	data.ShortJournalName = Escape(rec.ShortJournalName)
	data.Author = Escape(rec.Author)
	data.AuthorsDepartment = Escape(rec.AuthorsDepartment)
	data.JournalYearVolumeIssue = Escape(rec.JournalYearVolumeIssue)
	data.Introduction = Escape(rec.Introduction)
	data.Description = Escape(rec.Description)
	data.Abstract = Escape(rec.Abstract)
	data.Discussion = Escape(rec.Discussion)
	data.Keywords = Escape(rec.Keywords)
	data.Conclusion = Escape(rec.Conclusion)
	data.FirstNameAuthor = Escape(rec.FirstNameAuthor)
	data.CopyrightAuthor = Escape(rec.CopyrightAuthor)
	data.AddressForCorres = Escape(rec.AddressForCorres)
	data.Citation = Escape(rec.Citation)
	data.DOI = Escape(rec.DOI)
	data.ISSN = Escape(rec.ISSN)

	keys := rec.RefKeys()
	data.Refs = make([]latexRef, 0, len(keys))
	for i, key := range keys {
		ref := rec.Content[key]
		ref.Title = Escape(ref.Title)
		ref.JournalShortName = Escape(ref.JournalShortName)
		ref.AuthorsFull = Escape(ref.AuthorsFull)
		ref.AuthorsShort = Escape(ref.AuthorsShort)
		ref.PageRange = Escape(ref.PageRange)
		ref.DOI = Escape(ref.DOI)
		data.Refs = append(data.Refs, latexRef{Index: i + 1, Reference: ref})
	}

	if p.AuthorYearMarkers {
		for i, key := range keys {
			ref := rec.Content[key]
			bold := fmt.Sprintf(`\textbf{(%s et al., %s).}`,
				Escape(firstAuthor(ref.AuthorsShort)), Escape(ref.Published))
			marker := fmt.Sprintf("[%d].", i+1)
			data.Introduction = strings.ReplaceAll(data.Introduction, marker, bold)
			data.Description = strings.ReplaceAll(data.Description, marker, bold)
			data.Discussion = strings.ReplaceAll(data.Discussion, marker, bold)
		}
	}

	name := p.Key + ".tex"
	var buf bytes.Buffer
	if err := latexTmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.String(), nil
}
