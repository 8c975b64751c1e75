// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cite formats author names, article citations, and reference list
// entries. Everything here is pure string work over an assembled record; no
// I/O and no model calls.
package cite

import (
	"fmt"
	"strings"

	"github.com/pdiddy/journal-engine/internal/brand"
	"github.com/pdiddy/journal-engine/pkg/types"
)

// FormatAuthor abbreviates a full name to "Surname FM": the last token plus
// the concatenated initials of every preceding token. Periods are stripped
// first so "Jane A. Doe" abbreviates cleanly. A single-token name passes
// through unchanged.
func FormatAuthor(name string) string {
	tokens := strings.Fields(strings.ReplaceAll(name, ".", ""))
	if len(tokens) == 0 {
		return ""
	}
	if len(tokens) == 1 {
		return tokens[0]
	}
	var initials strings.Builder
	for _, t := range tokens[:len(tokens)-1] {
		initials.WriteByte(t[0])
	}
	return tokens[len(tokens)-1] + " " + initials.String()
}

// SurnameFirst rewrites a full name as "Surname, First Middle".
func SurnameFirst(name string) string {
	tokens := strings.Fields(name)
	if len(tokens) < 2 {
		return name
	}
	return tokens[len(tokens)-1] + ", " + strings.Join(tokens[:len(tokens)-1], " ")
}

// FirstName returns the first token of a full name.
func FirstName(name string) string {
	tokens := strings.Fields(name)
	if len(tokens) == 0 {
		return ""
	}
	return tokens[0]
}

// CopyrightAuthor formats a name for the copyright line: "Surname F."
func CopyrightAuthor(name string) string {
	tokens := strings.Fields(name)
	if len(tokens) < 2 {
		return name
	}
	return tokens[len(tokens)-1] + " " + tokens[0][:1] + "."
}

// AddressForCorres formats a name for the correspondence block: a comma
// after the first token, "First, Middle Surname".
func AddressForCorres(name string) string {
	tokens := strings.Fields(name)
	if len(tokens) < 2 {
		return name
	}
	return tokens[0] + ", " + strings.Join(tokens[1:], " ")
}

// FormatAuthors flattens a reference's author list into the full display
// string (names joined, terminal period) and the abbreviated one
// (FormatAuthor per name, comma separated).
func FormatAuthors(authors []string) (full, short string) {
	full = strings.Join(authors, ", ") + "."
	abbrevs := make([]string, 0, len(authors))
	for _, a := range authors {
		if f := FormatAuthor(a); f != "" {
			abbrevs = append(abbrevs, f)
		}
	}
	return full, strings.Join(abbrevs, ", ")
}

// Year extracts the publication year from a DD-Mon-YYYY display date.
func Year(published string) string {
	if i := strings.LastIndex(published, "-"); i >= 0 {
		return published[i+1:]
	}
	return published
}

// Citation builds the article's own citation line in the brand's grammar.
// Pure and total for any record whose author has at least two tokens.
func Citation(rec *types.OutputRecord, p brand.Profile) string {
	year := Year(rec.Published)
	switch p.Citation {
	case brand.StyleQuotedTitle:
		return fmt.Sprintf(`%s. "%s." %s %s (%s):%d.`,
			SurnameFirst(rec.Author), rec.Title, rec.ShortJournalName, rec.Volume, year, rec.PDFNo)
	case brand.StyleSemicolon:
		return fmt.Sprintf("%s. %s. %s. %s;%s(%s):%d.",
			FormatAuthor(rec.Author), rec.Title, rec.ShortJournalName, year, rec.Volume, rec.Issues, rec.PDFNo)
	case brand.StyleParenYear:
		return fmt.Sprintf("%s (%s) %s. %s %s: %d.",
			FormatAuthor(rec.Author), year, rec.Title, rec.ShortJournalName, rec.Volume, rec.PDFNo)
	case brand.StyleYearAfterJournal:
		return fmt.Sprintf("%s, %s. %s(%s) %s: %d.",
			FormatAuthor(rec.Author), rec.Title, rec.ShortJournalName, year, rec.Volume, rec.PDFNo)
	default:
		cite := fmt.Sprintf("%s. %s. %s. %s;%s(%s):%d.",
			FormatAuthor(rec.Author), rec.Title, rec.ShortJournalName, year, rec.Volume, rec.Issues, rec.PDFNo)
		if rec.DOI != "" {
			cite += " doi:" + rec.DOI
		}
		return cite
	}
}

// scholarQuery builds the Google Scholar search URL for a reference title.
func scholarQuery(title string) string {
	return "https://scholar.google.com/scholar?hl=en&as_sdt=0%2C5&q=" +
		strings.Join(strings.Fields(title), "+") + "&btnG="
}

// linkRow is the Indexed at / Google Scholar / Crossref row appended to
// every reference entry.
func linkRow(ref types.Reference) string {
	return fmt.Sprintf(`<p align="right"><a href=%q target="_blank"><u>Indexed at</u></a>, `+
		`<a href=%q target="_blank"><u>Google Scholar</u></a>, `+
		`<a href="https://doi.org/%s" target="_blank"><u>Crossref</u></a></p>`,
		ref.URL, scholarQuery(ref.Title), ref.DOI)
}

// ReferenceEntry builds one HTML reference list item in the brand's style.
// The anchor name matches the numeric citation markers in the body text.
func ReferenceEntry(ref types.Reference, index int, p brand.Profile) string {
	anchor := fmt.Sprintf(`<a name="%d" id="%d"></a>`, index, index)
	titleLink := fmt.Sprintf(`<a href=%q target="_blank">%s</a>`, ref.ParentLink, ref.Title)
	issues := ref.Issues
	if issues != "" {
		issues = "(" + issues + ")"
	}

	var body string
	switch p.Citation {
	case brand.StyleQuotedTitle:
		quoted := fmt.Sprintf(`<a href=%q target="_blank">"%s"</a>`, ref.ParentLink, ref.Title)
		// AuthorsFull already carries its terminal period.
		body = fmt.Sprintf("%s%s %s.<i>%s</i> %s (%s):%s.",
			anchor, ref.AuthorsFull, quoted, ref.JournalShortName, ref.Volume, ref.Published, ref.PageRange)
	case brand.StyleParenYear:
		body = fmt.Sprintf("%s%s (%s) %s.%s %s:%s.",
			anchor, ref.AuthorsShort, ref.Published, titleLink, ref.JournalShortName, ref.Volume, ref.PageRange)
	default:
		body = fmt.Sprintf("%s%s. %s. %s. %s;%s%s:%s.",
			anchor, ref.AuthorsShort, titleLink, ref.JournalShortName, ref.Published, ref.Volume, issues, ref.PageRange)
	}
	return "<li>" + body + "\n" + linkRow(ref) + "</li>"
}

// ReferenceList joins every reference entry in key order.
func ReferenceList(rec *types.OutputRecord, p brand.Profile) string {
	var sb strings.Builder
	for i, key := range rec.RefKeys() {
		sb.WriteString("\n")
		sb.WriteString(ReferenceEntry(rec.Content[key], i+1, p))
	}
	return sb.String()
}
