// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pdiddy/journal-engine/internal/brand"
	"github.com/pdiddy/journal-engine/internal/cite"
	"github.com/pdiddy/journal-engine/pkg/types"
)

// Assemble merges the submission, harvested references, synthesized sections
// and title into the final output record, computing every brand-conditional
// derived field. Pure; all model work is already done.
func Assemble(sub *types.SubmissionRecord, p brand.Profile, title string, refs map[string]types.RawReference, sections types.Sections) *types.OutputRecord {
	year := cite.Year(sub.Published)
	yearNum, _ := strconv.Atoi(year)
	month := ""
	if parts := strings.Split(sub.Published, "-"); len(parts) == 3 {
		month = parts[1]
	}

	content := make(map[string]types.Reference, len(refs))
	for key, raw := range refs {
		full, short := cite.FormatAuthors(raw.Authors)
		content[key] = types.Reference{
			Title:            raw.Title,
			JournalShortName: raw.JournalShortName,
			AuthorsFull:      full,
			AuthorsShort:     short,
			Published:        raw.Published,
			PageRange:        raw.PageRange,
			Volume:           raw.Volume,
			Issues:           raw.Issues,
			DOI:              raw.DOI,
			URL:              raw.URL,
			ParentLink:       raw.ParentLink,
			SubContent:       raw.SubContent,
		}
	}

	out := &types.OutputRecord{
		Title:             title,
		JournalName:       sub.JournalName,
		ShortJournalName:  sub.ShortJournalName,
		Type:              sub.Type,
		Author:            sub.Author,
		Email:             sub.Email,
		BrandName:         sub.BrandName,
		AuthorsDepartment: sub.AuthorsDepartment,
		JournalYearVolumeIssue: fmt.Sprintf("%s, Volume %d:%d, %s",
			sub.ShortJournalName, sub.Volume, sub.Issues, year),

		Introduction: normalizeBreaks(sections.Introduction),
		Description:  normalizeBreaks(sections.Description),
		Abstract:     sections.Abstract,
		Discussion:   normalizeBreaks(sections.Discussion),
		Keywords:     sections.Keywords,
		Content:      content,
		Conclusion:   sections.Summary,

		DOI:            sub.DOI,
		Received:       sub.Received,
		EditorAssigned: sub.EditorAssigned,
		Reviewed:       sub.Reviewed,
		Revised:        sub.Revised,
		Published:      sub.Published,
		Year:           yearNum,
		Month:          month,

		ManuscriptNo: sub.ManuscriptNo,
		QCNo:         qcNumber(sub.ManuscriptNo, "Q", p),
		PreQCNo:      qcNumber(sub.ManuscriptNo, "P", p),
		RManuNo:      qcNumber(sub.ManuscriptNo, "R", p),

		Volume:  fmt.Sprintf("%02d", sub.Volume),
		Issues:  fmt.Sprintf("%02d", sub.Issues),
		ISSN:    sub.ISSN,
		ImgPath: sub.ImgPath,
		PDFNo:   sub.PDFNo,

		ParentLink: sub.ParentLink,

		FirstNameAuthor:  cite.FirstName(sub.Author),
		CopyrightAuthor:  cite.CopyrightAuthor(sub.Author),
		AddressForCorres: cite.AddressForCorres(sub.Author),

		Lang:     brand.DefaultLang,
		LangName: brand.LangName(brand.DefaultLang),
		Preamble: p.Preamble(brand.DefaultLang),
	}
	out.Citation = cite.Citation(out, p)
	return out
}

// qcNumber derives the QC / pre-QC / revised-manuscript numbers. Only brands
// with QCPrefix rewrite them; everyone else repeats the manuscript number.
func qcNumber(manuscriptNo, prefix string, p brand.Profile) string {
	if !p.QCPrefix {
		return manuscriptNo
	}
	parts := strings.Split(manuscriptNo, "-")
	return prefix + "-" + parts[len(parts)-1]
}

// normalizeBreaks collapses escaped newline sequences the model sometimes
// emits into real newlines.
func normalizeBreaks(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}
