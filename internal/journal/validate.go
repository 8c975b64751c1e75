// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package journal

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/pdiddy/journal-engine/pkg/types"
)

// Validate checks a submission before intake. It returns the first problem
// found; milestone fields are ignored since derivation overwrites them.
func Validate(rec *types.SubmissionRecord) error {
	if n := len(rec.ID); n < 3 || n > 6 {
		return fmt.Errorf("id must be 3-6 characters, got %d", n)
	}
	for name, v := range map[string]string{
		"topic":             rec.Topic,
		"journalName":       rec.JournalName,
		"shortJournalName":  rec.ShortJournalName,
		"type":              rec.Type,
		"brandName":         rec.BrandName,
		"authorsDepartment": rec.AuthorsDepartment,
		"manuscriptNo":      rec.ManuscriptNo,
	} {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
	}
	if len(strings.Fields(rec.Author)) < 2 {
		return fmt.Errorf("author %q must have at least a first and last name", rec.Author)
	}
	if _, err := mail.ParseAddress(rec.Email); err != nil {
		return fmt.Errorf("invalid email %q: %w", rec.Email, err)
	}
	if rec.Volume <= 0 {
		return fmt.Errorf("volume must be positive, got %d", rec.Volume)
	}
	if rec.Issues <= 0 {
		return fmt.Errorf("issues must be positive, got %d", rec.Issues)
	}
	if rec.PDFNo <= 0 {
		return fmt.Errorf("pdfNo must be positive, got %d", rec.PDFNo)
	}
	if _, err := url.ParseRequestURI(rec.ParentLink); err != nil {
		return fmt.Errorf("invalid parentLink %q: %w", rec.ParentLink, err)
	}
	if _, err := time.Parse(ReceivedFormat, rec.Received); err != nil {
		return fmt.Errorf("received must be YYYY-MM-DD: %w", err)
	}
	return nil
}

// ApplyPatch copies the non-nil fields of a patch onto a record. The caller
// revalidates and rederives milestones afterwards when received or the brand
// changed.
func ApplyPatch(rec *types.SubmissionRecord, p *types.SubmissionPatch) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setInt := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	set(&rec.Topic, p.Topic)
	set(&rec.JournalName, p.JournalName)
	set(&rec.ShortJournalName, p.ShortJournalName)
	set(&rec.Type, p.Type)
	set(&rec.Author, p.Author)
	set(&rec.Email, p.Email)
	set(&rec.BrandName, p.BrandName)
	set(&rec.AuthorsDepartment, p.AuthorsDepartment)
	set(&rec.Received, p.Received)
	set(&rec.EditorAssigned, p.EditorAssigned)
	set(&rec.Reviewed, p.Reviewed)
	set(&rec.Revised, p.Revised)
	set(&rec.Published, p.Published)
	set(&rec.ManuscriptNo, p.ManuscriptNo)
	setInt(&rec.Volume, p.Volume)
	setInt(&rec.Issues, p.Issues)
	setInt(&rec.PDFNo, p.PDFNo)
	set(&rec.DOI, p.DOI)
	set(&rec.ISSN, p.ISSN)
	set(&rec.ImgPath, p.ImgPath)
	set(&rec.ParentLink, p.ParentLink)
}
