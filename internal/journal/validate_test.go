// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package journal

import (
	"strings"
	"testing"

	"github.com/pdiddy/journal-engine/internal/brand"
	"github.com/pdiddy/journal-engine/pkg/types"
)

func validSubmission() types.SubmissionRecord {
	return types.SubmissionRecord{
		ID:                "jcnn1",
		Topic:             "Advances in neural prosthetics",
		JournalName:       "Journal of Clinical Neurology and Neurosurgery",
		ShortJournalName:  "J Clin Neurol Neurosurg",
		Type:              "Commentary",
		Author:            "Arupa Nanda Swain",
		Email:             "arupa.swain@example.edu",
		BrandName:         brand.Hilaris,
		AuthorsDepartment: "Department of Neurology, University of Example, Oslo, Norway",
		Received:          "2025-02-03",
		ManuscriptNo:      "jcnn-25-123456",
		Volume:            8,
		Issues:            2,
		PDFNo:             104,
		DOI:               "10.37421/jcnn.2025.8.104",
		ParentLink:        "https://www.example.com/journal/jcnn",
	}
}

func TestValidateAccepts(t *testing.T) {
	rec := validSubmission()
	if err := Validate(&rec); err != nil {
		t.Fatalf("valid submission rejected: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*types.SubmissionRecord)
		wantSub string
	}{
		{"short id", func(r *types.SubmissionRecord) { r.ID = "ab" }, "id"},
		{"long id", func(r *types.SubmissionRecord) { r.ID = "abcdefg" }, "id"},
		{"empty topic", func(r *types.SubmissionRecord) { r.Topic = "  " }, "topic"},
		{"single-token author", func(r *types.SubmissionRecord) { r.Author = "Cher" }, "author"},
		{"bad email", func(r *types.SubmissionRecord) { r.Email = "not-an-email" }, "email"},
		{"zero volume", func(r *types.SubmissionRecord) { r.Volume = 0 }, "volume"},
		{"negative issues", func(r *types.SubmissionRecord) { r.Issues = -1 }, "issues"},
		{"zero pdfNo", func(r *types.SubmissionRecord) { r.PDFNo = 0 }, "pdfNo"},
		{"bad parentLink", func(r *types.SubmissionRecord) { r.ParentLink = "not a url" }, "parentLink"},
		{"bad received", func(r *types.SubmissionRecord) { r.Received = "03-Feb-2025" }, "received"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := validSubmission()
			c.mutate(&rec)
			err := Validate(&rec)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), c.wantSub) {
				t.Errorf("error %q does not mention %q", err, c.wantSub)
			}
		})
	}
}

func TestValidateTwoTokenAuthor(t *testing.T) {
	rec := validSubmission()
	rec.Author = "Wei Zhang"
	if err := Validate(&rec); err != nil {
		t.Fatalf("two-token author rejected: %v", err)
	}
}

func TestApplyPatch(t *testing.T) {
	rec := validSubmission()
	topic := "Updated topic"
	vol := 9
	ApplyPatch(&rec, &types.SubmissionPatch{Topic: &topic, Volume: &vol})
	if rec.Topic != topic {
		t.Errorf("topic = %q", rec.Topic)
	}
	if rec.Volume != 9 {
		t.Errorf("volume = %d", rec.Volume)
	}
	if rec.Author != "Arupa Nanda Swain" {
		t.Errorf("untouched field changed: %q", rec.Author)
	}
}
