// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data structures shared across pipeline stages.
package types

import "fmt"

// SubmissionRecord is the metadata a caller supplies when submitting a new
// article for generation. Milestone dates (EditorAssigned through Published)
// are derived once from Received and the brand's day-counting policy; after
// derivation the record is treated as immutable.
type SubmissionRecord struct {
	// ID is the short caller-supplied key (3-6 chars) into both tables.
	ID string `json:"id,omitempty"`

	Topic             string `json:"topic"`
	JournalName       string `json:"journalName"`
	ShortJournalName  string `json:"shortJournalName"`
	Type              string `json:"type"`
	Author            string `json:"author"`
	Email             string `json:"email"`
	BrandName         string `json:"brandName"`
	AuthorsDepartment string `json:"authorsDepartment"`

	// Received is ISO YYYY-MM-DD at intake; reformatted to DD-Mon-YYYY
	// once milestones are derived.
	Received string `json:"received"`

	ManuscriptNo string `json:"manuscriptNo"`
	Volume       int    `json:"volume"`
	Issues       int    `json:"issues"`
	PDFNo        int    `json:"pdfNo"`
	DOI          string `json:"doi,omitempty"`
	ISSN         string `json:"ISSN,omitempty"`
	ImgPath      string `json:"imgPath,omitempty"`
	ParentLink   string `json:"parentLink"`

	EditorAssigned string `json:"editorAssigned,omitempty"`
	Reviewed       string `json:"reviewed,omitempty"`
	Revised        string `json:"revised,omitempty"`
	Published      string `json:"published,omitempty"`
}

// SubmissionPatch carries a partial update for an existing submission.
// Nil fields are left untouched.
type SubmissionPatch struct {
	Topic             *string `json:"topic,omitempty"`
	JournalName       *string `json:"journalName,omitempty"`
	ShortJournalName  *string `json:"shortJournalName,omitempty"`
	Type              *string `json:"type,omitempty"`
	Author            *string `json:"author,omitempty"`
	Email             *string `json:"email,omitempty"`
	BrandName         *string `json:"brandName,omitempty"`
	AuthorsDepartment *string `json:"authorsDepartment,omitempty"`
	Received          *string `json:"received,omitempty"`
	EditorAssigned    *string `json:"editorAssigned,omitempty"`
	Reviewed          *string `json:"reviewed,omitempty"`
	Revised           *string `json:"revised,omitempty"`
	Published         *string `json:"published,omitempty"`
	ManuscriptNo      *string `json:"manuscriptNo,omitempty"`
	Volume            *int    `json:"volume,omitempty"`
	Issues            *int    `json:"issues,omitempty"`
	PDFNo             *int    `json:"pdfNo,omitempty"`
	DOI               *string `json:"doi,omitempty"`
	ISSN              *string `json:"ISSN,omitempty"`
	ImgPath           *string `json:"imgPath,omitempty"`
	ParentLink        *string `json:"parentLink,omitempty"`
}

// RawReference is one bibliographic entry exactly as the model returns it in
// Stage A, before author reshaping. Keys C001..C010 map to these values.
type RawReference struct {
	Title            string   `json:"title"`
	JournalShortName string   `json:"journalShortName"`
	Authors          []string `json:"authors"`
	Published        string   `json:"published"`
	PageRange        string   `json:"pageRangeOrNumber"`
	Volume           string   `json:"volume"`
	Issues           string   `json:"issues"`
	DOI              string   `json:"DOI"`
	URL              string   `json:"url"`
	ParentLink       string   `json:"parentLink"`
	SubContent       string   `json:"subContent"`
}

// Reference is a bibliographic entry after assembly: the author list is
// flattened into full-name and abbreviated display strings.
type Reference struct {
	Title            string `json:"title"`
	JournalShortName string `json:"journalShortName"`
	AuthorsFull      string `json:"authors_full"`
	AuthorsShort     string `json:"authors_short"`
	Published        string `json:"published"`
	PageRange        string `json:"pageRangeOrNumber"`
	Volume           string `json:"volume"`
	Issues           string `json:"issues"`
	DOI              string `json:"DOI"`
	URL              string `json:"url"`
	ParentLink       string `json:"parentLink"`
	SubContent       string `json:"subContent"`
}

// Sections holds the long-form text produced in Stage C.
type Sections struct {
	Introduction string `json:"introduction"`
	Description  string `json:"description"`
	Summary      string `json:"summary"`
	Abstract     string `json:"abstract"`
	Discussion   string `json:"discussion"`
	Keywords     string `json:"keywords"`
}

// OutputRecord is the final persisted artifact: submission metadata plus all
// generated content and the brand-conditional derived fields.
type OutputRecord struct {
	Title                  string `json:"title"`
	JournalName            string `json:"journalName"`
	ShortJournalName       string `json:"shortJournalName"`
	Type                   string `json:"type"`
	Author                 string `json:"author"`
	Email                  string `json:"email"`
	BrandName              string `json:"brandName"`
	AuthorsDepartment      string `json:"authorsDepartment"`
	JournalYearVolumeIssue string `json:"journalYearVolumeIssue"`

	Introduction string               `json:"introduction"`
	Description  string               `json:"description"`
	Abstract     string               `json:"abstract"`
	Discussion   string               `json:"discussion"`
	Keywords     string               `json:"keywords"`
	Content      map[string]Reference `json:"content"`
	Conclusion   string               `json:"conclusion"`

	DOI            string `json:"doi,omitempty"`
	Received       string `json:"received"`
	EditorAssigned string `json:"editorAssigned"`
	Reviewed       string `json:"reviewed"`
	Revised        string `json:"revised"`
	Published      string `json:"published"`
	Year           int    `json:"year"`
	Month          string `json:"month"`

	ManuscriptNo string `json:"manuscriptNo"`
	QCNo         string `json:"QCNo"`
	PreQCNo      string `json:"preQCNo"`
	RManuNo      string `json:"RManuNo"`

	// Volume and Issues are zero-padded display strings here, unlike the
	// integer fields on SubmissionRecord.
	Volume  string `json:"volume"`
	Issues  string `json:"issues"`
	ISSN    string `json:"ISSN,omitempty"`
	ImgPath string `json:"imgPath,omitempty"`
	PDFNo   int    `json:"pdfNo"`

	ParentLink string `json:"parentLink"`

	FirstNameAuthor  string `json:"firstNameAuthor"`
	CopyrightAuthor  string `json:"copyrightAuthor"`
	AddressForCorres string `json:"addressForCorres"`
	Citation         string `json:"citation"`

	// Language bookkeeping for the render stage. English defaults are set
	// during assembly; the translation pipeline overwrites them.
	Lang     string `json:"lang,omitempty"`
	LangName string `json:"lang_name,omitempty"`
	Preamble string `json:"preamble,omitempty"`
}

// RefKeys returns the reference keys in C001..C010 order. Map iteration
// order is random; every renderer needs the citation sequence.
func (o *OutputRecord) RefKeys() []string {
	keys := make([]string, 0, len(o.Content))
	for i := 1; i <= len(o.Content); i++ {
		keys = append(keys, RefKey(i))
	}
	return keys
}

// RefKey formats a 1-based reference index as C001-style.
func RefKey(i int) string {
	return fmt.Sprintf("C%03d", i)
}

// TranslationRequest asks for an existing output record to be re-rendered in
// another language.
type TranslationRequest struct {
	ID       string `json:"id"`
	Language string `json:"language"`
}
