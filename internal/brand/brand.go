// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package brand consolidates everything that varies per publishing brand:
// citation grammar, HTML section layout, milestone day-counting policy,
// manuscript-number prefixing, and LaTeX font/preamble selection. The rest
// of the pipeline looks a profile up once and carries it through instead of
// branching on the brand name at every call site.
package brand

// CitationStyle selects one of the citation grammars in the cite package.
type CitationStyle int

const (
	// StyleQuotedTitle: `Surname, First M. "Title." ShortName Vol (Year):Page.`
	StyleQuotedTitle CitationStyle = iota
	// StyleSemicolon: `Surname FM. Title. ShortName. Year;Vol(Issue):Page.`
	StyleSemicolon
	// StyleParenYear: `Surname FM (Year) Title. ShortName Vol: Page.`
	StyleParenYear
	// StyleYearAfterJournal: `Surname FM, Title. ShortName(Year) Vol: Page.`
	StyleYearAfterJournal
	// StyleDefault is the semicolon grammar with the DOI appended.
	StyleDefault
)

// Profile is the single extension point for brand behavior.
type Profile struct {
	// Name is the template identifier as submitted, e.g. "alliedAcademy.tex".
	Name string

	// Key is Name without the .tex suffix, used for template and font lookup.
	Key string

	// WeekdayOnly selects the milestone day-counting policy: step forward
	// counting Mon-Fri only, instead of calendar days with weekend rollover.
	WeekdayOnly bool

	// Offsets are the per-milestone day counts
	// [editorAssigned, reviewed, revised, published].
	Offsets [4]int

	// RecapTitle re-capitalizes each colon-delimited segment of the
	// generated title independently.
	RecapTitle bool

	// QCPrefix derives QCNo/preQCNo/RManuNo by prefixing the last dash
	// segment of the manuscript number with Q-/P-/R-.
	QCPrefix bool

	// Citation selects the citation grammar.
	Citation CitationStyle

	// Sections is the ordered set of body sections in the HTML preview.
	// Entries without content (Acknowledgement, Conflict of Interest)
	// render as empty placeholders.
	Sections []string

	// AuthorYearMarkers replaces numeric citation markers with
	// "(Name et al., year)" forms in rendered output.
	AuthorYearMarkers bool

	// CiteHint is the citation-format description embedded in the
	// reference-harvesting prompt so the model knows the house style.
	CiteHint string
}

const (
	AlliedAcademy = "alliedAcademy.tex"
	Hilaris       = "hilaris.tex"
	Omics         = "omics.tex"
	IOMC          = "iomc.tex"
	Irjesti       = "Irjesti.tex"
)

var profiles = map[string]Profile{
	AlliedAcademy: {
		Name:        AlliedAcademy,
		Key:         "alliedAcademy",
		WeekdayOnly: true,
		Offsets:     [4]int{2, 14, 7, 7},
		RecapTitle:  true,
		Citation:    StyleSemicolon,
		Sections:    []string{"Introduction", "Conclusion"},
		CiteHint: "author names (first name plus the first letters of the remaining names," +
			" e.g. Arupa Nanda Swain becomes Arupa NS), at most three authors, comma separated." +
			" Then the article title. Then the journal short name. Then year;Volume:PageRangeOrNumber." +
			" Example: 'author n, author n, author n. Title. JShort. 2023;12:45-52.'",
	},
	Hilaris: {
		Name:     Hilaris,
		Key:      "hilaris",
		Offsets:  [4]int{2, 14, 5, 7},
		QCPrefix: true,
		Citation: StyleQuotedTitle,
		Sections: []string{"Introduction", "Description", "Conclusion", "Acknowledgement", "Conflict of Interest"},
		CiteHint: "full author names, three to six authors, comma separated. Then the article title" +
			" in double quotes. Then journal short name Volume (year):PageRangeOrNumber, ending with" +
			" a full stop. Example: 'First Author, Second Author, Third Author. \"Title.\" JShort 12 (2023):45.'",
	},
	Omics: {
		Name:     Omics,
		Key:      "omics",
		Offsets:  [4]int{2, 14, 5, 7},
		Citation: StyleParenYear,
		Sections: []string{"Abstract", "Keywords", "Introduction", "Description", "Conclusion"},
		CiteHint: "author names (first name plus the first letters of the remaining names), three to" +
			" six authors, comma separated, then the year in parentheses, then the article title," +
			" then journal short name Volume:PageRangeOrNumber." +
			" Example: 'author n, author n, author n (2023) Title. JShort 12:45.'",
	},
	IOMC: {
		Name:     IOMC,
		Key:      "iomc",
		Offsets:  [4]int{2, 14, 5, 7},
		Citation: StyleYearAfterJournal,
		Sections: []string{"Introduction", "Description", "Conclusion"},
		CiteHint: "author names (first name plus the first letters of the remaining names), at most" +
			" three authors, comma separated. Then the article title. Then journal short name (year)" +
			" Volume:PageRangeOrNumber. Example: 'author n, author n. Title. JShort(2023) 12:45.'",
	},
	Irjesti: {
		Name:              Irjesti,
		Key:               "Irjesti",
		Offsets:           [4]int{2, 14, 5, 7},
		Citation:          StyleDefault,
		Sections:          []string{"Introduction", "Description", "Discussion", "Conclusion"},
		AuthorYearMarkers: true,
		CiteHint: "author names (first name plus the first letters of the remaining names), at most" +
			" three authors, comma separated. Then the article title. Then the journal short name." +
			" Then year;Volume:PageRangeOrNumber, with the DOI appended." +
			" Example: 'author n, author n. Title. JShort. 2023;12:45. doi:10.1000/xyz'",
	},
}

// Known reports whether name is one of the supported brand templates.
func Known(name string) bool {
	_, ok := profiles[name]
	return ok
}

// Names returns the supported brand template names.
func Names() []string {
	return []string{AlliedAcademy, Hilaris, Omics, IOMC, Irjesti}
}

// Lookup returns the profile for a brand template name. Unknown names get
// the default profile: calendar-day milestones, semicolon citation grammar
// with DOI, and the common three-section HTML body.
func Lookup(name string) Profile {
	if p, ok := profiles[name]; ok {
		return p
	}
	return Profile{
		Name:     name,
		Key:      "default",
		Offsets:  [4]int{2, 14, 5, 7},
		Citation: StyleDefault,
		Sections: []string{"Introduction", "Description", "Conclusion"},
		CiteHint: "author names (first name plus the first letters of the remaining names), at most" +
			" three authors, comma separated. Then the article title. Then the journal short name." +
			" Then year;Volume:PageRangeOrNumber.",
	}
}
