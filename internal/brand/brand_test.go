// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package brand

import (
	"strings"
	"testing"
)

func TestLookupKnownBrands(t *testing.T) {
	for _, name := range Names() {
		p := Lookup(name)
		if p.Name != name {
			t.Errorf("Lookup(%q).Name = %q", name, p.Name)
		}
		if !Known(name) {
			t.Errorf("Known(%q) = false", name)
		}
		if len(p.Sections) == 0 {
			t.Errorf("Lookup(%q) has no sections", name)
		}
		if p.CiteHint == "" {
			t.Errorf("Lookup(%q) has no citation hint", name)
		}
	}
}

func TestLookupUnknownFallsBack(t *testing.T) {
	p := Lookup("somethingElse.tex")
	if Known("somethingElse.tex") {
		t.Fatal("unexpected known brand")
	}
	if p.Key != "default" {
		t.Errorf("Key = %q, want default", p.Key)
	}
	if p.WeekdayOnly {
		t.Error("default profile must count calendar days")
	}
	if p.Offsets != [4]int{2, 14, 5, 7} {
		t.Errorf("Offsets = %v", p.Offsets)
	}
	if p.Citation != StyleDefault {
		t.Errorf("Citation = %v, want StyleDefault", p.Citation)
	}
}

func TestBrandPolicies(t *testing.T) {
	allied := Lookup(AlliedAcademy)
	if !allied.WeekdayOnly || allied.Offsets != [4]int{2, 14, 7, 7} {
		t.Errorf("alliedAcademy policy wrong: weekdayOnly=%v offsets=%v", allied.WeekdayOnly, allied.Offsets)
	}
	if !allied.RecapTitle {
		t.Error("alliedAcademy must recapitalize titles")
	}

	hilaris := Lookup(Hilaris)
	if hilaris.WeekdayOnly {
		t.Error("hilaris counts calendar days")
	}
	if !hilaris.QCPrefix {
		t.Error("hilaris derives QC numbers")
	}

	if !Lookup(Irjesti).AuthorYearMarkers {
		t.Error("Irjesti uses author-year citation markers")
	}
}

func TestPreambleEnglish(t *testing.T) {
	pre := Lookup(Hilaris).Preamble(DefaultLang)
	if !strings.Contains(pre, `\setdefaultlanguage{english}`) {
		t.Errorf("missing english polyglossia line:\n%s", pre)
	}
	if !strings.Contains(pre, "ArchivoNarrow") {
		t.Errorf("hilaris preamble missing house font:\n%s", pre)
	}
	if strings.Contains(pre, `\newfontfamily`) {
		t.Errorf("english preamble must not add a script font:\n%s", pre)
	}
}

func TestPreambleTranslated(t *testing.T) {
	pre := Lookup(Omics).Preamble("hi")
	if !strings.Contains(pre, `\setdefaultlanguage{hindi}`) {
		t.Errorf("missing hindi polyglossia line:\n%s", pre)
	}
	if !strings.Contains(pre, "NotoSansDevanagari") {
		t.Errorf("missing devanagari font:\n%s", pre)
	}
	if !strings.Contains(pre, "Times New Roman") {
		t.Errorf("missing brand house font:\n%s", pre)
	}
}

func TestPreambleUnknownLang(t *testing.T) {
	if KnownLang("xx") {
		t.Fatal("xx should be unknown")
	}
	pre := Lookup(IOMC).Preamble("xx")
	if !strings.Contains(pre, `\setdefaultlanguage{english}`) {
		t.Errorf("unknown lang must fall back to english:\n%s", pre)
	}
}

func TestLangName(t *testing.T) {
	cases := []struct {
		code, want string
	}{
		{"ta", "tamil"},
		{"ja", "japanese"},
		{"ar", "arabic"},
		{"fr", "french"},
		{"zz", "english"},
	}
	for _, c := range cases {
		if got := LangName(c.code); got != c.want {
			t.Errorf("LangName(%q) = %q, want %q", c.code, got, c.want)
		}
	}
}
