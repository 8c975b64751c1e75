// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package brand

import (
	_ "embed"
	"fmt"

	"go.yaml.in/yaml/v3"
)

//go:embed langfonts.yaml
var langFontsYAML []byte

type langEntry struct {
	Name string `yaml:"name"`
	Font string `yaml:"font"`
}

type fontTable struct {
	BrandFonts map[string]string    `yaml:"brand_fonts"`
	Languages  map[string]langEntry `yaml:"languages"`
}

var fonts fontTable

func init() {
	if err := yaml.Unmarshal(langFontsYAML, &fonts); err != nil {
		panic(fmt.Sprintf("brand: bad langfonts.yaml: %v", err))
	}
}

// DefaultLang is the language every record starts in.
const DefaultLang = "en"

// LangName returns the polyglossia language name for a translation target
// code, or "english" when the code is unknown.
func LangName(code string) string {
	if e, ok := fonts.Languages[code]; ok {
		return e.Name
	}
	return "english"
}

// KnownLang reports whether a translation target code has font support.
func KnownLang(code string) bool {
	_, ok := fonts.Languages[code]
	return ok
}

// Preamble builds the font and polyglossia block injected into the LaTeX
// template for a brand and target language. English uses the brand's house
// font alone; other languages add their script font on top of it.
func (p Profile) Preamble(lang string) string {
	brandFont, ok := fonts.BrandFonts[p.Key]
	if !ok {
		brandFont = fonts.BrandFonts["default"]
	}
	name := LangName(lang)
	pre := "\\usepackage{polyglossia}\n\\setdefaultlanguage{" + name + "}\n" + brandFont
	if lang == DefaultLang || name == "english" {
		return pre
	}
	if e, ok := fonts.Languages[lang]; ok && e.Font != "" {
		pre += "\n" + e.Font
	}
	return pre
}
