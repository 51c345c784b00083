// Package locale installs the user interface translations. Message ids are
// the English strings, so English needs no catalog.
package locale

import (
	"embed"
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"
)

//go:embed po/*.po
var catalogs embed.FS

// Domain is the gettext domain every string lives in
const Domain = "default"

// Available lists the languages with a catalog, plus English
func Available() []string {
	langs := []string{"en"}
	entries, _ := catalogs.ReadDir("po")
	for _, e := range entries {
		langs = append(langs, strings.TrimSuffix(e.Name(), ".po"))
	}
	return langs
}

// Load makes lang the active language. An empty or English lang clears any
// loaded catalog.
func Load(lang string) error {
	lang = normalize(lang)

	po := gotext.NewPo()
	if lang != "en" {
		data, err := catalogs.ReadFile("po/" + lang + ".po")
		if err != nil {
			return fmt.Errorf("no translations for %q: %w", lang, err)
		}
		po.Parse(data)
	}

	l := gotext.NewLocale("", lang)
	l.AddTranslator(Domain, po)
	gotext.SetStorage(l)
	return nil
}

// normalize turns "fr_FR.UTF-8" into "fr"
func normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(lang, "_-."); i >= 0 {
		lang = lang[:i]
	}
	if lang == "" || lang == "c" {
		return "en"
	}
	return lang
}
