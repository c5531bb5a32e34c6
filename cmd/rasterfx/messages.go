package main

import (
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Operator messages. The English text doubles as the catalog key.
const (
	msgAvailable   = "Available filters:"
	msgPrompt      = "Enter the name of the filter to apply ('%s' applies all filters and saves every result):"
	msgNotFound    = "Selected filter not found."
	msgApplied     = "Filter applied successfully. Result saved to %s."
	msgAppliedName = "Filter %s applied successfully. Result saved to %s."
	msgFilterError = "Error applying filter %s: %v"
	msgImageError  = "Error processing the image: %v"
	msgSummary     = "%d of %d filters failed."
	msgNoSelection = "No filter selected."
)

// translations lists the German text for every message.
var translations = map[string]string{
	msgAvailable:   "Verfügbare Filter:",
	msgPrompt:      "Geben Sie den Namen des Filters ein, den Sie anwenden möchten ('%s' wendet alle Filter an und speichert alle Ergebnisse):",
	msgNotFound:    "Ausgewählter Filter nicht gefunden.",
	msgApplied:     "Filter erfolgreich angewendet. Ergebnis gespeichert unter %s.",
	msgAppliedName: "Filter %s erfolgreich angewendet. Ergebnis gespeichert unter %s.",
	msgFilterError: "Fehler beim Anwenden des Filters %s: %v",
	msgImageError:  "Fehler beim Verarbeiten des Bildes: %v",
	msgSummary:     "%d von %d Filtern fehlgeschlagen.",
	msgNoSelection: "Kein Filter ausgewählt.",
}

var supported = []language.Tag{language.English, language.German}

// newCatalog builds the message catalog for all supported languages.
func newCatalog() (catalog.Catalog, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, de := range translations {
		if err := b.SetString(language.English, key, key); err != nil {
			return nil, err
		}
		if err := b.SetString(language.German, key, de); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// matchLanguage picks the supported language closest to lang. An empty
// lang falls back to the LANG environment variable, then to English.
func matchLanguage(lang string) language.Tag {
	if lang == "" {
		// LANG looks like "de_DE.UTF-8".
		lang, _, _ = strings.Cut(os.Getenv("LANG"), ".")
		lang = strings.ReplaceAll(lang, "_", "-")
	}
	if lang == "" || lang == "C" || lang == "POSIX" {
		return language.English
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return language.English
	}
	_, idx, conf := language.NewMatcher(supported).Match(tag)
	if conf == language.No {
		return language.English
	}
	return supported[idx]
}

// newPrinter returns a printer for the language selected by lang.
func newPrinter(lang string) (*message.Printer, error) {
	cat, err := newCatalog()
	if err != nil {
		return nil, err
	}
	return message.NewPrinter(matchLanguage(lang), message.Catalog(cat)), nil
}
