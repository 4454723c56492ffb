package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// baseLanguage returns the language subtag preceding the first hyphen,
// or the whole string when no hyphen is present.
func baseLanguage(code string) string {
	if code == "" {
		return ""
	}
	if idx := strings.IndexByte(code, '-'); idx > 0 {
		return code[:idx]
	}
	return code
}

// normalizeLocale normalizes a single locale identifier by replacing
// underscores with hyphens and trimming whitespace. Applied to loader
// and environment input only, never inside the resolution chain.
func normalizeLocale(code string) string {
	return strings.ReplaceAll(strings.TrimSpace(code), "_", "-")
}

// canonicalLocale parses the identifier and returns its canonical BCP-47
// form ("es_es" becomes "es-ES"). Unparseable input is returned
// normalized but otherwise untouched.
func canonicalLocale(code string) string {
	normalized := normalizeLocale(code)
	if normalized == "" {
		return ""
	}

	tag, err := language.Parse(normalized)
	if err != nil {
		return normalized
	}

	value := tag.String()
	if value == "" || value == "und" {
		return normalized
	}
	return value
}
