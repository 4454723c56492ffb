package locale

import (
	"os"
	"sort"
	"strconv"
	"strings"
)

// EnvLocale reads the host locale signal from LC_ALL, LC_MESSAGES and
// LANG, in that precedence order, and returns it as a hyphenated tag
// ("en_US.UTF-8" becomes "en-US"). Returns an empty string when the
// environment carries no usable signal; the resolver treats that as
// "no environment locale" and falls through to the default.
func EnvLocale() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if tag := parsePosixLocale(os.Getenv(key)); tag != "" {
			return tag
		}
	}
	return ""
}

// parsePosixLocale converts a POSIX locale value ("es_ES.UTF-8@euro")
// into a BCP-47-shaped tag. C and POSIX carry no language signal.
func parsePosixLocale(value string) string {
	value = strings.TrimSpace(value)
	if idx := strings.IndexByte(value, '@'); idx >= 0 {
		value = value[:idx]
	}
	if idx := strings.IndexByte(value, '.'); idx >= 0 {
		value = value[:idx]
	}
	if value == "" || value == "C" || value == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(value, "_", "-")
}

// MatchAcceptLanguage scans an Accept-Language header in descending
// q-value order and returns the first registry code matched exactly or
// by base language, or an empty string when nothing matches. Servers
// resolving per-request feed the result to ResolveInitial as the
// environment locale.
func MatchAcceptLanguage(header string, registry *Registry) string {
	if header == "" || registry == nil {
		return ""
	}

	type candidate struct {
		tag string
		q   float64
	}
	var candidates []candidate

	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		segments := strings.Split(part, ";")
		tag := strings.TrimSpace(segments[0])
		if tag == "" || tag == "*" {
			continue
		}

		q := 1.0
		for _, segment := range segments[1:] {
			segment = strings.TrimSpace(segment)
			if strings.HasPrefix(segment, "q=") {
				if value, err := strconv.ParseFloat(segment[2:], 64); err == nil {
					q = value
				}
			}
		}
		candidates = append(candidates, candidate{tag: tag, q: q})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].q > candidates[j].q
	})

	for _, c := range candidates {
		if registry.Has(c.tag) {
			return c.tag
		}
		if desc, ok := registry.FirstByBaseLanguage(baseLanguage(c.tag)); ok {
			return desc.Code
		}
	}

	return ""
}
