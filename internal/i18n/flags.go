package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// The flag selector shows one country token per language family. Several
// tokens may resolve to the same tag family; selection always lands on a
// tag that is actually present on the label.

// countryLanguages maps a flag token to the language it stands for when no
// available tag carries that region explicitly.
var countryLanguages = map[string]string{
	"US": "en",
	"GB": "en",
	"ES": "es",
	"MX": "es",
	"FR": "fr",
	"DE": "de",
	"JP": "ja",
	"IN": "hi",
	"FI": "fi",
}

// CountryForTag converts a language tag to the country token displayed for
// it: the explicit region when the tag has one ("es-ES" → "ES"), otherwise
// the region x/text infers for the bare language ("en" → "US").
func CountryForTag(tag string) string {
	if i := strings.IndexByte(tag, '-'); i > 0 && len(tag)-i-1 == 2 {
		return strings.ToUpper(tag[i+1:])
	}

	if t, err := language.Parse(tag); err == nil {
		if region, conf := t.Region(); conf >= language.Low {
			return region.String()
		}
	}
	return strings.ToUpper(tag)
}

// TagForCountry converts a selected country token back to a language tag
// present in available. Preference order: a tag with that explicit region, a
// tag whose inferred region matches, then the language conventionally spoken
// there. An unmappable token falls back to the first available tag rather
// than leaving the selection undefined.
func TagForCountry(country string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	country = strings.ToUpper(country)

	for _, tag := range available {
		if i := strings.IndexByte(tag, '-'); i > 0 && strings.EqualFold(tag[i+1:], country) {
			return tag
		}
	}

	for _, tag := range available {
		if CountryForTag(tag) == country {
			return tag
		}
	}

	if lang, ok := countryLanguages[country]; ok {
		for _, tag := range available {
			if tag == lang || strings.HasPrefix(tag, lang+"-") {
				return tag
			}
		}
	}

	return available[0]
}

// Countries returns the deduplicated country tokens for the available tags,
// preserving the tag order.
func Countries(available []string) []string {
	seen := make(map[string]struct{}, len(available))
	out := make([]string, 0, len(available))
	for _, tag := range available {
		c := CountryForTag(tag)
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// MatchDisplayLocale picks the display language for a label: the requested
// locale when it is a member of available, a close match when x/text is
// confident about one, else the first available entry.
func MatchDisplayLocale(requested string, available []string) string {
	if len(available) == 0 {
		return "en"
	}
	if requested == "" {
		return available[0]
	}

	for _, tag := range available {
		if strings.EqualFold(tag, requested) {
			return tag
		}
	}

	want, err := language.Parse(requested)
	if err != nil {
		return available[0]
	}
	tags := make([]language.Tag, 0, len(available))
	for _, tag := range available {
		t, parseErr := language.Parse(tag)
		if parseErr != nil {
			t = language.Und
		}
		tags = append(tags, t)
	}
	if _, index, conf := language.NewMatcher(tags).Match(want); conf >= language.High {
		return available[index]
	}
	return available[0]
}
