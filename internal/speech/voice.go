package speech

import (
	"strings"

	"golang.org/x/text/language"
)

// Voice identifies one synthesizer voice and the locale it speaks.
type Voice struct {
	// Name is the synthesizer's own identifier for the voice.
	Name string
	// Lang is the locale the voice speaks, e.g. "en-US".
	Lang string
}

func base(tag string) string {
	if t, err := language.Parse(tag); err == nil {
		b, _ := t.Base()
		return b.String()
	}
	if i := strings.IndexByte(tag, '-'); i > 0 {
		return strings.ToLower(tag[:i])
	}
	return strings.ToLower(tag)
}

// MatchVoice selects the voice for a language: exact locale match first,
// then same base language, then the first available voice. Returns false
// only when there are no voices at all.
func MatchVoice(voices []Voice, lang string) (Voice, bool) {
	if len(voices) == 0 {
		return Voice{}, false
	}

	for _, v := range voices {
		if strings.EqualFold(v.Lang, lang) {
			return v, true
		}
	}

	want := base(lang)
	for _, v := range voices {
		if base(v.Lang) == want {
			return v, true
		}
	}

	return voices[0], true
}

// ParseVoices parses a "lang=voice,lang=voice" option string into a voice
// table. Malformed entries are skipped.
func ParseVoices(s string) []Voice {
	var out []Voice
	for _, pair := range strings.Split(s, ",") {
		lang, name, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || lang == "" || name == "" {
			continue
		}
		out = append(out, Voice{Name: name, Lang: lang})
	}
	return out
}
