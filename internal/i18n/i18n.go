package i18n

import (
	"encoding/json"
	"sort"
	"strings"
)

// Language identifies a display language.
type Language string

const (
	English    Language = "en"
	Vietnamese Language = "vi"
)

// Default is the language used when none is configured.
const Default = English

// Text holds one string per language.
type Text map[Language]string

// Get returns the string for lang, falling back to the default language and
// then to any available translation.
func (t Text) Get(lang Language) string {
	if s, ok := t[lang]; ok {
		return s
	}
	if s, ok := t[Default]; ok {
		return s
	}
	for _, l := range t.Languages() {
		return t[l]
	}
	return ""
}

// Has reports whether an explicit translation exists for lang.
func (t Text) Has(lang Language) bool {
	_, ok := t[lang]
	return ok
}

// Languages returns the languages present in t in sorted order.
func (t Text) Languages() []Language {
	langs := make([]Language, 0, len(t))
	for l := range t {
		langs = append(langs, l)
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i] < langs[j] })
	return langs
}

// UnmarshalJSON accepts either an object keyed by language or a bare string,
// which is treated as the default-language text.
func (t *Text) UnmarshalJSON(b []byte) error {
	var plain string
	if err := json.Unmarshal(b, &plain); err == nil {
		*t = Text{Default: plain}
		return nil
	}
	var m map[Language]string
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	*t = Text(m)
	return nil
}

// Next returns the language after current in langs, wrapping around.
// Unknown current values return the first entry.
func Next(current Language, langs []Language) Language {
	if len(langs) == 0 {
		return current
	}
	for i, l := range langs {
		if l == current {
			return langs[(i+1)%len(langs)]
		}
	}
	return langs[0]
}

// Parse converts s to a Language, returning Default for the empty string.
func Parse(s string) Language {
	if s == "" {
		return Default
	}
	return Language(s)
}

// Lookup returns the supported language named s. The empty string maps to
// Default.
func Lookup(s string) (Language, bool) {
	lang := Parse(strings.ToLower(strings.TrimSpace(s)))
	for _, l := range Supported {
		if l == lang {
			return l, true
		}
	}
	return "", false
}

// SupportedList returns the supported language codes joined for messages.
func SupportedList() string {
	codes := make([]string, len(Supported))
	for i, l := range Supported {
		codes[i] = string(l)
	}
	return strings.Join(codes, ", ")
}

// Supported lists the languages the UI can switch between, in toggle order.
var Supported = []Language{English, Vietnamese}
