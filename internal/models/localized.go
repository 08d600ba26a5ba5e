package models

import "strings"

// Locale selects one side of a LocalizedText.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleArabic  Locale = "ar"
)

// ParseLocale maps a query value to a Locale, falling back to English.
func ParseLocale(value string) Locale {
	if strings.EqualFold(strings.TrimSpace(value), string(LocaleArabic)) {
		return LocaleArabic
	}
	return LocaleEnglish
}

func (l Locale) Valid() bool {
	return l == LocaleEnglish || l == LocaleArabic
}

// LocalizedText holds the primary (English) and alternate (Arabic) variant of
// a user facing string.
type LocalizedText struct {
	Primary   string `bson:"primary" json:"primary" yaml:"primary"`
	Alternate string `bson:"alternate" json:"alternate" yaml:"alternate"`
}

// Text returns the variant for locale. An empty alternate falls back to the
// primary text so renderers never show a blank label.
func (t LocalizedText) Text(locale Locale) string {
	if locale == LocaleArabic && strings.TrimSpace(t.Alternate) != "" {
		return t.Alternate
	}
	return t.Primary
}

func (t LocalizedText) IsZero() bool {
	return t.Primary == "" && t.Alternate == ""
}

func (t LocalizedText) Trimmed() LocalizedText {
	return LocalizedText{
		Primary:   strings.TrimSpace(t.Primary),
		Alternate: strings.TrimSpace(t.Alternate),
	}
}

func cloneTexts(values []LocalizedText) []LocalizedText {
	if values == nil {
		return nil
	}
	out := make([]LocalizedText, len(values))
	copy(out, values)
	return out
}

func cloneTextPtr(value *LocalizedText) *LocalizedText {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}
