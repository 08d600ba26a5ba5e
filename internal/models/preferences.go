package models

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Preferences are console display settings. They survive logout.
type Preferences struct {
	Theme    Theme  `json:"theme"`
	Language Locale `json:"language"`
}

func DefaultPreferences() Preferences {
	return Preferences{Theme: ThemeLight, Language: LocaleEnglish}
}

func (p Preferences) ToggledTheme() Theme {
	if p.Theme == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func (p Preferences) ToggledLanguage() Locale {
	if p.Language == LocaleArabic {
		return LocaleEnglish
	}
	return LocaleArabic
}
