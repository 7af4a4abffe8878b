package models

// Theme modes
const (
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

// Language codes
const (
	LanguageSystem  = "system"
	LanguageEnglish = "en"
	LanguageRussian = "ru"
)

// Preferences holds per-device display settings.
type Preferences struct {
	Theme    string `json:"theme"`
	Language string `json:"language"`
}

// DefaultPreferences returns preferences for a fresh install.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:    ThemeSystem,
		Language: LanguageSystem,
	}
}
