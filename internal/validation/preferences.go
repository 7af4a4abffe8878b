package validation

import (
	"fmt"

	"github.com/iudanet/tasktracker/internal/models"
)

// ValidateTheme checks the theme mode against the supported set.
func ValidateTheme(theme string) error {
	switch theme {
	case models.ThemeSystem, models.ThemeLight, models.ThemeDark:
		return nil
	default:
		return fmt.Errorf("unknown theme %q: use %s, %s or %s", theme, models.ThemeSystem, models.ThemeLight, models.ThemeDark)
	}
}

// ValidateLanguage checks the language code against the supported set.
func ValidateLanguage(lang string) error {
	switch lang {
	case models.LanguageSystem, models.LanguageEnglish, models.LanguageRussian:
		return nil
	default:
		return fmt.Errorf("unknown language %q: use %s, %s or %s", lang, models.LanguageSystem, models.LanguageEnglish, models.LanguageRussian)
	}
}
