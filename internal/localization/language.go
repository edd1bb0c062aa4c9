package localization

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"HealthyHabits/internal/apperrors"
	"HealthyHabits/internal/models"
)

var (
	English = language.English
	Hindi   = language.Hindi
)

// Supported display languages, in form order.
var Supported = []language.Tag{English, Hindi}

var matcher = language.NewMatcher(Supported)

var labels = map[language.Tag]map[models.Category]string{
	English: {
		models.CategoryDiet:     "Diet Suggestions",
		models.CategoryExercise: "Exercise Suggestions",
		models.CategorySleep:    "Sleep Suggestions",
		models.CategoryGeneral:  "General Tips",
	},
	Hindi: {
		models.CategoryDiet:     "आहार सुझाव",
		models.CategoryExercise: "व्यायाम सुझाव",
		models.CategorySleep:    "नींद सुझाव",
		models.CategoryGeneral:  "सामान्य सलाह",
	},
}

// ParseLanguage accepts a BCP 47 code ("hi", "en-IN") or a language name in
// English or in the language itself ("Hindi", "हिन्दी"). Empty means English.
func ParseLanguage(s string) (language.Tag, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return English, nil
	}
	for _, tag := range Supported {
		if strings.EqualFold(s, display.English.Tags().Name(tag)) || s == display.Self.Name(tag) {
			return tag, nil
		}
	}

	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, apperrors.NewValidationError("Unsupported language: "+s, "language", s)
	}
	_, idx, conf := matcher.Match(tag)
	if conf < language.High {
		return language.Und, apperrors.NewValidationError("Unsupported language: "+s, "language", s)
	}
	return Supported[idx], nil
}

// Label is the heading for a category in the given language. Languages without
// their own headings use English ones.
func Label(tag language.Tag, c models.Category) string {
	if l, ok := labels[tag]; ok {
		return l[c]
	}
	return labels[English][c]
}

// Name is the English name of the language, e.g. "Hindi".
func Name(tag language.Tag) string {
	return display.English.Tags().Name(tag)
}

// Languages describes the supported languages for the profile form.
func Languages() []models.LanguageInfo {
	out := make([]models.LanguageInfo, 0, len(Supported))
	for _, tag := range Supported {
		out = append(out, models.LanguageInfo{Code: tag.String(), Label: display.Self.Name(tag)})
	}
	return out
}
