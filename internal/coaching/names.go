package coaching

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CategoryName turns a category key such as "personal_development" into
// "Personal Development".
func CategoryName(category string) string {
	caser := cases.Title(language.English)
	return caser.String(strings.ReplaceAll(category, "_", " "))
}

func categoryNames(categories []string) []string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, CategoryName(c))
	}
	return names
}
