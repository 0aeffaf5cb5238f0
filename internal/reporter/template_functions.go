package reporter

import (
	"html/template"
	"strings"
	"unicode"
)

// titleCase upper-cases the first letter of each word.
func titleCase(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "_", " "))
	for i, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

func templateFunctions() template.FuncMap {
	return template.FuncMap{
		"title": titleCase,
		"inc": func(i int) int {
			return i + 1
		},
		"joinStrings": func(s []string, sep string) string {
			return strings.Join(s, sep)
		},
	}
}
