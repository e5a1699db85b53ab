package editor

import "slices"

// DefaultLanguage is used when neither config nor flags name one.
const DefaultLanguage = "python"

// languages holds the values accepted by the analysis service, in the order
// the language picker shows them.
var languages = []Language{
	{ID: "python", Name: "Python", Ext: []string{".py"}},
	{ID: "javascript", Name: "JavaScript", Ext: []string{".js", ".mjs", ".cjs", ".jsx"}},
	{ID: "typescript", Name: "TypeScript", Ext: []string{".ts", ".tsx"}},
	{ID: "java", Name: "Java", Ext: []string{".java"}},
	{ID: "c", Name: "C", Ext: []string{".c", ".h"}},
	{ID: "cpp", Name: "C++", Ext: []string{".cpp", ".cc", ".cxx", ".hpp", ".hh"}},
	{ID: "csharp", Name: "C#", Ext: []string{".cs"}},
	{ID: "go", Name: "Go", Ext: []string{".go"}},
	{ID: "rust", Name: "Rust", Ext: []string{".rs"}},
	{ID: "ruby", Name: "Ruby", Ext: []string{".rb"}},
	{ID: "php", Name: "PHP", Ext: []string{".php"}},
}

// Language describes one selectable source language.
type Language struct {
	ID   string
	Name string
	Ext  []string
}

// Languages returns a copy of the supported languages.
func Languages() []Language {
	return slices.Clone(languages)
}

// IsLanguage reports whether id is a supported language identifier.
func IsLanguage(id string) bool {
	_, ok := LookupLanguage(id)
	return ok
}

// LookupLanguage returns the language with the given identifier.
func LookupLanguage(id string) (Language, bool) {
	for _, l := range languages {
		if l.ID == id {
			return l, true
		}
	}
	return Language{}, false
}

// DetectLanguage guesses the language from a file extension (".py", ".go").
// The second result is false when the extension is not recognized.
func DetectLanguage(ext string) (string, bool) {
	for _, l := range languages {
		if slices.Contains(l.Ext, ext) {
			return l.ID, true
		}
	}
	return "", false
}
