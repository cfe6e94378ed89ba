package models

// Language pairs a language code with its human-readable display name.
// The display name is what the generation capability receives.
type Language struct {
	Code string
	Name string
}

// SupportedLanguages lists every language the catalog can hold
// translations for. Codes follow the original dataset convention,
// including the Android-style Chinese region codes.
var SupportedLanguages = []Language{
	{Code: "en", Name: "English"},
	{Code: "ar", Name: "Arabic"},
	{Code: "de", Name: "German"},
	{Code: "es", Name: "Spanish"},
	{Code: "fr", Name: "French"},
	{Code: "in", Name: "Indonesian"},
	{Code: "it", Name: "Italian"},
	{Code: "ja", Name: "Japanese"},
	{Code: "ko", Name: "Korean"},
	{Code: "pl", Name: "Polish"},
	{Code: "pt", Name: "Portuguese"},
	{Code: "ru", Name: "Russian"},
	{Code: "th", Name: "Thai"},
	{Code: "tr", Name: "Turkish"},
	{Code: "vi", Name: "Vietnamese"},
	{Code: "zh-rCN", Name: "Chinese (Simplified)"},
	{Code: "zh-rTW", Name: "Chinese (Traditional)"},
}

// LanguageName resolves a language code to its display name,
// falling back to English for unknown codes.
func LanguageName(code string) string {
	for _, l := range SupportedLanguages {
		if l.Code == code {
			return l.Name
		}
	}
	return "English"
}

// IsSupportedLanguage reports whether the code is in the registry.
func IsSupportedLanguage(code string) bool {
	for _, l := range SupportedLanguages {
		if l.Code == code {
			return true
		}
	}
	return false
}
