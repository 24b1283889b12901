package assistant

// languageNames maps a supported language code to the name embedded in
// prompts so the model answers in that language. This is also the full set
// of selectable UI languages.
var languageNames = map[string]string{
	"en": "English",
	"hi": "Hindi (हिंदी)",
	"bn": "Bengali (বাংলা)",
	"te": "Telugu (తెలుగు)",
	"mr": "Marathi (मराठी)",
	"ta": "Tamil (தமிழ்)",
	"gu": "Gujarati (ગુજરાતી)",
	"kn": "Kannada (ಕನ್ನಡ)",
	"pa": "Punjabi (ਪੰਜਾਬੀ)",
	"ml": "Malayalam (മലയാളം)",
	"or": "Odia (ଓଡ଼ିଆ)",
	"as": "Assamese (অসমীয়া)",
}

// LanguageName returns the prompt-facing name for a code, defaulting to
// English for anything unknown.
func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return "English"
}

// IsSupportedLanguage reports whether code is in the fixed selectable set.
func IsSupportedLanguage(code string) bool {
	_, ok := languageNames[code]
	return ok
}
