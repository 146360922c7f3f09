package language

// Language is the detected document language.
type Language string

const (
	Norwegian Language = "no"
	English   Language = "en"
	Unknown   Language = ""
)

// Parse maps a config/user string onto a Language, defaulting to Norwegian.
func Parse(s string) Language {
	switch s {
	case "en":
		return English
	case "no":
		return Norwegian
	}
	return Norwegian
}
