package code

import (
	"fmt"
	"reflect"
)

// lang stores the English and Chinese text of a message.
type lang struct {
	en    string
	zh_cn string
}

// Default language is English.
var lng = "en"

const FALLBACK_LNG = "en"

// GetMessage returns the message for the default language, falling
// back to English when the field is missing or empty.
func (l lang) GetMessage() string {
	return l.GetMessageIn(lng)
}

// GetMessageIn returns the message for the given language. An empty or
// unknown language falls back to the default, then to English. The
// language rides on the request context, so concurrent requests never
// affect each other.
func (l lang) GetMessageIn(language string) string {
	if language == "" {
		language = lng
	}
	if language == "" {
		language = FALLBACK_LNG
	}
	val := reflect.ValueOf(l)
	field := val.FieldByName(language)
	if field.IsValid() && field.String() != "" {
		return field.String()
	}
	fallbackField := val.FieldByName(FALLBACK_LNG)
	if fallbackField.IsValid() && fallbackField.String() != "" {
		return fallbackField.String()
	}
	return fmt.Sprintf("No message available for language: %s", language)
}

// GetSupportedLanguages returns all languages the lang type carries.
func GetSupportedLanguages() []string {
	var languages []string
	typ := reflect.TypeOf(lang{})
	for i := 0; i < typ.NumField(); i++ {
		languages = append(languages, typ.Field(i).Name)
	}
	return languages
}

// GetGlobalDefaultLang gets the global default language.
func GetGlobalDefaultLang() string {
	return lng
}
