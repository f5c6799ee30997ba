package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "key" or "type").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator. Templates use
// {name} placeholders filled from data.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"reference_key_invalid":          `reference key "{key}" does not exist`,
		"referenced_value_must_be_array": `referenced value "{key}" must be an array`,
		"invalid_type":                   `invalid type "{type}"`,
		"array_schema_missing":           "array element schema not provided",
		"invalid_options":                "invalid options: {reason}",
		"unsupported_format_arg":         `unsupported format-string argument type "{type}"`,
		"generator_failed":               "generator failed: {reason}",
	},
	"ja": {
		"reference_key_invalid":          `参照キー "{key}" が存在しません`,
		"referenced_value_must_be_array": `参照値 "{key}" は配列である必要があります`,
		"invalid_type":                   `型 "{type}" は不正です`,
		"array_schema_missing":           "配列要素のスキーマが指定されていません",
		"invalid_options":                "オプションが不正です: {reason}",
		"unsupported_format_arg":         `format-string の引数に型 "{type}" は使用できません`,
		"generator_failed":               "値の生成に失敗しました: {reason}",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	tmpl, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	if len(data) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
