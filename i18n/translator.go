package i18n

// Translator retrieves localized messages for fault codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "field").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "type_mismatch":
			return "型が不正です"
		case "predicate_mismatch":
			return "値が条件を満たしていません"
		case "missing_field":
			return "必須フィールドが不足しています"
		case "extra_fields":
			return "未知のフィールドがあります"
		case "not_a_sequence":
			return "配列ではありません"
		case "element_mismatch":
			return "要素が不正です"
		case "alternatives_exhausted":
			return "いずれの候補にも一致しません"
		}
	default: // "en"
		switch code {
		case "type_mismatch":
			return "type mismatch"
		case "predicate_mismatch":
			return "value does not satisfy predicate"
		case "missing_field":
			return "required field missing"
		case "extra_fields":
			return "unexpected extra fields"
		case "not_a_sequence":
			return "not a sequence"
		case "element_mismatch":
			return "element mismatch"
		case "alternatives_exhausted":
			return "no alternative matched"
		}
	}
	return code
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
