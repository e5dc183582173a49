package i18n

import (
	"sort"
	"strings"
	"sync"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "got"). Placeholders are written as {name}.
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"invalid_type": "expected {expected}, got {got}",
		"required":     "missing required key",
		"pattern":      "value '{value}' does not match regex '{pattern}'",
		"too_small":    "value {value} is less than minimum {min}",
		"too_big":      "value {value} is greater than maximum {max}",
		"invalid_enum": "value '{value}' is not one of {choices}",
		"invalid_key":  "expected key type {expected}, got {got}",
	},
	"ja": {
		"invalid_type": "型が不正です ({expected} を期待しましたが {got} でした)",
		"required":     "必須キーが不足しています",
		"pattern":      "値 '{value}' は正規表現 '{pattern}' に一致しません",
		"too_small":    "値 {value} は最小値 {min} より小さいです",
		"too_big":      "値 {value} は最大値 {max} より大きいです",
		"invalid_enum": "値 '{value}' は {choices} のいずれでもありません",
		"invalid_key":  "キーの型が不正です ({expected} を期待しましたが {got} でした)",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	dict, ok := dictionaries[t.lang]
	if !ok {
		dict = dictionaries["en"]
	}
	tmpl, ok := dict[code]
	if !ok {
		return code
	}
	return interpolate(tmpl, data)
}

// interpolate replaces {name} placeholders. Keys are applied in sorted order
// so the output never depends on map iteration.
func interpolate(tmpl string, data map[string]string) string {
	if len(data) == 0 {
		return tmpl
	}
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, "{"+k+"}", data[k])
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

var (
	mu                           = sync.RWMutex{}
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	mu.Lock()
	currentTranslator = dictTranslator{lang: lang}
	mu.Unlock()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	mu.Lock()
	defer mu.Unlock()
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
