package store

import (
	"strings"
	"unicode"
)

// Georgian Mkhedruli to Latin, for search matching against Latin input.
var georgianLatin = map[rune]string{
	'ა': "a", 'ბ': "b", 'გ': "g", 'დ': "d", 'ე': "e", 'ვ': "v",
	'ზ': "z", 'თ': "t", 'ი': "i", 'კ': "k", 'ლ': "l", 'მ': "m",
	'ნ': "n", 'ო': "o", 'პ': "p", 'ჟ': "zh", 'რ': "r", 'ს': "s",
	'ტ': "t", 'უ': "u", 'ფ': "p", 'ქ': "k", 'ღ': "gh", 'ყ': "q",
	'შ': "sh", 'ჩ': "ch", 'ც': "ts", 'ძ': "dz", 'წ': "ts", 'ჭ': "tch",
	'ხ': "kh", 'ჯ': "j", 'ჰ': "h",
}

// Transliterate converts Georgian text to a capitalized Latin rendering.
// Unknown runes pass through, so mixed or already-Latin names are unharmed.
func Transliterate(text string) string {
	if text == "" {
		return ""
	}
	words := strings.Split(text, " ")
	for i, word := range words {
		var sb strings.Builder
		for _, r := range word {
			if latin, ok := georgianLatin[r]; ok {
				sb.WriteString(latin)
			} else {
				sb.WriteRune(r)
			}
		}
		words[i] = capitalize(sb.String())
	}
	return strings.Join(words, " ")
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
