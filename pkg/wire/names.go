package wire

import (
	"strings"
	"unicode"
)

// acronyms lists the lower-cased field-name tokens the API spells fully
// upper-cased on the wire ("notificationURL", "redirectURL"). "id" is absent
// on purpose: wire keys spell it "Id" (orderId, supportRequestId).
var acronyms = map[string]bool{
	"url": true,
}

// CamelToSnake converts a wire key to its canonical field name by splitting
// on uppercase boundaries and acronym runs:
//
//	"buyerProvidedInfo" -> "buyer_provided_info"
//	"notificationURL"   -> "notification_url"
func CamelToSnake(key string) string {
	runes := []rune(key)
	var b strings.Builder
	b.Grow(len(key) + 4)
	for i, r := range runes {
		if !unicode.IsUpper(r) {
			b.WriteRune(r)
			continue
		}
		// Split before the first letter of a word: either the previous rune
		// is lowercase, or this rune starts the last letter of an acronym run
		// followed by a lowercase word ("closeURLParams" -> close_url_params).
		prevLower := i > 0 && !unicode.IsUpper(runes[i-1]) && runes[i-1] != '_'
		nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
		if i > 0 && (prevLower || nextLower) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// SnakeToCamel is the inverse of CamelToSnake. Tokens in the acronym table
// are upper-cased whole; all other tokens after the first are capitalized.
func SnakeToCamel(name string) string {
	parts := strings.Split(name, "_")
	var b strings.Builder
	b.Grow(len(name))
	first := true
	for _, p := range parts {
		if p == "" {
			continue
		}
		switch {
		case first:
			b.WriteString(p)
			first = false
		case acronyms[p]:
			b.WriteString(strings.ToUpper(p))
		default:
			b.WriteString(strings.ToUpper(p[:1]))
			b.WriteString(p[1:])
		}
	}
	return b.String()
}
