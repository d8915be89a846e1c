// internal/payload/escape.go
package payload

import "strings"

// mecardSpecials are the characters with structural meaning in the MeCARD
// family of formats. The backslash comes first: escaping it later would
// double-escape the backslashes introduced for the other characters.
var mecardSpecials = []string{`\`, `"`, `;`, `,`, `:`}

// EscapeSpecial escapes MeCARD structural characters in a free-text field.
func EscapeSpecial(s string) string {
	if s == "" {
		return s
	}
	for _, sc := range mecardSpecials {
		s = strings.ReplaceAll(s, sc, `\`+sc)
	}
	return s
}

// escapeText escapes a free-text value for vCard and iCalendar properties
// (RFC 2426 / RFC 5545): backslash, semicolon and comma are backslash-escaped
// and literal line breaks become the two-character sequence \n.
func escapeText(s string) string {
	if s == "" {
		return s
	}
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "\r\n", `\n`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\r", `\n`)
	s = strings.ReplaceAll(s, ";", `\;`)
	s = strings.ReplaceAll(s, ",", `\,`)
	return s
}
