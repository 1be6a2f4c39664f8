package shdoc

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// EncodingError reports a substituted value containing characters that are
// not representable in an XML 1.0 document. Not retriable; the source data
// must be corrected.
type EncodingError struct {
	Value string
	Rune  rune
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("value %q contains illegal XML character %U", e.Value, e.Rune)
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

// EscapeValue escapes the five XML-significant characters in a scalar value.
// Values containing control characters below 0x20 (other than tab, newline,
// carriage return), invalid UTF-8, or the non-characters U+FFFE/U+FFFF are
// rejected with *EncodingError. Every substitution path goes through here.
func EscapeValue(s string) (string, error) {
	for i, r := range s {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
		case r < 0x20:
			return "", &EncodingError{Value: s, Rune: r}
		case r == 0xFFFE || r == 0xFFFF:
			return "", &EncodingError{Value: s, Rune: r}
		case r == utf8.RuneError:
			if _, size := utf8.DecodeRuneInString(s[i:]); size == 1 {
				return "", &EncodingError{Value: s, Rune: r}
			}
		}
	}
	return xmlReplacer.Replace(s), nil
}
