package logger

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxLogValue bounds how much of a client supplied value ends up in a log line.
const MaxLogValue = 256

var controlEscapes = map[rune]string{
	'\n': `\n`,
	'\r': `\r`,
	'\t': `\t`,
	0:    `\x00`,
}

// SanitizeForLog makes a client supplied value (email, filename, title,
// remote address) safe to embed in a single log line. Control characters,
// DEL and invalid UTF-8 are escaped; printable Unicode is kept as is. Values
// longer than MaxLogValue runes are cut and marked with an ellipsis.
func SanitizeForLog(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for i, r := range s {
		if n == MaxLogValue {
			b.WriteString("...")
			break
		}
		n++

		if esc, ok := controlEscapes[r]; ok {
			b.WriteString(esc)
			continue
		}
		switch {
		case r == utf8.RuneError && isInvalidAt(s, i):
			fmt.Fprintf(&b, `\x%02x`, s[i])
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isInvalidAt(s string, i int) bool {
	_, size := utf8.DecodeRuneInString(s[i:])
	return size <= 1
}
