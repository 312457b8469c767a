package logger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeForLog(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Heat (1995).mp4", "Heat (1995).mp4"},
		{"empty", "", ""},
		{"forged log line", "bob@example.com\nINFO: login ok", `bob@example.com\nINFO: login ok`},
		{"crlf", "a\r\nb", `a\r\nb`},
		{"tab", "a\tb", `a\tb`},
		{"null byte", "a\x00b", `a\x00b`},
		{"ansi escape", "\x1b[31mred\x1b[0m", `\x1b[31mred\x1b[0m`},
		{"bell and del", "\x07\x7f", `\x07\x7f`},
		{"unicode kept", "Amélie 東京 🎬", "Amélie 東京 🎬"},
		{"invalid utf8", "a\xffb", `a\xffb`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeForLog(tt.input))
		})
	}
}

func TestSanitizeForLog_Truncates(t *testing.T) {
	long := strings.Repeat("é", MaxLogValue+10)

	got := SanitizeForLog(long)
	assert.Equal(t, strings.Repeat("é", MaxLogValue)+"...", got)

	exact := strings.Repeat("x", MaxLogValue)
	assert.Equal(t, exact, SanitizeForLog(exact))
}

func TestSanitizeForLog_NoControlCharsRemain(t *testing.T) {
	var b strings.Builder
	for r := rune(0); r < 0x20; r++ {
		b.WriteRune(r)
	}
	b.WriteRune(0x7f)

	got := SanitizeForLog(b.String())
	for _, r := range got {
		assert.False(t, r < 0x20 || r == 0x7f, "control rune %#x left in %q", r, got)
	}
}
