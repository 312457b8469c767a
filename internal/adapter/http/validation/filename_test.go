package validation

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "trailer.mp4", "trailer.mp4"},
		{"unicode kept", "été à Paris 🎬.mov", "été à Paris 🎬.mov"},
		{"path traversal", "../../etc/passwd", ".._.._etc_passwd"},
		{"windows path", `C:\videos\clip.mp4`, "C__videos_clip.mp4"},
		{"header injection", "a\"b\r\nc.mp4", "a_b__c.mp4"},
		{"control chars", "a\x00b\x1bc.mp4", "a_b_c.mp4"},
		{"shell chars", "a|b*c?.mp4", "a_b_c_.mp4"},
		{"surrounding space", "  clip.mp4  ", "clip.mp4"},
		{"empty", "", "file"},
		{"only separators", "///", "file"},
		{"only dots", "..", "file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.in))
		})
	}
}

func TestSanitizeFilename_Truncates(t *testing.T) {
	long := strings.Repeat("a", 300) + ".mp4"
	got := SanitizeFilename(long)
	assert.Len(t, got, maxFilenameLength)
	assert.True(t, strings.HasSuffix(got, ".mp4"))

	multibyte := strings.Repeat("é", 200) + ".webm"
	got = SanitizeFilename(multibyte)
	assert.LessOrEqual(t, len(got), maxFilenameLength)
	assert.True(t, utf8.ValidString(got))
	assert.True(t, strings.HasSuffix(got, ".webm"))

	noExt := strings.Repeat("b", 400)
	assert.Len(t, SanitizeFilename(noExt), maxFilenameLength)
}
