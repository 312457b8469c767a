package validation

import (
	"path/filepath"
	"strings"
	"unicode/utf8"
)

const maxFilenameLength = 255

// replaced holds characters that would allow path traversal or header and log injection.
var replaced = map[rune]bool{
	'"':  true,
	'\\': true,
	'/':  true,
	':':  true,
	'<':  true,
	'>':  true,
	'|':  true,
	'?':  true,
	'*':  true,
}

// SanitizeFilename turns a client supplied file name into a safe base name.
// Unicode is kept, control and separator characters become '_' and the result
// is capped at 255 bytes with the extension preserved. Empty input, or input
// that reduces to dots and underscores, becomes "file".
func SanitizeFilename(name string) string {
	var sb strings.Builder
	sb.Grow(len(name))
	for _, r := range name {
		if r < 32 || r == 127 || replaced[r] {
			sb.WriteRune('_')
			continue
		}
		sb.WriteRune(r)
	}

	result := strings.TrimSpace(sb.String())
	if strings.Trim(result, "._") == "" {
		return "file"
	}
	if len(result) > maxFilenameLength {
		result = truncateKeepingExt(result)
	}
	return result
}

func truncateKeepingExt(name string) string {
	ext := filepath.Ext(name)
	if ext == "" || len(ext) >= maxFilenameLength {
		return truncateToBytes(name, maxFilenameLength)
	}
	return truncateToBytes(strings.TrimSuffix(name, ext), maxFilenameLength-len(ext)) + ext
}

// truncateToBytes cuts s to at most n bytes on a rune boundary.
func truncateToBytes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
