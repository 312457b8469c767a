// Package validation checks uploaded files before they reach storage.
package validation

import (
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrDisallowedFileType is returned when the detected type is not accepted for the upload kind.
var ErrDisallowedFileType = errors.New("file type not allowed")

type Kind string

const (
	KindVideo Kind = "video"
	KindImage Kind = "image"
)

var allowedMIMETypes = map[Kind]map[string]bool{
	KindVideo: {
		"video/mp4":        true,
		"video/webm":       true,
		"video/quicktime":  true,
		"video/avi":        true,
		"video/x-matroska": true,
		"video/mp2t":       true,
		"video/mpeg":       true,
	},
	KindImage: {
		"image/jpeg": true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	},
}

const sniffLen = 512

// Check sniffs the first bytes of r, rewinds it and returns the detected MIME
// type. A type outside the allowlist for kind yields ErrDisallowedFileType.
func Check(r io.ReadSeeker, kind Kind) (string, error) {
	mime, err := DetectMIME(r)
	if err != nil {
		return "", err
	}
	if !allowedMIMETypes[kind][mime] {
		return mime, fmt.Errorf("%w: %s upload cannot be %s", ErrDisallowedFileType, kind, mime)
	}
	return mime, nil
}

func DetectMIME(r io.ReadSeeker) (string, error) {
	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	if n == 0 {
		return "application/octet-stream", nil
	}

	buf = buf[:n]
	if mime := sniffContainer(buf); mime != "" {
		return mime, nil
	}
	return http.DetectContentType(buf), nil
}

// sniffContainer recognizes video containers http.DetectContentType misses or
// mislabels.
func sniffContainer(buf []byte) string {
	if len(buf) >= 4 && buf[0] == 0x1A && buf[1] == 0x45 && buf[2] == 0xDF && buf[3] == 0xA3 {
		// EBML header; the doctype decides between WebM and Matroska.
		if containsASCII(buf, "webm") {
			return "video/webm"
		}
		return "video/x-matroska"
	}

	if len(buf) >= 12 && string(buf[4:8]) == "ftyp" {
		if string(buf[8:12]) == "qt  " {
			return "video/quicktime"
		}
		return "video/mp4"
	}

	// MPEG transport stream: sync byte every 188 bytes.
	if len(buf) >= 189 && buf[0] == 0x47 && buf[188] == 0x47 {
		return "video/mp2t"
	}

	if len(buf) >= 12 && string(buf[0:4]) == "RIFF" && string(buf[8:12]) == "WEBP" {
		return "image/webp"
	}
	return ""
}

func containsASCII(buf []byte, s string) bool {
	for i := 0; i+len(s) <= len(buf); i++ {
		if string(buf[i:i+len(s)]) == s {
			return true
		}
	}
	return false
}
