package logger

import (
	"bytes"
	"log"
	"sync"
)

// LineWriter forwards a process output stream to a logger, one entry per line.
// Carriage returns also end a line so ffmpeg progress updates are not merged.
type LineWriter struct {
	mu     sync.Mutex
	out    *log.Logger
	prefix string
	buf    []byte
}

func NewLineWriter(out *log.Logger, prefix string) *LineWriter {
	return &LineWriter{out: out, prefix: prefix}
}

func (w *LineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		idx := bytes.IndexAny(w.buf, "\r\n")
		if idx == -1 {
			break
		}
		w.emit(w.buf[:idx])
		w.buf = w.buf[idx+1:]
	}
	return len(p), nil
}

// Flush logs any trailing partial line.
func (w *LineWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.emit(w.buf)
	w.buf = nil
}

func (w *LineWriter) emit(line []byte) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 {
		return
	}
	w.out.Printf("%s%s", w.prefix, SanitizeForLog(string(line)))
}
