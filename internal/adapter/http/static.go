package http

import (
	"net/http"
	"os"
	"path"
	"strings"
)

// hiddenSuffixes are bookkeeping files that live next to the served output.
var hiddenSuffixes = []string{".lock", ".tmp"}

// publicFS refuses directories and bookkeeping files, so nothing can be listed.
type publicFS struct {
	http.FileSystem
}

func (fs publicFS) Open(name string) (http.File, error) {
	for _, suffix := range hiddenSuffixes {
		if strings.HasSuffix(name, suffix) {
			return nil, os.ErrNotExist
		}
	}
	f, err := fs.FileSystem.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.IsDir() {
		f.Close()
		return nil, os.ErrNotExist
	}
	return f, nil
}

// uploadsHandler serves posters and HLS output with playlist friendly headers.
// Players on other origins may fetch segments, so CORS is open unless a
// configured origin was already granted.
func uploadsHandler(dir string) http.Handler {
	files := http.FileServer(publicFS{http.Dir(dir)})
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		switch path.Ext(r.URL.Path) {
		case ".m3u8":
			h.Set("Content-Type", "application/x-mpegURL")
			h.Set("Cache-Control", "no-cache")
		case ".ts":
			h.Set("Content-Type", "video/MP2T")
			h.Set("Cache-Control", "public, max-age=86400")
		}
		if h.Get("Access-Control-Allow-Origin") == "" {
			h.Set("Access-Control-Allow-Origin", "*")
		}
		files.ServeHTTP(w, r)
	})
}
