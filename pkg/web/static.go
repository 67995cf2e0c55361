package web

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/JaimeStill/showroom/pkg/handlers"
)

// Static returns middleware that serves regular files found under root
// for GET and HEAD requests. A directory requested with a trailing slash
// serves its index.html. Paths with dot-prefixed segments, directories
// without a trailing slash, and anything missing fall through to next.
func Static(root string) func(http.Handler) http.Handler {
	dir := http.Dir(root)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			name := r.URL.Path
			if hasDotSegment(name) {
				next.ServeHTTP(w, r)
				return
			}
			if strings.HasSuffix(name, "/") {
				name += "index.html"
			}

			if !serveFile(w, r, dir, name) {
				next.ServeHTTP(w, r)
			}
		})
	}
}

// File returns a handler that always serves the file at filePath.
// A missing file yields 404; any other failure is an internal error.
func File(filePath string, logger *slog.Logger) http.HandlerFunc {
	dir := http.Dir(filepath.Dir(filePath))
	name := "/" + filepath.Base(filePath)
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := dir.Open(name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				http.NotFound(w, r)
				return
			}
			handlers.RespondInternalError(w, logger, err)
			return
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			handlers.RespondInternalError(w, logger, err)
			return
		}
		if info.IsDir() {
			http.NotFound(w, r)
			return
		}
		http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	}
}

func serveFile(w http.ResponseWriter, r *http.Request, dir http.Dir, name string) bool {
	f, err := dir.Open(name)
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		return false
	}

	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
	return true
}

func hasDotSegment(p string) bool {
	for seg := range strings.SplitSeq(p, "/") {
		if strings.HasPrefix(seg, ".") {
			return true
		}
	}
	return false
}

// Exists reports whether root is a readable directory.
func Exists(root string) bool {
	info, err := os.Stat(root)
	return err == nil && info.IsDir()
}
