// Package web serves the site's static assets and its fixed HTML pages
// from a public directory on disk.
package web

import (
	"log/slog"
	"net/http"
	"path/filepath"
)

// PageDef binds a ServeMux pattern to an HTML file relative to the
// public directory.
type PageDef struct {
	Route string
	File  string
}

// Handler registers a handler for a ServeMux pattern.
type Handler interface {
	HandleNative(pattern string, handler http.HandlerFunc)
}

// RegisterPages registers a GET route for each page, serving the file
// from root.
func RegisterPages(h Handler, root string, logger *slog.Logger, pages ...PageDef) {
	for _, p := range pages {
		h.HandleNative("GET "+p.Route, File(filepath.Join(root, p.File), logger))
	}
}
