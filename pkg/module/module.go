// Package module groups a handler and its middleware under a single
// path segment. A Router dispatches to mounted modules by prefix and
// falls back to native ServeMux patterns for everything else.
package module

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/JaimeStill/showroom/pkg/middleware"
)

// Module serves a handler behind a single-segment prefix such as "/api".
type Module struct {
	prefix     string
	handler    http.Handler
	middleware middleware.System
}

// New creates a module. It panics when prefix is empty, lacks a leading
// slash, or spans more than one path segment, since a bad prefix is a
// programming error caught at startup.
func New(prefix string, handler http.Handler) *Module {
	if err := validatePrefix(prefix); err != "" {
		panic("module: " + err + ": " + prefix)
	}
	return &Module{
		prefix:     prefix,
		handler:    handler,
		middleware: middleware.New(),
	}
}

// Prefix returns the mount prefix.
func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends module-scoped middleware.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middleware.Use(mw)
}

// Handler returns the handler wrapped in the module's middleware.
func (m *Module) Handler() http.Handler {
	return m.middleware.Apply(m.handler)
}

// Serve strips the module prefix from the request path and dispatches
// to Handler. The module root maps to "/".
func (m *Module) Serve(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, m.prefix)
	if path == "" {
		path = "/"
	}
	m.Handler().ServeHTTP(w, withPath(r, path))
}

func validatePrefix(prefix string) string {
	switch {
	case prefix == "":
		return "empty prefix"
	case !strings.HasPrefix(prefix, "/"):
		return "prefix must start with /"
	case prefix == "/":
		return "prefix must name a segment"
	case strings.Contains(prefix[1:], "/"):
		return "prefix must be a single segment"
	}
	return ""
}

func withPath(r *http.Request, path string) *http.Request {
	r2 := new(http.Request)
	*r2 = *r
	r2.URL = new(url.URL)
	*r2.URL = *r.URL
	r2.URL.Path = path
	r2.URL.RawPath = ""
	return r2
}
