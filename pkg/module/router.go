package module

import (
	"net/http"
	"strings"
)

// Router dispatches requests to mounted modules by their first path
// segment and hands every other request to a native ServeMux.
type Router struct {
	native  *http.ServeMux
	modules map[string]*Module
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{
		native:  http.NewServeMux(),
		modules: make(map[string]*Module),
	}
}

// Mount registers m under its prefix. Mounting the same prefix twice
// replaces the earlier module.
func (r *Router) Mount(m *Module) {
	r.modules[m.Prefix()] = m
}

// HandleNative registers a ServeMux pattern outside any module.
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.native.HandleFunc(pattern, handler)
}

// ServeHTTP implements http.Handler. Module paths have trailing slashes
// trimmed before dispatch; native paths are matched as sent.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if m, ok := r.match(req.URL.Path); ok {
		path := req.URL.Path
		if len(path) > 1 {
			path = strings.TrimRight(path, "/")
		}
		m.Serve(w, withPath(req, path))
		return
	}
	r.native.ServeHTTP(w, req)
}

func (r *Router) match(path string) (*Module, bool) {
	if len(path) < 2 {
		return nil, false
	}
	segment := path
	if i := strings.IndexByte(path[1:], '/'); i >= 0 {
		segment = path[:i+1]
	}
	m, ok := r.modules[segment]
	return m, ok
}
