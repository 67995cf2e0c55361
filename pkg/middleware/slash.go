package middleware

import (
	"net/http"
	"net/url"
	"strings"
)

// TrimSlash returns middleware that redirects requests with trailing slashes
// to their canonical form without the slash. The root path "/" is preserved.
// Safe methods get 301; everything else gets 308 so the body and method
// survive the redirect. The Location is built from the path the client
// sent, so a module that stripped its prefix still redirects correctly.
func TrimSlash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.URL.Path) > 1 && strings.HasSuffix(r.URL.Path, "/") {
				target := strings.TrimRight(requestPath(r), "/")
				if target == "" {
					target = "/"
				}
				if r.URL.RawQuery != "" {
					target += "?" + r.URL.RawQuery
				}
				http.Redirect(w, r, target, redirectStatus(r.Method))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func requestPath(r *http.Request) string {
	if r.RequestURI != "" {
		if u, err := url.ParseRequestURI(r.RequestURI); err == nil && u.Path != "" {
			return u.Path
		}
	}
	return r.URL.Path
}

func redirectStatus(method string) int {
	switch method {
	case http.MethodGet, http.MethodHead:
		return http.StatusMovedPermanently
	default:
		return http.StatusPermanentRedirect
	}
}
