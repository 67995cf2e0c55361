package api

import (
	_ "embed"
	"net/http"
)

//go:embed docs/index.html
var docsHTML []byte

// serveDocs renders the interactive reference for /api/openapi.json.
func serveDocs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(docsHTML)
}
