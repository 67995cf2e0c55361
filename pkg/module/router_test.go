package module_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/showroom/pkg/module"
)

func TestRouter(t *testing.T) {
	r := module.NewRouter()
	r.Mount(module.New("/api", echoPath()))
	r.HandleNative("GET /healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("healthy"))
	})
	r.HandleNative("GET /admin", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("login"))
	})
	r.HandleNative("GET /admin/{path...}", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("dashboard"))
	})

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"module root", "/api", http.StatusOK, "/"},
		{"module root with slash", "/api/", http.StatusOK, "/"},
		{"module path", "/api/products", http.StatusOK, "/products"},
		{"module trailing slash trimmed", "/api/products/", http.StatusOK, "/products"},
		{"similar prefix is not the module", "/apiary", http.StatusNotFound, ""},
		{"native route", "/healthz", http.StatusOK, "healthy"},
		{"exact admin", "/admin", http.StatusOK, "login"},
		{"admin with slash", "/admin/", http.StatusOK, "dashboard"},
		{"admin subpath", "/admin/products/42", http.StatusOK, "dashboard"},
		{"unmatched", "/unknown", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantBody != "" {
				body, _ := io.ReadAll(rec.Result().Body)
				if string(body) != tt.wantBody {
					t.Errorf("body = %q, want %q", string(body), tt.wantBody)
				}
			}
		})
	}
}
