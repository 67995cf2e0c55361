package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/showroom/pkg/decode"
	"github.com/JaimeStill/showroom/pkg/logging"
	"github.com/JaimeStill/showroom/pkg/middleware"
)

func TestSystem_ApplyOrder(t *testing.T) {
	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	mw := middleware.New()
	mw.Use(tag("first"))
	mw.Use(tag("second"))
	mw.Use(tag("third"))

	h := mw.Apply(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	want := "first,second,third,handler"
	if got := strings.Join(order, ","); got != want {
		t.Errorf("order = %s, want %s", got, want)
	}
}

func TestRecover(t *testing.T) {
	h := middleware.Recover(logging.Discard())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["message"] != "Something went wrong!" {
		t.Errorf("message = %q", body["message"])
	}
	if strings.Contains(rec.Body.String(), "boom") {
		t.Error("panic value leaked to client")
	}
}

func TestRecover_AbortHandler(t *testing.T) {
	h := middleware.Recover(logging.Discard())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	defer func() {
		if rec := recover(); rec != http.ErrAbortHandler {
			t.Errorf("recovered %v, want http.ErrAbortHandler", rec)
		}
	}()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestLogger_PassesThrough(t *testing.T) {
	h := middleware.Logger(logging.Discard())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want 418", rec.Code)
	}
	if rec.Body.String() != "short and stout" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestCORS(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	defaults := &middleware.CORSConfig{}
	if err := defaults.Finalize(nil); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	disabled := false
	off := &middleware.CORSConfig{Enabled: &disabled}
	off.Finalize(nil)

	restricted := &middleware.CORSConfig{Origins: []string{"https://shop.example"}}
	restricted.Finalize(nil)

	tests := []struct {
		name       string
		cfg        *middleware.CORSConfig
		method     string
		origin     string
		preflight  bool
		wantStatus int
		wantOrigin string
	}{
		{"wildcard simple", defaults, http.MethodGet, "https://any.example", false, http.StatusOK, "*"},
		{"wildcard preflight", defaults, http.MethodOptions, "https://any.example", true, http.StatusNoContent, "*"},
		{"no origin", defaults, http.MethodGet, "", false, http.StatusOK, ""},
		{"disabled", off, http.MethodGet, "https://any.example", false, http.StatusOK, ""},
		{"listed origin", restricted, http.MethodGet, "https://shop.example", false, http.StatusOK, "https://shop.example"},
		{"unlisted origin", restricted, http.MethodGet, "https://evil.example", false, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/products", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}

			rec := httptest.NewRecorder()
			middleware.CORS(tt.cfg)(ok).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("Allow-Origin = %q, want %q", got, tt.wantOrigin)
			}
			if tt.preflight && rec.Header().Get("Access-Control-Allow-Methods") == "" {
				t.Error("preflight missing Allow-Methods")
			}
		})
	}
}

func TestCORSConfig_Env(t *testing.T) {
	t.Setenv("TEST_CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("TEST_CORS_MAX_AGE", "600")

	cfg := &middleware.CORSConfig{}
	cfg.Finalize(&middleware.CORSEnv{
		Origins: "TEST_CORS_ORIGINS",
		MaxAge:  "TEST_CORS_MAX_AGE",
	})

	if len(cfg.Origins) != 2 || cfg.Origins[1] != "https://b.example" {
		t.Errorf("Origins = %v", cfg.Origins)
	}
	if cfg.MaxAge != 600 {
		t.Errorf("MaxAge = %d, want 600", cfg.MaxAge)
	}
}

func TestParseBody(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantStatus  int
		check       func(t *testing.T, r *http.Request)
	}{
		{
			name:        "json object",
			contentType: "application/json",
			body:        `{"name":"Lamp"}`,
			wantStatus:  http.StatusOK,
			check: func(t *testing.T, r *http.Request) {
				body, ok := decode.Body(r.Context())
				if !ok {
					t.Fatal("body not stored")
				}
				m, _ := body.(map[string]any)
				if m["name"] != "Lamp" {
					t.Errorf("name = %v", m["name"])
				}
				v, err := decode.Request[struct{ Name string }](r)
				if err != nil || v.Name != "Lamp" {
					t.Errorf("re-read body = %+v, %v", v, err)
				}
			},
		},
		{
			name:        "urlencoded form",
			contentType: "application/x-www-form-urlencoded",
			body:        "name=Ada&tag=a&tag=b",
			wantStatus:  http.StatusOK,
			check: func(t *testing.T, r *http.Request) {
				body, _ := decode.Body(r.Context())
				form, ok := body.(decode.Form)
				if !ok {
					t.Fatalf("body type = %T, want decode.Form", body)
				}
				if form["name"] != "Ada" {
					t.Errorf("name = %v", form["name"])
				}
				if tags, _ := form["tag"].([]string); len(tags) != 2 {
					t.Errorf("tag = %v", form["tag"])
				}
			},
		},
		{
			name:        "malformed json",
			contentType: "application/json",
			body:        `{"name":`,
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "oversized json",
			contentType: "application/json",
			body:        `{"name":"` + strings.Repeat("x", 128) + `"}`,
			wantStatus:  http.StatusRequestEntityTooLarge,
		},
		{
			name:        "other content type",
			contentType: "text/plain",
			body:        "hello",
			wantStatus:  http.StatusOK,
			check: func(t *testing.T, r *http.Request) {
				if _, ok := decode.Body(r.Context()); ok {
					t.Error("text body should not be parsed")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen *http.Request
			h := middleware.ParseBody(64, logging.Discard())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = r
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodPost, "/api/inquiries", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.check != nil {
				tt.check(t, seen)
			}
		})
	}
}

func TestTrimSlash(t *testing.T) {
	h := middleware.TrimSlash()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		method       string
		path         string
		wantStatus   int
		wantLocation string
	}{
		{http.MethodGet, "/", http.StatusOK, ""},
		{http.MethodGet, "/products", http.StatusOK, ""},
		{http.MethodGet, "/products/?page=2", http.StatusMovedPermanently, "/products?page=2"},
		{http.MethodPost, "/inquiries/", http.StatusPermanentRedirect, "/inquiries"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if got := rec.Header().Get("Location"); got != tt.wantLocation {
				t.Errorf("Location = %q, want %q", got, tt.wantLocation)
			}
		})
	}
}
