package routes_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/showroom/pkg/openapi"
	"github.com/JaimeStill/showroom/pkg/routes"
)

func write(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

func TestGroup_AddToSpec(t *testing.T) {
	spec := openapi.NewSpec("Test API", "1.0.0")

	group := routes.Group{
		Prefix: "/products",
		Tags:   []string{"Products"},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: write(""), OpenAPI: &openapi.Operation{Summary: "List products"}},
			{Method: "POST", Pattern: "", Handler: write(""), OpenAPI: &openapi.Operation{Summary: "Create product", Tags: []string{"Admin"}}},
			{Method: "DELETE", Pattern: "/{id}", Handler: write(""), OpenAPI: &openapi.Operation{Summary: "Delete product"}},
			{Method: "GET", Pattern: "/hidden", Handler: write("")},
		},
		Schemas: map[string]*openapi.Schema{
			"Product": {Type: "object"},
		},
	}

	group.AddToSpec("/api", spec)

	item := spec.Paths["/api/products"]
	if item == nil {
		t.Fatal("path /api/products not added")
	}
	if item.Get == nil || item.Get.Summary != "List products" {
		t.Errorf("GET = %+v", item.Get)
	}
	if len(item.Get.Tags) != 1 || item.Get.Tags[0] != "Products" {
		t.Errorf("GET tags = %v, want inherited [Products]", item.Get.Tags)
	}
	if len(item.Post.Tags) != 1 || item.Post.Tags[0] != "Admin" {
		t.Errorf("POST tags = %v, want explicit [Admin]", item.Post.Tags)
	}
	if spec.Paths["/api/products/{id}"].Delete == nil {
		t.Error("DELETE /api/products/{id} not added")
	}
	if spec.Paths["/api/products/hidden"] != nil {
		t.Error("route without OpenAPI should not be documented")
	}
	if spec.Components.Schemas["Product"] == nil {
		t.Error("group schema not added")
	}
}

func TestRegister(t *testing.T) {
	mux := http.NewServeMux()
	spec := openapi.NewSpec("Test API", "1.0.0")

	products := routes.Group{
		Prefix: "/products",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: write("list"), OpenAPI: &openapi.Operation{}},
			{Method: "GET", Pattern: "/{id}", Handler: write("detail"), OpenAPI: &openapi.Operation{}},
		},
	}
	inquiries := routes.Group{
		Prefix: "/inquiries",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: write("created")},
		},
		Children: []routes.Group{
			{
				Prefix: "/{id}",
				Routes: []routes.Route{
					{Method: "PUT", Pattern: "/status", Handler: write("status"), OpenAPI: &openapi.Operation{}},
				},
			},
		},
	}

	routes.Register(mux, "/api", spec, products, inquiries)

	tests := []struct {
		method string
		path   string
		want   string
	}{
		{http.MethodGet, "/products", "list"},
		{http.MethodGet, "/products/abc", "detail"},
		{http.MethodPost, "/inquiries", "created"},
		{http.MethodPut, "/inquiries/abc/status", "status"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			body, _ := io.ReadAll(rec.Result().Body)
			if string(body) != tt.want {
				t.Errorf("body = %q, want %q", string(body), tt.want)
			}
		})
	}

	for _, path := range []string{"/api/products", "/api/products/{id}", "/api/inquiries/{id}/status"} {
		if spec.Paths[path] == nil {
			t.Errorf("spec path %s not added", path)
		}
	}
}

func TestRegister_RouteMiddleware(t *testing.T) {
	var order []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	mux := http.NewServeMux()
	routes.Register(mux, "", nil, routes.Group{
		Prefix: "/admin",
		Routes: []routes.Route{
			{
				Method:     "GET",
				Pattern:    "",
				Handler:    func(w http.ResponseWriter, r *http.Request) { order = append(order, "handler") },
				Middleware: []func(http.Handler) http.Handler{tag("auth"), tag("role")},
			},
		},
	})

	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admin", nil))

	if got := strings.Join(order, ","); got != "auth,role,handler" {
		t.Errorf("order = %s, want auth,role,handler", got)
	}
}
