// Package routes declares route groups and registers them on a ServeMux
// while recording their operations in an OpenAPI document.
package routes

import (
	"net/http"
	"slices"

	"github.com/JaimeStill/showroom/pkg/openapi"
)

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
	Schemas     map[string]*openapi.Schema
}

// Route represents an HTTP route with method, pattern, and handler.
// Middleware wraps only this route, outermost first.
type Route struct {
	Method     string
	Pattern    string
	Handler    http.HandlerFunc
	OpenAPI    *openapi.Operation
	Middleware []func(http.Handler) http.Handler
}

func (r Route) handler() http.Handler {
	var h http.Handler = r.Handler
	for _, mw := range slices.Backward(r.Middleware) {
		h = mw(h)
	}
	return h
}

// AddToSpec records the group's operations and schemas in spec. Routes
// without OpenAPI metadata are left out. Operations without tags
// inherit the group's tags.
func (g *Group) AddToSpec(basePath string, spec *openapi.Spec) {
	g.addToSpec(basePath, spec)
}

func (g *Group) addToSpec(parentPrefix string, spec *openapi.Spec) {
	fullPrefix := parentPrefix + g.Prefix

	for _, route := range g.Routes {
		if route.OpenAPI == nil {
			continue
		}

		op := route.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = g.Tags
		}

		spec.AddOperation(fullPrefix+route.Pattern, route.Method, op)
	}

	if g.Schemas != nil {
		spec.Components.AddSchemas(g.Schemas)
	}

	for _, child := range g.Children {
		child.addToSpec(fullPrefix, spec)
	}
}

// Register mounts every route of groups on mux and documents them in
// spec under basePath. Mux patterns omit basePath since the mux serves
// behind a prefix-stripping module.
func Register(mux *http.ServeMux, basePath string, spec *openapi.Spec, groups ...Group) {
	for _, group := range groups {
		registerGroup(mux, "", group)
		if spec != nil {
			group.AddToSpec(basePath, spec)
		}
	}
}

func registerGroup(mux *http.ServeMux, parentPrefix string, group Group) {
	fullPrefix := parentPrefix + group.Prefix
	for _, route := range group.Routes {
		mux.Handle(route.Method+" "+fullPrefix+route.Pattern, route.handler())
	}
	for _, child := range group.Children {
		registerGroup(mux, fullPrefix, child)
	}
}
