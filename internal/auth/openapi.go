package auth

import "github.com/JaimeStill/showroom/pkg/openapi"

// spec holds OpenAPI operation definitions for the auth domain.
type spec struct {
	Register *openapi.Operation
	Login    *openapi.Operation
	Me       *openapi.Operation
	Logout   *openapi.Operation
}

// Spec contains OpenAPI operation definitions for all auth endpoints.
var Spec = spec{
	Register: &openapi.Operation{
		Summary:     "Register",
		Description: "Creates a customer account and returns a session token",
		RequestBody: openapi.RequestBodyJSON("RegisterCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Account created", "Session"),
			400: openapi.ResponseRef("BadRequest"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Login: &openapi.Operation{
		Summary:     "Log in",
		Description: "Exchanges email and password for a session token",
		RequestBody: openapi.RequestBodyJSON("LoginCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Session opened", "Session"),
			400: openapi.ResponseRef("BadRequest"),
			401: openapi.ResponseRef("Unauthorized"),
		},
	},
	Me: &openapi.Operation{
		Summary:     "Current user",
		Description: "Returns the account that owns the bearer token",
		Security:    openapi.BearerAuth,
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Current user", "User"),
			401: openapi.ResponseRef("Unauthorized"),
		},
	},
	Logout: &openapi.Operation{
		Summary:     "Log out",
		Description: "Revokes the bearer token for the rest of its lifetime",
		Security:    openapi.BearerAuth,
		Responses: map[int]*openapi.Response{
			204: {Description: "Token revoked"},
			401: openapi.ResponseRef("Unauthorized"),
		},
	},
}

// Schemas returns the auth domain schemas for OpenAPI components.
func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"User": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":         {Type: "string", Format: "uuid"},
				"name":       {Type: "string"},
				"email":      {Type: "string", Format: "email"},
				"role":       {Type: "string", Enum: []string{RoleAdmin, RoleCustomer}},
				"created_at": {Type: "string", Format: "date-time"},
				"updated_at": {Type: "string", Format: "date-time"},
			},
		},
		"Session": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"token":      {Type: "string"},
				"expires_at": {Type: "string", Format: "date-time"},
				"user":       openapi.SchemaRef("User"),
			},
		},
		"RegisterCommand": {
			Type:     "object",
			Required: []string{"name", "email", "password"},
			Properties: map[string]*openapi.Schema{
				"name":     {Type: "string", MaxLength: openapi.Ptr(200)},
				"email":    {Type: "string", Format: "email"},
				"password": {Type: "string", Format: "password", MinLength: openapi.Ptr(8), MaxLength: openapi.Ptr(72)},
			},
		},
		"LoginCommand": {
			Type:     "object",
			Required: []string{"email", "password"},
			Properties: map[string]*openapi.Schema{
				"email":    {Type: "string", Format: "email"},
				"password": {Type: "string", Format: "password"},
			},
		},
	}
}
