package openapi

func errorSchema() *Schema {
	return &Schema{
		Type: "object",
		Properties: map[string]*Schema{
			"error": {Type: "string"},
		},
	}
}

// NewComponents returns the components every API document shares:
// error responses, the page request schema, and bearer authentication.
func NewComponents() *Components {
	errorContent := func(description string) *Response {
		return &Response{
			Description: description,
			Content: map[string]*MediaType{
				"application/json": {Schema: SchemaRef("Error")},
			},
		}
	}

	return &Components{
		Schemas: map[string]*Schema{
			"Error": errorSchema(),
			"InternalError": {
				Type: "object",
				Properties: map[string]*Schema{
					"message": {Type: "string", Example: "Something went wrong!"},
				},
			},
			"PageRequest": {
				Type: "object",
				Properties: map[string]*Schema{
					"page":      {Type: "integer", Description: "Page number (1-indexed)"},
					"page_size": {Type: "integer", Description: "Results per page"},
					"search":    {Type: "string", Description: "Search query"},
					"sort":      {Type: "string", Description: "Comma-separated sort fields. Prefix with - for descending"},
				},
			},
		},
		Responses: map[string]*Response{
			"BadRequest":   errorContent("Invalid request"),
			"Unauthorized": errorContent("Missing or invalid token"),
			"Forbidden":    errorContent("Insufficient role"),
			"NotFound":     errorContent("Resource not found"),
			"Conflict":     errorContent("Resource already exists"),
			"TooLarge":     errorContent("Request body too large"),
			"InternalError": {
				Description: "Unexpected server error",
				Content: map[string]*MediaType{
					"application/json": {Schema: SchemaRef("InternalError")},
				},
			},
		},
		SecuritySchemes: map[string]*SecurityScheme{
			"bearerAuth": {
				Type:         "http",
				Scheme:       "bearer",
				BearerFormat: "JWT",
			},
		},
	}
}

// AddSchemas merges schemas into the components, replacing same-named entries.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	for name, schema := range schemas {
		c.Schemas[name] = schema
	}
}

// AddResponses merges responses into the components, replacing same-named entries.
func (c *Components) AddResponses(responses map[string]*Response) {
	for name, resp := range responses {
		c.Responses[name] = resp
	}
}
