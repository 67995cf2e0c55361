package inquiries

import "github.com/JaimeStill/showroom/pkg/openapi"

// spec holds OpenAPI operation definitions for the inquiries domain.
type spec struct {
	Submit       *openapi.Operation
	List         *openapi.Operation
	Find         *openapi.Operation
	UpdateStatus *openapi.Operation
	Delete       *openapi.Operation
}

// Spec contains OpenAPI operation definitions for all inquiry endpoints.
var Spec = spec{
	Submit: &openapi.Operation{
		Summary:     "Submit inquiry",
		Description: "Stores a contact-form submission. Accepts JSON or URL-encoded bodies",
		RequestBody: openapi.RequestBodyJSONOrForm("CreateInquiryCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Inquiry received", "Inquiry"),
			400: openapi.ResponseRef("BadRequest"),
			413: openapi.ResponseRef("TooLarge"),
		},
	},
	List: &openapi.Operation{
		Summary:     "List inquiries",
		Description: "Returns a paginated list of inquiries, newest first (admin only)",
		Security:    openapi.BearerAuth,
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number (1-indexed)", false),
			openapi.QueryParam("page_size", "integer", "Results per page", false),
			openapi.QueryParam("search", "string", "Search query (matches name, email, subject, message)", false),
			openapi.QueryParam("sort", "string", "Comma-separated sort fields. Prefix with - for descending", false),
			openapi.QueryParam("status", "string", "Filter by status; comma-separate several", false),
			openapi.QueryParam("email", "string", "Filter by email fragment", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Paginated list of inquiries", "InquiryPageResult"),
			401: openapi.ResponseRef("Unauthorized"),
			403: openapi.ResponseRef("Forbidden"),
		},
	},
	Find: &openapi.Operation{
		Summary:     "Find inquiry by ID",
		Description: "Retrieves a single inquiry (admin only)",
		Security:    openapi.BearerAuth,
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Inquiry UUID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Inquiry", "Inquiry"),
			400: openapi.ResponseRef("BadRequest"),
			401: openapi.ResponseRef("Unauthorized"),
			403: openapi.ResponseRef("Forbidden"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	UpdateStatus: &openapi.Operation{
		Summary:     "Update inquiry status",
		Description: "Moves an inquiry to a new status (admin only)",
		Security:    openapi.BearerAuth,
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Inquiry UUID"),
		},
		RequestBody: openapi.RequestBodyJSON("UpdateInquiryStatusCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Inquiry updated", "Inquiry"),
			400: openapi.ResponseRef("BadRequest"),
			401: openapi.ResponseRef("Unauthorized"),
			403: openapi.ResponseRef("Forbidden"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete inquiry",
		Description: "Removes an inquiry (admin only)",
		Security:    openapi.BearerAuth,
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Inquiry UUID"),
		},
		Responses: map[int]*openapi.Response{
			204: {Description: "Inquiry deleted"},
			401: openapi.ResponseRef("Unauthorized"),
			403: openapi.ResponseRef("Forbidden"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

// Schemas returns the inquiry domain schemas for OpenAPI components.
func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Inquiry": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":         {Type: "string", Format: "uuid"},
				"name":       {Type: "string"},
				"email":      {Type: "string", Format: "email"},
				"phone":      {Type: "string"},
				"subject":    {Type: "string"},
				"message":    {Type: "string"},
				"product_id": {Type: "string", Format: "uuid"},
				"status":     {Type: "string", Enum: Statuses},
				"created_at": {Type: "string", Format: "date-time"},
				"updated_at": {Type: "string", Format: "date-time"},
			},
		},
		"CreateInquiryCommand": {
			Type:     "object",
			Required: []string{"name", "email", "message"},
			Properties: map[string]*openapi.Schema{
				"name":       {Type: "string", MaxLength: openapi.Ptr(200)},
				"email":      {Type: "string", Format: "email"},
				"phone":      {Type: "string", MaxLength: openapi.Ptr(50)},
				"subject":    {Type: "string", MaxLength: openapi.Ptr(200)},
				"message":    {Type: "string", MaxLength: openapi.Ptr(5000)},
				"product_id": {Type: "string", Format: "uuid"},
			},
		},
		"UpdateInquiryStatusCommand": {
			Type:     "object",
			Required: []string{"status"},
			Properties: map[string]*openapi.Schema{
				"status": {Type: "string", Enum: Statuses},
			},
		},
		"InquiryPageResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":        {Type: "array", Items: openapi.SchemaRef("Inquiry")},
				"total":       {Type: "integer"},
				"page":        {Type: "integer"},
				"page_size":   {Type: "integer"},
				"total_pages": {Type: "integer"},
			},
		},
	}
}
