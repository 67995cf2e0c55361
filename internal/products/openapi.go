package products

import "github.com/JaimeStill/showroom/pkg/openapi"

// spec holds OpenAPI operation definitions for the products domain.
type spec struct {
	List   *openapi.Operation
	Find   *openapi.Operation
	Create *openapi.Operation
	Update *openapi.Operation
	Delete *openapi.Operation
}

// Spec contains OpenAPI operation definitions for all product endpoints.
var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List products",
		Description: "Returns a paginated list of products with optional filtering and sorting",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("page", "integer", "Page number (1-indexed)", false),
			openapi.QueryParam("page_size", "integer", "Results per page", false),
			openapi.QueryParam("search", "string", "Search query (matches name, description, category)", false),
			openapi.QueryParam("sort", "string", "Comma-separated sort fields. Prefix with - for descending", false),
			openapi.QueryParam("category", "string", "Filter by category", false),
			openapi.QueryParam("featured", "boolean", "Filter by featured flag", false),
			openapi.QueryParam("in_stock", "boolean", "Filter by stock availability", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Paginated list of products", "ProductPageResult"),
		},
	},
	Find: &openapi.Operation{
		Summary:     "Find product by ID",
		Description: "Retrieves a single product",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Product UUID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Product", "Product"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create product",
		Description: "Adds a product to the catalogue (admin only)",
		Security:    openapi.BearerAuth,
		RequestBody: openapi.RequestBodyJSON("CreateProductCommand", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Product created", "Product"),
			400: openapi.ResponseRef("BadRequest"),
			401: openapi.ResponseRef("Unauthorized"),
			403: openapi.ResponseRef("Forbidden"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update product",
		Description: "Replaces a product's fields (admin only)",
		Security:    openapi.BearerAuth,
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Product UUID"),
		},
		RequestBody: openapi.RequestBodyJSON("UpdateProductCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Product updated", "Product"),
			400: openapi.ResponseRef("BadRequest"),
			401: openapi.ResponseRef("Unauthorized"),
			403: openapi.ResponseRef("Forbidden"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete product",
		Description: "Removes a product from the catalogue (admin only)",
		Security:    openapi.BearerAuth,
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Product UUID"),
		},
		Responses: map[int]*openapi.Response{
			204: {Description: "Product deleted"},
			401: openapi.ResponseRef("Unauthorized"),
			403: openapi.ResponseRef("Forbidden"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func commandSchema(inStockDesc string) *openapi.Schema {
	return &openapi.Schema{
		Type:     "object",
		Required: []string{"name", "category", "price"},
		Properties: map[string]*openapi.Schema{
			"name":        {Type: "string", MaxLength: openapi.Ptr(200)},
			"description": {Type: "string"},
			"category":    {Type: "string", MaxLength: openapi.Ptr(100)},
			"price":       {Type: "number", Minimum: openapi.Ptr(0.0)},
			"image_url":   {Type: "string", Format: "uri"},
			"featured":    {Type: "boolean"},
			"in_stock":    {Type: "boolean", Description: inStockDesc},
		},
	}
}

// Schemas returns the product domain schemas for OpenAPI components.
func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Product": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Format: "uuid"},
				"name":        {Type: "string"},
				"description": {Type: "string"},
				"category":    {Type: "string"},
				"price":       {Type: "number"},
				"image_url":   {Type: "string", Format: "uri"},
				"featured":    {Type: "boolean"},
				"in_stock":    {Type: "boolean"},
				"created_at":  {Type: "string", Format: "date-time"},
				"updated_at":  {Type: "string", Format: "date-time"},
			},
		},
		"CreateProductCommand": commandSchema("Defaults to true"),
		"UpdateProductCommand": commandSchema(""),
		"ProductPageResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"data":        {Type: "array", Items: openapi.SchemaRef("Product")},
				"total":       {Type: "integer"},
				"page":        {Type: "integer"},
				"page_size":   {Type: "integer"},
				"total_pages": {Type: "integer"},
			},
		},
	}
}
