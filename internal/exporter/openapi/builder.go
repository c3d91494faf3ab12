package openapi

import (
	"encoding/json"
	"io"
)

// OpenAPI Root Object
type OpenAPI struct {
	OpenAPI string              `json:"openapi"`
	Info    Info                `json:"info"`
	Paths   map[string]PathItem `json:"paths"`
}

type Info struct {
	Title   string `json:"title"`
	Version string `json:"version"`
}

type PathItem map[string]Operation // Key is method: "get", "post", etc.

type Operation struct {
	Summary     string              `json:"summary,omitempty"`
	Description string              `json:"description,omitempty"`
	OperationID string              `json:"operationId,omitempty"`
	RequestBody *RequestBody        `json:"requestBody,omitempty"`
	Responses   map[string]Response `json:"responses"`
}

type RequestBody struct {
	Content  map[string]MediaType `json:"content"`
	Required bool                 `json:"required,omitempty"`
}

type MediaType struct {
	Schema interface{} `json:"schema"` // Use interface{} for flexible schema
}

type Response struct {
	Description string               `json:"description"`
	Content     map[string]MediaType `json:"content,omitempty"`
}

// FormField describes one field of the datasheet form
type FormField struct {
	Name        string
	Type        string   // "string" or "boolean"
	Enum        []string // Allowed values, empty for free input
	Required    bool
	Description string
}

// Content types used by the datasheet server
const (
	contentForm = "application/x-www-form-urlencoded"
	contentHTML = "text/html"
	contentJSON = "application/json"
	contentPDF  = "application/pdf"
	contentXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Build describes the datasheet server: the form page, the generation
// endpoint with the given form fields, the options listing and health.
func Build(version string, fields []FormField) *OpenAPI {
	htmlPage := func(desc string) Response {
		return Response{
			Description: desc,
			Content:     map[string]MediaType{contentHTML: {Schema: map[string]interface{}{"type": "string"}}},
		}
	}

	return &OpenAPI{
		OpenAPI: "3.0.0",
		Info: Info{
			Title:   "Motor Datasheet API",
			Version: version,
		},
		Paths: map[string]PathItem{
			"/": {
				"get": Operation{
					Summary:     "Datasheet form",
					OperationID: "form",
					Responses:   map[string]Response{"200": htmlPage("Form with default selection")},
				},
			},
			"/datasheet": {
				"post": Operation{
					Summary:     "Generate a datasheet",
					Description: "Returns the merged PDF when direct_pdf is set, otherwise the filled workbook.",
					OperationID: "generateDatasheet",
					RequestBody: &RequestBody{
						Content:  map[string]MediaType{contentForm: {Schema: buildFormSchema(fields)}},
						Required: true,
					},
					Responses: map[string]Response{
						"200": {
							Description: "Datasheet attachment",
							Content: map[string]MediaType{
								contentPDF:  {Schema: binarySchema()},
								contentXLSX: {Schema: binarySchema()},
							},
						},
						"400": htmlPage("Incomplete or unknown selection"),
						"422": htmlPage("Master data or drawing not found"),
						"500": htmlPage("Generation failed"),
					},
				},
			},
			"/v1/options": {
				"get": Operation{
					Summary:     "Selectable form values",
					OperationID: "options",
					Responses: map[string]Response{
						"200": {
							Description: "Choices per field",
							Content:     map[string]MediaType{contentJSON: {Schema: map[string]interface{}{"type": "object"}}},
						},
					},
				},
			},
			"/healthz": {
				"get": Operation{
					Summary:     "Liveness",
					OperationID: "health",
					Responses:   map[string]Response{"200": {Description: "ok"}},
				},
			},
		},
	}
}

// buildFormSchema builds the object schema of the form body
func buildFormSchema(fields []FormField) map[string]interface{} {
	props := make(map[string]interface{}, len(fields))
	var required []string

	for _, f := range fields {
		fieldSchema := map[string]interface{}{
			"type": mapType(f.Type),
		}
		if len(f.Enum) > 0 {
			fieldSchema["enum"] = f.Enum
		}
		if f.Description != "" {
			fieldSchema["description"] = f.Description
		}
		props[f.Name] = fieldSchema
		if f.Required {
			required = append(required, f.Name)
		}
	}

	schema := map[string]interface{}{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func binarySchema() map[string]interface{} {
	return map[string]interface{}{"type": "string", "format": "binary"}
}

// mapType falls back to string for anything but booleans
func mapType(t string) string {
	if t == "boolean" {
		return "boolean"
	}
	return "string"
}

// Write encodes doc as indented JSON
func Write(w io.Writer, doc *OpenAPI) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}
