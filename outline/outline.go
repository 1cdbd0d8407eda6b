package outline

import (
	"github.com/erraggy/openapi-snapshot/document"
	"github.com/erraggy/openapi-snapshot/internal/httputil"
	"github.com/erraggy/openapi-snapshot/snaperrors"
)

// Build projects doc into the outline form { "paths": …, "schemas": … }.
// The input must be a JSON object with a paths object; walked maps keep
// their source order in the output. Build never modifies doc.
func Build(doc *document.Value) (*document.Value, error) {
	if !doc.IsObject() {
		return nil, errf("OpenAPI document must be a JSON object")
	}
	paths, ok := doc.Get("paths")
	if !ok {
		return nil, errf("OpenAPI document missing paths")
	}
	if !paths.IsObject() {
		return nil, errf("paths must be an object")
	}

	outlinedPaths, err := outlinePaths(paths)
	if err != nil {
		return nil, err
	}
	outlinedSchemas, err := outlineSchemas(doc)
	if err != nil {
		return nil, err
	}

	out := document.NewObject()
	out.Set("paths", outlinedPaths)
	out.Set("schemas", outlinedSchemas)
	return out, nil
}

func outlinePaths(paths *document.Value) (*document.Value, error) {
	out := document.NewObject()
	for _, item := range paths.Members() {
		outlined, err := outlinePathItem(item.Key, item.Value)
		if err != nil {
			return nil, err
		}
		out.Set(item.Key, outlined)
	}
	return out, nil
}

// outlinePathItem maps the method keys of one path item. Non-method keys
// (summary, parameters, x-* extensions) are not operations and are skipped.
func outlinePathItem(path string, item *document.Value) (*document.Value, error) {
	if !item.IsObject() {
		return nil, errf("path item must be an object: %s", path)
	}
	out := document.NewObject()
	for _, m := range item.Members() {
		if !httputil.IsMethod(m.Key) {
			continue
		}
		op, err := outlineOperation(path, m.Key, m.Value)
		if err != nil {
			return nil, err
		}
		out.Set(m.Key, op)
	}
	return out, nil
}

func outlineOperation(path, method string, op *document.Value) (*document.Value, error) {
	if !op.IsObject() {
		return nil, errf("operation must be an object: %s %s", path, method)
	}
	loc := path + " " + method

	query, err := outlineQueryParams(op, loc)
	if err != nil {
		return nil, err
	}
	request, err := outlineRequest(op, loc)
	if err != nil {
		return nil, err
	}
	responses, err := outlineResponses(op, loc)
	if err != nil {
		return nil, err
	}

	out := document.NewObject()
	out.Set("query", query)
	out.Set("request", request)
	out.Set("responses", responses)
	return out, nil
}

func outlineQueryParams(op *document.Value, loc string) (*document.Value, error) {
	params, ok := op.Get("parameters")
	if !ok {
		return document.NewArray(), nil
	}
	if params.Kind() != document.KindArray {
		return nil, errf("parameters must be an array: %s", loc)
	}
	out := document.NewArray()
	for _, entry := range params.Items() {
		projected, err := outlineParameter(entry, loc)
		if err != nil {
			return nil, err
		}
		out.Append(projected)
	}
	return out, nil
}

// outlineParameter projects one parameter entry. Reference entries pass
// through; inline parameters must be query parameters with a name and a
// schema — the outline exists to pin the contract, so a malformed parameter
// is an error rather than a silent drop.
func outlineParameter(param *document.Value, loc string) (*document.Value, error) {
	if ref, ok := stringField(param, "$ref"); ok {
		out := document.NewObject()
		out.Set("$ref", document.NewString(ref))
		return out, nil
	}
	if !param.IsObject() {
		return nil, errf("parameter must be an object: %s", loc)
	}
	if in, _ := stringField(param, "in"); in != "query" {
		return nil, errf("non-query parameter: %s", loc)
	}
	name, ok := stringField(param, "name")
	if !ok || name == "" {
		return nil, errf("query parameter missing name: %s", loc)
	}
	required := false
	if r, ok := param.Get("required"); ok {
		if b, ok := r.BoolValue(); ok {
			required = b
		}
	}
	schema, ok := param.Get("schema")
	if !ok {
		return nil, errf("query parameter %q missing schema: %s", name, loc)
	}
	projected, err := schemaRefOrType(schema)
	if err != nil {
		return nil, err
	}

	out := document.NewObject()
	out.Set("name", document.NewString(name))
	out.Set("required", document.NewBool(required))
	out.Set("schema", projected)
	return out, nil
}

func outlineRequest(op *document.Value, loc string) (*document.Value, error) {
	body, ok := op.Get("requestBody")
	if !ok {
		return document.Null(), nil
	}
	// A referenced request body collapses to the reference string.
	if ref, ok := stringField(body, "$ref"); ok {
		return document.NewString(ref), nil
	}
	content, ok := body.Get("content")
	if !ok || !content.IsObject() {
		return nil, errf("requestBody content must be an object: %s", loc)
	}
	schema, ok := selectContentSchema(content)
	if !ok {
		return nil, errf("requestBody has no usable schema: %s", loc)
	}
	return schemaRefOrType(schema)
}

func outlineResponses(op *document.Value, loc string) (*document.Value, error) {
	responses, ok := op.Get("responses")
	if !ok {
		return nil, errf("operation missing responses: %s", loc)
	}
	if !responses.IsObject() {
		return nil, errf("responses must be an object: %s", loc)
	}
	out := document.NewObject()
	for _, m := range responses.Members() {
		projected, err := outlineResponse(m.Key, m.Value, loc)
		if err != nil {
			return nil, err
		}
		out.Set(m.Key, projected)
	}
	return out, nil
}

// outlineResponse resolves one status-code entry to its schema projection.
// A referenced response collapses to the plain reference string.
func outlineResponse(code string, resp *document.Value, loc string) (*document.Value, error) {
	if ref, ok := stringField(resp, "$ref"); ok {
		return document.NewString(ref), nil
	}
	content, ok := resp.Get("content")
	if !ok || !content.IsObject() {
		return nil, errf("response missing schema for status %s: %s", code, loc)
	}
	schema, ok := selectContentSchema(content)
	if !ok {
		return nil, errf("response missing schema for status %s: %s", code, loc)
	}
	return schemaRefOrType(schema)
}

// selectContentSchema picks the schema from a content map: the
// application/json entry wins, otherwise the first entry in source order
// that carries a schema.
func selectContentSchema(content *document.Value) (*document.Value, bool) {
	if appJSON, ok := content.Get("application/json"); ok {
		if schema, ok := appJSON.Get("schema"); ok {
			return schema, true
		}
	}
	for _, m := range content.Members() {
		if schema, ok := m.Value.Get("schema"); ok {
			return schema, true
		}
	}
	return nil, false
}

func outlineSchemas(doc *document.Value) (*document.Value, error) {
	out := document.NewObject()
	components, ok := doc.Get("components")
	if !ok {
		return out, nil
	}
	if !components.IsObject() {
		return nil, errf("components must be an object")
	}
	schemas, ok := components.Get("schemas")
	if !ok {
		return out, nil
	}
	if !schemas.IsObject() {
		return nil, errf("components.schemas must be an object")
	}
	for _, m := range schemas.Members() {
		simplified, err := simplifySchema(m.Value)
		if err != nil {
			return nil, err
		}
		out.Set(m.Key, simplified)
	}
	return out, nil
}

// stringField returns the string content of an object field; ok is false
// when the field is absent or not a string.
func stringField(v *document.Value, key string) (string, bool) {
	field, ok := v.Get(key)
	if !ok {
		return "", false
	}
	return field.StringValue()
}

func errf(format string, args ...any) error {
	return snaperrors.Newf(snaperrors.KindOutline, format, args...)
}
