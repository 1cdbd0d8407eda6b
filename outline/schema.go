package outline

import "github.com/erraggy/openapi-snapshot/document"

// compositionKeywords in precedence order; the first one present wins.
var compositionKeywords = []string{"oneOf", "anyOf", "allOf"}

// schemaRefOrType projects a schema into its lightest usable form:
//
//   - $ref collapses to the literal reference string
//   - composition keywords keep their variant list, each variant projected
//   - arrays keep their projected items and require an items schema
//   - objects (declared or implied by an absent type) go through full
//     object simplification
//   - any other declared type collapses to the bare type name
//
// A schema position holding anything but an object cannot declare a type
// at all and is an error.
func schemaRefOrType(schema *document.Value) (*document.Value, error) {
	if !schema.IsObject() {
		return nil, errf("schema missing type")
	}
	if ref, ok := stringField(schema, "$ref"); ok {
		return document.NewString(ref), nil
	}
	if out, ok, err := projectComposition(schema); ok || err != nil {
		return out, err
	}

	typeName, hasType := stringField(schema, "type")
	switch {
	case typeName == "array":
		return projectArray(schema)
	case !hasType || typeName == "object":
		return simplifySchema(schema)
	default:
		return document.NewString(typeName), nil
	}
}

// simplifySchema is the full object simplification used for the schema
// catalogue and for object-typed schemas inside projections. The result
// keeps the object's required list and property map (properties projected
// via schemaRefOrType) instead of collapsing to a bare name.
func simplifySchema(schema *document.Value) (*document.Value, error) {
	if !schema.IsObject() {
		return nil, errf("schema missing type")
	}
	if ref, ok := stringField(schema, "$ref"); ok {
		out := document.NewObject()
		out.Set("$ref", document.NewString(ref))
		return out, nil
	}
	if out, ok, err := projectComposition(schema); ok || err != nil {
		return out, err
	}

	typeName, hasType := stringField(schema, "type")
	switch {
	case typeName == "array":
		return projectArray(schema)
	case !hasType || typeName == "object":
		out := document.NewObject()
		out.Set("type", document.NewString("object"))
		if required, ok := schema.Get("required"); ok {
			projected, err := projectRequired(required)
			if err != nil {
				return nil, err
			}
			out.Set("required", projected)
		}
		if properties, ok := schema.Get("properties"); ok {
			projected, err := projectProperties(properties)
			if err != nil {
				return nil, err
			}
			out.Set("properties", projected)
		}
		return out, nil
	default:
		out := document.NewObject()
		out.Set("type", document.NewString(typeName))
		return out, nil
	}
}

// projectComposition handles oneOf/anyOf/allOf. ok reports whether a
// composition keyword was present.
func projectComposition(schema *document.Value) (*document.Value, bool, error) {
	for _, kw := range compositionKeywords {
		variants, present := schema.Get(kw)
		if !present {
			continue
		}
		if variants.Kind() != document.KindArray {
			return nil, true, errf("%s must be an array", kw)
		}
		projected := document.NewArray()
		for _, variant := range variants.Items() {
			p, err := schemaRefOrType(variant)
			if err != nil {
				return nil, true, err
			}
			projected.Append(p)
		}
		out := document.NewObject()
		out.Set(kw, projected)
		return out, true, nil
	}
	return nil, false, nil
}

func projectArray(schema *document.Value) (*document.Value, error) {
	items, ok := schema.Get("items")
	if !ok {
		return nil, errf("array schema missing items")
	}
	projected, err := schemaRefOrType(items)
	if err != nil {
		return nil, err
	}
	out := document.NewObject()
	out.Set("type", document.NewString("array"))
	out.Set("items", projected)
	return out, nil
}

func projectRequired(required *document.Value) (*document.Value, error) {
	if required.Kind() != document.KindArray {
		return nil, errf("schema required must be an array of strings")
	}
	out := document.NewArray()
	for _, item := range required.Items() {
		name, ok := item.StringValue()
		if !ok {
			return nil, errf("schema required must be an array of strings")
		}
		out.Append(document.NewString(name))
	}
	return out, nil
}

func projectProperties(properties *document.Value) (*document.Value, error) {
	if !properties.IsObject() {
		return nil, errf("schema properties must be an object")
	}
	out := document.NewObject()
	for _, m := range properties.Members() {
		projected, err := schemaRefOrType(m.Value)
		if err != nil {
			return nil, err
		}
		out.Set(m.Key, projected)
	}
	return out, nil
}
