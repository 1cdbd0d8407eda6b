// Package outline projects an OpenAPI document into a minimal contract
// surface.
//
// Import path: github.com/erraggy/openapi-snapshot/outline
//
// The outline keeps just enough of a document for downstream consumers
// (client generators, diff tools, reviewers) to see the API's shape: per
// operation the query parameters, the request schema, and the response
// schemas, plus a simplified catalogue of the named component schemas.
// Descriptions, examples, and vendor extensions are dropped.
//
// Unlike the reducer, outlining interprets the document, and it is strict:
// a structurally invalid construct (a non-query parameter, a parameter or
// response without a schema, an array schema without items) is an error,
// never a silent drop.
//
// Given an operation:
//
//	"/health": {"get": {"responses": {"200": {"content": {
//	    "application/json": {"schema": {"$ref": "#/components/schemas/Health"}}}}}}}
//
// the outline is:
//
//	"/health": {"get": {"query": [], "request": null,
//	    "responses": {"200": "#/components/schemas/Health"}}}
package outline
