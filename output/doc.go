// Package output turns one fetched OpenAPI document into serialized
// payloads and persists them.
//
// Builder drives fetch → parse → reduce/outline → serialization, producing
// a Payloads value from a single snapshot of the endpoint. Writer routes
// payloads to standard output or to their configured destinations through
// WriteAtomic, which stages contents in a temp file and renames it into
// place so readers never observe partial output.
//
// Import path: github.com/erraggy/openapi-snapshot/output
package output
