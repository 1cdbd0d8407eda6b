// Package document provides an order-preserving JSON value tree for OpenAPI
// documents.
//
// Import path: github.com/erraggy/openapi-snapshot/document
//
// The standard library's map-based decoding sorts object keys on output,
// which would destroy the key ordering guarantees the snapshot tool makes
// (reduced documents list keys in the order they were requested; untouched
// sections keep their source order). [Parse] instead decodes into [Value], a
// tagged union (object/array/string/number/bool/null) whose object members
// remember their source positions and whose numbers keep their literal form.
//
// Values parsed from a document are treated as read-only; transforms build
// new trees and may share subtrees with their input.
//
// Example:
//
//	doc, err := document.Parse(body)
//	if err != nil {
//	    return err
//	}
//	if paths, ok := doc.Get("paths"); ok {
//	    fmt.Println(paths.Keys())
//	}
//	out, err := doc.MarshalIndent("", "  ")
package document
