// Package openapisnapshot provides tools for snapshotting a live server's
// OpenAPI JSON document to disk.
//
// The openapi-snapshot command fetches an OpenAPI document from an HTTP
// endpoint, optionally reduces it to named top-level sections or projects it
// into a compact outline form, and writes the result atomically to a file or
// to standard output — once, or continuously on an interval.
//
// # Overview
//
// The repository consists of small focused packages:
//
//   - fetch: retrieve the document over HTTP with bounded retries
//   - document: parse JSON into an order-preserving value tree
//   - reduce: keep only named top-level sections of a document
//   - outline: project paths and schemas into a minimal contract surface
//   - output: build payloads and write them atomically
//   - watch: poll, transform, and persist on an interval with backoff
//   - config: configuration values, defaults, and the optional YAML file
//   - snaperrors: typed error kinds mapped to process exit codes
//
// # Quick Start
//
// Snapshot a local server once, keeping only paths and components:
//
//	openapi-snapshot --url http://localhost:3000/api-docs/openapi.json \
//	    --out openapi/backend_openapi.json --reduce paths,components
//
// Keep the snapshot fresh while developing:
//
//	openapi-snapshot watch --interval-ms 2000
//
// Emit only the outline projection to stdout:
//
//	openapi-snapshot --profile outline --stdout
//
// The root package carries build metadata (set via ldflags at release time)
// and the Logger interface shared by the library packages.
package openapisnapshot
