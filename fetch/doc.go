// Package fetch retrieves OpenAPI documents over HTTP.
//
// A Fetcher issues one GET per attempt and retries transient failures
// (connection errors, timeouts, body-read failures, HTTP 429, any 5xx)
// with exponential backoff: 500ms doubling per retry, capped at 4s, three
// attempts in total by default. Any other non-2xx status is terminal and
// its error message carries the numeric status plus a snippet of the
// response body.
//
// Basic usage:
//
//	f := fetch.New()
//	data, err := f.Fetch(ctx, url, headers, 10*time.Second)
//
// Import path: github.com/erraggy/openapi-snapshot/fetch
package fetch
