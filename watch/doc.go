// Package watch drives the poll → build → write cycle on an interval.
//
// The loop keeps a consecutive-failure counter whose backoff doubles from
// the base interval up to a 10s cap and resets on the first success. The
// first time a failure is network- or parse-class while the endpoint is
// still the untouched default and stdin is an interactive terminal, the
// loop offers a single prompt for a replacement endpoint (a bare port, a
// host:port, or a full URL); the offer is never repeated, whatever the
// answer. Shutdown comes from context cancellation, observed by every
// sleep.
//
// Import path: github.com/erraggy/openapi-snapshot/watch
package watch
