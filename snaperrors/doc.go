// Package snaperrors provides structured error types for openapi-snapshot.
//
// Import path: github.com/erraggy/openapi-snapshot/snaperrors
//
// Every failure surfaced by the library packages is an [*Error] carrying one
// of six [Kind] values. The kind determines the process exit code and whether
// the watch loop treats the failure as endpoint-related (eligible for the
// one-time interactive recovery prompt).
//
// # Error Kinds
//
//   - [KindUsage]: invalid configuration or flag combination (exit 1)
//   - [KindNetwork]: transport or HTTP-status failure after retries (exit 1)
//   - [KindParse]: response body is not valid JSON (exit 2)
//   - [KindReduce]: requested top-level key missing or malformed reduce list (exit 3)
//   - [KindOutline]: structural violation found while projecting (exit 3)
//   - [KindIO]: filesystem failure while writing output (exit 4)
//
// # Sentinel Errors
//
// Each kind has a corresponding sentinel for use with errors.Is():
//
//	if errors.Is(err, snaperrors.ErrNetwork) {
//	    // transport-level failure
//	}
//
// # Exit Codes
//
// The CLI maps any error to an exit code with [ExitCode]; errors that are not
// an [*Error] map to 1, the same bucket as usage errors.
package snaperrors
