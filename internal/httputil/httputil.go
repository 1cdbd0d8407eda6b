// Package httputil provides HTTP-related constants shared by the outline
// projection.
package httputil

// HTTP Method Constants
//
// OpenAPI path items use lowercase method names as operation keys.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace" // OAS 3.0+ only
)

// Methods lists every HTTP method key an OpenAPI path item may carry.
var Methods = []string{
	MethodGet,
	MethodPut,
	MethodPost,
	MethodDelete,
	MethodOptions,
	MethodHead,
	MethodPatch,
	MethodTrace,
}

var methodSet = func() map[string]bool {
	set := make(map[string]bool, len(Methods))
	for _, m := range Methods {
		set[m] = true
	}
	return set
}()

// IsMethod reports whether key names an HTTP method within a path item.
// Non-method path item keys (summary, description, parameters, servers,
// x-* extensions) are not methods.
func IsMethod(key string) bool {
	return methodSet[key]
}
