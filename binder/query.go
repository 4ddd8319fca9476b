package binder

import (
	"net/http"
)

// Query creates a binder for URL query parameters.
//
// Struct tags:
//   - `query:"name"`  binds to query parameter "name"
//   - `query:"-"`     skips the field
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		return bindToStruct(v, "query", r.URL.Query(), ErrInvalidQuery)
	}
}
