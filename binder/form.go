// Package binder parses HTTP requests into typed request structs. Form and
// query binders are tag-driven (`form:"name"`, `query:"name"`) and leave
// untagged-but-absent fields at their zero values so validation decides what
// emptiness means.
package binder

import (
	"fmt"
	"net/http"
	"strings"
)

// Form creates a binder for application/x-www-form-urlencoded bodies.
//
// Struct tags:
//   - `form:"name"`  binds to form field "name"
//   - `form:"-"`     skips the field
//
// Supported field types are string, integer, float and bool plus slices and
// pointers of those. Date and numeric form fields in this application bind as
// strings: the validation engine owns their parsing so that malformed input
// surfaces as a field annotation rather than a transport error.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			return ErrBinderNotApplicable
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			return fmt.Errorf("%w: expected application/x-www-form-urlencoded", ErrMissingContentType)
		}

		mediaType := contentType
		if idx := strings.Index(contentType, ";"); idx != -1 {
			mediaType = strings.TrimSpace(contentType[:idx])
		}

		if mediaType != "application/x-www-form-urlencoded" {
			return fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded", ErrUnsupportedMediaType, mediaType)
		}

		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}

		return bindToStruct(v, "form", r.PostForm, ErrInvalidForm)
	}
}
