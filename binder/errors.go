package binder

import "errors"

var (
	// ErrMissingContentType indicates the request carried no Content-Type.
	ErrMissingContentType = errors.New("missing content type")
	// ErrUnsupportedMediaType indicates a Content-Type the binder cannot parse.
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	// ErrInvalidForm indicates form data that could not be parsed or bound.
	ErrInvalidForm = errors.New("invalid form data")
	// ErrInvalidQuery indicates query parameters that could not be bound.
	ErrInvalidQuery = errors.New("invalid query parameters")
	// ErrBinderNotApplicable signals the binder does not apply to this
	// request; the handler chain skips it and tries the next binder.
	ErrBinderNotApplicable = errors.New("binder not applicable")
)
