package handler

import (
	"net/http"

	"github.com/a-h/templ"
)

// templResponse wraps a templ component to implement Response.
type templResponse struct {
	component templ.Component
	status    int
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 {
		w.WriteHeader(t.status)
	}
	return t.component.Render(r.Context(), w)
}

// TemplOption configures a Templ response.
type TemplOption func(*templResponse)

// WithStatus sets the HTTP status code the page is rendered with.
// Form pages re-rendered with validation annotations use 422.
func WithStatus(status int) TemplOption {
	return func(t *templResponse) {
		t.status = status
	}
}

// Templ creates an HTML response from a templ component.
//
//	return handler.Templ(views.BookingForm(form, notes))
func Templ(component templ.Component, opts ...TemplOption) Response {
	t := templResponse{component: component}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}
