package guest

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hotelops/hotelkit/binder"
	"github.com/hotelops/hotelkit/handler"
	"github.com/hotelops/hotelkit/pkg/forms"
	"github.com/hotelops/hotelkit/pkg/validator"
)

// FormPageParams feeds the guest form view: current values plus the
// per-field annotations rendered inline.
type FormPageParams struct {
	Form        Form
	Annotations forms.Annotations
	Guest       *Guest // set when editing
}

// ListPageParams feeds the guest list view.
type ListPageParams struct {
	Guests []Guest
}

// Views holds the templ components the module renders.
type Views struct {
	ListPage func(ListPageParams) templ.Component
	FormPage func(FormPageParams) templ.Component
}

// Handler exposes the guest HTTP surface.
type Handler struct {
	svc          *Service
	views        Views
	errorHandler handler.ErrorHandler[handler.Context]
}

// NewHandler wires the guest routes.
func NewHandler(svc *Service, views Views, errorHandler handler.ErrorHandler[handler.Context]) *Handler {
	return &Handler{svc: svc, views: views, errorHandler: errorHandler}
}

// Handle returns the module router, mounted under /guests.
func (h *Handler) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(h.list, wrapOpts[emptyRequest](h)...))
	r.Get("/new", handler.Wrap(h.newForm, wrapOpts[emptyRequest](h)...))
	r.Post("/", handler.Wrap(h.create, wrapOpts[Form](h)...))
	r.Get("/{id}/edit", handler.Wrap(h.editForm, wrapOpts[emptyRequest](h)...))
	r.Post("/{id}", handler.Wrap(h.update, wrapOpts[Form](h)...))

	return r
}

type emptyRequest struct{}

// wrapOpts builds the standard wrap options for a request type.
func wrapOpts[R any](h *Handler) []handler.WrapOption[handler.Context, R] {
	return []handler.WrapOption[handler.Context, R]{
		handler.WithBinders[handler.Context, R](binder.Form()),
		handler.WithErrorHandler[handler.Context, R](h.errorHandler),
	}
}

func (h *Handler) list(ctx handler.Context, _ emptyRequest) handler.Response {
	guests, err := h.svc.List(ctx)
	if err != nil {
		return handler.JSONError(err)
	}
	if handler.WantsJSON(ctx.Request()) {
		return handler.JSON(guests)
	}
	return handler.Templ(h.views.ListPage(ListPageParams{Guests: guests}))
}

func (h *Handler) newForm(ctx handler.Context, _ emptyRequest) handler.Response {
	return handler.Templ(h.views.FormPage(FormPageParams{
		Form:        Form{},
		Annotations: Descriptor.NewAnnotations(),
	}))
}

func (h *Handler) create(ctx handler.Context, form Form) handler.Response {
	g, err := h.svc.Create(ctx, form)
	if err != nil {
		return h.reject(ctx, form, nil, err)
	}

	if handler.WantsJSON(ctx.Request()) {
		return handler.JSON(g, handler.WithJSONStatus(http.StatusCreated))
	}
	return handler.Redirect("/guests")
}

func (h *Handler) editForm(ctx handler.Context, _ emptyRequest) handler.Response {
	id, err := uuid.Parse(chi.URLParam(ctx.Request(), "id"))
	if err != nil {
		return handler.JSONError(handler.ErrNotFound)
	}

	g, err := h.svc.Get(ctx, id)
	if err != nil {
		return handler.JSONError(handler.ErrNotFound)
	}

	return handler.Templ(h.views.FormPage(FormPageParams{
		Form:        FromGuest(g),
		Annotations: Descriptor.NewAnnotations(),
		Guest:       &g,
	}))
}

func (h *Handler) update(ctx handler.Context, form Form) handler.Response {
	id, err := uuid.Parse(chi.URLParam(ctx.Request(), "id"))
	if err != nil {
		return handler.JSONError(handler.ErrNotFound)
	}

	g, err := h.svc.Update(ctx, id, form)
	if err != nil {
		return h.reject(ctx, form, &Guest{ID: id}, err)
	}

	if handler.WantsJSON(ctx.Request()) {
		return handler.JSON(g)
	}
	return handler.Redirect("/guests")
}

// reject renders a failed submit: 422 with the field map for JSON clients,
// the re-rendered form with annotations and the entered values for browsers.
func (h *Handler) reject(ctx handler.Context, form Form, editing *Guest, err error) handler.Response {
	if !validator.IsValidationError(err) {
		return handler.JSONError(err)
	}

	if handler.WantsJSON(ctx.Request()) {
		return handler.JSONError(err)
	}

	ann := Descriptor.NewAnnotations()
	ann.ApplyResult(err)
	return handler.Templ(h.views.FormPage(FormPageParams{
		Form:        form,
		Annotations: ann,
		Guest:       editing,
	}), handler.WithStatus(http.StatusUnprocessableEntity))
}
