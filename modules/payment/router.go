package payment

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hotelops/hotelkit/binder"
	"github.com/hotelops/hotelkit/handler"
	"github.com/hotelops/hotelkit/modules/booking"
	"github.com/hotelops/hotelkit/pkg/forms"
	"github.com/hotelops/hotelkit/pkg/validator"
)

// FormPageParams feeds the payment form view. Bookings populates the booking
// selector.
type FormPageParams struct {
	Form        Form
	Annotations forms.Annotations
	Bookings    []booking.Booking
}

// ListPageParams feeds the payment list view.
type ListPageParams struct {
	Payments []Payment
}

// Views holds the templ components the module renders.
type Views struct {
	ListPage func(ListPageParams) templ.Component
	FormPage func(FormPageParams) templ.Component
}

// Handler exposes the payment HTTP surface.
type Handler struct {
	svc          *Service
	bookings     *booking.Service
	views        Views
	errorHandler handler.ErrorHandler[handler.Context]
}

// NewHandler wires the payment routes.
func NewHandler(svc *Service, bookings *booking.Service, views Views, errorHandler handler.ErrorHandler[handler.Context]) *Handler {
	return &Handler{svc: svc, bookings: bookings, views: views, errorHandler: errorHandler}
}

// Handle returns the module router, mounted under /payments.
func (h *Handler) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(h.list, wrapOpts[listRequest](h)...))
	r.Get("/new", handler.Wrap(h.newForm, wrapOpts[emptyRequest](h)...))
	r.Post("/", handler.Wrap(h.create, wrapOpts[Form](h)...))

	return r
}

type emptyRequest struct{}

// listRequest optionally narrows the payment list to one booking.
type listRequest struct {
	BookingID string `query:"booking_id"`
}

func wrapOpts[R any](h *Handler) []handler.WrapOption[handler.Context, R] {
	return []handler.WrapOption[handler.Context, R]{
		handler.WithBinders[handler.Context, R](binder.Form(), binder.Query()),
		handler.WithErrorHandler[handler.Context, R](h.errorHandler),
	}
}

func (h *Handler) list(ctx handler.Context, req listRequest) handler.Response {
	var (
		payments []Payment
		err      error
	)
	if req.BookingID != "" {
		bookingID, parseErr := uuid.Parse(req.BookingID)
		if parseErr != nil {
			return handler.JSONError(handler.ErrNotFound)
		}
		payments, err = h.svc.ListByBooking(ctx, bookingID)
	} else {
		payments, err = h.svc.List(ctx)
	}
	if err != nil {
		return handler.JSONError(err)
	}

	if handler.WantsJSON(ctx.Request()) {
		return handler.JSON(payments)
	}
	return handler.Templ(h.views.ListPage(ListPageParams{Payments: payments}))
}

func (h *Handler) newForm(ctx handler.Context, _ emptyRequest) handler.Response {
	return h.renderForm(ctx, Form{}, Descriptor.NewAnnotations(), http.StatusOK)
}

func (h *Handler) create(ctx handler.Context, form Form) handler.Response {
	p, err := h.svc.Create(ctx, form)
	if err != nil {
		if !validator.IsValidationError(err) {
			return handler.JSONError(err)
		}
		if handler.WantsJSON(ctx.Request()) {
			return handler.JSONError(err)
		}
		ann := Descriptor.NewAnnotations()
		ann.ApplyResult(err)
		return h.renderForm(ctx, form, ann, http.StatusUnprocessableEntity)
	}

	if handler.WantsJSON(ctx.Request()) {
		return handler.JSON(p, handler.WithJSONStatus(http.StatusCreated))
	}
	return handler.Redirect("/payments")
}

// renderForm loads the booking selector and renders the form page. Entered
// values are echoed back as-is on rejection.
func (h *Handler) renderForm(ctx handler.Context, form Form, ann forms.Annotations, status int) handler.Response {
	bookings, err := h.bookings.List(ctx)
	if err != nil {
		return handler.JSONError(err)
	}

	return handler.Templ(h.views.FormPage(FormPageParams{
		Form:        form,
		Annotations: ann,
		Bookings:    bookings,
	}), handler.WithStatus(status))
}
