package booking

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hotelops/hotelkit/binder"
	"github.com/hotelops/hotelkit/handler"
	"github.com/hotelops/hotelkit/modules/guest"
	"github.com/hotelops/hotelkit/modules/room"
	"github.com/hotelops/hotelkit/pkg/forms"
	"github.com/hotelops/hotelkit/pkg/validator"
)

// FormPageParams feeds the booking form view. Guests and Rooms populate the
// selector fields.
type FormPageParams struct {
	Form        Form
	Annotations forms.Annotations
	Guests      []guest.Guest
	Rooms       []room.Room
	Booking     *Booking // set when editing
}

// ListPageParams feeds the booking list view.
type ListPageParams struct {
	Bookings []Booking
}

// Views holds the templ components the module renders.
type Views struct {
	ListPage func(ListPageParams) templ.Component
	FormPage func(FormPageParams) templ.Component
}

// Handler exposes the booking HTTP surface.
type Handler struct {
	svc          *Service
	availability *Availability
	guests       *guest.Service
	rooms        *room.Service
	views        Views
	errorHandler handler.ErrorHandler[handler.Context]
}

// NewHandler wires the booking routes.
func NewHandler(
	svc *Service,
	availability *Availability,
	guests *guest.Service,
	rooms *room.Service,
	views Views,
	errorHandler handler.ErrorHandler[handler.Context],
) *Handler {
	return &Handler{
		svc:          svc,
		availability: availability,
		guests:       guests,
		rooms:        rooms,
		views:        views,
		errorHandler: errorHandler,
	}
}

// Handle returns the module router, mounted under /bookings.
func (h *Handler) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(h.list, wrapOpts[emptyRequest](h)...))
	r.Get("/new", handler.Wrap(h.newForm, wrapOpts[emptyRequest](h)...))
	r.Post("/", handler.Wrap(h.create, wrapOpts[Form](h)...))
	r.Get("/availability", handler.Wrap(h.checkAvailability, availabilityOpts(h)...))
	r.Get("/{id}/edit", handler.Wrap(h.editForm, wrapOpts[emptyRequest](h)...))
	r.Post("/{id}", handler.Wrap(h.update, wrapOpts[Form](h)...))
	r.Post("/{id}/check-in", handler.Wrap(h.statusSetter(StatusCheckedIn), wrapOpts[emptyRequest](h)...))
	r.Post("/{id}/check-out", handler.Wrap(h.statusSetter(StatusCheckedOut), wrapOpts[emptyRequest](h)...))
	r.Post("/{id}/no-show", handler.Wrap(h.statusSetter(StatusNoShow), wrapOpts[emptyRequest](h)...))

	return r
}

type emptyRequest struct{}

func wrapOpts[R any](h *Handler) []handler.WrapOption[handler.Context, R] {
	return []handler.WrapOption[handler.Context, R]{
		handler.WithBinders[handler.Context, R](binder.Form()),
		handler.WithErrorHandler[handler.Context, R](h.errorHandler),
	}
}

// AvailabilityRequest is the refresh seam the booking form calls: room and
// date range in, free/busy out.
type AvailabilityRequest struct {
	RoomID   string `query:"room_id"`
	CheckIn  string `query:"check_in"`
	CheckOut string `query:"check_out"`
	Exclude  string `query:"exclude"`
}

func availabilityOpts(h *Handler) []handler.WrapOption[handler.Context, AvailabilityRequest] {
	return []handler.WrapOption[handler.Context, AvailabilityRequest]{
		handler.WithBinders[handler.Context, AvailabilityRequest](binder.Query()),
		handler.WithErrorHandler[handler.Context, AvailabilityRequest](h.errorHandler),
	}
}

func (h *Handler) checkAvailability(ctx handler.Context, req AvailabilityRequest) handler.Response {
	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return handler.JSONError(validator.ValidationErrors{{Field: "room_id", Message: "must be a valid selection"}})
	}
	checkIn, inErr := validator.ParseDate(req.CheckIn)
	checkOut, outErr := validator.ParseDate(req.CheckOut)
	if inErr != nil || outErr != nil || !checkOut.After(checkIn) {
		return handler.JSONError(validator.ValidationErrors{{Field: "check_out", Message: "must be after check-in date"}})
	}

	var exclude *uuid.UUID
	if req.Exclude != "" {
		id, err := uuid.Parse(req.Exclude)
		if err == nil {
			exclude = &id
		}
	}

	result, err := h.availability.Check(ctx, roomID, checkIn, checkOut, exclude)
	if err != nil {
		return handler.JSONError(err)
	}
	return handler.JSON(result)
}

func (h *Handler) list(ctx handler.Context, _ emptyRequest) handler.Response {
	bookings, err := h.svc.List(ctx)
	if err != nil {
		return handler.JSONError(err)
	}
	if handler.WantsJSON(ctx.Request()) {
		return handler.JSON(bookings)
	}
	return handler.Templ(h.views.ListPage(ListPageParams{Bookings: bookings}))
}

func (h *Handler) newForm(ctx handler.Context, _ emptyRequest) handler.Response {
	return h.renderForm(ctx, Form{}, Descriptor.NewAnnotations(), nil, http.StatusOK)
}

func (h *Handler) create(ctx handler.Context, form Form) handler.Response {
	b, err := h.svc.Create(ctx, form)
	if err != nil {
		return h.reject(ctx, form, nil, err)
	}

	if handler.WantsJSON(ctx.Request()) {
		return handler.JSON(b, handler.WithJSONStatus(http.StatusCreated))
	}
	return handler.Redirect("/bookings")
}

func (h *Handler) editForm(ctx handler.Context, _ emptyRequest) handler.Response {
	id, err := uuid.Parse(chi.URLParam(ctx.Request(), "id"))
	if err != nil {
		return handler.JSONError(handler.ErrNotFound)
	}

	b, err := h.svc.Get(ctx, id)
	if err != nil {
		return handler.JSONError(handler.ErrNotFound)
	}

	return h.renderForm(ctx, FromBooking(b), Descriptor.NewAnnotations(), &b, http.StatusOK)
}

func (h *Handler) update(ctx handler.Context, form Form) handler.Response {
	id, err := uuid.Parse(chi.URLParam(ctx.Request(), "id"))
	if err != nil {
		return handler.JSONError(handler.ErrNotFound)
	}

	b, err := h.svc.Update(ctx, id, form)
	if err != nil {
		return h.reject(ctx, form, &Booking{ID: id}, err)
	}

	if handler.WantsJSON(ctx.Request()) {
		return handler.JSON(b)
	}
	return handler.Redirect("/bookings")
}

func (h *Handler) statusSetter(status Status) handler.HandlerFunc[handler.Context, emptyRequest] {
	return func(ctx handler.Context, _ emptyRequest) handler.Response {
		id, err := uuid.Parse(chi.URLParam(ctx.Request(), "id"))
		if err != nil {
			return handler.JSONError(handler.ErrNotFound)
		}

		b, err := h.svc.SetStatus(ctx, id, status)
		if err != nil {
			return handler.JSONError(err)
		}

		if handler.WantsJSON(ctx.Request()) {
			return handler.JSON(b)
		}
		return handler.Redirect("/bookings")
	}
}

func (h *Handler) reject(ctx handler.Context, form Form, editing *Booking, err error) handler.Response {
	if !validator.IsValidationError(err) {
		return handler.JSONError(err)
	}

	if handler.WantsJSON(ctx.Request()) {
		return handler.JSONError(err)
	}

	ann := Descriptor.NewAnnotations()
	ann.ApplyResult(err)
	return h.renderForm(ctx, form, ann, editing, http.StatusUnprocessableEntity)
}

// renderForm loads the selector data and renders the form page. Entered
// values are echoed back as-is on rejection.
func (h *Handler) renderForm(ctx handler.Context, form Form, ann forms.Annotations, editing *Booking, status int) handler.Response {
	guests, err := h.guests.List(ctx)
	if err != nil {
		return handler.JSONError(err)
	}
	rooms, err := h.rooms.List(ctx)
	if err != nil {
		return handler.JSONError(err)
	}

	return handler.Templ(h.views.FormPage(FormPageParams{
		Form:        form,
		Annotations: ann,
		Guests:      guests,
		Rooms:       rooms,
		Booking:     editing,
	}), handler.WithStatus(status))
}
