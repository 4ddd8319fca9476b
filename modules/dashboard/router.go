package dashboard

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/hotelops/hotelkit/handler"
)

// PageParams feeds the dashboard view.
type PageParams struct {
	Stats Stats
}

// Views holds the templ components the module renders.
type Views struct {
	Page func(PageParams) templ.Component
}

// Handler exposes the dashboard HTTP surface.
type Handler struct {
	svc          *Service
	views        Views
	errorHandler handler.ErrorHandler[handler.Context]
}

// NewHandler wires the dashboard route.
func NewHandler(svc *Service, views Views, errorHandler handler.ErrorHandler[handler.Context]) *Handler {
	return &Handler{svc: svc, views: views, errorHandler: errorHandler}
}

// Handle returns the module router, mounted at the site root.
func (h *Handler) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(h.show,
		handler.WithErrorHandler[handler.Context, emptyRequest](h.errorHandler),
	))

	return r
}

type emptyRequest struct{}

func (h *Handler) show(ctx handler.Context, _ emptyRequest) handler.Response {
	stats, err := h.svc.Stats(ctx)
	if err != nil {
		return handler.JSONError(err)
	}

	if handler.WantsJSON(ctx.Request()) {
		return handler.JSON(stats)
	}
	return handler.Templ(h.views.Page(PageParams{Stats: stats}))
}
