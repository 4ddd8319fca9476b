package handler_test

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelops/hotelkit/binder"
	"github.com/hotelops/hotelkit/handler"
)

type createGuestRequest struct {
	FirstName string `form:"first_name"`
	LastName  string `form:"last_name"`
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("binds form and renders response", func(t *testing.T) {
		t.Parallel()

		h := handler.HandlerFunc[handler.Context, createGuestRequest](
			func(ctx handler.Context, req createGuestRequest) handler.Response {
				return handler.JSON(map[string]string{"first_name": req.FirstName})
			},
		)

		body := url.Values{"first_name": {"Mary"}, "last_name": {"Smith"}}
		r := httptest.NewRequest("POST", "/guests", strings.NewReader(body.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()

		handler.Wrap(h,
			handler.WithBinders[handler.Context, createGuestRequest](binder.Form()),
		)(w, r)

		require.Equal(t, 200, w.Code)
		assert.Contains(t, w.Body.String(), `"first_name":"Mary"`)
	})

	t.Run("skips binders that do not apply", func(t *testing.T) {
		t.Parallel()

		var bound createGuestRequest
		h := handler.HandlerFunc[handler.Context, createGuestRequest](
			func(ctx handler.Context, req createGuestRequest) handler.Response {
				bound = req
				return handler.JSON(nil)
			},
		)

		r := httptest.NewRequest("GET", "/guests/new?first_name=ignored", nil)
		w := httptest.NewRecorder()

		handler.Wrap(h,
			handler.WithBinders[handler.Context, createGuestRequest](binder.Form()),
		)(w, r)

		require.Equal(t, 200, w.Code)
		assert.Empty(t, bound.FirstName)
	})

	t.Run("bind error reaches error handler", func(t *testing.T) {
		t.Parallel()

		h := handler.HandlerFunc[handler.Context, createGuestRequest](
			func(ctx handler.Context, req createGuestRequest) handler.Response {
				t.Fatal("handler must not run on bind failure")
				return nil
			},
		)

		var handled error
		r := httptest.NewRequest("POST", "/guests", strings.NewReader("{}"))
		r.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		handler.Wrap(h,
			handler.WithBinders[handler.Context, createGuestRequest](binder.Form()),
			handler.WithErrorHandler[handler.Context, createGuestRequest](
				func(ctx handler.Context, err error) { handled = err },
			),
		)(w, r)

		assert.ErrorIs(t, handled, binder.ErrUnsupportedMediaType)
	})

	t.Run("nil response is an error", func(t *testing.T) {
		t.Parallel()

		h := handler.HandlerFunc[handler.Context, createGuestRequest](
			func(ctx handler.Context, req createGuestRequest) handler.Response {
				return nil
			},
		)

		var handled error
		r := httptest.NewRequest("GET", "/guests", nil)
		w := httptest.NewRecorder()

		handler.Wrap(h,
			handler.WithErrorHandler[handler.Context, createGuestRequest](
				func(ctx handler.Context, err error) { handled = err },
			),
		)(w, r)

		assert.ErrorIs(t, handled, handler.ErrNilResponse)
	})

	t.Run("decorators run first to outermost", func(t *testing.T) {
		t.Parallel()

		var order []string
		mark := func(name string) handler.Decorator[handler.Context, createGuestRequest] {
			return func(next handler.HandlerFunc[handler.Context, createGuestRequest]) handler.HandlerFunc[handler.Context, createGuestRequest] {
				return func(ctx handler.Context, req createGuestRequest) handler.Response {
					order = append(order, name)
					return next(ctx, req)
				}
			}
		}

		h := handler.HandlerFunc[handler.Context, createGuestRequest](
			func(ctx handler.Context, req createGuestRequest) handler.Response {
				order = append(order, "handler")
				return handler.JSON(nil)
			},
		)

		r := httptest.NewRequest("GET", "/guests", nil)
		w := httptest.NewRecorder()

		handler.Wrap(h,
			handler.WithDecorators(mark("outer"), mark("inner")),
		)(w, r)

		assert.Equal(t, []string{"outer", "inner", "handler"}, order)
	})
}

func TestRedirect(t *testing.T) {
	t.Parallel()

	h := handler.HandlerFunc[handler.Context, createGuestRequest](
		func(ctx handler.Context, req createGuestRequest) handler.Response {
			return handler.Redirect("/guests")
		},
	)

	r := httptest.NewRequest("POST", "/guests", nil)
	w := httptest.NewRecorder()
	handler.Wrap(h)(w, r)

	assert.Equal(t, 303, w.Code)
	assert.Equal(t, "/guests", w.Header().Get("Location"))
}
