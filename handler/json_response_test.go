package handler_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelops/hotelkit/handler"
	"github.com/hotelops/hotelkit/pkg/validator"
)

func renderJSON(t *testing.T, resp handler.Response) (*httptest.ResponseRecorder, handler.JSONResponse) {
	t.Helper()

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)
	require.NoError(t, resp.Render(w, r))

	var body handler.JSONResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("data payload", func(t *testing.T) {
		t.Parallel()

		w, body := renderJSON(t, handler.JSON(map[string]string{"status": "Confirmed"}))
		assert.Equal(t, 200, w.Code)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Nil(t, body.Error)
	})

	t.Run("custom status and meta", func(t *testing.T) {
		t.Parallel()

		w, body := renderJSON(t, handler.JSON(
			map[string]string{"id": "b-1"},
			handler.WithJSONStatus(201),
			handler.WithJSONMeta(map[string]any{"total": 1}),
		))
		assert.Equal(t, 201, w.Code)
		assert.Equal(t, float64(1), body.Meta["total"])
	})

	t.Run("validation errors render as 422 field map", func(t *testing.T) {
		t.Parallel()

		verrs := validator.ValidationErrors{
			{Field: "check_out", Message: "must be after check-in date"},
			{Field: "first_name", Message: "is required"},
		}

		w, body := renderJSON(t, handler.JSONError(error(verrs)))
		assert.Equal(t, 422, w.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "validation_error", body.Error.Code)
		assert.Equal(t, []string{"must be after check-in date"}, body.Error.Details["check_out"])
		assert.Equal(t, []string{"is required"}, body.Error.Details["first_name"])
	})

	t.Run("http error uses its status code", func(t *testing.T) {
		t.Parallel()

		w, body := renderJSON(t, handler.JSONError(handler.ErrNotFound))
		assert.Equal(t, 404, w.Code)
		assert.Equal(t, "not_found", body.Error.Code)
	})

	t.Run("unknown error defaults to 500", func(t *testing.T) {
		t.Parallel()

		w, body := renderJSON(t, handler.JSONError(assert.AnError))
		assert.Equal(t, 500, w.Code)
		assert.Equal(t, "internal_error", body.Error.Code)
	})
}
