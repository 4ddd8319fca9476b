package requestid_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelops/hotelkit/pkg/requestid"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(requestid.FromContext(r.Context())))
	})

	t.Run("generates an id when none supplied", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		requestid.Middleware(echo).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		id := rec.Header().Get(requestid.Header)
		require.NotEmpty(t, id)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("reuses a valid client id", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(requestid.Header, "trace-abc_123")
		rec := httptest.NewRecorder()
		requestid.Middleware(echo).ServeHTTP(rec, req)

		assert.Equal(t, "trace-abc_123", rec.Header().Get(requestid.Header))
	})

	t.Run("replaces malformed or oversized ids", func(t *testing.T) {
		t.Parallel()

		for _, bad := range []string{"has space", "семь", strings.Repeat("a", 200)} {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(requestid.Header, bad)
			rec := httptest.NewRecorder()
			requestid.Middleware(echo).ServeHTTP(rec, req)

			got := rec.Header().Get(requestid.Header)
			assert.NotEqual(t, bad, got, bad)
			assert.NotEmpty(t, got)
		}
	})
}

func TestFromContextEmpty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, requestid.FromContext(nil))
}
