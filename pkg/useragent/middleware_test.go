package useragent_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrymomot/uaparse/pkg/useragent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chromeWindowsUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/58.0.3029.110 Safari/537.36"

func TestFromRequest(t *testing.T) {
	t.Parallel()

	t.Run("missing header", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		_, err := useragent.FromRequest(req)
		require.ErrorIs(t, err, useragent.ErrInvalidInput)
	})

	t.Run("nil request", func(t *testing.T) {
		t.Parallel()
		_, err := useragent.FromRequest(nil)
		require.ErrorIs(t, err, useragent.ErrInvalidInput)
	})

	t.Run("empty header", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(useragent.Header, "")
		res, err := useragent.FromRequest(req)
		require.NoError(t, err)
		assert.True(t, res.IsZero())
	})

	t.Run("classifies header", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(useragent.Header, chromeWindowsUA)
		res, err := useragent.FromRequest(req)
		require.NoError(t, err)
		assert.Equal(t, useragent.Result{Platform: "Windows", Browser: "Chrome", Version: "58.0.3029.110"}, res)
	})
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("stores result in context", func(t *testing.T) {
		t.Parallel()
		handler := useragent.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res, ok := useragent.FromContext(r.Context())
			assert.True(t, ok)
			assert.Equal(t, "Chrome", res.Browser)
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(useragent.Header, chromeWindowsUA)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("passes through without header", func(t *testing.T) {
		t.Parallel()
		handler := useragent.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := useragent.FromContext(r.Context())
			assert.False(t, ok)
			w.WriteHeader(http.StatusNoContent)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("uses custom parse function", func(t *testing.T) {
		t.Parallel()
		calls := 0
		parse := func(ua string) useragent.Result {
			calls++
			return useragent.Result{Browser: "stub"}
		}
		handler := useragent.NewMiddleware(parse)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res, _ := useragent.FromContext(r.Context())
			assert.Equal(t, "stub", res.Browser)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(useragent.Header, "anything")
		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, 1, calls)
	})
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := useragent.LoggerExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	_, ok = extract(useragent.WithContext(context.Background(), useragent.Result{}))
	assert.False(t, ok, "zero result is not logged")

	ctx := useragent.WithContext(context.Background(), useragent.Parse(chromeWindowsUA))
	attr, ok := extract(ctx)
	require.True(t, ok)

	var buf bytes.Buffer
	slog.New(slog.NewTextHandler(&buf, nil)).Info("request", attr)
	assert.Contains(t, buf.String(), "client.platform=Windows client.browser=Chrome client.version=58.0.3029.110")
}
