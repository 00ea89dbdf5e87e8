package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/profiler/handler"
)

func renderJSON(t *testing.T, resp handler.Response) (*httptest.ResponseRecorder, handler.JSONResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, resp.Render(w, r))

	var got handler.JSONResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	return w, got
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("data with meta", func(t *testing.T) {
		t.Parallel()
		w, got := renderJSON(t, handler.JSON(
			map[string]any{"count": 3},
			handler.WithJSONMeta(map[string]any{"target": "Aryan"}),
		))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, handler.JSONResponse{
			Data: map[string]any{"count": float64(3)},
			Meta: map[string]any{"target": "Aryan"},
		}, got)
	})

	t.Run("custom status", func(t *testing.T) {
		t.Parallel()
		w, _ := renderJSON(t, handler.JSON("ok", handler.WithJSONStatus(http.StatusCreated)))
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("error value becomes error body", func(t *testing.T) {
		t.Parallel()
		w, got := renderJSON(t, handler.JSON(handler.ErrNotFound))
		assert.Equal(t, http.StatusNotFound, w.Code)
		require.NotNil(t, got.Error)
		assert.Equal(t, "not_found", got.Error.Code)
		assert.Nil(t, got.Data)
	})
}

func TestJSONError(t *testing.T) {
	t.Parallel()

	t.Run("validation error", func(t *testing.T) {
		t.Parallel()
		verr := handler.NewValidationError()
		verr.Add("minLen", "must not exceed maxLen")

		w, got := renderJSON(t, handler.JSONError(fmt.Errorf("generate: %w", verr)))
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.NotNil(t, got.Error)
		assert.Equal(t, "validation_error", got.Error.Code)
		assert.Equal(t, map[string][]string{"minLen": {"must not exceed maxLen"}}, got.Error.Details)
	})

	t.Run("wrapped http error exposes client cause", func(t *testing.T) {
		t.Parallel()
		err := handler.ErrBadRequest.Wrap(errors.New("invalid json"))

		w, got := renderJSON(t, handler.JSONError(err))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "bad_request", got.Error.Code)
		assert.Equal(t, "invalid json", got.Error.Message)
	})

	t.Run("server error hides cause", func(t *testing.T) {
		t.Parallel()
		err := handler.ErrServiceUnavailable.Wrap(errors.New("dial tcp 10.0.0.1:5432"))

		w, got := renderJSON(t, handler.JSONError(err))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "Service Unavailable", got.Error.Message)
	})

	t.Run("unknown error", func(t *testing.T) {
		t.Parallel()
		w, got := renderJSON(t, handler.JSONError(errors.New("boom")))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "internal_error", got.Error.Code)
		assert.NotContains(t, got.Error.Message, "boom")
	})

	t.Run("status option overrides", func(t *testing.T) {
		t.Parallel()
		w, _ := renderJSON(t, handler.JSONError(errors.New("x"), handler.WithJSONStatus(http.StatusTeapot)))
		assert.Equal(t, http.StatusTeapot, w.Code)
	})
}
