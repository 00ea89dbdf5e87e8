package binder_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/profiler/pkg/binder"
)

type targetLength string

type profileRequest struct {
	FirstName string       `json:"firstName" form:"firstName"`
	Keywords  []string     `json:"keywords" form:"keywords"`
	UseLeet   bool         `json:"useLeet" form:"useLeet"`
	MinLen    targetLength `json:"minLen" form:"minLen"`
	Nickname  *string      `json:"nickname" form:"nickname"`
	Internal  string       `json:"-" form:"-"`
}

func TestJSON(t *testing.T) {
	t.Parallel()

	newRequest := func(body, contentType string) *http.Request {
		r := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
		if contentType != "" {
			r.Header.Set("Content-Type", contentType)
		}
		return r
	}

	t.Run("decodes and sanitizes", func(t *testing.T) {
		t.Parallel()
		r := newRequest(`{"firstName":"  Aryan\u0000 ","keywords":[" dog "],"useLeet":true,"nickname":" ari "}`, "application/json; charset=utf-8")

		var got profileRequest
		require.NoError(t, binder.JSON()(r, &got))

		assert.Equal(t, "Aryan", got.FirstName)
		assert.Equal(t, []string{"dog"}, got.Keywords)
		assert.True(t, got.UseLeet)
		require.NotNil(t, got.Nickname)
		assert.Equal(t, "ari", *got.Nickname)
	})

	t.Run("no body and no content type is not applicable", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/api/generate", nil)

		var got profileRequest
		assert.ErrorIs(t, binder.JSON()(r, &got), binder.ErrBinderNotApplicable)
	})

	t.Run("wrong media type", func(t *testing.T) {
		t.Parallel()
		var got profileRequest
		err := binder.JSON()(newRequest(`{}`, "text/plain"), &got)
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()
		var got profileRequest
		err := binder.JSON()(newRequest(`{"lastName":"x"}`, "application/json"), &got)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()
		var got profileRequest
		err := binder.JSON()(newRequest(`{"firstName":`, "application/json"), &got)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("empty body with content type", func(t *testing.T) {
		t.Parallel()
		var got profileRequest
		err := binder.JSON()(newRequest(``, "application/json"), &got)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("trailing data", func(t *testing.T) {
		t.Parallel()
		var got profileRequest
		err := binder.JSON()(newRequest(`{} {}`, "application/json"), &got)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("body too large", func(t *testing.T) {
		t.Parallel()
		body := `{"firstName":"` + strings.Repeat("a", binder.DefaultMaxJSONSize) + `"}`
		var got profileRequest
		err := binder.JSON()(newRequest(body, "application/json"), &got)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		r := newRequest(`{}`, "application/json").WithContext(ctx)

		var got profileRequest
		assert.ErrorIs(t, binder.JSON()(r, &got), binder.ErrFailedToParseJSON)
	})
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("urlencoded", func(t *testing.T) {
		t.Parallel()
		form := url.Values{
			"firstName": {" Aryan "},
			"keywords":  {"dog,cat", "fish"},
			"useLeet":   {"on"},
			"minLen":    {" 8 "},
			"Internal":  {"nope"},
		}
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var got profileRequest
		require.NoError(t, binder.Form()(r, &got))

		assert.Equal(t, "Aryan", got.FirstName)
		assert.Equal(t, []string{"dog", "cat", "fish"}, got.Keywords)
		assert.True(t, got.UseLeet)
		assert.Equal(t, targetLength("8"), got.MinLen)
		assert.Nil(t, got.Nickname)
		assert.Empty(t, got.Internal)
	})

	t.Run("multipart", func(t *testing.T) {
		t.Parallel()
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		require.NoError(t, mw.WriteField("firstName", "Sam"))
		require.NoError(t, mw.WriteField("useLeet", "off"))
		require.NoError(t, mw.Close())

		r := httptest.NewRequest(http.MethodPost, "/", &body)
		r.Header.Set("Content-Type", mw.FormDataContentType())

		var got profileRequest
		require.NoError(t, binder.Form()(r, &got))
		assert.Equal(t, "Sam", got.FirstName)
		assert.False(t, got.UseLeet)
	})

	t.Run("invalid bool", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("useLeet=maybe"))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var got profileRequest
		assert.ErrorIs(t, binder.Form()(r, &got), binder.ErrInvalidForm)
	})

	t.Run("json is unsupported", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{}"))
		r.Header.Set("Content-Type", "application/json")

		var got profileRequest
		assert.ErrorIs(t, binder.Form()(r, &got), binder.ErrUnsupportedMediaType)
	})

	t.Run("bad boundary", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("x"))
		r.Header.Set("Content-Type", "multipart/form-data; boundary=\"bad<>\"")

		var got profileRequest
		assert.ErrorIs(t, binder.Form()(r, &got), binder.ErrInvalidForm)
	})
}

func TestQuery(t *testing.T) {
	t.Parallel()

	type historyRequest struct {
		Limit  int    `query:"limit"`
		Format string `query:"format"`
		Page   *int
	}

	t.Run("binds tagged and untagged fields", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/api/history?limit=25&format=txt&page=2", nil)

		var got historyRequest
		require.NoError(t, binder.Query()(r, &got))
		assert.Equal(t, 25, got.Limit)
		assert.Equal(t, "txt", got.Format)
		require.NotNil(t, got.Page)
		assert.Equal(t, 2, *got.Page)
	})

	t.Run("no query is not applicable", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/api/history", nil)

		var got historyRequest
		assert.ErrorIs(t, binder.Query()(r, &got), binder.ErrBinderNotApplicable)
	})

	t.Run("invalid int", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/api/history?limit=lots", nil)

		var got historyRequest
		assert.ErrorIs(t, binder.Query()(r, &got), binder.ErrFailedToParseQuery)
	})

	t.Run("non-pointer target", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/api/history?limit=1", nil)

		assert.ErrorIs(t, binder.Query()(r, historyRequest{}), binder.ErrFailedToParseQuery)
	})
}
