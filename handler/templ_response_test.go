package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/profiler/handler"
)

func fragment(html string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, html)
		return err
	})
}

func renderTo(t *testing.T, resp handler.Response, datastar bool) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/", nil)
	if datastar {
		r.Header.Set("Datastar-Request", "true")
	}
	w := httptest.NewRecorder()
	require.NoError(t, resp.Render(w, r))
	return w
}

func TestTemplPartial(t *testing.T) {
	t.Parallel()

	resp := handler.TemplPartial(
		fragment(`<div id="result">partial</div>`),
		fragment(`<html>full</html>`),
		handler.WithTarget("#result"),
	)

	t.Run("plain request gets the full page", func(t *testing.T) {
		t.Parallel()
		w := renderTo(t, resp, false)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, "<html>full</html>", w.Body.String())
	})

	t.Run("datastar request gets the partial", func(t *testing.T) {
		t.Parallel()
		w := renderTo(t, resp, true)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/event-stream")
		body := w.Body.String()
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "#result")
		assert.Contains(t, body, "partial")
		assert.NotContains(t, body, "full")
	})
}

func TestTemplPage(t *testing.T) {
	t.Parallel()

	resp := handler.TemplPage(
		fragment(`<html>page</html>`),
		handler.Patch(fragment(`<div id="a">first</div>`), handler.WithTarget("#a")),
		handler.Patch(fragment(`<div id="b">second</div>`), handler.WithTarget("#b")),
	)

	assert.Equal(t, "<html>page</html>", renderTo(t, resp, false).Body.String())

	body := renderTo(t, resp, true).Body.String()
	assert.Equal(t, 2, strings.Count(body, "event: datastar-patch-elements"))
	assert.Less(t, strings.Index(body, "first"), strings.Index(body, "second"))
}

func TestTemplMulti(t *testing.T) {
	t.Parallel()

	resp := handler.TemplMulti(
		handler.Patch(fragment(`<p>one</p>`)),
		handler.Patch(fragment(`<p>two</p>`)),
	)
	assert.Equal(t, "<p>one</p><p>two</p>", renderTo(t, resp, false).Body.String())
}
