package profiler_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/profiler/handler"
	"github.com/dmitrymomot/profiler/modules/profiler"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestDefaultViews(t *testing.T) {
	t.Parallel()

	views := profiler.DefaultViews()

	t.Run("page keeps form values and defaults", func(t *testing.T) {
		t.Parallel()
		body := render(t, views.Page(profiler.PageParams{
			Form: profiler.GenerateRequest{FirstName: `"Ann"`, UseLeet: true, MaxLen: "12"},
		}))
		assert.Contains(t, body, `<input type="text" name="firstName" value="&#34;Ann&#34;">`)
		assert.Contains(t, body, `<input type="checkbox" name="useLeet" value="on" checked>`)
		assert.Contains(t, body, `name="minLen" min="0" value="6">`)
		assert.Contains(t, body, `name="maxLen" min="0" value="12">`)
		assert.Contains(t, body, `<section id="result"></section><section id="history">`)
		assert.Contains(t, body, `</section></main></body></html>`)
	})

	t.Run("unchecked leet has no checked attribute", func(t *testing.T) {
		t.Parallel()
		body := render(t, views.Page(profiler.PageParams{}))
		assert.Contains(t, body, `name="useLeet" value="on">`)
		assert.NotContains(t, body, " checked")
	})

	t.Run("result panel carries the request for download", func(t *testing.T) {
		t.Parallel()
		body := render(t, views.ResultPanel(profiler.ResultParams{
			Form:       profiler.GenerateRequest{FirstName: "John", UseLeet: true, MinLen: "4", MaxLen: "8"},
			TargetName: "John",
			Count:      2,
			Preview:    []string{"john", "<b>"},
		}))
		assert.Contains(t, body, `<h2>John</h2><p>2 candidate passwords</p><ol><li>john</li><li>&lt;b&gt;</li></ol>`)
		assert.Contains(t, body, `<input type="hidden" name="firstName" value="John">`)
		assert.Contains(t, body, `<input type="hidden" name="useLeet" value="on">`)
		assert.Contains(t, body, `<input type="hidden" name="minLen" value="4"><input type="hidden" name="maxLen" value="8">`)
	})

	t.Run("history rows", func(t *testing.T) {
		t.Parallel()
		body := render(t, views.History([]profiler.Record{{
			ID:         1,
			TargetName: "Acme & Co",
			WordCount:  42,
			CreatedAt:  time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC),
		}}))
		assert.Contains(t, body, `<tr><td>Acme &amp; Co</td><td>42</td><td>2024-05-01 12:30:00</td></tr>`)
	})

	t.Run("error page", func(t *testing.T) {
		t.Parallel()
		body := render(t, views.ErrorPage(handler.ErrorPageParams{
			Error:      "timeout",
			StatusCode: 504,
			RequestID:  "req-1",
			RetryURL:   "/",
		}))
		assert.Contains(t, body, `<h1>504</h1><p>timeout</p><p><small>Request ID: req-1</small></p><a href="/">Back</a>`)
	})

	t.Run("error page sanitizes retry url", func(t *testing.T) {
		t.Parallel()
		body := render(t, views.ErrorPage(handler.ErrorPageParams{RetryURL: "javascript:alert(1)"}))
		assert.NotContains(t, body, "javascript:")
		assert.NotContains(t, body, "Request ID")
	})

	t.Run("toast", func(t *testing.T) {
		t.Parallel()
		body := render(t, views.ErrorToast(handler.ErrorToastParams{Message: "too many requests", Type: "warning"}))
		assert.Equal(t, `<div class="toast" data-severity="warning" role="alert">too many requests</div>`, body)
	})
}
