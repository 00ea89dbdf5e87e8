package handler

import (
	"fmt"
	"io"
	"mime"
	"net/http"
)

// textResponse streams plain text, optionally as a download.
type textResponse struct {
	body     io.WriterTo
	filename string
}

func (t textResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if t.filename != "" {
		w.Header().Set("Content-Disposition",
			mime.FormatMediaType("attachment", map[string]string{"filename": t.filename}))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := t.body.WriteTo(w); err != nil {
		return fmt.Errorf("write text body: %w", err)
	}
	return nil
}

// Text streams body as text/plain.
func Text(body io.WriterTo) Response {
	return textResponse{body: body}
}

// Attachment streams body as a text/plain file download named filename.
func Attachment(filename string, body io.WriterTo) Response {
	return textResponse{body: body, filename: filename}
}
