package binder

import (
	"fmt"
	"mime"
	"net/http"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20 // 10 MB

// Form binds application/x-www-form-urlencoded and multipart/form-data
// values using `form:"name"` tags. Uploaded files are ignored.
//
//	type GenerateForm struct {
//		FirstName string `form:"firstName"`
//		UseLeet   bool   `form:"useLeet"` // checkbox, "on" when ticked
//		MinLen    string `form:"minLen"`
//	}
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" && r.ContentLength <= 0 {
			return ErrBinderNotApplicable
		}

		mediaType, params, err := mime.ParseMediaType(contentType)
		if err != nil {
			return fmt.Errorf("%w: got %q, expected a form content type", ErrUnsupportedMediaType, contentType)
		}

		var values map[string][]string
		switch mediaType {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			values = r.PostForm

		case "multipart/form-data":
			if boundary := params["boundary"]; !validateBoundary(boundary) {
				return fmt.Errorf("%w: invalid boundary parameter", ErrInvalidForm)
			}
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			values = r.MultipartForm.Value

		default:
			return fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded or multipart/form-data", ErrUnsupportedMediaType, mediaType)
		}

		return bindValues(v, "form", values, ErrInvalidForm)
	}
}

// validateBoundary checks the boundary against RFC 2046: 1 to 70
// characters from a restricted set.
func validateBoundary(boundary string) bool {
	if len(boundary) == 0 || len(boundary) > 70 {
		return false
	}
	for _, c := range boundary {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '\'' || c == '(' || c == ')' || c == '+' || c == '_' || c == ',' ||
			c == '-' || c == '.' || c == '/' || c == ':' || c == '=' || c == '?' || c == ' ':
		default:
			return false
		}
	}
	return boundary[len(boundary)-1] != ' '
}
