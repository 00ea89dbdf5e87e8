package binder

import "net/http"

// Query binds URL query parameters using `query:"name"` tags.
//
//	type HistoryRequest struct {
//		Limit int `query:"limit"`
//	}
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		values := r.URL.Query()
		if len(values) == 0 {
			return ErrBinderNotApplicable
		}
		return bindValues(v, "query", values, ErrFailedToParseQuery)
	}
}
