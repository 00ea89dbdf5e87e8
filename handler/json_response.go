package handler

import (
	"encoding/json"
	"errors"
	"maps"
	"net/http"
)

// JSONResponse is the envelope every API response is written in.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail is the "error" member of the envelope.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j *jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

func (j *jsonResponse) apply(opts []JSONOption) Response {
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// JSONOption adjusts a JSON response before it is rendered.
type JSONOption func(*jsonResponse)

// WithJSONStatus overrides the status code.
func WithJSONStatus(status int) JSONOption {
	return func(j *jsonResponse) { j.status = status }
}

// WithJSONMeta sets the "meta" member.
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(j *jsonResponse) { j.body.Meta = meta }
}

// JSON writes v as the "data" member with status 200. A JSONResponse is
// written as is; an error or *ErrorDetail is written like JSONError.
func JSON(v any, opts ...JSONOption) Response {
	switch val := v.(type) {
	case JSONResponse:
		return (&jsonResponse{status: http.StatusOK, body: val}).apply(opts)
	case *ErrorDetail, error:
		return JSONError(val, opts...)
	}
	return (&jsonResponse{status: http.StatusOK, body: JSONResponse{Data: v}}).apply(opts)
}

// JSONError writes the "error" member. The status is derived from err:
// 422 for a ValidationError, the code of an HTTPError, 500 otherwise.
func JSONError(err any, opts ...JSONOption) Response {
	resp := &jsonResponse{status: http.StatusInternalServerError}
	switch e := err.(type) {
	case *ErrorDetail:
		resp.body.Error = e
	case error:
		resp.status, resp.body.Error = describeError(e)
	}
	return resp.apply(opts)
}

// describeError never exposes the cause of a 5xx error.
func describeError(err error) (int, *ErrorDetail) {
	var verr ValidationError
	if errors.As(err, &verr) {
		detail := &ErrorDetail{Code: "validation_error", Message: verr.Error()}
		if len(verr) > 0 {
			detail.Details = maps.Clone(map[string][]string(verr))
		}
		return http.StatusUnprocessableEntity, detail
	}

	var herr HTTPError
	if errors.As(err, &herr) {
		detail := &ErrorDetail{Code: herr.Key, Message: http.StatusText(herr.Code)}
		if herr.Err != nil && herr.Code < http.StatusInternalServerError {
			detail.Message = herr.Err.Error()
		}
		return herr.Code, detail
	}

	return http.StatusInternalServerError, &ErrorDetail{
		Code:    "internal_error",
		Message: http.StatusText(http.StatusInternalServerError),
	}
}
