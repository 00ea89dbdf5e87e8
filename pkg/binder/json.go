package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"reflect"
)

// DefaultMaxJSONSize caps JSON request bodies at 1 MB.
const DefaultMaxJSONSize = 1 << 20

// JSON binds an application/json body. Unknown fields and trailing data are
// rejected and every decoded string is cleaned like form values. A request
// with neither a Content-Type nor a body is not applicable, so the target
// keeps its zero value.
//
//	type GenerateRequest struct {
//		FirstName string `json:"firstName"`
//		Keywords  string `json:"keywords"`
//	}
func JSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if err := r.Context().Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" && r.ContentLength <= 0 {
			return ErrBinderNotApplicable
		}
		if mediaType, _, err := mime.ParseMediaType(contentType); err != nil || mediaType != "application/json" {
			return fmt.Errorf("%w: got %q, expected application/json", ErrUnsupportedMediaType, contentType)
		}

		body, err := readJSONBody(r.Body)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}
		if err := decodeStrict(body, v); err != nil {
			return fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
		}

		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && !rv.IsNil() {
			cleanStrings(rv.Elem())
		}
		return nil
	}
}

func readJSONBody(body io.Reader) ([]byte, error) {
	if body == nil {
		return nil, errors.New("empty body")
	}
	data, err := io.ReadAll(io.LimitReader(body, DefaultMaxJSONSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	if len(data) > DefaultMaxJSONSize {
		return nil, fmt.Errorf("request body too large (max %d bytes)", DefaultMaxJSONSize)
	}
	return data, nil
}

// decodeStrict requires exactly one JSON value whose keys all map to fields of v.
func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty body")
		}
		return err
	}
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after JSON object")
	}
	return nil
}

// cleanStrings walks rv and cleans every settable string. Map values are not
// addressable and are left untouched.
func cleanStrings(rv reflect.Value) {
	switch rv.Kind() {
	case reflect.String:
		if rv.CanSet() {
			rv.SetString(cleanString(rv.String()))
		}
	case reflect.Struct:
		for i := range rv.NumField() {
			if f := rv.Field(i); f.CanSet() {
				cleanStrings(f)
			}
		}
	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			cleanStrings(rv.Index(i))
		}
	case reflect.Pointer, reflect.Interface:
		if !rv.IsNil() {
			cleanStrings(rv.Elem())
		}
	}
}
