// Package binder binds HTTP request data to Go structs.
//
// Each binder has the signature func(r *http.Request, v any) error and is
// meant to be passed to handler.WithBinders. Binders are applied in order;
// a binder with nothing to read returns ErrBinderNotApplicable and the
// handler skips it.
//
//	type GenerateRequest struct {
//		FirstName string   `json:"firstName" form:"firstName"`
//		Keywords  string   `json:"keywords"  form:"keywords"`
//		UseLeet   bool     `json:"useLeet"   form:"useLeet"`
//		Format    string   `json:"-"         query:"format"`
//	}
//
//	r.Post("/api/generate", handler.Wrap(generate,
//		handler.WithBinders[handler.Context, GenerateRequest](binder.Query(), binder.JSON()),
//	))
//
// # Available Binders
//
//   - JSON(): strict JSON body decoding with a size limit
//   - Form(): application/x-www-form-urlencoded and multipart/form-data values
//   - Query(): URL query parameters
//
// Every string that ends up in the target struct is trimmed and stripped of
// NUL bytes. Form and query binding supports strings (including named string
// types), integers, floats, bools (on/off, yes/no accepted), pointers and
// slices of those. Fields without a tag are matched by their lowercased name;
// a "-" tag skips the field.
//
// # Errors
//
//   - ErrUnsupportedMediaType: Content-Type does not match the binder
//   - ErrFailedToParseJSON: body is not a single valid JSON document
//   - ErrInvalidForm: form values could not be parsed or converted
//   - ErrFailedToParseQuery: query values could not be converted
//   - ErrBinderNotApplicable: the request carries nothing for this binder
package binder
