// Package handler provides type-safe HTTP request handling.
//
// Handlers are plain generic functions that receive an already-bound request
// value and return a Response:
//
//	type GenerateRequest struct {
//		FirstName string `json:"firstName" form:"firstName"`
//	}
//
//	func generate(ctx handler.Context, req GenerateRequest) handler.Response {
//		words, err := svc.Generate(ctx, req)
//		if err != nil {
//			return handler.JSONError(err)
//		}
//		return handler.JSON(words)
//	}
//
//	r.Post("/api/generate", handler.Wrap(generate,
//		handler.WithBinders[handler.Context, GenerateRequest](binder.JSON()),
//	))
//
// # Responses
//
//	handler.JSON(data)                         // {"data": ...}
//	handler.JSONError(err)                     // {"error": {...}} with a status derived from err
//	handler.Templ(component)                   // HTML, or an SSE patch for DataStar requests
//	handler.TemplPartial(partial, full)        // partial for DataStar, full page otherwise
//	handler.TemplPage(full, handler.Patch(c))  // several DataStar patches, full page otherwise
//	handler.Attachment("list.txt", writerTo)   // plain text download
//	handler.Error(err)                         // hands err to the route's ErrorHandler
//
// # Errors
//
// HTTPError carries a status code and a translation key, optionally wrapping
// the underlying cause. ValidationError maps fields to messages and renders
// as 422 in JSON responses. Binding failures reach the configured
// ErrorHandler wrapped in ErrBadRequest.
package handler
