package handler

import "net/http"

type errorResponse struct {
	err error
}

// Render returns the error so Wrap hands it to the configured ErrorHandler.
func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error creates a response that fails with err. The route's ErrorHandler
// decides how it is rendered:
//
//	if errors.Is(err, profiler.ErrTimeout) {
//		return handler.Error(handler.ErrGatewayTimeout.Wrap(err))
//	}
func Error(err error) Response {
	if err == nil {
		err = ErrInternalServerError
	}
	return errorResponse{err: err}
}
