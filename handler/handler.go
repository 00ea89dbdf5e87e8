package handler

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/profiler/pkg/binder"
)

// HandlerFunc handles a request already bound into R.
type HandlerFunc[C Context, R any] func(ctx C, req R) Response

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind decodes part of a request into v.
type Bind func(r *http.Request, v any) error

// ErrorHandler receives binding failures, nil responses and render errors.
type ErrorHandler[C Context] func(ctx C, err error)

// Decorator wraps a HandlerFunc. The first decorator given to WithDecorators
// is the outermost one.
type Decorator[C Context, R any] func(HandlerFunc[C, R]) HandlerFunc[C, R]

// WrapOption configures Wrap.
type WrapOption[C Context, R any] func(*route[C, R])

type route[C Context, R any] struct {
	binders    []Bind
	onError    ErrorHandler[C]
	newContext func(http.ResponseWriter, *http.Request) C
	decorators []Decorator[C, R]
}

// WithBinders appends request binders; they run in order, so later binders
// overwrite fields set by earlier ones. Binders returning
// binder.ErrBinderNotApplicable are skipped.
func WithBinders[C Context, R any](binders ...Bind) WrapOption[C, R] {
	return func(rt *route[C, R]) {
		rt.binders = append(rt.binders, binders...)
	}
}

// WithErrorHandler replaces the plain text error handler.
func WithErrorHandler[C Context, R any](h ErrorHandler[C]) WrapOption[C, R] {
	return func(rt *route[C, R]) {
		if h != nil {
			rt.onError = h
		}
	}
}

// WithContextFactory is required when C is not the Context returned by NewContext.
func WithContextFactory[C Context, R any](f func(http.ResponseWriter, *http.Request) C) WrapOption[C, R] {
	return func(rt *route[C, R]) {
		if f != nil {
			rt.newContext = f
		}
	}
}

// WithDecorators appends decorators around the handler.
func WithDecorators[C Context, R any](decorators ...Decorator[C, R]) WrapOption[C, R] {
	return func(rt *route[C, R]) {
		rt.decorators = append(rt.decorators, decorators...)
	}
}

func plainTextError[C Context](ctx C, err error) {
	var herr HTTPError
	if !errors.As(err, &herr) {
		http.Error(ctx.ResponseWriter(), err.Error(), http.StatusInternalServerError)
		return
	}
	http.Error(ctx.ResponseWriter(), herr.Key, herr.Code)
}

func defaultContext[C Context](w http.ResponseWriter, r *http.Request) C {
	c, ok := NewContext(w, r).(C)
	if !ok {
		panic("handler: custom context type requires WithContextFactory")
	}
	return c
}

func (rt *route[C, R]) bind(r *http.Request) (R, error) {
	var req R
	for _, b := range rt.binders {
		err := b(r, &req)
		switch {
		case err == nil, errors.Is(err, binder.ErrBinderNotApplicable):
		case errors.Is(err, binder.ErrUnsupportedMediaType):
			return req, ErrUnsupportedMedia.Wrap(err)
		default:
			return req, ErrBadRequest.Wrap(err)
		}
	}
	return req, nil
}

// Wrap adapts a typed HandlerFunc to http.HandlerFunc.
func Wrap[C Context, R any](h HandlerFunc[C, R], opts ...WrapOption[C, R]) http.HandlerFunc {
	rt := &route[C, R]{
		onError:    plainTextError[C],
		newContext: defaultContext[C],
	}
	for _, opt := range opts {
		opt(rt)
	}
	for i := len(rt.decorators) - 1; i >= 0; i-- {
		h = rt.decorators[i](h)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := rt.newContext(w, r)

		req, err := rt.bind(r)
		if err != nil {
			rt.onError(ctx, err)
			return
		}

		resp := h(ctx, req)
		if resp == nil {
			rt.onError(ctx, ErrNilResponse)
			return
		}
		if err := resp.Render(w, r); err != nil {
			rt.onError(ctx, err)
		}
	}
}
