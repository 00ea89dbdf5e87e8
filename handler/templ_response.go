package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// TemplComponent is satisfied by templ.Component.
type TemplComponent interface {
	Render(ctx context.Context, w io.Writer) error
}

// TemplOption configures the DataStar patch of a component.
type TemplOption = datastar.PatchElementOption

// WithTarget sets the CSS selector the patch applies to.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the patch merges into the DOM.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplPatch is one component sent as its own DataStar patch.
type TemplPatch struct {
	Component TemplComponent
	Options   []TemplOption
}

// Patch pairs a component with its patch options.
func Patch(component TemplComponent, opts ...TemplOption) TemplPatch {
	return TemplPatch{Component: component, Options: opts}
}

// templResponse sends patches over SSE to DataStar clients. Plain requests
// get page, or the patched components one after another when page is nil.
type templResponse struct {
	page    TemplComponent
	patches []TemplPatch
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		for _, p := range t.patches {
			if err := sse.PatchElementTempl(p.Component, p.Options...); err != nil {
				return fmt.Errorf("patch elements: %w", err)
			}
		}
		return nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.page != nil {
		return t.page.Render(r.Context(), w)
	}
	for _, p := range t.patches {
		if err := p.Component.Render(r.Context(), w); err != nil {
			return err
		}
	}
	return nil
}

// Templ renders component as HTML, or as a single patch for DataStar:
//
//	return handler.Templ(views.Page(params))
func Templ(component TemplComponent, opts ...TemplOption) Response {
	return templResponse{page: component, patches: []TemplPatch{Patch(component, opts...)}}
}

// TemplPartial patches only partial for DataStar and renders full otherwise:
//
//	return handler.TemplPartial(views.ResultPanel(res), views.Page(params),
//		handler.WithTarget("#result"),
//	)
func TemplPartial(partial, full TemplComponent, opts ...TemplOption) Response {
	return templResponse{page: full, patches: []TemplPatch{Patch(partial, opts...)}}
}

// TemplPage renders full for plain requests and sends every patch to
// DataStar clients.
func TemplPage(full TemplComponent, patches ...TemplPatch) Response {
	return templResponse{page: full, patches: patches}
}

// TemplMulti sends every patch to DataStar clients and concatenates the
// components for plain requests.
func TemplMulti(patches ...TemplPatch) Response {
	return templResponse{patches: patches}
}
