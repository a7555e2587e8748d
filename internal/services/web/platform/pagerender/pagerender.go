// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/covidtracker/internal/services/web/platform/httpx"
	webtemplates "github.com/louisbranch/covidtracker/internal/services/web/templates"
)

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	Title      string
	Active     string
	StatusCode int
	Fragment   templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WriteModulePage writes a module page. HTMX navigation receives the main
// content region plus an out-of-band navigation update; other requests
// receive the full document.
func WriteModulePage(w http.ResponseWriter, r *http.Request, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}

	ctx := templ.WithChildren(httpx.RequestContext(r), fragment)
	var buf bytes.Buffer
	if httpx.IsHTMXRequest(r) {
		if err := webtemplates.TitleTag(page.Title).Render(ctx, &buf); err != nil {
			return err
		}
		if err := webtemplates.MainContent().Render(ctx, &buf); err != nil {
			return err
		}
		if err := webtemplates.Nav(page.Active, true).Render(ctx, &buf); err != nil {
			return err
		}
	} else if err := webtemplates.Layout(page.Title, page.Active).Render(ctx, &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

// WriteFragment writes a bare component, used for result regions swapped in
// place by HTMX.
func WriteFragment(w http.ResponseWriter, r *http.Request, statusCode int, fragment templ.Component) error {
	if w == nil {
		return nil
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	if fragment == nil {
		fragment = emptyComponent{}
	}
	var buf bytes.Buffer
	if err := fragment.Render(httpx.RequestContext(r), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}
