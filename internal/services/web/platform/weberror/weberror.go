// Package weberror renders shared app-shell error responses for web modules.
package weberror

import (
	"log"
	"net/http"

	apperrors "github.com/louisbranch/covidtracker/internal/services/web/platform/errors"
	"github.com/louisbranch/covidtracker/internal/services/web/platform/httpx"
	"github.com/louisbranch/covidtracker/internal/services/web/platform/pagerender"
	webtemplates "github.com/louisbranch/covidtracker/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use the error-page UX.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// WriteAppError writes an app-shell error page for full-page and HTMX requests.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	title := http.StatusText(statusCode)
	fragment := webtemplates.ErrorState(title, apperrors.PublicMessage(apperrors.E(kindForStatus(statusCode), "")))
	if statusCode == http.StatusNotFound {
		path := ""
		if r != nil && r.URL != nil {
			path = r.URL.Path
		}
		fragment = webtemplates.NotFoundPage(path)
		title = "404: Not found"
	}
	if err := pagerender.WriteModulePage(w, r, pagerender.ModulePage{
		Title:      title,
		StatusCode: statusCode,
		Fragment:   fragment,
	}); err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteModuleError writes a page-route error. Not-found and server failures
// get the error page; client errors get the plain public message.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode >= http.StatusInternalServerError {
		log.Printf("web module error path=%s status=%d err=%v", requestPath(r), statusCode, err)
	}
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode)
		return
	}
	httpx.WriteError(w, err)
}

// WriteFragmentError renders err as an error card inside an HTMX result region.
func WriteFragmentError(w http.ResponseWriter, r *http.Request, err error) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode >= http.StatusInternalServerError {
		log.Printf("web fragment error path=%s status=%d err=%v", requestPath(r), statusCode, err)
	}
	fragment := webtemplates.ErrorState(http.StatusText(statusCode), apperrors.PublicMessage(err))
	if renderErr := pagerender.WriteFragment(w, r, statusCode, fragment); renderErr != nil {
		httpx.WriteError(w, err)
	}
}

func kindForStatus(statusCode int) apperrors.Kind {
	switch statusCode {
	case http.StatusNotFound:
		return apperrors.KindNotFound
	case http.StatusServiceUnavailable:
		return apperrors.KindUnavailable
	default:
		return apperrors.KindUnknown
	}
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return ""
	}
	return r.URL.Path
}
