package tracker

import (
	"net/http"

	"github.com/louisbranch/covidtracker/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.RootExact, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.Tracker, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.TrackerPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.TrackerPrefix+"{rest...}", h.handleNotFound)
}
