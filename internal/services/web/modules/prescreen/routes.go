package prescreen

import (
	"net/http"

	"github.com/louisbranch/covidtracker/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Prescreen, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.PrescreenPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.PrescreenResult, h.handleResult)
	mux.HandleFunc(http.MethodGet+" "+routepath.PrescreenPrefix+"{rest...}", h.handleNotFound)
}
