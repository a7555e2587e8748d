package survival

import (
	"net/http"

	"github.com/louisbranch/covidtracker/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Survival, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.SurvivalPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.SurvivalResult, h.handleResult)
	mux.HandleFunc(http.MethodGet+" "+routepath.SurvivalPrefix+"{rest...}", h.handleNotFound)
}
