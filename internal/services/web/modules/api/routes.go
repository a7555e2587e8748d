package api

import (
	"net/http"

	"github.com/louisbranch/covidtracker/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.APITrackerStates, h.handleTrackerStates)
	mux.HandleFunc(http.MethodGet+" "+routepath.APITrackerDaily, h.handleTrackerDaily)
	mux.HandleFunc(http.MethodGet+" "+routepath.APISurvival, h.handleSurvival)
	mux.HandleFunc(http.MethodGet+" "+routepath.APIPrescreen, h.handlePrescreen)
	mux.HandleFunc(http.MethodGet+" "+routepath.APIPrefix+"{rest...}", h.handleNotFound)
}
