// Package shell owns the root catch-all: the health probe and the 404 page.
package shell

import (
	"net/http"
	"sort"
	"strings"

	module "github.com/louisbranch/covidtracker/internal/services/web/module"
	"github.com/louisbranch/covidtracker/internal/services/web/platform/httpx"
	"github.com/louisbranch/covidtracker/internal/services/web/platform/weberror"
	"github.com/louisbranch/covidtracker/internal/services/web/routepath"
)

// Module serves /up and renders the not-found page for everything no other
// module claims.
type Module struct {
	reporters map[string]module.HealthReporter
}

// New returns a shell module. Health is derived from every module in
// features that implements module.HealthReporter.
func New(features []module.Module) Module {
	reporters := make(map[string]module.HealthReporter)
	for _, feature := range features {
		if reporter, ok := feature.(module.HealthReporter); ok {
			reporters[feature.ID()] = reporter
		}
	}
	return Module{reporters: reporters}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "shell" }

// Mount wires the root routes.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, m.handleHealth)
	mux.HandleFunc(routepath.Root, m.handleNotFound)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}

// Unhealthy lists the modules reporting themselves unavailable, sorted.
func (m Module) Unhealthy() []string {
	var ids []string
	for id, reporter := range m.reporters {
		if !reporter.Healthy() {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

func (m Module) handleHealth(w http.ResponseWriter, _ *http.Request) {
	if unhealthy := m.Unhealthy(); len(unhealthy) > 0 {
		_ = httpx.WriteHTML(w, http.StatusServiceUnavailable, "degraded: "+strings.Join(unhealthy, ","))
		return
	}
	_ = httpx.WriteHTML(w, http.StatusOK, "ok")
}

func (m Module) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound)
}
