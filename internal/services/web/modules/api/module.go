// Package api serves the JSON endpoints behind the charts and calculators.
package api

import (
	"net/http"

	module "github.com/louisbranch/covidtracker/internal/services/web/module"
	"github.com/louisbranch/covidtracker/internal/services/web/routepath"
)

// Module provides the JSON routes.
type Module struct {
	deps module.Dependencies
}

// New returns an API module over deps.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "api" }

// Healthy reports whether both collaborators are configured.
func (m Module) Healthy() bool {
	return m.deps.Survival != nil && m.deps.Tracker != nil
}

// Mount wires JSON route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.deps))
	return module.Mount{Prefix: routepath.APIPrefix, Handler: mux}, nil
}
