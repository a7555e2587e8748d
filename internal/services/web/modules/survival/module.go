// Package survival serves the survival rate calculator page.
package survival

import (
	"net/http"

	module "github.com/louisbranch/covidtracker/internal/services/web/module"
	"github.com/louisbranch/covidtracker/internal/services/web/routepath"
)

// Module provides the calculator routes.
type Module struct {
	estimator module.SurvivalEstimator
}

// New returns a calculator module backed by estimator.
func New(estimator module.SurvivalEstimator) Module {
	return Module{estimator: estimator}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "survival" }

// Healthy reports whether the calculator has an estimator.
func (m Module) Healthy() bool {
	return m.estimator != nil
}

// Mount wires calculator route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.estimator))
	return module.Mount{Prefix: routepath.SurvivalPrefix, Handler: mux}, nil
}
