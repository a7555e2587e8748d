// Package modules assembles the web feature modules.
package modules

import (
	module "github.com/louisbranch/covidtracker/internal/services/web/module"
	"github.com/louisbranch/covidtracker/internal/services/web/modules/api"
	"github.com/louisbranch/covidtracker/internal/services/web/modules/info"
	"github.com/louisbranch/covidtracker/internal/services/web/modules/prescreen"
	"github.com/louisbranch/covidtracker/internal/services/web/modules/shell"
	"github.com/louisbranch/covidtracker/internal/services/web/modules/survival"
	"github.com/louisbranch/covidtracker/internal/services/web/modules/tracker"
)

// Module aliases the shared module contract.
type Module = module.Module

// Dependencies aliases the shared module dependencies.
type Dependencies = module.Dependencies

// DefaultModules returns the dashboard modules in navigation order, followed
// by the JSON API and the root shell.
func DefaultModules(deps Dependencies) []Module {
	features := []Module{
		tracker.New(deps.Tracker),
		prescreen.New(),
		survival.New(deps.Survival),
		info.NewAppreciation(),
		info.NewGuidance(),
		api.New(deps),
	}
	return append(features, shell.New(features))
}
