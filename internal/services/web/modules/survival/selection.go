package survival

import (
	"net/url"

	"github.com/louisbranch/covidtracker/internal/services/survival/estimate"
	"github.com/louisbranch/covidtracker/internal/services/survival/reference"
	"github.com/louisbranch/covidtracker/internal/services/web/routepath"
)

// Initial calculator selection.
const (
	DefaultAgeGroup = reference.YouthSelection
	DefaultState    = "Alabama"
	DefaultSex      = "Male"
)

// ParseQuery reads a calculator selection. Absent fields take the initial
// selection; present values are passed through for validation.
func ParseQuery(values url.Values) estimate.Query {
	query := estimate.Query{
		AgeGroup:   DefaultAgeGroup,
		State:      DefaultState,
		Sex:        DefaultSex,
		Conditions: values[routepath.QueryCondition],
	}
	if values.Has(routepath.QueryAgeGroup) {
		query.AgeGroup = values.Get(routepath.QueryAgeGroup)
	}
	if values.Has(routepath.QueryState) {
		query.State = values.Get(routepath.QueryState)
	}
	if values.Has(routepath.QuerySex) {
		query.Sex = values.Get(routepath.QuerySex)
	}
	return query
}
