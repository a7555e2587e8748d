// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root               = "/"
	RootExact          = "/{$}"
	Health             = "/up"
	StaticPrefix       = "/static/"
	TrackerPrefix      = "/covidtracker/"
	Tracker            = "/covidtracker"
	PrescreenPrefix    = "/covidprescanner/"
	Prescreen          = "/covidprescanner"
	PrescreenResult    = "/covidprescanner/result"
	SurvivalPrefix     = "/survivalratecalc/"
	Survival           = "/survivalratecalc"
	SurvivalResult     = "/survivalratecalc/result"
	AppreciationPrefix = "/responderappreciation/"
	Appreciation       = "/responderappreciation"
	InfoPrefix         = "/covidinfo/"
	Info               = "/covidinfo"
	APIPrefix          = "/api/"
	APITrackerStates   = "/api/tracker/states"
	APITrackerDaily    = "/api/tracker/daily"
	APISurvival        = "/api/survival"
	APIPrescreen       = "/api/prescreen"
	QuerySymptom       = "symptom"
	QueryAgeGroup      = "age_group"
	QueryState         = "state"
	QuerySex           = "sex"
	QueryCondition     = "condition"
	StaticStylesheet   = StaticPrefix + "app.css"
	StaticScript       = StaticPrefix + "app.js"
)

// PrescreenResultFor builds the result fragment URL for symptoms.
func PrescreenResultFor(symptoms []string) string {
	values := url.Values{}
	for _, symptom := range symptoms {
		if symptom = strings.TrimSpace(symptom); symptom != "" {
			values.Add(QuerySymptom, symptom)
		}
	}
	return withQuery(PrescreenResult, values)
}

// SurvivalResultFor builds the result fragment URL for a calculator selection.
func SurvivalResultFor(ageGroup, state, sex string, conditions []string) string {
	values := url.Values{}
	values.Set(QueryAgeGroup, ageGroup)
	values.Set(QueryState, state)
	values.Set(QuerySex, sex)
	for _, condition := range conditions {
		values.Add(QueryCondition, condition)
	}
	return withQuery(SurvivalResult, values)
}

func withQuery(path string, values url.Values) string {
	if len(values) == 0 {
		return path
	}
	return path + "?" + values.Encode()
}
