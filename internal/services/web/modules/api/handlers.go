package api

import (
	"net/http"
	"time"

	domainprescreen "github.com/louisbranch/covidtracker/internal/services/prescreen"
	"github.com/louisbranch/covidtracker/internal/services/survival/estimate"
	"github.com/louisbranch/covidtracker/internal/services/tracker"
	module "github.com/louisbranch/covidtracker/internal/services/web/module"
	apperrors "github.com/louisbranch/covidtracker/internal/services/web/platform/errors"
	"github.com/louisbranch/covidtracker/internal/services/web/platform/httpx"
	"github.com/louisbranch/covidtracker/internal/services/web/routepath"
)

var (
	errTrackerUnconfigured  = apperrors.E(apperrors.KindUnavailable, "Live tracking data is not configured.")
	errSurvivalUnconfigured = apperrors.E(apperrors.KindUnavailable, "The survival rate calculator is not available right now.")
	errNotFound             = apperrors.E(apperrors.KindNotFound, "Not Found")
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

type statesResponse struct {
	LastUpdated time.Time              `json:"lastUpdated"`
	States      []tracker.StateSummary `json:"states"`
}

type dailyResponse struct {
	Daily []tracker.DailyPoint `json:"daily"`
}

type survivalResponse struct {
	AgeGroup        string   `json:"ageGroup"`
	State           string   `json:"state"`
	Sex             string   `json:"sex"`
	Conditions      []string `json:"conditions"`
	DemographicRate float64  `json:"demographicRate"`
	ConditionRate   float64  `json:"conditionRate"`
	Rate            float64  `json:"rate"`
	SurvivalRate    float64  `json:"survivalRate"`
	Message         string   `json:"message"`
	Flagged         []string `json:"flagged"`
}

type prescreenResponse struct {
	Symptoms  []string `json:"symptoms"`
	Score     int      `json:"score"`
	Severity  string   `json:"severity"`
	Emergency bool     `json:"emergency"`
	Tone      string   `json:"tone"`
	Message   string   `json:"message"`
}

func (h handlers) snapshot(r *http.Request) (tracker.Snapshot, error) {
	if h.deps.Tracker == nil {
		return tracker.Snapshot{}, errTrackerUnconfigured
	}
	return h.deps.Tracker.Snapshot(r.Context())
}

func (h handlers) handleTrackerStates(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.snapshot(r)
	if err != nil {
		httpx.WriteAPIError(w, err)
		return
	}
	states := snapshot.States
	if states == nil {
		states = []tracker.StateSummary{}
	}
	_ = httpx.WriteJSON(w, http.StatusOK, statesResponse{LastUpdated: snapshot.LastUpdated, States: states})
}

func (h handlers) handleTrackerDaily(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.snapshot(r)
	if err != nil {
		httpx.WriteAPIError(w, err)
		return
	}
	daily := snapshot.Daily
	if daily == nil {
		daily = []tracker.DailyPoint{}
	}
	_ = httpx.WriteJSON(w, http.StatusOK, dailyResponse{Daily: daily})
}

// handleSurvival requires every selection field; a missing one fails
// validation like any value outside the enumerations.
func (h handlers) handleSurvival(w http.ResponseWriter, r *http.Request) {
	if h.deps.Survival == nil {
		httpx.WriteAPIError(w, errSurvivalUnconfigured)
		return
	}
	values := r.URL.Query()
	query := estimate.Query{
		AgeGroup:   values.Get(routepath.QueryAgeGroup),
		State:      values.Get(routepath.QueryState),
		Sex:        values.Get(routepath.QuerySex),
		Conditions: values[routepath.QueryCondition],
	}
	est, err := h.deps.Survival.SurvivalRate(r.Context(), query)
	if err != nil {
		httpx.WriteAPIError(w, err)
		return
	}
	conditions := query.Conditions
	if conditions == nil {
		conditions = []string{}
	}
	flagged := est.Conditions.Flagged
	if flagged == nil {
		flagged = []string{}
	}
	_ = httpx.WriteJSON(w, http.StatusOK, survivalResponse{
		AgeGroup:        query.AgeGroup,
		State:           query.State,
		Sex:             query.Sex,
		Conditions:      conditions,
		DemographicRate: est.DemographicRate,
		ConditionRate:   est.Conditions.Total,
		Rate:            est.Rate,
		SurvivalRate:    est.Rounded(),
		Message:         est.Message(),
		Flagged:         flagged,
	})
}

func (h handlers) handlePrescreen(w http.ResponseWriter, r *http.Request) {
	symptoms := r.URL.Query()[routepath.QuerySymptom]
	result, err := domainprescreen.Screen(symptoms)
	if err != nil {
		httpx.WriteAPIError(w, err)
		return
	}
	if symptoms == nil {
		symptoms = []string{}
	}
	_ = httpx.WriteJSON(w, http.StatusOK, prescreenResponse{
		Symptoms:  symptoms,
		Score:     result.Score,
		Severity:  string(result.Severity),
		Emergency: result.Emergency,
		Tone:      string(result.Tone),
		Message:   result.Message,
	})
}

func (h handlers) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteAPIError(w, errNotFound)
}
