package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	domainerrors "github.com/louisbranch/covidtracker/internal/platform/errors"
	domainprescreen "github.com/louisbranch/covidtracker/internal/services/prescreen"
	"github.com/louisbranch/covidtracker/internal/services/survival/estimate"
	"github.com/louisbranch/covidtracker/internal/services/survival/reference/referencetest"
	"github.com/louisbranch/covidtracker/internal/services/tracker"
	module "github.com/louisbranch/covidtracker/internal/services/web/module"
	"github.com/louisbranch/covidtracker/internal/services/web/routepath"
)

type fakeSnapshots struct {
	snapshot tracker.Snapshot
	err      error
}

func (f fakeSnapshots) Snapshot(context.Context) (tracker.Snapshot, error) {
	return f.snapshot, f.err
}

func newHandler(t *testing.T, deps module.Dependencies) http.Handler {
	t.Helper()
	mount, err := New(deps).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.APIPrefix {
		t.Fatalf("prefix = %q, want %q", mount.Prefix, routepath.APIPrefix)
	}
	return mount.Handler
}

func fixtureDeps() module.Dependencies {
	day := time.Date(2021, time.March, 7, 0, 0, 0, 0, time.UTC)
	return module.Dependencies{
		Survival: estimate.NewCalculator(referencetest.Tables()),
		Tracker: fakeSnapshots{snapshot: tracker.Snapshot{
			States: []tracker.StateSummary{
				{State: "AK", Date: day, Positive: 10, Death: 1, Recovered: 2, HoverText: "AK<br>Deaths: 1<br>Recovered: 2<br>"},
			},
			LastUpdated: day,
			Daily: []tracker.DailyPoint{
				{Date: day, PositiveIncrease: 5, DeathIncrease: 1, HospitalizedIncrease: 3},
			},
		}},
	}
}

func get(t *testing.T, h http.Handler, target string, into any) int {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	if got := rr.Header().Get("Content-Type"); got != "application/json; charset=utf-8" {
		t.Fatalf("%s content-type = %q", target, got)
	}
	if into != nil {
		if err := json.Unmarshal(rr.Body.Bytes(), into); err != nil {
			t.Fatalf("%s decode: %v (%s)", target, err, rr.Body.String())
		}
	}
	return rr.Code
}

func TestTrackerStatesEndpoint(t *testing.T) {
	t.Parallel()

	var got struct {
		LastUpdated time.Time `json:"lastUpdated"`
		States      []struct {
			State    string `json:"state"`
			Positive int64  `json:"positive"`
			Text     string `json:"text"`
		} `json:"states"`
	}
	if code := get(t, newHandler(t, fixtureDeps()), routepath.APITrackerStates, &got); code != http.StatusOK {
		t.Fatalf("status = %d, want %d", code, http.StatusOK)
	}
	if len(got.States) != 1 || got.States[0].State != "AK" || got.States[0].Positive != 10 {
		t.Fatalf("states = %+v", got.States)
	}
	if got.States[0].Text != "AK<br>Deaths: 1<br>Recovered: 2<br>" {
		t.Fatalf("hover text = %q", got.States[0].Text)
	}
	if !got.LastUpdated.Equal(time.Date(2021, time.March, 7, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("lastUpdated = %v", got.LastUpdated)
	}
}

func TestTrackerDailyEndpoint(t *testing.T) {
	t.Parallel()

	var got struct {
		Daily []map[string]any `json:"daily"`
	}
	if code := get(t, newHandler(t, fixtureDeps()), routepath.APITrackerDaily, &got); code != http.StatusOK {
		t.Fatalf("status = %d, want %d", code, http.StatusOK)
	}
	if len(got.Daily) != 1 {
		t.Fatalf("daily = %v", got.Daily)
	}
	for key, want := range map[string]float64{"positiveIncrease": 5, "deathIncrease": 1, "hospitalizedIncrease": 3} {
		if got.Daily[0][key] != want {
			t.Fatalf("daily[%s] = %v, want %v", key, got.Daily[0][key], want)
		}
	}
}

func TestTrackerUnavailable(t *testing.T) {
	t.Parallel()

	deps := module.Dependencies{Tracker: fakeSnapshots{err: domainerrors.New(domainerrors.CodeTrackerUnavailable, "down")}}
	var got map[string]string
	if code := get(t, newHandler(t, deps), routepath.APITrackerStates, &got); code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", code, http.StatusServiceUnavailable)
	}
	if got["error"] == "" || got["error"] == "down" {
		t.Fatalf("error = %q, want public message", got["error"])
	}
	if code := get(t, newHandler(t, module.Dependencies{}), routepath.APITrackerDaily, nil); code != http.StatusServiceUnavailable {
		t.Fatalf("unconfigured status = %d, want %d", code, http.StatusServiceUnavailable)
	}
}

func TestSurvivalEndpoint(t *testing.T) {
	t.Parallel()

	values := url.Values{}
	values.Set(routepath.QueryAgeGroup, "25-34 years")
	values.Set(routepath.QueryState, "California")
	values.Set(routepath.QuerySex, "Male")
	values.Add(routepath.QueryCondition, "Diabetes")
	values.Add(routepath.QueryCondition, "Obesity")
	values.Add(routepath.QueryCondition, "Sepsis")

	var got survivalResponse
	if code := get(t, newHandler(t, fixtureDeps()), routepath.APISurvival+"?"+values.Encode(), &got); code != http.StatusOK {
		t.Fatalf("status = %d, want %d", code, http.StatusOK)
	}
	if got.SurvivalRate != 95.75 {
		t.Fatalf("survivalRate = %v, want 95.75", got.SurvivalRate)
	}
	if got.Message != "Your estimated survival rate is 95.75%" {
		t.Fatalf("message = %q", got.Message)
	}
	if diff := cmp.Diff([]string{"Sepsis"}, got.Flagged); diff != "" {
		t.Fatalf("flagged mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Diabetes", "Obesity", "Sepsis"}, got.Conditions); diff != "" {
		t.Fatalf("conditions mismatch (-want +got):\n%s", diff)
	}
}

func TestSurvivalEndpointStatusMapping(t *testing.T) {
	t.Parallel()

	h := newHandler(t, fixtureDeps())
	tests := map[string]int{
		routepath.APISurvival: http.StatusBadRequest,
		routepath.APISurvival + "?age_group=25-34+years&state=California&sex=Robot":      http.StatusBadRequest,
		routepath.APISurvival + "?age_group=55-64+years&state=Ohio&sex=Female":           http.StatusUnprocessableEntity,
		routepath.APISurvival + "?age_group=45-54+years&state=Texas&sex=Male":            http.StatusUnprocessableEntity,
		routepath.APISurvival + "?age_group=25-34+years&state=California&sex=Male&condition=x": http.StatusBadRequest,
	}
	for target, want := range tests {
		if code := get(t, h, target, nil); code != want {
			t.Fatalf("%s status = %d, want %d", target, code, want)
		}
	}
	if code := get(t, newHandler(t, module.Dependencies{}), routepath.APISurvival, nil); code != http.StatusServiceUnavailable {
		t.Fatalf("unconfigured status = %d, want %d", code, http.StatusServiceUnavailable)
	}
}

func TestSurvivalEndpointDelegatesValidation(t *testing.T) {
	t.Parallel()

	fake := &rejectingEstimator{}
	h := newHandler(t, module.Dependencies{Survival: fake})
	if code := get(t, h, routepath.APISurvival+"?state=Atlantis", nil); code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", code, http.StatusBadRequest)
	}
	if fake.calls != 1 {
		t.Fatalf("estimator calls = %d, want %d", fake.calls, 1)
	}
}

type rejectingEstimator struct {
	calls int
}

func (r *rejectingEstimator) SurvivalRate(context.Context, estimate.Query) (estimate.Estimate, error) {
	r.calls++
	return estimate.Estimate{}, domainerrors.New(domainerrors.CodeInvalidSelection, "unknown state")
}

func TestPrescreenEndpoint(t *testing.T) {
	t.Parallel()

	h := newHandler(t, module.Dependencies{})
	var got prescreenResponse
	if code := get(t, h, routepath.APIPrescreen+"?symptom=Fever&symptom=Cough&symptom=Chest", &got); code != http.StatusOK {
		t.Fatalf("status = %d, want %d", code, http.StatusOK)
	}
	want := prescreenResponse{
		Symptoms:  []string{"Fever", "Cough", "Chest"},
		Score:     366,
		Severity:  "high",
		Emergency: true,
		Tone:      "danger",
		Message:   domainprescreen.MessageTesting,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("prescreen mismatch (-want +got):\n%s", diff)
	}

	var empty prescreenResponse
	if code := get(t, h, routepath.APIPrescreen, &empty); code != http.StatusOK {
		t.Fatalf("empty status = %d, want %d", code, http.StatusOK)
	}
	if empty.Score != 0 || empty.Severity != "low" || len(empty.Symptoms) != 0 {
		t.Fatalf("empty = %+v", empty)
	}
	if code := get(t, h, routepath.APIPrescreen+"?symptom=Sneezing", nil); code != http.StatusBadRequest {
		t.Fatalf("unknown symptom status = %d, want %d", code, http.StatusBadRequest)
	}
}

func TestUnknownAPIPathIsJSONNotFound(t *testing.T) {
	t.Parallel()

	var got map[string]string
	if code := get(t, newHandler(t, module.Dependencies{}), routepath.APIPrefix+"nope", &got); code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", code, http.StatusNotFound)
	}
	if got["error"] != "Not Found" {
		t.Fatalf("error = %q", got["error"])
	}
}

func TestHealthyRequiresBothCollaborators(t *testing.T) {
	t.Parallel()

	if New(module.Dependencies{}).Healthy() {
		t.Fatalf("empty deps should be unhealthy")
	}
	if !New(fixtureDeps()).Healthy() {
		t.Fatalf("fixture deps should be healthy")
	}
}
