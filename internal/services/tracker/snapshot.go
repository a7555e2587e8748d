package tracker

import (
	"sort"
	"strconv"
	"time"

	"github.com/louisbranch/covidtracker/internal/services/tracker/covidtracking"
)

// StateSummary is the latest reported state of one jurisdiction.
type StateSummary struct {
	State     string    `json:"state"`
	Date      time.Time `json:"date"`
	Positive  int64     `json:"positive"`
	Death     int64     `json:"death"`
	Recovered int64     `json:"recovered"`
	HoverText string    `json:"text"`
}

// DailyPoint is one day of the national series.
type DailyPoint struct {
	Date                 time.Time `json:"date"`
	PositiveIncrease     int64     `json:"positiveIncrease"`
	DeathIncrease        int64     `json:"deathIncrease"`
	HospitalizedIncrease int64     `json:"hospitalizedIncrease"`
}

// Totals sums the latest state counters.
type Totals struct {
	Positive  int64 `json:"positive"`
	Recovered int64 `json:"recovered"`
	Death     int64 `json:"death"`
}

// Snapshot is everything the tracker page renders.
type Snapshot struct {
	States      []StateSummary `json:"states"`
	Totals      Totals         `json:"totals"`
	LastUpdated time.Time      `json:"lastUpdated"`
	Daily       []DailyPoint   `json:"daily"`
}

// BuildSnapshot reduces both feeds. Rows are ordered by date and, per state,
// each counter keeps its last non-null value; remaining nulls read as 0.
func BuildSnapshot(us, states []covidtracking.DailyRecord) Snapshot {
	ordered := append([]covidtracking.DailyRecord(nil), states...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date.Time)
	})

	latest := make(map[string]*covidtracking.DailyRecord)
	var codes []string
	for i := range ordered {
		row := ordered[i]
		if row.State == "" {
			continue
		}
		current, ok := latest[row.State]
		if !ok {
			copied := row
			latest[row.State] = &copied
			codes = append(codes, row.State)
			continue
		}
		current.Date = row.Date
		current.Positive = lastNonNull(current.Positive, row.Positive)
		current.Death = lastNonNull(current.Death, row.Death)
		current.Recovered = lastNonNull(current.Recovered, row.Recovered)
	}
	sort.Strings(codes)

	snapshot := Snapshot{States: make([]StateSummary, 0, len(codes))}
	for _, code := range codes {
		row := latest[code]
		summary := StateSummary{
			State:     code,
			Date:      row.Date.Time,
			Positive:  valueOf(row.Positive),
			Death:     valueOf(row.Death),
			Recovered: valueOf(row.Recovered),
		}
		summary.HoverText = HoverText(summary)
		snapshot.States = append(snapshot.States, summary)
		snapshot.Totals.Positive += summary.Positive
		snapshot.Totals.Recovered += summary.Recovered
		snapshot.Totals.Death += summary.Death
		if summary.Date.After(snapshot.LastUpdated) {
			snapshot.LastUpdated = summary.Date
		}
	}

	snapshot.Daily = make([]DailyPoint, 0, len(us))
	for _, row := range us {
		snapshot.Daily = append(snapshot.Daily, DailyPoint{
			Date:                 row.Date.Time,
			PositiveIncrease:     valueOf(row.PositiveIncrease),
			DeathIncrease:        valueOf(row.DeathIncrease),
			HospitalizedIncrease: valueOf(row.HospitalizedIncrease),
		})
	}
	sort.SliceStable(snapshot.Daily, func(i, j int) bool {
		return snapshot.Daily[i].Date.Before(snapshot.Daily[j].Date)
	})
	return snapshot
}

// HoverText is the map tooltip for a state.
func HoverText(s StateSummary) string {
	return s.State + "<br>" +
		"Deaths: " + strconv.FormatInt(s.Death, 10) + "<br>" +
		"Recovered: " + strconv.FormatInt(s.Recovered, 10) + "<br>"
}

func lastNonNull(current, next *int64) *int64 {
	if next != nil {
		return next
	}
	return current
}

func valueOf(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}
