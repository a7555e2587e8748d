// Package reference holds the static mortality tables behind the survival
// rate estimate and the enumerations the calculator form offers.
//
// Both tables are immutable once built. Lookups never default a missing row:
// a demographic key must match exactly one row, while condition lookups sum
// every matching row.
package reference

import (
	"context"
	"strconv"

	apperrors "github.com/louisbranch/covidtracker/internal/platform/errors"
)

// AgeSexStateRecord is one row of the age/sex/state mortality table.
type AgeSexStateRecord struct {
	AgeGroup string
	State    string
	Sex      string
	Deaths   int64
}

// ConditionRecord is one row of the underlying-conditions mortality table.
type ConditionRecord struct {
	AgeGroup       string
	State          string
	ConditionGroup string
	Deaths         int64
}

// Dataset carries the rows of both reference tables.
type Dataset struct {
	AgeSexState []AgeSexStateRecord
	Conditions  []ConditionRecord
}

// Source answers the two queries the estimator needs.
type Source interface {
	// DemographicDeaths returns the deaths of the single row matching the key.
	DemographicDeaths(ctx context.Context, ageGroup, state, sex string) (int64, error)
	// ConditionDeaths returns the summed deaths of every row matching the key.
	ConditionDeaths(ctx context.Context, ageGroup, stateCode, conditionGroup string) (int64, error)
}

type demographicKey struct {
	ageGroup string
	state    string
	sex      string
}

type conditionKey struct {
	ageGroup       string
	state          string
	conditionGroup string
}

// Tables is the in-memory Source built from a Dataset.
type Tables struct {
	dataset      Dataset
	demographics map[demographicKey][]int64
	conditions   map[conditionKey]int64
}

// NewTables indexes dataset for lookups. The dataset slices are copied.
func NewTables(dataset Dataset) *Tables {
	t := &Tables{
		dataset: Dataset{
			AgeSexState: append([]AgeSexStateRecord(nil), dataset.AgeSexState...),
			Conditions:  append([]ConditionRecord(nil), dataset.Conditions...),
		},
		demographics: make(map[demographicKey][]int64, len(dataset.AgeSexState)),
		conditions:   make(map[conditionKey]int64, len(dataset.Conditions)),
	}
	for _, row := range t.dataset.AgeSexState {
		key := demographicKey{ageGroup: row.AgeGroup, state: row.State, sex: row.Sex}
		t.demographics[key] = append(t.demographics[key], row.Deaths)
	}
	for _, row := range t.dataset.Conditions {
		key := conditionKey{ageGroup: row.AgeGroup, state: row.State, conditionGroup: row.ConditionGroup}
		t.conditions[key] += row.Deaths
	}
	return t
}

// Dataset returns a copy of the rows the tables were built from.
func (t *Tables) Dataset() Dataset {
	if t == nil {
		return Dataset{}
	}
	return Dataset{
		AgeSexState: append([]AgeSexStateRecord(nil), t.dataset.AgeSexState...),
		Conditions:  append([]ConditionRecord(nil), t.dataset.Conditions...),
	}
}

// DemographicDeaths implements Source.
func (t *Tables) DemographicDeaths(ctx context.Context, ageGroup, state, sex string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if t == nil {
		return 0, NotFound(ageGroup, state, sex)
	}
	matches := t.demographics[demographicKey{ageGroup: ageGroup, state: state, sex: sex}]
	switch len(matches) {
	case 0:
		return 0, NotFound(ageGroup, state, sex)
	case 1:
		return matches[0], nil
	default:
		return 0, Ambiguous(ageGroup, state, sex, len(matches))
	}
}

// ConditionDeaths implements Source.
func (t *Tables) ConditionDeaths(ctx context.Context, ageGroup, stateCode, conditionGroup string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if t == nil {
		return 0, nil
	}
	return t.conditions[conditionKey{ageGroup: ageGroup, state: stateCode, conditionGroup: conditionGroup}], nil
}

// NotFound builds the lookup error for a demographic key with no row.
func NotFound(ageGroup, state, sex string) error {
	return apperrors.WithMetadata(apperrors.CodeLookupNotFound, "selection not covered by reference data", map[string]string{
		"age_group": ageGroup,
		"state":     state,
		"sex":       sex,
	})
}

// Ambiguous builds the lookup error for a demographic key with several rows.
func Ambiguous(ageGroup, state, sex string, matches int) error {
	return apperrors.WithMetadata(apperrors.CodeLookupAmbiguous, "selection matches more than one reference row", map[string]string{
		"age_group": ageGroup,
		"state":     state,
		"sex":       sex,
		"matches":   strconv.Itoa(matches),
	})
}
