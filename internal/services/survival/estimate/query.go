package estimate

import (
	apperrors "github.com/louisbranch/covidtracker/internal/platform/errors"
	"github.com/louisbranch/covidtracker/internal/services/survival/reference"
)

// Query is one calculator form submission.
type Query struct {
	AgeGroup   string
	State      string
	Sex        string
	Conditions []string
}

// Validate checks every field against the calculator enumerations.
func (q Query) Validate() error {
	if !reference.IsAgeGroupSelection(q.AgeGroup) {
		return invalidSelection("age_group", q.AgeGroup)
	}
	if _, ok := reference.StateCode(q.State); !ok {
		return invalidSelection("state", q.State)
	}
	if !reference.IsSex(q.Sex) {
		return invalidSelection("sex", q.Sex)
	}
	for _, condition := range q.Conditions {
		if !reference.IsConditionGroup(condition) {
			return invalidSelection("condition_group", condition)
		}
	}
	return nil
}

// uniqueConditions keeps the first occurrence of each condition in order.
func uniqueConditions(conditions []string) []string {
	if len(conditions) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(conditions))
	unique := make([]string, 0, len(conditions))
	for _, condition := range conditions {
		if _, ok := seen[condition]; ok {
			continue
		}
		seen[condition] = struct{}{}
		unique = append(unique, condition)
	}
	return unique
}

func invalidSelection(field, value string) error {
	return apperrors.WithMetadata(apperrors.CodeInvalidSelection, "selection is not offered by the calculator", map[string]string{
		"field": field,
		"value": value,
	})
}
