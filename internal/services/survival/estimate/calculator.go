package estimate

import (
	"context"
	"errors"

	apperrors "github.com/louisbranch/covidtracker/internal/platform/errors"
	platformotel "github.com/louisbranch/covidtracker/internal/platform/otel"
	"github.com/louisbranch/covidtracker/internal/services/survival/reference"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Calculator computes rates from a reference source. It holds no mutable
// state and is safe for concurrent use.
type Calculator struct {
	source reference.Source
	tracer trace.Tracer
}

// NewCalculator builds a calculator over source.
func NewCalculator(source reference.Source) *Calculator {
	return &Calculator{
		source: source,
		tracer: platformotel.Tracer("survival/estimate"),
	}
}

// Contribution is the rate one condition adds to the estimate.
type Contribution struct {
	ConditionGroup string
	Partial        int64
	Total          int64
	Rate           float64
}

// ConditionRates is the summed condition contribution of a selection.
type ConditionRates struct {
	Total         float64
	Contributions []Contribution
	// Flagged lists conditions whose national total is zero; they
	// contribute 0.
	Flagged []string
}

// DemographicDeathRate returns the share of national deaths, as a percentage,
// in the age group, state and sex bucket. The synthetic "0-24 years" group
// sums its four source bands.
func (c *Calculator) DemographicDeathRate(ctx context.Context, ageGroup, state, sex string) (float64, error) {
	if c == nil || c.source == nil {
		return 0, errors.New("reference source is not configured")
	}
	bands := []string{ageGroup}
	if ageGroup == reference.YouthSelection {
		bands = reference.YouthSubBands()
	}
	var numerator int64
	for _, band := range bands {
		deaths, err := c.source.DemographicDeaths(ctx, band, state, sex)
		if err != nil {
			return 0, err
		}
		numerator += deaths
	}
	denominator, err := c.source.DemographicDeaths(ctx, reference.AllAges, reference.UnitedStates, reference.AllSexes)
	if err != nil {
		return 0, err
	}
	if denominator == 0 {
		return 0, apperrors.New(apperrors.CodeZeroNationalTotal, "national death total is zero")
	}
	return (float64(numerator) / float64(denominator)) * 100, nil
}

// ConditionDeathRateSum adds the rate of each selected condition in selection
// order. Repeated conditions count once.
func (c *Calculator) ConditionDeathRateSum(ctx context.Context, ageGroup, state string, conditions []string) (ConditionRates, error) {
	if c == nil || c.source == nil {
		return ConditionRates{}, errors.New("reference source is not configured")
	}
	band, ok := reference.ConditionBand(ageGroup)
	if !ok {
		return ConditionRates{}, invalidSelection("age_group", ageGroup)
	}
	code, ok := reference.StateCode(state)
	if !ok {
		return ConditionRates{}, invalidSelection("state", state)
	}

	var rates ConditionRates
	for _, condition := range uniqueConditions(conditions) {
		total, err := c.source.ConditionDeaths(ctx, reference.AllAges, reference.NationalCode, condition)
		if err != nil {
			return ConditionRates{}, err
		}
		partial, err := c.source.ConditionDeaths(ctx, band, code, condition)
		if err != nil {
			return ConditionRates{}, err
		}
		contribution := Contribution{ConditionGroup: condition, Partial: partial, Total: total}
		if total == 0 {
			rates.Flagged = append(rates.Flagged, condition)
		} else {
			contribution.Rate = (float64(partial) / float64(total)) * 100
		}
		rates.Total += contribution.Rate
		rates.Contributions = append(rates.Contributions, contribution)
	}
	return rates, nil
}

// SurvivalRate validates q and combines both rates into an Estimate.
func (c *Calculator) SurvivalRate(ctx context.Context, q Query) (Estimate, error) {
	if c == nil || c.source == nil {
		return Estimate{}, errors.New("reference source is not configured")
	}
	ctx, span := c.tracer.Start(ctx, "estimate.SurvivalRate", trace.WithAttributes(
		attribute.String("survival.age_group", q.AgeGroup),
		attribute.String("survival.state", q.State),
		attribute.String("survival.sex", q.Sex),
		attribute.Int("survival.conditions", len(q.Conditions)),
	))
	defer span.End()

	estimate, err := c.survivalRate(ctx, q)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(apperrors.CodeOf(err)))
		return Estimate{}, err
	}
	span.SetAttributes(attribute.Float64("survival.rate", estimate.Rate))
	return estimate, nil
}

func (c *Calculator) survivalRate(ctx context.Context, q Query) (Estimate, error) {
	if err := q.Validate(); err != nil {
		return Estimate{}, err
	}
	demographic, err := c.DemographicDeathRate(ctx, q.AgeGroup, q.State, q.Sex)
	if err != nil {
		return Estimate{}, err
	}
	estimate := Estimate{Query: q, DemographicRate: demographic}
	if len(q.Conditions) == 0 {
		estimate.Rate = 100 - demographic
		return estimate, nil
	}
	conditions, err := c.ConditionDeathRateSum(ctx, q.AgeGroup, q.State, q.Conditions)
	if err != nil {
		return Estimate{}, err
	}
	estimate.Conditions = conditions
	estimate.Rate = 100 - (demographic + conditions.Total)
	return estimate, nil
}
