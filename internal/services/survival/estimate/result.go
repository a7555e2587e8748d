package estimate

import (
	"math"
	"strconv"
	"strings"
)

// Estimate is the outcome of one survival rate query.
type Estimate struct {
	Query           Query
	DemographicRate float64
	Conditions      ConditionRates
	// Rate is the unrounded survival percentage. It is not clamped and can
	// leave [0, 100] when many conditions are selected.
	Rate float64
}

// Rounded returns Rate rounded to two decimals, ties to even.
func (e Estimate) Rounded() float64 {
	return RoundTo2(e.Rate)
}

// Message is the sentence shown on the calculator result card.
func (e Estimate) Message() string {
	return "Your estimated survival rate is " + FormatPercent(e.Rounded()) + "%"
}

// RoundTo2 rounds v to two decimal places using its exact binary value.
func RoundTo2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}

// FormatPercent renders v as the shortest decimal that reads back as v,
// always with a fractional part ("100.0", "99.25").
func FormatPercent(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	abs := math.Abs(v)
	if abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		return formatExponent(v)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// formatExponent writes "1e-05" and "1.5e+16" style exponents.
func formatExponent(v float64) string {
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, exponent, _ := strings.Cut(s, "e")
	sign := exponent[:1]
	digits := strings.TrimLeft(exponent[1:], "0")
	if len(digits) < 2 {
		digits = strings.Repeat("0", 2-len(digits)) + digits
	}
	return mantissa + "e" + sign + digits
}
