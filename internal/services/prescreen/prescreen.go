// Package prescreen scores a symptom questionnaire and picks the screening
// advice shown to the user.
package prescreen

import (
	apperrors "github.com/louisbranch/covidtracker/internal/platform/errors"
)

// Threshold is the score at which the advice becomes urgent.
const Threshold = 209

// Severity classifies screening advice.
type Severity string

const (
	SeverityLow  Severity = "low"
	SeverityHigh Severity = "high"
)

// Tone is the color of the result card.
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneDanger  Tone = "danger"
)

// Screening advice.
const (
	MessageTesting   = "Your symptoms indicate that you should consult a doctor immediately for COVID-19 testing. "
	MessageEmergency = "Your symptoms indicate that you should consult a doctor immediately."
	MessageMonitor   = "Your symptoms indicate that currently you do not need COVID-19 testing. Please continue to monitor your health and practice social distancing. Avoid leaving the house unnecessarily. If you must leave the house, wear a mask or other face covering and stay at least 6 feet away from others."
)

// Option is one questionnaire entry.
type Option struct {
	Label     string
	Value     string
	Weight    int
	Emergency bool
}

var options = []Option{
	{Label: "Fever (above 37.8C/100F in armpit or forehead)", Value: "Fever", Weight: 89},
	{Label: "Cough", Value: "Cough", Weight: 68},
	{Label: "Fatigue", Value: "Fatigue", Weight: 30},
	{Label: "Sputum (saliva and mucus coughed up)", Value: "Sputum", Weight: 18},
	{Label: "Muscle or joint aches", Value: "Muscle", Weight: 14},
	{Label: "Headache or Dizziness", Value: "Headache", Weight: 16},
	{Label: "Sore throat", Value: "Sore", Weight: 16},
	{Label: "Nausea or vomiting", Value: "Nausea", Weight: 5},
	{Label: "Diarrhea", Value: "Diarrhea", Weight: 5},
	{Label: "Trouble breathing", Value: "Breathing", Weight: 209, Emergency: true},
	{Label: "Persistent pain or pressure in the chest", Value: "Chest", Weight: 209, Emergency: true},
	{Label: "Loss of consciousness or Confusion", Value: "Confusion", Weight: 209, Emergency: true},
	{Label: "Bluish lips or face", Value: "Bluish", Weight: 209, Emergency: true},
	{Label: "Age above 60 years or below 5 years", Value: "Age", Weight: 52},
	{Label: "Chronic Disease (hypertension, respiratory disease, heart disease, diabetes, or immunocompromised)", Value: "Chronic", Weight: 52},
}

var byValue = func() map[string]Option {
	index := make(map[string]Option, len(options))
	for _, option := range options {
		index[option.Value] = option
	}
	return index
}()

// majorSymptoms must all be present for the emergency case to also
// recommend testing.
var majorSymptoms = []string{"Fever", "Cough"}

// Options returns the questionnaire entries in display order.
func Options() []Option {
	return append([]Option(nil), options...)
}

// Result is the outcome of one screening.
type Result struct {
	Score     int
	Severity  Severity
	Emergency bool
	Message   string
	Tone      Tone
}

// Screen scores symptoms and applies the decision table. Each symptom counts
// once; an unknown symptom is an error.
func Screen(symptoms []string) (Result, error) {
	selected := make(map[string]struct{}, len(symptoms))
	var result Result
	for _, symptom := range symptoms {
		option, ok := byValue[symptom]
		if !ok {
			return Result{}, apperrors.WithMetadata(apperrors.CodeUnknownSymptom, "symptom is not on the questionnaire", map[string]string{
				"symptom": symptom,
			})
		}
		if _, dup := selected[symptom]; dup {
			continue
		}
		selected[symptom] = struct{}{}
		result.Score += option.Weight
		if option.Emergency {
			result.Emergency = true
		}
	}

	if result.Score < Threshold {
		result.Severity = SeverityLow
		result.Message = MessageMonitor
		result.Tone = ToneSuccess
		return result, nil
	}

	result.Severity = SeverityHigh
	if !result.Emergency {
		result.Message = MessageTesting
		result.Tone = ToneWarning
		return result, nil
	}
	result.Tone = ToneDanger
	result.Message = MessageEmergency
	if hasAll(selected, majorSymptoms) {
		result.Message = MessageTesting
	}
	return result, nil
}

func hasAll(selected map[string]struct{}, values []string) bool {
	for _, value := range values {
		if _, ok := selected[value]; !ok {
			return false
		}
	}
	return true
}
