// Package referencetest provides small reference fixtures for estimator tests.
package referencetest

import (
	"strconv"
	"strings"

	"github.com/louisbranch/covidtracker/internal/services/survival/reference"
)

// NationalDeaths is the fixture's All Ages / United States / All Sexes count.
const NationalDeaths = 200000

// Dataset returns the fixture rows. Texas 45-54 Male appears twice so the
// exactly-one-row contract can be exercised; Sepsis has a zero national total.
func Dataset() reference.Dataset {
	return reference.Dataset{
		AgeSexState: []reference.AgeSexStateRecord{
			{AgeGroup: reference.AllAges, State: reference.UnitedStates, Sex: reference.AllSexes, Deaths: NationalDeaths},
			{AgeGroup: "Under 1 year", State: "California", Sex: "Male", Deaths: 10},
			{AgeGroup: "1-4 years", State: "California", Sex: "Male", Deaths: 4},
			{AgeGroup: "5-14 years", State: "California", Sex: "Male", Deaths: 6},
			{AgeGroup: "15-24 years", State: "California", Sex: "Male", Deaths: 180},
			{AgeGroup: "25-34 years", State: "California", Sex: "Male", Deaths: 1500},
			{AgeGroup: "85 years and over", State: "California", Sex: "Female", Deaths: 9000},
			{AgeGroup: "25-34 years", State: "Alaska", Sex: "Male", Deaths: 0},
			{AgeGroup: "45-54 years", State: "Texas", Sex: "Male", Deaths: 700},
			{AgeGroup: "45-54 years", State: "Texas", Sex: "Male", Deaths: 710},
		},
		Conditions: []reference.ConditionRecord{
			{AgeGroup: reference.AllAges, State: reference.NationalCode, ConditionGroup: "Diabetes", Deaths: 30000},
			{AgeGroup: reference.AllAges, State: reference.NationalCode, ConditionGroup: "Diabetes", Deaths: 10000},
			{AgeGroup: "25-34", State: "CA", ConditionGroup: "Diabetes", Deaths: 200},
			{AgeGroup: "25-34", State: "CA", ConditionGroup: "Diabetes", Deaths: 200},
			{AgeGroup: reference.AllAges, State: reference.NationalCode, ConditionGroup: "Obesity", Deaths: 20000},
			{AgeGroup: "25-34", State: "CA", ConditionGroup: "Obesity", Deaths: 500},
			{AgeGroup: reference.AllAges, State: reference.NationalCode, ConditionGroup: "Sepsis", Deaths: 0},
			{AgeGroup: "25-34", State: "CA", ConditionGroup: "Sepsis", Deaths: 3},
		},
	}
}

// Tables returns the fixture indexed in memory.
func Tables() *reference.Tables {
	return reference.NewTables(Dataset())
}

// AgeSexStateCSV renders the fixture's age/sex/state rows in the CDC layout.
func AgeSexStateCSV() string {
	var b strings.Builder
	b.WriteString("Data As Of,State,Sex,Age group,COVID-19 Deaths,Total Deaths\n")
	for _, row := range Dataset().AgeSexState {
		b.WriteString("09/30/2020,")
		b.WriteString(row.State + "," + row.Sex + "," + row.AgeGroup + ",")
		if row.Deaths != 0 {
			b.WriteString(strconv.FormatInt(row.Deaths, 10))
		}
		b.WriteString(",12\n")
	}
	return b.String()
}

// ConditionsCSV renders the fixture's condition rows in the CDC layout.
func ConditionsCSV() string {
	var b strings.Builder
	b.WriteString("State,Condition Group,Condition,Age Group,Number of COVID-19 Deaths\n")
	for _, row := range Dataset().Conditions {
		b.WriteString(row.State + "," + csvField(row.ConditionGroup) + ",Any," + row.AgeGroup + ",")
		if row.Deaths != 0 {
			b.WriteString(strconv.FormatInt(row.Deaths, 10))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func csvField(value string) string {
	if strings.ContainsAny(value, ",\"") {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}
