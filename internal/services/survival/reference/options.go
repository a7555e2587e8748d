package reference

// Keys of the national rows used as denominators.
const (
	AllAges      = "All Ages"
	UnitedStates = "United States"
	AllSexes     = "All Sexes"
	NationalCode = "US"
)

// YouthSelection is the calculator age selection that has no row of its own in
// the age/sex/state table; it is the sum of YouthSubBands.
const YouthSelection = "0-24 years"

var youthSubBands = []string{"Under 1 year", "1-4 years", "5-14 years", "15-24 years"}

// Option is one selectable value with its display label.
type Option struct {
	Label string
	Value string
}

// AgeGroupOption is a calculator age selection and the band it maps to in the
// conditions table.
type AgeGroupOption struct {
	Label string
	Value string
	Band  string
}

var ageGroupOptions = []AgeGroupOption{
	{Label: "0-24", Value: "0-24 years", Band: "0-24"},
	{Label: "25-34", Value: "25-34 years", Band: "25-34"},
	{Label: "35-44", Value: "35-44 years", Band: "35-44"},
	{Label: "45-54", Value: "45-54 years", Band: "45-54"},
	{Label: "55-64", Value: "55-64 years", Band: "55-64"},
	{Label: "65-74", Value: "65-74 years", Band: "65-74"},
	{Label: "75-84", Value: "75-84 years", Band: "75-84"},
	{Label: "85+", Value: "85 years and over", Band: "85+"},
}

var sexOptions = []Option{
	{Label: "Male", Value: "Male"},
	{Label: "Female", Value: "Female"},
	{Label: "Other", Value: "Unknown"},
}

// States in calculator display order. Puerto Rico trails the alphabetical list.
var stateNames = []string{
	"Alabama", "Alaska", "Arizona", "Arkansas", "California",
	"Colorado", "Connecticut", "Delaware", "District of Columbia", "Florida",
	"Georgia", "Hawaii", "Idaho", "Illinois", "Indiana", "Iowa", "Kansas",
	"Kentucky", "Louisiana", "Maine", "Maryland", "Massachusetts", "Michigan",
	"Minnesota", "Mississippi", "Missouri", "Montana", "Nebraska", "Nevada",
	"New Hampshire", "New Jersey", "New Mexico", "New York",
	"North Carolina", "North Dakota", "Ohio", "Oklahoma", "Oregon", "Pennsylvania",
	"Rhode Island", "South Carolina", "South Dakota", "Tennessee", "Texas", "Utah",
	"Vermont", "Virginia", "Washington", "West Virginia", "Wisconsin", "Wyoming",
	"Puerto Rico",
}

var stateCodes = map[string]string{
	"Alabama":              "AL",
	"Alaska":               "AK",
	"Arizona":              "AZ",
	"Arkansas":             "AR",
	"California":           "CA",
	"Colorado":             "CO",
	"Connecticut":          "CT",
	"Delaware":             "DE",
	"District of Columbia": "DC",
	"Florida":              "FL",
	"Georgia":              "GA",
	"Hawaii":               "HI",
	"Idaho":                "ID",
	"Illinois":             "IL",
	"Indiana":              "IN",
	"Iowa":                 "IA",
	"Kansas":               "KS",
	"Kentucky":             "KY",
	"Louisiana":            "LA",
	"Maine":                "ME",
	"Maryland":             "MD",
	"Massachusetts":        "MA",
	"Michigan":             "MI",
	"Minnesota":            "MN",
	"Mississippi":          "MS",
	"Missouri":             "MO",
	"Montana":              "MT",
	"Nebraska":             "NE",
	"Nevada":               "NV",
	"New Hampshire":        "NH",
	"New Jersey":           "NJ",
	"New Mexico":           "NM",
	"New York":             "NY",
	"North Carolina":       "NC",
	"North Dakota":         "ND",
	"Ohio":                 "OH",
	"Oklahoma":             "OK",
	"Oregon":               "OR",
	"Pennsylvania":         "PA",
	"Puerto Rico":          "PR",
	"Rhode Island":         "RI",
	"South Carolina":       "SC",
	"South Dakota":         "SD",
	"Tennessee":            "TN",
	"Texas":                "TX",
	"Utah":                 "UT",
	"Vermont":              "VT",
	"Virginia":             "VA",
	"Washington":           "WA",
	"West Virginia":        "WV",
	"Wisconsin":            "WI",
	"Wyoming":              "WY",
}

var conditionGroups = []string{
	"Respiratory diseases",
	"Circulatory diseases",
	"Sepsis",
	"Malignant neoplasms",
	"Diabetes",
	"Obesity",
	"Alzheimer disease",
	"Vascular and unspecified dementia",
	"Renal failure",
	"Intentional and unintentional injury, poisoning, and other adverse events",
	"All other conditions and causes (residual)",
}

// AgeGroupOptions returns the calculator age selections in display order.
func AgeGroupOptions() []AgeGroupOption {
	return append([]AgeGroupOption(nil), ageGroupOptions...)
}

// YouthSubBands returns the age/sex/state bands summed for YouthSelection.
func YouthSubBands() []string {
	return append([]string(nil), youthSubBands...)
}

// ConditionBand maps a calculator age selection to its conditions-table band.
func ConditionBand(selection string) (string, bool) {
	for _, option := range ageGroupOptions {
		if option.Value == selection {
			return option.Band, true
		}
	}
	return "", false
}

// IsAgeGroupSelection reports whether selection is a calculator age selection.
func IsAgeGroupSelection(selection string) bool {
	_, ok := ConditionBand(selection)
	return ok
}

// SexOptions returns the calculator sex selections.
func SexOptions() []Option {
	return append([]Option(nil), sexOptions...)
}

// IsSex reports whether value is a calculator sex selection.
func IsSex(value string) bool {
	for _, option := range sexOptions {
		if option.Value == value {
			return true
		}
	}
	return false
}

// StateNames returns the calculator state selections in display order.
func StateNames() []string {
	return append([]string(nil), stateNames...)
}

// StateCode maps a state name to its two-letter postal code.
func StateCode(name string) (string, bool) {
	code, ok := stateCodes[name]
	return code, ok
}

// ConditionGroups returns the underlying condition groups in display order.
func ConditionGroups() []string {
	return append([]string(nil), conditionGroups...)
}

// IsConditionGroup reports whether group is a known condition group.
func IsConditionGroup(group string) bool {
	for _, known := range conditionGroups {
		if known == group {
			return true
		}
	}
	return false
}
