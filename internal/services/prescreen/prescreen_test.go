package prescreen

import (
	"testing"

	apperrors "github.com/louisbranch/covidtracker/internal/platform/errors"
)

func TestScreenDecisionTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		symptoms []string
		want     Result
	}{
		{
			name: "nothing selected",
			want: Result{Score: 0, Severity: SeverityLow, Message: MessageMonitor, Tone: ToneSuccess},
		},
		{
			name:     "headache only",
			symptoms: []string{"Headache"},
			want:     Result{Score: 16, Severity: SeverityLow, Message: MessageMonitor, Tone: ToneSuccess},
		},
		{
			name:     "emergency with both major symptoms",
			symptoms: []string{"Breathing", "Fever", "Cough"},
			want:     Result{Score: 366, Severity: SeverityHigh, Emergency: true, Message: MessageTesting, Tone: ToneDanger},
		},
		{
			name:     "emergency without cough",
			symptoms: []string{"Chest", "Fever"},
			want:     Result{Score: 298, Severity: SeverityHigh, Emergency: true, Message: MessageEmergency, Tone: ToneDanger},
		},
		{
			name:     "high score without emergency",
			symptoms: []string{"Fever", "Cough", "Age"},
			want:     Result{Score: 209, Severity: SeverityHigh, Message: MessageTesting, Tone: ToneWarning},
		},
		{
			name:     "just below threshold",
			symptoms: []string{"Fever", "Cough", "Fatigue", "Sputum"},
			want:     Result{Score: 205, Severity: SeverityLow, Message: MessageMonitor, Tone: ToneSuccess},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Screen(tt.symptoms)
			if err != nil {
				t.Fatalf("screen: %v", err)
			}
			if got != tt.want {
				t.Fatalf("screen(%v) = %+v, want %+v", tt.symptoms, got, tt.want)
			}
		})
	}
}

func TestScreenCountsDuplicatesOnce(t *testing.T) {
	t.Parallel()

	got, err := Screen([]string{"Fever", "Fever", "Fever"})
	if err != nil {
		t.Fatalf("screen: %v", err)
	}
	if got.Score != 89 {
		t.Fatalf("score = %d, want %d", got.Score, 89)
	}
}

func TestScreenRejectsUnknownSymptom(t *testing.T) {
	t.Parallel()

	_, err := Screen([]string{"Fever", "Sneezing"})
	if got := apperrors.CodeOf(err); got != apperrors.CodeUnknownSymptom {
		t.Fatalf("code = %s, want %s", got, apperrors.CodeUnknownSymptom)
	}
}

func TestOptionsCoverQuestionnaire(t *testing.T) {
	t.Parallel()

	got := Options()
	if len(got) != 15 {
		t.Fatalf("options = %d, want %d", len(got), 15)
	}
	emergency := 0
	for _, option := range got {
		if option.Weight < 5 || option.Weight > 209 {
			t.Fatalf("%s weight = %d, want within [5, 209]", option.Value, option.Weight)
		}
		if option.Emergency {
			emergency++
		}
	}
	if emergency != 4 {
		t.Fatalf("emergency options = %d, want %d", emergency, 4)
	}
	got[0].Weight = 0
	if Options()[0].Weight != 89 {
		t.Fatal("Options must return a copy")
	}
}
