package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	apperrors "github.com/louisbranch/covidtracker/internal/platform/errors"
	"github.com/louisbranch/covidtracker/internal/services/survival/estimate"
	"github.com/louisbranch/covidtracker/internal/services/survival/reference"
	"github.com/louisbranch/covidtracker/internal/services/survival/reference/referencetest"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "reference.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
	})
	if err := store.Import(context.Background(), referencetest.Dataset()); err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(" "); err == nil {
		t.Fatal("expected error for blank path")
	}
}

func TestOpenMemoryPath(t *testing.T) {
	t.Parallel()

	store, err := Open(MemoryPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()
	dataset, err := store.Dataset(context.Background())
	if err != nil {
		t.Fatalf("Dataset() error = %v", err)
	}
	if len(dataset.AgeSexState) != 0 || len(dataset.Conditions) != 0 {
		t.Fatalf("fresh store has rows: %+v", dataset)
	}
}

func TestImportIsIdempotent(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	if err := store.Import(context.Background(), referencetest.Dataset()); err != nil {
		t.Fatalf("second Import() error = %v", err)
	}
	got, err := store.Dataset(context.Background())
	if err != nil {
		t.Fatalf("Dataset() error = %v", err)
	}
	if diff := cmp.Diff(referencetest.Dataset(), got); diff != "" {
		t.Fatalf("dataset mismatch (-want +got):\n%s", diff)
	}
}

func TestDemographicDeathsMatchesTables(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	tables := referencetest.Tables()
	ctx := context.Background()
	for _, key := range [][3]string{
		{reference.AllAges, reference.UnitedStates, reference.AllSexes},
		{"25-34 years", "California", "Male"},
		{"25-34 years", "Alaska", "Male"},
		{"85 years and over", "California", "Female"},
	} {
		want, err := tables.DemographicDeaths(ctx, key[0], key[1], key[2])
		if err != nil {
			t.Fatalf("tables %v error = %v", key, err)
		}
		got, err := store.DemographicDeaths(ctx, key[0], key[1], key[2])
		if err != nil {
			t.Fatalf("store %v error = %v", key, err)
		}
		if got != want {
			t.Fatalf("DemographicDeaths(%v) = %d, want %d", key, got, want)
		}
	}
}

func TestDemographicDeathsExactlyOneRow(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()

	_, err := store.DemographicDeaths(ctx, "35-44 years", "Ohio", "Male")
	if got := apperrors.CodeOf(err); got != apperrors.CodeLookupNotFound {
		t.Fatalf("missing row code = %q, want %q", got, apperrors.CodeLookupNotFound)
	}
	_, err = store.DemographicDeaths(ctx, "45-54 years", "Texas", "Male")
	if got := apperrors.CodeOf(err); got != apperrors.CodeLookupAmbiguous {
		t.Fatalf("duplicate row code = %q, want %q", got, apperrors.CodeLookupAmbiguous)
	}
}

func TestConditionDeathsSumsMatchingRows(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()
	for _, tc := range []struct {
		age, state, group string
		want              int64
	}{
		{reference.AllAges, reference.NationalCode, "Diabetes", 40000},
		{"25-34", "CA", "Diabetes", 400},
		{"25-34", "CA", "Sepsis", 3},
		{"85+", "WY", "Obesity", 0},
	} {
		got, err := store.ConditionDeaths(ctx, tc.age, tc.state, tc.group)
		if err != nil {
			t.Fatalf("ConditionDeaths(%s, %s, %s) error = %v", tc.age, tc.state, tc.group, err)
		}
		if got != tc.want {
			t.Fatalf("ConditionDeaths(%s, %s, %s) = %d, want %d", tc.age, tc.state, tc.group, got, tc.want)
		}
	}
}

func TestCalculatorAgreesAcrossBackends(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	query := estimate.Query{AgeGroup: "25-34 years", State: "California", Sex: "Male", Conditions: []string{"Diabetes", "Obesity", "Sepsis"}}
	want, err := estimate.NewCalculator(referencetest.Tables()).SurvivalRate(context.Background(), query)
	if err != nil {
		t.Fatalf("memory SurvivalRate() error = %v", err)
	}
	got, err := estimate.NewCalculator(store).SurvivalRate(context.Background(), query)
	if err != nil {
		t.Fatalf("sqlite SurvivalRate() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("estimate mismatch (-memory +sqlite):\n%s", diff)
	}
}

func TestClosedStoreIsSafe(t *testing.T) {
	t.Parallel()

	var store *Store
	if err := store.Close(); err != nil {
		t.Fatalf("nil Close() error = %v", err)
	}
	if _, err := store.ConditionDeaths(context.Background(), "25-34", "CA", "Diabetes"); err == nil {
		t.Fatal("expected error for unconfigured store")
	}
}
