package reference

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/covidtracker/internal/platform/errors"
)

// Column headers read from the CDC exports. Any other column is ignored.
const (
	ColumnAgeGroup       = "Age group"
	ColumnState          = "State"
	ColumnSex            = "Sex"
	ColumnCovidDeaths    = "COVID-19 Deaths"
	ColumnConditionAge   = "Age Group"
	ColumnConditionGroup = "Condition Group"
	ColumnConditionDeath = "Number of COVID-19 Deaths"
)

// ReadAgeSexState parses the age/sex/state table. Empty death cells are 0.
func ReadAgeSexState(r io.Reader) ([]AgeSexStateRecord, error) {
	var records []AgeSexStateRecord
	err := readTable(r, []string{ColumnAgeGroup, ColumnState, ColumnSex, ColumnCovidDeaths}, func(line int, cells []string) error {
		deaths, err := parseDeaths(cells[3])
		if err != nil {
			return fmt.Errorf("line %d column %q: %w", line, ColumnCovidDeaths, err)
		}
		records = append(records, AgeSexStateRecord{
			AgeGroup: cells[0],
			State:    cells[1],
			Sex:      cells[2],
			Deaths:   deaths,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read age/sex/state table: %w", err)
	}
	return records, nil
}

// ReadConditions parses the underlying-conditions table. Empty death cells are 0.
func ReadConditions(r io.Reader) ([]ConditionRecord, error) {
	var records []ConditionRecord
	err := readTable(r, []string{ColumnConditionAge, ColumnState, ColumnConditionGroup, ColumnConditionDeath}, func(line int, cells []string) error {
		deaths, err := parseDeaths(cells[3])
		if err != nil {
			return fmt.Errorf("line %d column %q: %w", line, ColumnConditionDeath, err)
		}
		records = append(records, ConditionRecord{
			AgeGroup:       cells[0],
			State:          cells[1],
			ConditionGroup: cells[2],
			Deaths:         deaths,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read conditions table: %w", err)
	}
	return records, nil
}

// ReadDataset parses both tables.
func ReadDataset(ageSexState, conditions io.Reader) (Dataset, error) {
	demographics, err := ReadAgeSexState(ageSexState)
	if err != nil {
		return Dataset{}, err
	}
	conditionRows, err := ReadConditions(conditions)
	if err != nil {
		return Dataset{}, err
	}
	return Dataset{AgeSexState: demographics, Conditions: conditionRows}, nil
}

// LoadDataset reads both tables from CSV files on disk.
func LoadDataset(ctx context.Context, ageSexStatePath, conditionsPath string) (Dataset, error) {
	if err := ctx.Err(); err != nil {
		return Dataset{}, err
	}
	ageSexStatePath = strings.TrimSpace(ageSexStatePath)
	conditionsPath = strings.TrimSpace(conditionsPath)
	if ageSexStatePath == "" || conditionsPath == "" {
		return Dataset{}, apperrors.New(apperrors.CodeReferenceLoad, "both reference table paths are required")
	}
	demographicsFile, err := os.Open(ageSexStatePath)
	if err != nil {
		return Dataset{}, apperrors.Wrap(apperrors.CodeReferenceLoad, "open age/sex/state table", err)
	}
	defer demographicsFile.Close()
	conditionsFile, err := os.Open(conditionsPath)
	if err != nil {
		return Dataset{}, apperrors.Wrap(apperrors.CodeReferenceLoad, "open conditions table", err)
	}
	defer conditionsFile.Close()

	dataset, err := ReadDataset(demographicsFile, conditionsFile)
	if err != nil {
		return Dataset{}, apperrors.Wrap(apperrors.CodeReferenceLoad, err.Error(), err)
	}
	return dataset, nil
}

// LoadTables reads both CSV files and indexes them in memory.
func LoadTables(ctx context.Context, ageSexStatePath, conditionsPath string) (*Tables, error) {
	dataset, err := LoadDataset(ctx, ageSexStatePath, conditionsPath)
	if err != nil {
		return nil, err
	}
	return NewTables(dataset), nil
}

func readTable(r io.Reader, columns []string, visit func(line int, cells []string) error) error {
	if r == nil {
		return errors.New("reader is required")
	}
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return errors.New("missing header row")
	}
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	index, err := columnIndex(header, columns)
	if err != nil {
		return err
	}

	cells := make([]string, len(columns))
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		for i, at := range index {
			cells[i] = ""
			if at < len(row) {
				cells[i] = row[at]
			}
		}
		if err := visit(line, cells); err != nil {
			return err
		}
	}
}

func columnIndex(header []string, columns []string) ([]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if _, seen := positions[name]; !seen {
			positions[name] = i
		}
	}
	index := make([]int, len(columns))
	for i, column := range columns {
		at, ok := positions[column]
		if !ok {
			return nil, fmt.Errorf("missing column %q", column)
		}
		index[i] = at
	}
	return index, nil
}

// parseDeaths reads a death count cell; blank cells are suppressed counts and
// read as 0.
func parseDeaths(cell string) (int64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, nil
	}
	if value, err := strconv.ParseInt(cell, 10, 64); err == nil {
		if value < 0 {
			return 0, fmt.Errorf("death count %q is negative", cell)
		}
		return value, nil
	}
	value, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("parse death count %q: %w", cell, err)
	}
	if math.IsNaN(value) {
		return 0, nil
	}
	if math.IsInf(value, 0) || value != math.Trunc(value) {
		return 0, fmt.Errorf("death count %q is not a whole number", cell)
	}
	if value < 0 {
		return 0, fmt.Errorf("death count %q is negative", cell)
	}
	// 2^63 is exact in float64; anything at or above it overflows int64.
	if value >= math.MaxInt64 {
		return 0, fmt.Errorf("death count %q is out of range", cell)
	}
	return int64(value), nil
}
