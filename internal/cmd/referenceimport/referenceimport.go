// Package referenceimport loads the CDC death tables from CSV into the SQLite
// reference store.
package referenceimport

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	entrypoint "github.com/louisbranch/covidtracker/internal/platform/cmd"
	"github.com/louisbranch/covidtracker/internal/services/survival/reference"
	"github.com/louisbranch/covidtracker/internal/services/survival/storage/sqlite"
)

// Config holds configuration for the reference importer.
type Config struct {
	AgeSexStateCSV string `env:"COVIDTRACKER_AGE_SEX_STATE_CSV" envDefault:"data/Covid_Age_Sex_State_Data.csv"`
	ConditionsCSV  string `env:"COVIDTRACKER_CONDITIONS_CSV" envDefault:"data/Covid_Underlying_Conditions_Data.csv"`
	DBPath         string `env:"COVIDTRACKER_REFERENCE_DB_PATH" envDefault:"data/reference.db"`
	DryRun         bool
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	err := entrypoint.ParseConfigFromArgs(&cfg, fs, args, func(fs *flag.FlagSet, cfg *Config) {
		fs.StringVar(&cfg.AgeSexStateCSV, "age-sex-state-csv", cfg.AgeSexStateCSV, "Path to the age/sex/state deaths CSV")
		fs.StringVar(&cfg.ConditionsCSV, "conditions-csv", cfg.ConditionsCSV, "Path to the underlying conditions deaths CSV")
		fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite reference database path")
		fs.BoolVar(&cfg.DryRun, "dry-run", false, "validate the CSV files without writing to the database")
	})
	if err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.DBPath) == "" && !cfg.DryRun {
		return Config{}, errors.New("db-path is required")
	}
	return cfg, nil
}

// Run reads both CSV files and replaces the stored reference tables.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if out == nil {
		out = io.Discard
	}

	dataset, err := reference.LoadDataset(ctx, cfg.AgeSexStateCSV, cfg.ConditionsCSV)
	if err != nil {
		return err
	}
	if cfg.DryRun {
		_, err = fmt.Fprintf(out, "validated %d age/sex/state row(s) and %d condition row(s)\n",
			len(dataset.AgeSexState), len(dataset.Conditions))
		return err
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open reference store: %w", err)
	}
	defer store.Close()

	if err := store.Import(ctx, dataset); err != nil {
		return fmt.Errorf("import reference tables: %w", err)
	}
	_, err = fmt.Fprintf(out, "imported %d age/sex/state row(s) and %d condition row(s) into %s\n",
		len(dataset.AgeSexState), len(dataset.Conditions), cfg.DBPath)
	return err
}
