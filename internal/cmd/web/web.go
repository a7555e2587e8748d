// Package web parses dashboard flags and launches the web service.
package web

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	entrypoint "github.com/louisbranch/covidtracker/internal/platform/cmd"
	"github.com/louisbranch/covidtracker/internal/platform/timeouts"
	"github.com/louisbranch/covidtracker/internal/services/survival/estimate"
	"github.com/louisbranch/covidtracker/internal/services/survival/reference"
	"github.com/louisbranch/covidtracker/internal/services/survival/storage/sqlite"
	"github.com/louisbranch/covidtracker/internal/services/tracker"
	"github.com/louisbranch/covidtracker/internal/services/tracker/covidtracking"
	"github.com/louisbranch/covidtracker/internal/services/web"
)

// Reference backends selectable through COVIDTRACKER_REFERENCE_BACKEND.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr         string        `env:"COVIDTRACKER_WEB_HTTP_ADDR" envDefault:"localhost:8050"`
	AgeSexStateCSV   string        `env:"COVIDTRACKER_AGE_SEX_STATE_CSV" envDefault:"data/Covid_Age_Sex_State_Data.csv"`
	ConditionsCSV    string        `env:"COVIDTRACKER_CONDITIONS_CSV" envDefault:"data/Covid_Underlying_Conditions_Data.csv"`
	ReferenceBackend string        `env:"COVIDTRACKER_REFERENCE_BACKEND" envDefault:"memory"`
	ReferenceDBPath  string        `env:"COVIDTRACKER_REFERENCE_DB_PATH" envDefault:"data/reference.db"`
	TrackerBaseURL   string        `env:"COVIDTRACKER_TRACKER_BASE_URL" envDefault:"https://api.covidtracking.com"`
	TrackerTimeout   time.Duration `env:"COVIDTRACKER_TRACKER_TIMEOUT" envDefault:"10s"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args, bindFlags); err != nil {
		return Config{}, err
	}
	cfg.ReferenceBackend = strings.ToLower(strings.TrimSpace(cfg.ReferenceBackend))
	switch cfg.ReferenceBackend {
	case BackendMemory, BackendSQLite:
	default:
		return Config{}, fmt.Errorf("unknown reference backend %q", cfg.ReferenceBackend)
	}
	if cfg.TrackerTimeout <= 0 {
		cfg.TrackerTimeout = timeouts.TrackerFetch
	}
	return cfg, nil
}

func bindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.AgeSexStateCSV, "age-sex-state-csv", cfg.AgeSexStateCSV, "Path to the age/sex/state deaths CSV")
	fs.StringVar(&cfg.ConditionsCSV, "conditions-csv", cfg.ConditionsCSV, "Path to the underlying conditions deaths CSV")
	fs.StringVar(&cfg.ReferenceBackend, "reference-backend", cfg.ReferenceBackend, "Reference table backend: memory or sqlite")
	fs.StringVar(&cfg.ReferenceDBPath, "reference-db", cfg.ReferenceDBPath, "SQLite reference database path")
	fs.StringVar(&cfg.TrackerBaseURL, "tracker-base-url", cfg.TrackerBaseURL, "COVID Tracking Project API base URL")
	fs.DurationVar(&cfg.TrackerTimeout, "tracker-timeout", cfg.TrackerTimeout, "Timeout for one tracker feed request")
}

// Run loads the reference tables and serves the dashboard until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		source, closer, err := OpenReference(ctx, cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := closer.Close(); err != nil {
				log.Printf("close reference backend=%s err=%v", cfg.ReferenceBackend, err)
			}
		}()

		feed := covidtracking.NewClient(cfg.TrackerBaseURL, covidtracking.NewTracedClient(cfg.TrackerTimeout))
		snapshots := tracker.NewService(feed)
		loadTracker(ctx, snapshots, feed.BaseURL())

		server, err := web.NewServer(web.Config{
			HTTPAddr: cfg.HTTPAddr,
			Survival: estimate.NewCalculator(source),
			Tracker:  snapshots,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}

// OpenReference opens the configured reference backend. The returned closer
// releases backend resources and is never nil on success.
func OpenReference(ctx context.Context, cfg Config) (reference.Source, io.Closer, error) {
	loadCtx, cancel := context.WithTimeout(ctx, timeouts.ReferenceLoad)
	defer cancel()

	switch cfg.ReferenceBackend {
	case BackendSQLite:
		store, err := sqlite.Open(cfg.ReferenceDBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open reference store: %w", err)
		}
		dataset, err := store.Dataset(loadCtx)
		if err != nil {
			_ = store.Close()
			return nil, nil, fmt.Errorf("read reference store: %w", err)
		}
		if len(dataset.AgeSexState) == 0 {
			_ = store.Close()
			return nil, nil, fmt.Errorf("reference store %s is empty; run reference-import first", cfg.ReferenceDBPath)
		}
		log.Printf("reference loaded backend=sqlite path=%s age_sex_state_rows=%d condition_rows=%d",
			cfg.ReferenceDBPath, len(dataset.AgeSexState), len(dataset.Conditions))
		return store, store, nil
	case BackendMemory, "":
		tables, err := reference.LoadTables(loadCtx, cfg.AgeSexStateCSV, cfg.ConditionsCSV)
		if err != nil {
			return nil, nil, fmt.Errorf("load reference tables: %w", err)
		}
		dataset := tables.Dataset()
		log.Printf("reference loaded backend=memory age_sex_state_rows=%d condition_rows=%d",
			len(dataset.AgeSexState), len(dataset.Conditions))
		return tables, noopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown reference backend %q", cfg.ReferenceBackend)
	}
}

type noopCloser struct{}

func (noopCloser) Close() error { return nil }

// loadTracker performs the startup fetch. A failure is logged and the
// service retries on the next request that needs the snapshot.
func loadTracker(ctx context.Context, snapshots *tracker.Service, baseURL string) {
	loadCtx, cancel := context.WithTimeout(ctx, timeouts.TrackerFetch)
	defer cancel()
	if err := snapshots.Load(loadCtx); err != nil {
		log.Printf("tracker load failed base_url=%s err=%v", baseURL, err)
		return
	}
	loadedAt, _ := snapshots.LoadedAt()
	log.Printf("tracker loaded base_url=%s at=%s", baseURL, loadedAt.UTC().Format(time.RFC3339))
}
