package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

type testConfig struct {
	Address string `env:"CMD_TEST_ADDRESS" envDefault:"127.0.0.1:8080"`
	Mode    string `env:"CMD_TEST_MODE" envDefault:"server"`
}

func bindTestFlags(fs *flag.FlagSet, cfg *testConfig) {
	fs.StringVar(&cfg.Address, "address", cfg.Address, "address")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "mode")
}

func TestParseConfigFromArgsReadsEnvAndFlags(t *testing.T) {
	t.Setenv("COVIDTRACKER_CMD_TEST_ADDRESS", "env:9000")
	t.Setenv("COVIDTRACKER_CMD_TEST_MODE", "env-mode")

	cfg := testConfig{}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	if err := ParseConfigFromArgs(&cfg, fs, []string{"-address", "flag:9001"}, bindTestFlags); err != nil {
		t.Fatalf("parse config and args: %v", err)
	}
	if cfg.Address != "flag:9001" {
		t.Fatalf("address = %q, want %q", cfg.Address, "flag:9001")
	}
	if cfg.Mode != "env-mode" {
		t.Fatalf("mode = %q, want %q", cfg.Mode, "env-mode")
	}
}

func TestParseConfigFromArgsUsesDefaults(t *testing.T) {
	cfg := testConfig{}
	fs := flag.NewFlagSet("defaults", flag.ContinueOnError)
	if err := ParseConfigFromArgs(&cfg, fs, nil, bindTestFlags); err != nil {
		t.Fatalf("parse config and args: %v", err)
	}
	if cfg.Address != "127.0.0.1:8080" {
		t.Fatalf("address = %q, want default", cfg.Address)
	}
}

func TestParseConfigFromArgsRejectsMissingInputs(t *testing.T) {
	if err := ParseConfigFromArgs[testConfig](nil, flag.NewFlagSet("x", flag.ContinueOnError), nil, nil); err == nil {
		t.Fatal("expected nil config error")
	}
	if err := ParseConfigFromArgs(&testConfig{}, nil, nil, bindTestFlags); err == nil {
		t.Fatal("expected nil parser error")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	if err := RunWithTelemetry(context.Background(), "", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(context.Background(), ServiceWeb, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryReturnsRunError(t *testing.T) {
	t.Setenv("COVIDTRACKER_OTEL_ENDPOINT", "")
	want := errors.New("boom")

	err := RunWithTelemetry(context.Background(), ServiceWeb, func(context.Context) error { return want })
	if !errors.Is(err, want) {
		t.Fatalf("run error = %v, want %v", err, want)
	}
}
