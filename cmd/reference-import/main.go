// Package main imports the CDC reference tables into SQLite.
package main

import (
	"context"
	"flag"
	"os"

	referenceimport "github.com/louisbranch/covidtracker/internal/cmd/referenceimport"
	"github.com/louisbranch/covidtracker/internal/platform/config"
)

func main() {
	cfg, err := referenceimport.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	if err := referenceimport.Run(context.Background(), cfg, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
