package migrations

import "embed"

// FS contains embedded SQLite migrations for the reference tables.
//
//go:embed *.sql
var FS embed.FS
