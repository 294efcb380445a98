package migrations

import "embed"

// FS contains the embedded SQLite migrations for the commuter key-value store.
//
//go:embed *.sql
var FS embed.FS
