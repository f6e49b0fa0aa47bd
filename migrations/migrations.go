// Package migrations embeds the Postgres schema for the event logs.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
