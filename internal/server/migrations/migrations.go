// Package migrations embeds the goose migrations for the default identity table.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
