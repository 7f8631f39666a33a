// Package migrations embeds the goose SQL migrations for the landing schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
