// Package migrations embeds the goose migrations for the local metadata
// table. The same files run on SQLite and PostgreSQL.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
