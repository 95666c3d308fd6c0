// Package postgres embeds the goose migrations of the PostgreSQL backend.
package postgres

import "embed"

//go:embed *.sql
var Migrations embed.FS
