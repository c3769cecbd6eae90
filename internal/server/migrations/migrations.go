// Package migrations embeds the goose SQL migrations. Each supported dialect
// has its own directory with the same version numbers.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var Migrations embed.FS
