// Package dgaintel embeds the SQL migrations applied by the migrate command.
package dgaintel

import "embed"

// Migrations holds the goose migrations under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS
