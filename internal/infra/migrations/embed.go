// Package migrations embeds the SQL migration files so they can be applied
// through the goose programmatic API at server bootstrap.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
