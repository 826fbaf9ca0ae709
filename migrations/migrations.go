// Package migrations embeds the SQL schema files so the binary can migrate
// the database without relying on the working directory.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
