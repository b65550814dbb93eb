package migrations

import "embed"

// FS SQL миграции схемы, встроенные в бинарник
//
//go:embed *.sql
var FS embed.FS
