package roster

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс чтения из БД (*sql.DB, *sql.Tx)
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}
