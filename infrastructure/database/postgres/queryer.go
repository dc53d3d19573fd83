package postgres

import (
	"context"
	"database/sql"
)

// Queryer é o subconjunto somente leitura de *sql.DB usado pelos repositórios
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
