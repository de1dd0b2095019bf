package repository

import (
	"context"

	"github.com/0Selene/DRManagerProject-Complete/internal/db"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	CreateRecord(ctx context.Context, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entity any, opts db.QueryOpts) error
	UpdateBy(ctx context.Context, model any, column string, value any, fields map[string]any) error
	CountBy(ctx context.Context, model any, conds map[string]any) (int64, error)
	CountDistinct(ctx context.Context, model any, column string) (int64, error)
}
