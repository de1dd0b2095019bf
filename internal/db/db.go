package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicate = errors.New("record already exists")

// QueryOpts narrows GetAllBy results. Zero values mean no ordering and no
// limit.
type QueryOpts struct {
	OrderBy string
	Limit   int
}

type PostgresDB struct {
	db *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		db: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.db.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *PostgresDB) CreateRecord(ctx context.Context, record any) error {
	err := f.db.WithContext(ctx).Create(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.db.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) GetAllBy(ctx context.Context, column string, value any, entity any, opts QueryOpts) error {
	tx := f.db.WithContext(ctx).Where(fmt.Sprintf("%s IN ?", column), value)
	if opts.OrderBy != "" {
		tx = tx.Order(opts.OrderBy)
	}
	if opts.Limit > 0 {
		tx = tx.Limit(opts.Limit)
	}
	if err := tx.Find(entity).Error; err != nil {
		return fmt.Errorf("getting records by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) UpdateBy(ctx context.Context, model any, column string, value any, fields map[string]any) error {
	tx := f.db.WithContext(ctx).Model(model).Where(fmt.Sprintf("%s = ?", column), value).Updates(fields)
	if tx.Error != nil {
		return fmt.Errorf("updating records by %q: %w", column, tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (f *PostgresDB) CountBy(ctx context.Context, model any, conds map[string]any) (int64, error) {
	var count int64
	tx := f.db.WithContext(ctx).Model(model)
	if len(conds) > 0 {
		tx = tx.Where(conds)
	}
	if err := tx.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("get model count: %w", err)
	}
	return count, nil
}

func (f *PostgresDB) CountDistinct(ctx context.Context, model any, column string) (int64, error) {
	var count int64
	err := f.db.WithContext(ctx).Model(model).Distinct(column).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("get distinct %q count: %w", column, err)
	}
	return count, nil
}
