package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

// Store is the storage surface handed to repositories and to transactional
// callbacks.
type Store interface {
	MigrateTable(tbl ...any) error
	Create(ctx context.Context, record any) error
	InsertIgnore(ctx context.Context, record any) (bool, error)
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entity any) error
	FindWhere(ctx context.Context, entity any, query string, args ...any) error
	UpdateWhere(ctx context.Context, model any, values map[string]any, query string, args ...any) (int64, error)
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

func (f *PostgresDB) Create(ctx context.Context, record any) error {
	if err := f.DB.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}
	return nil
}

// InsertIgnore inserts record and reports whether a row was written. A unique
// constraint conflict is not an error: the insert is dropped and false is
// returned.
func (f *PostgresDB) InsertIgnore(ctx context.Context, record any) (bool, error) {
	tx := f.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(record)
	if tx.Error != nil {
		return false, fmt.Errorf("insert or ignore: %w", tx.Error)
	}
	return tx.RowsAffected > 0, nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) GetAllBy(ctx context.Context, column string, value any, entity any) error {
	tx := f.DB.WithContext(ctx).Where(fmt.Sprintf("%s IN ?", column), value).Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

func (f *PostgresDB) FindWhere(ctx context.Context, entity any, query string, args ...any) error {
	tx := f.DB.WithContext(ctx).Where(query, args...).Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("find records: %w", tx.Error)
	}
	return nil
}

// UpdateWhere applies values to the rows of model matching query and returns
// the number of rows changed.
func (f *PostgresDB) UpdateWhere(ctx context.Context, model any, values map[string]any, query string, args ...any) (int64, error) {
	tx := f.DB.WithContext(ctx).Model(model).Where(query, args...).Updates(values)
	if tx.Error != nil {
		return 0, fmt.Errorf("update records: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}

func (f *PostgresDB) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return f.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresDB{DB: tx})
	})
}

func (f *PostgresDB) Close() error {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}
