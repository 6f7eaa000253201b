package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jerdirlson/api-task/internal/cachestore"
	"gorm.io/gorm"
)

// gormBacking is the relational half of a cache-aside store: plain gorm CRUD
// over one model, with gorm's not-found mapped to cachestore.ErrNotFound.
type gormBacking[T any] struct {
	db *gorm.DB
}

// NewGormBacking adapts a gorm connection to the cachestore.Backing contract
// for the model T.
func NewGormBacking[T any](db *gorm.DB) cachestore.Backing[T] {
	return &gormBacking[T]{db: db}
}

func (b *gormBacking[T]) FindAll(ctx context.Context) ([]T, error) {
	var records []T
	if err := b.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch records: %w", err)
	}
	return records, nil
}

func (b *gormBacking[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	var record T
	err := b.db.WithContext(ctx).First(&record, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, cachestore.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch record %d: %w", id, err)
	}
	return &record, nil
}

func (b *gormBacking[T]) Insert(ctx context.Context, rec *T) error {
	if err := b.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}
	return nil
}

func (b *gormBacking[T]) Update(ctx context.Context, id int64, rec *T) error {
	// Select("*") forces zero-valued fields to be written too, matching a
	// full-row UPDATE. The primary key stays untouched.
	res := b.db.WithContext(ctx).Model(rec).Where("id = ?", id).
		Select("*").Omit("id").Updates(rec)
	if res.Error != nil {
		return fmt.Errorf("failed to update record %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return cachestore.ErrNotFound
	}
	return nil
}

func (b *gormBacking[T]) Delete(ctx context.Context, id int64) error {
	res := b.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete record %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return cachestore.ErrNotFound
	}
	return nil
}
