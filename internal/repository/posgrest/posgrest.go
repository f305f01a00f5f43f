package posgrest

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when an operation targets a record that does not
// exist.
var ErrNotFound = errors.New("record not found")

// repository is a generic GORM-based repository implementation.
// It provides the persistence operations the pipeline needs for any entity
// type T: inserts, sorted/limited listing, keyed find-one-and-update, bulk
// deletion and counting.
type repository[T interface{}] struct {
	db *gorm.DB
}

// New creates a new generic repository instance for type T.
// The repository uses the provided GORM database connection for all operations.
func New[T interface{}](db *gorm.DB) *repository[T] {
	return &repository[T]{
		db,
	}
}

// Create inserts a new entity into the database.
func (r *repository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(&entity).Error
}

// ListSorted retrieves up to limit entities ordered by the given expression,
// e.g. "created_at desc". A limit of zero or less means no limit.
func (r *repository[T]) ListSorted(ctx context.Context, orderBy string, limit int) (*[]T, error) {
	var entities []T
	q := r.db.WithContext(ctx).Order(orderBy)
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&entities).Error; err != nil {
		return nil, err
	}
	return &entities, nil
}

// FindOneAndUpdate applies the given column updates to the first entity
// matching the query and returns the updated record. Returns ErrNotFound
// when no entity matches.
func (r *repository[T]) FindOneAndUpdate(ctx context.Context, query string, value interface{}, updates map[string]interface{}) (*T, error) {
	var entity T
	res := r.db.WithContext(ctx).Model(&entity).Where(query, value).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	if err := r.db.WithContext(ctx).Where(query, value).First(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// DeleteAll removes every entity of type T and reports how many were deleted.
func (r *repository[T]) DeleteAll(ctx context.Context) (int64, error) {
	var entity T
	res := r.db.WithContext(ctx).Where("1 = 1").Delete(&entity)
	return res.RowsAffected, res.Error
}

// Count returns the total number of entities of type T.
func (r *repository[T]) Count(ctx context.Context) (int64, error) {
	var entity T
	var count int64
	err := r.db.WithContext(ctx).Model(&entity).Count(&count).Error
	return count, err
}

// CountBy returns the number of entities matching the query.
func (r *repository[T]) CountBy(ctx context.Context, query string, value interface{}) (int64, error) {
	var entity T
	var count int64
	err := r.db.WithContext(ctx).Model(&entity).Where(query, value).Count(&count).Error
	return count, err
}

// Average returns the average of a numeric column over all entities, or zero
// when the table is empty.
func (r *repository[T]) Average(ctx context.Context, column string) (float64, error) {
	var entity T
	var avg float64
	err := r.db.WithContext(ctx).Model(&entity).
		Select("COALESCE(AVG(" + column + "), 0)").
		Scan(&avg).Error
	return avg, err
}
