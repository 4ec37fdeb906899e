package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Generic helpers shared by the catalog repositories. Every entity uses a uuid
// primary key named id and a name column.

func listOrdered[T any](ctx context.Context, database *gorm.DB, order string, where ...interface{}) ([]T, error) {
	items := make([]T, 0)
	q := database.WithContext(ctx).Model(new(T))
	if len(where) > 0 {
		q = q.Where(where[0], where[1:]...)
	}
	if err := q.Order(order).Find(&items).Error; err != nil {
		return nil, transportError(err)
	}
	return items, nil
}

func getByID[T any](ctx context.Context, database *gorm.DB, id uuid.UUID) (*T, error) {
	item := new(T)
	if err := database.WithContext(ctx).Where("id = ?", id).First(item).Error; err != nil {
		return nil, transportError(err)
	}
	return item, nil
}

func insert[T any](ctx context.Context, database *gorm.DB, item *T) error {
	return transportError(database.WithContext(ctx).Create(item).Error)
}

func save[T any](ctx context.Context, database *gorm.DB, item *T) error {
	return transportError(database.WithContext(ctx).Save(item).Error)
}

// deleteByID removes the row and reports gorm.ErrRecordNotFound when nothing
// matched.
func deleteByID[T any](ctx context.Context, database *gorm.DB, id uuid.UUID) error {
	result := database.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if result.Error != nil {
		return transportError(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func countWhere[T any](ctx context.Context, database *gorm.DB, query string, args ...interface{}) (int64, error) {
	var count int64
	if err := database.WithContext(ctx).Model(new(T)).Where(query, args...).Count(&count).Error; err != nil {
		return 0, transportError(err)
	}
	return count, nil
}

func stamp(created, updated *time.Time) {
	now := time.Now().UTC()
	if created != nil && created.IsZero() {
		*created = now
	}
	*updated = now
}
