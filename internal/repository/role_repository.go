package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"usina-leads/internal/model"
)

type RoleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(database *gorm.DB) *RoleRepository {
	return &RoleRepository{db: database}
}

// RoleOf returns the application role granted to userID. Users without a
// user_roles row are viewers.
func (r *RoleRepository) RoleOf(ctx context.Context, userID uuid.UUID) (model.Role, error) {
	var row model.UserRole
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("role"). // admin sorts before manager and viewer
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.RoleViewer, nil
	}
	if err != nil {
		return "", transportError(err)
	}
	return model.ParseRole(row.Role), nil
}
