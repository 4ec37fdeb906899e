package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"usina-leads/internal/model"
)

type FranchiseRepository struct {
	db *gorm.DB
}

func NewFranchiseRepository(database *gorm.DB) *FranchiseRepository {
	return &FranchiseRepository{db: database}
}

func (r *FranchiseRepository) List(ctx context.Context) ([]model.Franchise, error) {
	return listOrdered[model.Franchise](ctx, r.db, "name")
}

func (r *FranchiseRepository) Get(ctx context.Context, id uuid.UUID) (*model.Franchise, error) {
	return getByID[model.Franchise](ctx, r.db, id)
}

func (r *FranchiseRepository) Create(ctx context.Context, franchise *model.Franchise) error {
	if franchise.ID == uuid.Nil {
		franchise.ID = uuid.New()
	}
	stamp(&franchise.CreatedAt, &franchise.UpdatedAt)
	return insert(ctx, r.db, franchise)
}

func (r *FranchiseRepository) Update(ctx context.Context, franchise *model.Franchise) error {
	stamp(nil, &franchise.UpdatedAt)
	return save(ctx, r.db, franchise)
}

func (r *FranchiseRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	count, err := countWhere[model.Franchise](ctx, r.db, "id = ?", id)
	return count > 0, err
}

// Phones lists the franchise's phones in their configured rotation order.
func (r *FranchiseRepository) Phones(ctx context.Context, franchiseID uuid.UUID) ([]model.FranchisePhone, error) {
	return listOrdered[model.FranchisePhone](ctx, r.db, `"order", number`, "franchise_id = ?", franchiseID)
}

func (r *FranchiseRepository) Phone(ctx context.Context, id uuid.UUID) (*model.FranchisePhone, error) {
	return getByID[model.FranchisePhone](ctx, r.db, id)
}

func (r *FranchiseRepository) CreatePhone(ctx context.Context, phone *model.FranchisePhone) error {
	if phone.ID == uuid.Nil {
		phone.ID = uuid.New()
	}
	stamp(&phone.CreatedAt, &phone.UpdatedAt)
	return insert(ctx, r.db, phone)
}
