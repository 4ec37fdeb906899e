package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usina-leads/internal/model"
)

func TestFranchisePhonesOrdered(t *testing.T) {
	database := newTestDB(t)
	repo := NewFranchiseRepository(database)
	ctx := context.Background()

	franchise := model.Franchise{Name: "Norte", PasswordHash: "hash", CVU: "123", Owner: "Ana", Link: "https://n"}
	require.NoError(t, repo.Create(ctx, &franchise))

	for _, p := range []struct {
		number string
		order  int
	}{{"333", 2}, {"111", 0}, {"222", 1}} {
		require.NoError(t, repo.CreatePhone(ctx, &model.FranchisePhone{
			FranchiseID: franchise.ID, Number: p.number, Order: p.order, Status: model.StatusActive,
		}))
	}
	require.NoError(t, repo.CreatePhone(ctx, &model.FranchisePhone{FranchiseID: uuid.New(), Number: "999"}))

	phones, err := repo.Phones(ctx, franchise.ID)
	require.NoError(t, err)
	require.Len(t, phones, 3)
	assert.Equal(t, []string{"111", "222", "333"}, []string{phones[0].Number, phones[1].Number, phones[2].Number})

	phone, err := repo.Phone(ctx, phones[0].ID)
	require.NoError(t, err)
	assert.Equal(t, franchise.ID, phone.FranchiseID)
}

func TestFranchiseCRUD(t *testing.T) {
	database := newTestDB(t)
	repo := NewFranchiseRepository(database)
	ctx := context.Background()

	sur := model.Franchise{Name: "Sur", PasswordHash: "h"}
	require.NoError(t, repo.Create(ctx, &sur))
	require.NoError(t, repo.Create(ctx, &model.Franchise{Name: "Norte", PasswordHash: "h"}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Norte", list[0].Name)

	sur.Alias = "sur.alias"
	require.NoError(t, repo.Update(ctx, &sur))
	got, err := repo.Get(ctx, sur.ID)
	require.NoError(t, err)
	assert.Equal(t, "sur.alias", got.Alias)
	assert.Equal(t, "h", got.PasswordHash)

	exists, err := repo.Exists(ctx, sur.ID)
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.Exists(ctx, uuid.New())
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRoleOf(t *testing.T) {
	database := newTestDB(t)
	repo := NewRoleRepository(database)
	ctx := context.Background()

	admin := uuid.New()
	require.NoError(t, database.Create(&model.UserRole{ID: uuid.New(), UserID: admin, Role: "viewer"}).Error)
	require.NoError(t, database.Create(&model.UserRole{ID: uuid.New(), UserID: admin, Role: "admin"}).Error)
	manager := uuid.New()
	require.NoError(t, database.Create(&model.UserRole{ID: uuid.New(), UserID: manager, Role: "manager"}).Error)

	role, err := repo.RoleOf(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, role)

	role, err = repo.RoleOf(ctx, manager)
	require.NoError(t, err)
	assert.Equal(t, model.RoleManager, role)

	role, err = repo.RoleOf(ctx, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, model.RoleViewer, role)
}
