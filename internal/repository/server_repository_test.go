package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"usina-leads/internal/db"
	"usina-leads/internal/metrics"
	"usina-leads/internal/model"
)

func seedAdAndAPI(t *testing.T, database *gorm.DB) (model.Ad, model.MessagingAPI) {
	t.Helper()
	ad := model.Ad{ID: uuid.New(), Name: "Promo", Status: model.StatusActive}
	require.NoError(t, database.Create(&ad).Error)
	phone := "+5491100000000"
	api := model.MessagingAPI{ID: uuid.New(), Name: "WA-1", Token: "tok", Phone: &phone, Status: model.StatusActive}
	require.NoError(t, database.Create(&api).Error)
	return ad, api
}

func TestServerActivateAdAndListActive(t *testing.T) {
	database := newTestDB(t)
	repo := NewServerRepository(database, nopLogger())
	ctx := context.Background()

	server := seedServer(t, database, "S1")
	ad, api := seedAdAndAPI(t, database)

	before := testutil.ToFloat64(metrics.ProcedureFallbacks.WithLabelValues(activateAdProcedure))
	id, err := repo.ActivateAd(ctx, model.ServerAd{ServerID: server.ID, AdID: ad.ID, APIID: api.ID, DailyBudget: 25})
	require.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ProcedureFallbacks.WithLabelValues(activateAdProcedure)))

	ads, err := repo.ActiveAds(ctx, server.ID)
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, id, ads[0].ID)
	assert.Equal(t, "Promo", *ads[0].AdName)
	assert.Equal(t, "WA-1", *ads[0].APIName)
	assert.Equal(t, "S1", *ads[0].ServerName)
	assert.Equal(t, 25.0, ads[0].DailyBudget)

	count, err := repo.CountActiveAds(ctx, server.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, repo.DeactivateAd(ctx, id))
	ads, err = repo.ActiveAds(ctx, server.ID)
	require.NoError(t, err)
	assert.Empty(t, ads)

	assert.ErrorIs(t, repo.DeactivateAd(ctx, uuid.New()), gorm.ErrRecordNotFound)
}

func TestServerActiveAdsThroughView(t *testing.T) {
	database := newTestDB(t)
	repo := NewServerRepository(database, nopLogger())
	ctx := context.Background()
	createView(t, database, db.ActiveServerAdsView)

	server := seedServer(t, database, "S1")
	other := seedServer(t, database, "S2")
	ad, api := seedAdAndAPI(t, database)
	_, err := repo.ActivateAd(ctx, model.ServerAd{ServerID: server.ID, AdID: ad.ID, APIID: api.ID, DailyBudget: 10})
	require.NoError(t, err)
	_, err = repo.ActivateAd(ctx, model.ServerAd{ServerID: other.ID, AdID: ad.ID, APIID: api.ID, DailyBudget: 10})
	require.NoError(t, err)

	before := testutil.ToFloat64(metrics.ViewFallbacks.WithLabelValues(db.ActiveServerAdsView))
	ads, err := repo.ActiveAds(ctx, server.ID)
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, server.ID, ads[0].ServerID)
	assert.Equal(t, before, testutil.ToFloat64(metrics.ViewFallbacks.WithLabelValues(db.ActiveServerAdsView)))
}

func TestServerUpdateMetrics(t *testing.T) {
	database := newTestDB(t)
	repo := NewServerRepository(database, nopLogger())
	ctx := context.Background()

	server := seedServer(t, database, "S1")
	ad, api := seedAdAndAPI(t, database)
	id, err := repo.ActivateAd(ctx, model.ServerAd{ServerID: server.ID, AdID: ad.ID, APIID: api.ID})
	require.NoError(t, err)

	require.NoError(t, repo.UpdateMetrics(ctx, id, model.ServerAdMetrics{Leads: 40, Loads: 55, Spent: 12.5}))

	stored, err := repo.ServerAd(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(40), stored.Leads)
	assert.Equal(t, int64(55), stored.Loads)
	assert.Equal(t, 12.5, stored.Spent)
}

func TestServerCRUD(t *testing.T) {
	database := newTestDB(t)
	repo := NewServerRepository(database, nopLogger())
	ctx := context.Background()

	server := model.Server{Name: "Beta", TaxCoefficient: 1.21, IsActive: true}
	require.NoError(t, repo.Create(ctx, &server))
	require.NotEqual(t, uuid.Nil, server.ID)
	require.NoError(t, repo.Create(ctx, &model.Server{Name: "Alfa", IsActive: true}))

	servers, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, servers, 2)
	assert.Equal(t, "Alfa", servers[0].Name)

	require.NoError(t, repo.SetActive(ctx, server.ID, false))
	got, err := repo.Get(ctx, server.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	got.Name = "Beta 2"
	require.NoError(t, repo.Update(ctx, got))
	got, err = repo.Get(ctx, server.ID)
	require.NoError(t, err)
	assert.Equal(t, "Beta 2", got.Name)

	_, err = repo.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, repo.SetActive(ctx, uuid.New(), true), gorm.ErrRecordNotFound)
}
