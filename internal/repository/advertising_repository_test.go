package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"usina-leads/internal/db"
	"usina-leads/internal/model"
)

type catalogChain struct {
	wallet    model.Wallet
	portfolio model.Portfolio
	bm        model.BusinessManager
	campaign  model.Campaign
	adSet     model.AdSet
	ad        model.Ad
}

func seedCatalog(t *testing.T, repo *AdvertisingRepository) catalogChain {
	t.Helper()
	ctx := context.Background()

	var c catalogChain
	c.wallet = model.Wallet{ID: uuid.New(), Name: "Main", Currency: "USD"}
	require.NoError(t, Create(ctx, repo, &c.wallet))
	c.portfolio = model.Portfolio{ID: uuid.New(), Name: "P1", Status: model.StatusActive, WalletID: &c.wallet.ID}
	require.NoError(t, Create(ctx, repo, &c.portfolio))
	c.bm = model.BusinessManager{ID: uuid.New(), Name: "BM1", Status: model.StatusActive, PortfolioID: &c.portfolio.ID}
	require.NoError(t, Create(ctx, repo, &c.bm))
	c.campaign = model.Campaign{ID: uuid.New(), Name: "C1", Status: model.StatusActive, BusinessManagerID: &c.bm.ID}
	require.NoError(t, Create(ctx, repo, &c.campaign))
	c.adSet = model.AdSet{ID: uuid.New(), Name: "AS1", Status: model.StatusActive, CampaignID: &c.campaign.ID}
	require.NoError(t, Create(ctx, repo, &c.adSet))
	c.ad = model.Ad{ID: uuid.New(), Name: "Ad1", Status: model.StatusActive, AdSetID: &c.adSet.ID}
	require.NoError(t, Create(ctx, repo, &c.ad))
	return c
}

func TestAdvertisingListByParent(t *testing.T) {
	database := newTestDB(t)
	repo := NewAdvertisingRepository(database, nopLogger())
	ctx := context.Background()
	chain := seedCatalog(t, repo)

	orphan := model.Portfolio{ID: uuid.New(), Name: "A-orphan", Status: model.StatusActive}
	require.NoError(t, Create(ctx, repo, &orphan))

	all, err := List[model.Portfolio](ctx, repo, "", nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "A-orphan", all[0].Name)

	owned, err := List[model.Portfolio](ctx, repo, "wallet_id", &chain.wallet.ID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, chain.portfolio.ID, owned[0].ID)

	count, err := repo.CountPortfolios(ctx, chain.wallet.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	summaries, err := repo.WalletSummaries(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, int64(1), summaries[0].PortfolioCount)
	assert.Equal(t, "Main", summaries[0].Name)
}

func TestAdvertisingCounts(t *testing.T) {
	database := newTestDB(t)
	repo := NewAdvertisingRepository(database, nopLogger())
	ctx := context.Background()
	chain := seedCatalog(t, repo)

	paused := model.Campaign{ID: uuid.New(), Name: "C2", Status: model.StatusInactive, BusinessManagerID: &chain.bm.ID}
	require.NoError(t, Create(ctx, repo, &paused))

	active, err := repo.CountActiveCampaigns(ctx, chain.bm.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), active)

	bms, err := repo.CountBusinessManagers(ctx, chain.portfolio.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), bms)
}

func TestAdvertisingPortfolioSpend(t *testing.T) {
	database := newTestDB(t)
	repo := NewAdvertisingRepository(database, nopLogger())
	ctx := context.Background()
	chain := seedCatalog(t, repo)

	spend, err := repo.PortfolioSpend(ctx, chain.portfolio.ID)
	require.NoError(t, err)
	assert.Zero(t, spend)

	for _, spent := range []float64{10.5, 4.5} {
		require.NoError(t, database.Create(&model.ServerAd{
			ID: uuid.New(), ServerID: uuid.New(), AdID: chain.ad.ID, APIID: uuid.New(), Spent: spent,
		}).Error)
	}
	require.NoError(t, database.Create(&model.ServerAd{
		ID: uuid.New(), ServerID: uuid.New(), AdID: uuid.New(), APIID: uuid.New(), Spent: 99,
	}).Error)

	spend, err = repo.PortfolioSpend(ctx, chain.portfolio.ID)
	require.NoError(t, err)
	assert.InDelta(t, 15.0, spend, 0.0001)
}

func TestAdvertisingHierarchy(t *testing.T) {
	for _, withView := range []bool{false, true} {
		database := newTestDB(t)
		repo := NewAdvertisingRepository(database, nopLogger())
		if withView {
			createView(t, database, db.AdsWithHierarchyView)
		}
		chain := seedCatalog(t, repo)

		ads, err := repo.AdsWithHierarchy(context.Background())
		require.NoError(t, err)
		require.Len(t, ads, 1)
		assert.Equal(t, chain.ad.ID, ads[0].AdID)
		require.NotNil(t, ads[0].PortfolioID)
		assert.Equal(t, chain.portfolio.ID, *ads[0].PortfolioID)
		assert.Equal(t, "BM1", *ads[0].BusinessManagerName)
	}
}

func TestAdvertisingSaveAndDelete(t *testing.T) {
	database := newTestDB(t)
	repo := NewAdvertisingRepository(database, nopLogger())
	ctx := context.Background()

	api := model.MessagingAPI{ID: uuid.New(), Name: "WA", Token: "t", Status: model.StatusActive}
	require.NoError(t, Create(ctx, repo, &api))

	api.MessagesPerDay = 250
	require.NoError(t, Save(ctx, repo, &api))

	got, err := Get[model.MessagingAPI](ctx, repo, api.ID)
	require.NoError(t, err)
	assert.Equal(t, 250, got.MessagesPerDay)

	exists, err := Exists[model.MessagingAPI](ctx, repo, api.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, Delete[model.MessagingAPI](ctx, repo, api.ID))
	assert.ErrorIs(t, Delete[model.MessagingAPI](ctx, repo, api.ID), gorm.ErrRecordNotFound)

	_, err = Get[model.MessagingAPI](ctx, repo, api.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
