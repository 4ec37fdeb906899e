package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usina-leads/internal/model"
)

func TestServerCreateDefaults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	server, err := f.servers.Create(ctx, admin, model.ServerInput{Name: ptr("S1"), TaxCoefficient: ptr(1.21)})
	require.NoError(t, err)
	assert.True(t, server.IsActive)
	assert.Nil(t, server.Description)

	_, err = f.servers.Create(ctx, admin, model.ServerInput{Name: ptr("S2")})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = f.servers.Create(ctx, admin, model.ServerInput{Name: ptr("S2"), TaxCoefficient: ptr(-1.0)})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = f.servers.Create(ctx, viewer, model.ServerInput{Name: ptr("S2"), TaxCoefficient: ptr(1.0)})
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestServerToggleAndUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	server, err := f.servers.Create(ctx, admin, model.ServerInput{Name: ptr("S1"), TaxCoefficient: ptr(1.0)})
	require.NoError(t, err)

	toggled, err := f.servers.SetActive(ctx, admin, server.ID.String(), false)
	require.NoError(t, err)
	assert.False(t, toggled.IsActive)

	updated, err := f.servers.Update(ctx, admin, server.ID.String(), model.ServerInput{Description: ptr("principal")})
	require.NoError(t, err)
	assert.Equal(t, "principal", *updated.Description)
	assert.False(t, updated.IsActive)

	_, err = f.servers.SetActive(ctx, admin, uuid.NewString(), true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestServerAdLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	server, err := f.servers.Create(ctx, admin, model.ServerInput{Name: ptr("S1"), TaxCoefficient: ptr(1.0)})
	require.NoError(t, err)
	ad, err := f.advertising.Ads.Create(ctx, admin, model.AdInput{Name: ptr("Promo")})
	require.NoError(t, err)
	api, err := f.advertising.APIs.Create(ctx, admin, model.MessagingAPIInput{Name: ptr("WA"), Token: ptr("t")})
	require.NoError(t, err)

	_, err = f.servers.ActivateAd(ctx, admin, server.ID.String(), model.ActivateAdInput{AdID: uuid.NewString(), APIID: api.ID.String()})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = f.servers.ActivateAd(ctx, admin, server.ID.String(), model.ActivateAdInput{AdID: ad.ID.String(), APIID: api.ID.String(), DailyBudget: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	serverAd, err := f.servers.ActivateAd(ctx, admin, server.ID.String(), model.ActivateAdInput{
		AdID: ad.ID.String(), APIID: api.ID.String(), DailyBudget: 20,
	})
	require.NoError(t, err)
	assert.True(t, serverAd.IsActive)

	count, err := f.servers.CountActiveAds(ctx, server.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = f.servers.UpdateMetrics(ctx, admin, serverAd.ID.String(), model.ServerAdMetrics{Leads: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = f.servers.UpdateMetrics(ctx, admin, uuid.NewString(), model.ServerAdMetrics{})
	assert.ErrorIs(t, err, ErrNotFound)

	withMetrics, err := f.servers.UpdateMetrics(ctx, admin, serverAd.ID.String(), model.ServerAdMetrics{Leads: 9, Loads: 12, Spent: 7.5})
	require.NoError(t, err)
	assert.Equal(t, int64(9), withMetrics.Leads)
	assert.Equal(t, 7.5, withMetrics.Spent)

	require.NoError(t, f.servers.DeactivateAd(ctx, admin, serverAd.ID.String()))
	ads, err := f.servers.ActiveAds(ctx, server.ID.String())
	require.NoError(t, err)
	assert.Empty(t, ads)

	assert.ErrorIs(t, f.servers.DeactivateAd(ctx, viewer, serverAd.ID.String()), ErrPermissionDenied)
	assert.ErrorIs(t, f.servers.DeactivateAd(ctx, admin, uuid.NewString()), ErrNotFound)
}
