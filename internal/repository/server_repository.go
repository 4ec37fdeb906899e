package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"usina-leads/internal/db"
	"usina-leads/internal/model"
)

const (
	activateAdProcedure    = "activate_ad_in_server"
	updateMetricsProcedure = "update_server_ad_metrics"
)

type ServerRepository struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewServerRepository(database *gorm.DB, log zerolog.Logger) *ServerRepository {
	return &ServerRepository{
		db:  database,
		log: log.With().Str("repository", "server").Logger(),
	}
}

func (r *ServerRepository) List(ctx context.Context) ([]model.Server, error) {
	return listOrdered[model.Server](ctx, r.db, "name")
}

func (r *ServerRepository) Get(ctx context.Context, id uuid.UUID) (*model.Server, error) {
	return getByID[model.Server](ctx, r.db, id)
}

func (r *ServerRepository) Create(ctx context.Context, server *model.Server) error {
	if server.ID == uuid.Nil {
		server.ID = uuid.New()
	}
	stamp(&server.CreatedAt, &server.UpdatedAt)
	return insert(ctx, r.db, server)
}

func (r *ServerRepository) Update(ctx context.Context, server *model.Server) error {
	stamp(nil, &server.UpdatedAt)
	return save(ctx, r.db, server)
}

func (r *ServerRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	count, err := countWhere[model.Server](ctx, r.db, "id = ?", id)
	return count > 0, err
}

func (r *ServerRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := r.db.WithContext(ctx).
		Model(&model.Server{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_active": active, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return transportError(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ActiveAds lists the ads currently running on a server with their ad and API
// names.
func (r *ServerRepository) ActiveAds(ctx context.Context, serverID uuid.UUID) ([]model.ActiveServerAd, error) {
	ads := make([]model.ActiveServerAd, 0)

	err := withViewFallback(r.log, db.ActiveServerAdsView,
		func() error {
			ads = ads[:0]
			return r.db.WithContext(ctx).
				Table(db.ActiveServerAdsView+" v").
				Where("v.server_id = ? AND v.is_active = ?", serverID, true).
				Order("v.created_at DESC").
				Scan(&ads).Error
		},
		func() error {
			ads = ads[:0]
			return r.db.WithContext(ctx).
				Table("server_ads sa").
				Select(`sa.id, sa.server_id, s.name AS server_name, sa.ad_id, a.name AS ad_name,
					sa.api_id, ap.name AS api_name, ap.phone AS api_phone, sa.daily_budget,
					sa.leads, sa.loads, sa.spent, sa.is_active, sa.created_at, sa.updated_at`).
				Joins("LEFT JOIN servers s ON s.id = sa.server_id").
				Joins("LEFT JOIN ads a ON a.id = sa.ad_id").
				Joins("LEFT JOIN apis ap ON ap.id = sa.api_id").
				Where("sa.server_id = ? AND sa.is_active = ?", serverID, true).
				Order("sa.created_at DESC").
				Scan(&ads).Error
		},
	)
	if err != nil {
		return nil, err
	}
	return ads, nil
}

func (r *ServerRepository) CountActiveAds(ctx context.Context, serverID uuid.UUID) (int64, error) {
	return countWhere[model.ServerAd](ctx, r.db, "server_id = ? AND is_active = ?", serverID, true)
}

func (r *ServerRepository) ServerAd(ctx context.Context, id uuid.UUID) (*model.ServerAd, error) {
	return getByID[model.ServerAd](ctx, r.db, id)
}

// ActivateAd puts an ad on a server through activate_ad_in_server, inserting
// the row itself when the procedure is not installed.
func (r *ServerRepository) ActivateAd(ctx context.Context, serverAd model.ServerAd) (uuid.UUID, error) {
	var id uuid.UUID
	err := withProcedureFallback(r.log, activateAdProcedure,
		func() error {
			var raw string
			err := r.db.WithContext(ctx).
				Raw("SELECT activate_ad_in_server(?, ?, ?, ?)",
					serverAd.AdID, serverAd.APIID, serverAd.DailyBudget, serverAd.ServerID).
				Scan(&raw).Error
			if err != nil {
				return err
			}
			id, err = uuid.Parse(raw)
			return err
		},
		func() error {
			serverAd.ID = uuid.New()
			serverAd.Leads, serverAd.Loads, serverAd.Spent = 0, 0, 0
			serverAd.IsActive = true
			stamp(&serverAd.CreatedAt, &serverAd.UpdatedAt)
			if err := r.db.WithContext(ctx).Create(&serverAd).Error; err != nil {
				return err
			}
			id = serverAd.ID
			return nil
		},
	)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *ServerRepository) UpdateMetrics(ctx context.Context, serverAdID uuid.UUID, metrics model.ServerAdMetrics) error {
	return withProcedureFallback(r.log, updateMetricsProcedure,
		func() error {
			return r.db.WithContext(ctx).
				Exec("SELECT update_server_ad_metrics(?, ?, ?, ?)",
					serverAdID, metrics.Leads, metrics.Loads, metrics.Spent).Error
		},
		func() error {
			return r.db.WithContext(ctx).
				Model(&model.ServerAd{}).
				Where("id = ?", serverAdID).
				Updates(map[string]interface{}{
					"leads":      metrics.Leads,
					"loads":      metrics.Loads,
					"spent":      metrics.Spent,
					"updated_at": time.Now().UTC(),
				}).Error
		},
	)
}

func (r *ServerRepository) DeactivateAd(ctx context.Context, serverAdID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&model.ServerAd{}).
		Where("id = ?", serverAdID).
		Updates(map[string]interface{}{"is_active": false, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return transportError(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
