package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"usina-leads/internal/db"
	"usina-leads/internal/model"
)

// AdvertisingRepository stores the ad account catalog: wallets, portfolios,
// business managers, campaigns, ad sets, ads and messaging APIs.
type AdvertisingRepository struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewAdvertisingRepository(database *gorm.DB, log zerolog.Logger) *AdvertisingRepository {
	return &AdvertisingRepository{
		db:  database,
		log: log.With().Str("repository", "advertising").Logger(),
	}
}

// Entity is implemented by every catalog model.
type Entity interface {
	model.Wallet | model.Portfolio | model.BusinessManager | model.Campaign |
		model.AdSet | model.Ad | model.MessagingAPI
}

// List returns every row of T ordered by name. A non-empty parentColumn limits
// the rows to the given parent.
func List[T Entity](ctx context.Context, r *AdvertisingRepository, parentColumn string, parentID *uuid.UUID) ([]T, error) {
	if parentColumn != "" && parentID != nil {
		return listOrdered[T](ctx, r.db, "name", parentColumn+" = ?", *parentID)
	}
	return listOrdered[T](ctx, r.db, "name")
}

func Get[T Entity](ctx context.Context, r *AdvertisingRepository, id uuid.UUID) (*T, error) {
	return getByID[T](ctx, r.db, id)
}

func Create[T Entity](ctx context.Context, r *AdvertisingRepository, item *T) error {
	return insert(ctx, r.db, item)
}

func Save[T Entity](ctx context.Context, r *AdvertisingRepository, item *T) error {
	return save(ctx, r.db, item)
}

func Delete[T Entity](ctx context.Context, r *AdvertisingRepository, id uuid.UUID) error {
	return deleteByID[T](ctx, r.db, id)
}

func Exists[T Entity](ctx context.Context, r *AdvertisingRepository, id uuid.UUID) (bool, error) {
	count, err := countWhere[T](ctx, r.db, "id = ?", id)
	return count > 0, err
}

// WalletSummaries lists wallets with the number of portfolios funded by each.
func (r *AdvertisingRepository) WalletSummaries(ctx context.Context) ([]model.WalletSummary, error) {
	summaries := make([]model.WalletSummary, 0)
	err := r.db.WithContext(ctx).
		Table("wallets w").
		Select(`w.id, w.name, w.account_number, w.balance, w.currency, w.created_at, w.updated_at,
			COUNT(p.id) AS portfolio_count`).
		Joins("LEFT JOIN portfolios p ON p.wallet_id = w.id").
		Group("w.id, w.name, w.account_number, w.balance, w.currency, w.created_at, w.updated_at").
		Order("w.name").
		Scan(&summaries).Error
	if err != nil {
		return nil, transportError(err)
	}
	return summaries, nil
}

func (r *AdvertisingRepository) CountPortfolios(ctx context.Context, walletID uuid.UUID) (int64, error) {
	return countWhere[model.Portfolio](ctx, r.db, "wallet_id = ?", walletID)
}

func (r *AdvertisingRepository) CountBusinessManagers(ctx context.Context, portfolioID uuid.UUID) (int64, error) {
	return countWhere[model.BusinessManager](ctx, r.db, "portfolio_id = ?", portfolioID)
}

func (r *AdvertisingRepository) CountActiveCampaigns(ctx context.Context, businessManagerID uuid.UUID) (int64, error) {
	return countWhere[model.Campaign](ctx, r.db, "business_manager_id = ? AND status = ?",
		businessManagerID, model.StatusActive)
}

// PortfolioSpend sums what servers have spent on ads that belong to the
// portfolio through its business managers, campaigns and ad sets.
func (r *AdvertisingRepository) PortfolioSpend(ctx context.Context, portfolioID uuid.UUID) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Table("server_ads sa").
		Select("COALESCE(SUM(sa.spent), 0)").
		Joins("JOIN ads a ON a.id = sa.ad_id").
		Joins("JOIN ad_sets st ON st.id = a.ad_set_id").
		Joins("JOIN campaigns c ON c.id = st.campaign_id").
		Joins("JOIN business_managers bm ON bm.id = c.business_manager_id").
		Where("bm.portfolio_id = ?", portfolioID).
		Scan(&total).Error
	if err != nil {
		return 0, transportError(err)
	}
	return total, nil
}

// AdsWithHierarchy resolves every ad up to its portfolio.
func (r *AdvertisingRepository) AdsWithHierarchy(ctx context.Context) ([]model.AdHierarchy, error) {
	ads := make([]model.AdHierarchy, 0)

	err := withViewFallback(r.log, db.AdsWithHierarchyView,
		func() error {
			ads = ads[:0]
			return r.db.WithContext(ctx).
				Table(db.AdsWithHierarchyView + " v").
				Order("v.ad_name").
				Scan(&ads).Error
		},
		func() error {
			ads = ads[:0]
			return r.db.WithContext(ctx).
				Table("ads a").
				Select(`a.id AS ad_id, a.name AS ad_name, a.status AS ad_status,
					st.id AS ad_set_id, st.name AS ad_set_name, st.status AS ad_set_status,
					c.id AS campaign_id, c.name AS campaign_name, c.status AS campaign_status,
					bm.id AS business_manager_id, bm.name AS business_manager_name, bm.status AS business_manager_status,
					p.id AS portfolio_id, p.name AS portfolio_name, p.status AS portfolio_status`).
				Joins("LEFT JOIN ad_sets st ON st.id = a.ad_set_id").
				Joins("LEFT JOIN campaigns c ON c.id = st.campaign_id").
				Joins("LEFT JOIN business_managers bm ON bm.id = c.business_manager_id").
				Joins("LEFT JOIN portfolios p ON p.id = bm.portfolio_id").
				Order("a.name").
				Scan(&ads).Error
		},
	)
	if err != nil {
		return nil, err
	}
	return ads, nil
}
