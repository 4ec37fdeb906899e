package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"usina-leads/internal/model"
	"usina-leads/internal/repository"
)

const defaultCurrency = "USD"

// AdvertisingService manages the ad account catalog. Each entity gets a
// Catalog; the methods cover the aggregated reads.
type AdvertisingService struct {
	repo *repository.AdvertisingRepository

	Wallets          *Catalog[model.Wallet, model.WalletInput]
	Portfolios       *Catalog[model.Portfolio, model.PortfolioInput]
	BusinessManagers *Catalog[model.BusinessManager, model.BusinessManagerInput]
	Campaigns        *Catalog[model.Campaign, model.CampaignInput]
	AdSets           *Catalog[model.AdSet, model.AdSetInput]
	Ads              *Catalog[model.Ad, model.AdInput]
	APIs             *Catalog[model.MessagingAPI, model.MessagingAPIInput]
}

func NewAdvertisingService(repo *repository.AdvertisingRepository) *AdvertisingService {
	return &AdvertisingService{
		repo: repo,
		Wallets: &Catalog[model.Wallet, model.WalletInput]{
			repo:  repo,
			id:    func(w *model.Wallet) *uuid.UUID { return &w.ID },
			apply: applyWallet,
		},
		Portfolios: &Catalog[model.Portfolio, model.PortfolioInput]{
			repo:   repo,
			Parent: "wallet_id",
			id:     func(p *model.Portfolio) *uuid.UUID { return &p.ID },
			apply: func(ctx context.Context, p *model.Portfolio, in model.PortfolioInput, creating bool) error {
				if err := setName(&p.Name, in.Name, creating); err != nil {
					return err
				}
				if in.AccountID != nil {
					p.AccountID = optionalText(in.AccountID)
				}
				if err := nonNegative(&p.SpendLimit, in.SpendLimit, "spend_limit"); err != nil {
					return err
				}
				setStatus(&p.Status, in.Status, creating)
				return setParent[model.Wallet](ctx, repo, &p.WalletID, in.WalletID, "wallet_id")
			},
		},
		BusinessManagers: &Catalog[model.BusinessManager, model.BusinessManagerInput]{
			repo:   repo,
			Parent: "portfolio_id",
			id:     func(bm *model.BusinessManager) *uuid.UUID { return &bm.ID },
			apply: func(ctx context.Context, bm *model.BusinessManager, in model.BusinessManagerInput, creating bool) error {
				if err := setName(&bm.Name, in.Name, creating); err != nil {
					return err
				}
				if in.AccountID != nil {
					bm.AccountID = optionalText(in.AccountID)
				}
				setStatus(&bm.Status, in.Status, creating)
				return setParent[model.Portfolio](ctx, repo, &bm.PortfolioID, in.PortfolioID, "portfolio_id")
			},
		},
		Campaigns: &Catalog[model.Campaign, model.CampaignInput]{
			repo:   repo,
			Parent: "business_manager_id",
			id:     func(c *model.Campaign) *uuid.UUID { return &c.ID },
			apply: func(ctx context.Context, c *model.Campaign, in model.CampaignInput, creating bool) error {
				if err := setName(&c.Name, in.Name, creating); err != nil {
					return err
				}
				if in.Objective != nil {
					c.Objective = optionalText(in.Objective)
				}
				setStatus(&c.Status, in.Status, creating)
				return setParent[model.BusinessManager](ctx, repo, &c.BusinessManagerID, in.BusinessManagerID, "business_manager_id")
			},
		},
		AdSets: &Catalog[model.AdSet, model.AdSetInput]{
			repo:   repo,
			Parent: "campaign_id",
			id:     func(st *model.AdSet) *uuid.UUID { return &st.ID },
			apply: func(ctx context.Context, st *model.AdSet, in model.AdSetInput, creating bool) error {
				if err := setName(&st.Name, in.Name, creating); err != nil {
					return err
				}
				if err := nonNegative(&st.Budget, in.Budget, "budget"); err != nil {
					return err
				}
				setStatus(&st.Status, in.Status, creating)
				return setParent[model.Campaign](ctx, repo, &st.CampaignID, in.CampaignID, "campaign_id")
			},
		},
		Ads: &Catalog[model.Ad, model.AdInput]{
			repo:   repo,
			Parent: "ad_set_id",
			id:     func(a *model.Ad) *uuid.UUID { return &a.ID },
			apply: func(ctx context.Context, a *model.Ad, in model.AdInput, creating bool) error {
				if err := setName(&a.Name, in.Name, creating); err != nil {
					return err
				}
				if in.CreativeType != nil {
					a.CreativeType = optionalText(in.CreativeType)
				}
				if in.CreativeURL != nil {
					a.CreativeURL = optionalText(in.CreativeURL)
				}
				setStatus(&a.Status, in.Status, creating)
				return setParent[model.AdSet](ctx, repo, &a.AdSetID, in.AdSetID, "ad_set_id")
			},
		},
		APIs: &Catalog[model.MessagingAPI, model.MessagingAPIInput]{
			repo:  repo,
			id:    func(a *model.MessagingAPI) *uuid.UUID { return &a.ID },
			apply: applyMessagingAPI,
		},
	}
}

func applyWallet(_ context.Context, w *model.Wallet, in model.WalletInput, creating bool) error {
	if err := setName(&w.Name, in.Name, creating); err != nil {
		return err
	}
	if in.AccountNumber != nil {
		w.AccountNumber = strings.TrimSpace(*in.AccountNumber)
	}
	if in.Balance != nil {
		w.Balance = *in.Balance
	}
	switch {
	case in.Currency != nil && strings.TrimSpace(*in.Currency) != "":
		w.Currency = strings.ToUpper(strings.TrimSpace(*in.Currency))
	case creating:
		w.Currency = defaultCurrency
	}
	return nil
}

func applyMessagingAPI(_ context.Context, a *model.MessagingAPI, in model.MessagingAPIInput, creating bool) error {
	if err := setName(&a.Name, in.Name, creating); err != nil {
		return err
	}
	if creating || in.Token != nil {
		token, err := requiredText(in.Token, "token")
		if err != nil {
			return err
		}
		a.Token = token
	}
	if in.Phone != nil {
		a.Phone = optionalText(in.Phone)
	}
	if in.MessagesPerDay != nil {
		if *in.MessagesPerDay < 0 {
			return invalid("messages_per_day must not be negative")
		}
		a.MessagesPerDay = *in.MessagesPerDay
	}
	if in.MonthlyCost != nil {
		if *in.MonthlyCost < 0 {
			return invalid("monthly_cost must not be negative")
		}
		a.MonthlyCost = *in.MonthlyCost
	}
	setStatus(&a.Status, in.Status, creating)
	return nil
}

// WalletSummaries lists wallets with their portfolio counts.
func (s *AdvertisingService) WalletSummaries(ctx context.Context) ([]model.WalletSummary, error) {
	return s.repo.WalletSummaries(ctx)
}

func (s *AdvertisingService) PortfolioDetails(ctx context.Context, id string) (*model.PortfolioDetails, error) {
	portfolio, err := s.Portfolios.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	count, err := s.repo.CountBusinessManagers(ctx, portfolio.ID)
	if err != nil {
		return nil, err
	}
	spend, err := s.repo.PortfolioSpend(ctx, portfolio.ID)
	if err != nil {
		return nil, err
	}
	return &model.PortfolioDetails{
		Portfolio:            *portfolio,
		BusinessManagerCount: count,
		TotalSpend:           spend,
	}, nil
}

func (s *AdvertisingService) BusinessManagerDetails(ctx context.Context, id string) (*model.BusinessManagerDetails, error) {
	bm, err := s.BusinessManagers.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	active, err := s.repo.CountActiveCampaigns(ctx, bm.ID)
	if err != nil {
		return nil, err
	}
	return &model.BusinessManagerDetails{BusinessManager: *bm, ActiveCampaigns: active}, nil
}

func (s *AdvertisingService) AdsWithHierarchy(ctx context.Context) ([]model.AdHierarchy, error) {
	return s.repo.AdsWithHierarchy(ctx)
}
