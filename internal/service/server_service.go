package service

import (
	"context"

	"github.com/google/uuid"

	"usina-leads/internal/model"
	"usina-leads/internal/repository"
)

type ServerService struct {
	servers     *repository.ServerRepository
	advertising *repository.AdvertisingRepository
}

func NewServerService(servers *repository.ServerRepository, advertising *repository.AdvertisingRepository) *ServerService {
	return &ServerService{servers: servers, advertising: advertising}
}

func (s *ServerService) List(ctx context.Context) ([]model.Server, error) {
	return s.servers.List(ctx)
}

func (s *ServerService) Get(ctx context.Context, id string) (*model.Server, error) {
	serverID, err := parseID(id, "server id")
	if err != nil {
		return nil, err
	}
	server, err := s.servers.Get(ctx, serverID)
	if err != nil {
		return nil, storeError(err)
	}
	return server, nil
}

func (s *ServerService) Create(ctx context.Context, principal model.Principal, input model.ServerInput) (*model.Server, error) {
	if err := requireWriter(principal); err != nil {
		return nil, err
	}

	name, err := requiredText(input.Name, "name")
	if err != nil {
		return nil, err
	}
	if input.TaxCoefficient == nil {
		return nil, invalid("tax_coefficient is required")
	}

	server := &model.Server{
		ID:          uuid.New(),
		Name:        name,
		Description: optionalText(input.Description),
		IsActive:    true,
	}
	if err := applyServerInput(server, input); err != nil {
		return nil, err
	}
	if err := s.servers.Create(ctx, server); err != nil {
		return nil, err
	}
	return server, nil
}

func (s *ServerService) Update(ctx context.Context, principal model.Principal, id string, input model.ServerInput) (*model.Server, error) {
	if err := requireWriter(principal); err != nil {
		return nil, err
	}
	server, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name, err := requiredText(input.Name, "name")
		if err != nil {
			return nil, err
		}
		server.Name = name
	}
	if input.Description != nil {
		server.Description = optionalText(input.Description)
	}
	if err := applyServerInput(server, input); err != nil {
		return nil, err
	}
	if err := s.servers.Update(ctx, server); err != nil {
		return nil, err
	}
	return server, nil
}

func applyServerInput(server *model.Server, input model.ServerInput) error {
	if input.TaxCoefficient != nil {
		if *input.TaxCoefficient < 0 {
			return invalid("tax_coefficient must not be negative")
		}
		server.TaxCoefficient = *input.TaxCoefficient
	}
	if input.IsActive != nil {
		server.IsActive = *input.IsActive
	}
	return nil
}

// SetActive switches a server on or off.
func (s *ServerService) SetActive(ctx context.Context, principal model.Principal, id string, active bool) (*model.Server, error) {
	if err := requireWriter(principal); err != nil {
		return nil, err
	}
	serverID, err := parseID(id, "server id")
	if err != nil {
		return nil, err
	}
	if err := s.servers.SetActive(ctx, serverID, active); err != nil {
		return nil, storeError(err)
	}
	server, err := s.servers.Get(ctx, serverID)
	if err != nil {
		return nil, storeError(err)
	}
	return server, nil
}

func (s *ServerService) ActiveAds(ctx context.Context, id string) ([]model.ActiveServerAd, error) {
	server, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.servers.ActiveAds(ctx, server.ID)
}

func (s *ServerService) CountActiveAds(ctx context.Context, id string) (int64, error) {
	server, err := s.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	return s.servers.CountActiveAds(ctx, server.ID)
}

// ActivateAd starts running an ad on a server through a messaging API.
func (s *ServerService) ActivateAd(ctx context.Context, principal model.Principal, id string, input model.ActivateAdInput) (*model.ServerAd, error) {
	if err := requireWriter(principal); err != nil {
		return nil, err
	}
	server, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	adID, err := parseID(input.AdID, "ad_id")
	if err != nil {
		return nil, err
	}
	apiID, err := parseID(input.APIID, "api_id")
	if err != nil {
		return nil, err
	}
	if input.DailyBudget < 0 {
		return nil, invalid("daily_budget must not be negative")
	}

	if ok, err := repository.Exists[model.Ad](ctx, s.advertising, adID); err != nil {
		return nil, err
	} else if !ok {
		return nil, invalid("ad_id does not exist")
	}
	if ok, err := repository.Exists[model.MessagingAPI](ctx, s.advertising, apiID); err != nil {
		return nil, err
	} else if !ok {
		return nil, invalid("api_id does not exist")
	}

	serverAdID, err := s.servers.ActivateAd(ctx, model.ServerAd{
		ServerID:    server.ID,
		AdID:        adID,
		APIID:       apiID,
		DailyBudget: input.DailyBudget,
	})
	if err != nil {
		return nil, err
	}
	serverAd, err := s.servers.ServerAd(ctx, serverAdID)
	if err != nil {
		return nil, storeError(err)
	}
	return serverAd, nil
}

func (s *ServerService) UpdateMetrics(ctx context.Context, principal model.Principal, serverAdID string, metrics model.ServerAdMetrics) (*model.ServerAd, error) {
	if err := requireWriter(principal); err != nil {
		return nil, err
	}
	id, err := parseID(serverAdID, "server ad id")
	if err != nil {
		return nil, err
	}
	if metrics.Leads < 0 || metrics.Loads < 0 || metrics.Spent < 0 {
		return nil, invalid("leads, loads and spent must not be negative")
	}
	if _, err := s.servers.ServerAd(ctx, id); err != nil {
		return nil, storeError(err)
	}

	if err := s.servers.UpdateMetrics(ctx, id, metrics); err != nil {
		return nil, err
	}
	serverAd, err := s.servers.ServerAd(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	return serverAd, nil
}

func (s *ServerService) DeactivateAd(ctx context.Context, principal model.Principal, serverAdID string) error {
	if err := requireWriter(principal); err != nil {
		return err
	}
	id, err := parseID(serverAdID, "server ad id")
	if err != nil {
		return err
	}
	return storeError(s.servers.DeactivateAd(ctx, id))
}
