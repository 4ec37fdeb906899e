package service

import (
	"context"
	"errors"
	"strings"

	"usina-leads/internal/metrics"
	"usina-leads/internal/model"
	"usina-leads/internal/report"
	"usina-leads/internal/repository"
)

// DistributionReport is one rendered lead distribution: the filter it was
// computed for, the pivot and its tabular form.
type DistributionReport struct {
	Query model.DistributionQuery `json:"query"`
	Pivot report.Pivot            `json:"pivot"`
	Table report.Table            `json:"table"`
}

type DistributionService struct {
	distributions *repository.DistributionRepository
	franchises    *repository.FranchiseRepository
	servers       *repository.ServerRepository
}

func NewDistributionService(distributions *repository.DistributionRepository, franchises *repository.FranchiseRepository, servers *repository.ServerRepository) *DistributionService {
	return &DistributionService{
		distributions: distributions,
		franchises:    franchises,
		servers:       servers,
	}
}

// Records returns the raw rows for query after normalising it.
func (s *DistributionService) Records(ctx context.Context, query model.DistributionQuery) ([]model.LeadDistributionRecord, error) {
	normalized, err := normalizeQuery(query)
	if err != nil {
		return nil, err
	}
	return s.distributions.Fetch(ctx, normalized)
}

// Report builds the franchise by server pivot for query.
func (s *DistributionService) Report(ctx context.Context, query model.DistributionQuery) (*DistributionReport, error) {
	return s.report(ctx, query, report.ByFranchise)
}

// ServerReport is the franchise by server pivot restricted to one server.
func (s *DistributionService) ServerReport(ctx context.Context, serverID string, date *model.Date) (*DistributionReport, error) {
	id, err := parseID(serverID, "server id")
	if err != nil {
		return nil, err
	}
	if _, err := s.servers.Get(ctx, id); err != nil {
		return nil, storeError(err)
	}

	query, err := normalizeQuery(model.DistributionQuery{ServerID: id.String(), Date: date})
	if err != nil {
		return nil, err
	}
	count, err := s.distributions.Count(ctx, query)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return render(query, nil, report.ByFranchise), nil
	}
	return s.report(ctx, query, report.ByFranchise)
}

// FranchiseReport lays out one franchise's leads with servers as rows.
func (s *DistributionService) FranchiseReport(ctx context.Context, franchiseID string, date *model.Date) (*DistributionReport, error) {
	id, err := parseID(franchiseID, "franchise id")
	if err != nil {
		return nil, err
	}
	if _, err := s.franchises.Get(ctx, id); err != nil {
		return nil, storeError(err)
	}
	query := model.DistributionQuery{ServerID: model.AllServers, FranchiseID: id.String(), Date: date}
	return s.report(ctx, query, report.ByServer)
}

func (s *DistributionService) report(ctx context.Context, query model.DistributionQuery, axis report.Axis) (*DistributionReport, error) {
	normalized, err := normalizeQuery(query)
	if err != nil {
		return nil, err
	}

	records, err := s.distributions.Fetch(ctx, normalized)
	if err != nil {
		return nil, err
	}
	return render(normalized, records, axis), nil
}

func render(query model.DistributionQuery, records []model.LeadDistributionRecord, axis report.Axis) *DistributionReport {
	pivot := report.AggregateBy(records, axis)
	metrics.DistributionReports.WithLabelValues(string(axis)).Inc()

	return &DistributionReport{
		Query: query,
		Pivot: pivot,
		Table: pivot.Table(),
	}
}

func normalizeQuery(query model.DistributionQuery) (model.DistributionQuery, error) {
	serverID := strings.TrimSpace(query.ServerID)
	if serverID == "" || strings.EqualFold(serverID, model.AllServers) {
		query.ServerID = model.AllServers
	} else {
		id, err := parseID(serverID, "server_id")
		if err != nil {
			return query, err
		}
		query.ServerID = id.String()
	}

	if franchiseID := strings.TrimSpace(query.FranchiseID); franchiseID != "" {
		id, err := parseID(franchiseID, "franchise_id")
		if err != nil {
			return query, err
		}
		query.FranchiseID = id.String()
	}

	if query.Date != nil && query.Date.IsZero() {
		query.Date = nil
	}
	return query, nil
}

// Register records that a franchise phone received leads from a server.
func (s *DistributionService) Register(ctx context.Context, principal model.Principal, input model.RegisterDistributionInput) (*model.LeadDistribution, error) {
	if err := requireWriter(principal); err != nil {
		return nil, err
	}

	franchiseID, err := parseID(input.FranchiseID, "franchise_id")
	if err != nil {
		return nil, err
	}
	phoneID, err := parseID(input.FranchisePhoneID, "franchise_phone_id")
	if err != nil {
		return nil, err
	}
	serverID, err := parseID(input.ServerID, "server_id")
	if err != nil {
		return nil, err
	}
	if input.LeadsCount < 0 {
		return nil, invalid("leads_count must not be negative")
	}

	franchiseExists, err := s.franchises.Exists(ctx, franchiseID)
	if err != nil {
		return nil, err
	}
	if !franchiseExists {
		return nil, invalid("franchise_id does not exist")
	}
	phone, err := s.franchises.Phone(ctx, phoneID)
	if err != nil {
		return nil, referenceError(err, "franchise_phone_id")
	}
	if phone.FranchiseID != franchiseID {
		return nil, invalid("franchise_phone_id does not belong to the franchise")
	}
	serverExists, err := s.servers.Exists(ctx, serverID)
	if err != nil {
		return nil, err
	}
	if !serverExists {
		return nil, invalid("server_id does not exist")
	}

	entry := model.LeadDistribution{
		FranchiseID:      franchiseID,
		FranchisePhoneID: phoneID,
		ServerID:         serverID,
		LeadsCount:       input.LeadsCount,
	}
	if input.Date != nil {
		entry.Date = *input.Date
	}

	return s.distributions.Register(ctx, entry)
}

// referenceError reports a dangling reference in a write request as bad input.
func referenceError(err error, field string) error {
	if errors.Is(storeError(err), ErrNotFound) {
		return invalid("%s does not exist", field)
	}
	return err
}
