package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"usina-leads/internal/db"
	"usina-leads/internal/model"
)

const registerDistributionProcedure = "register_lead_distribution"

// DistributionRepository reads lead distribution rows, from the reporting view
// when the store has it and from the base tables otherwise.
type DistributionRepository struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewDistributionRepository(database *gorm.DB, log zerolog.Logger) *DistributionRepository {
	return &DistributionRepository{
		db:  database,
		log: log.With().Str("repository", "distribution").Logger(),
	}
}

type distributionRow struct {
	FranchiseID   *string
	FranchiseName *string
	ServerID      *string
	ServerName    *string
	TotalLeads    *int64
	Date          model.Date
}

// Fetch returns the records matching query. No matching rows yields an empty
// slice and a nil error.
func (r *DistributionRepository) Fetch(ctx context.Context, query model.DistributionQuery) ([]model.LeadDistributionRecord, error) {
	var rows []distributionRow

	err := withViewFallback(r.log, db.FranchiseDistributionView,
		func() error {
			rows = nil
			return r.fromView(ctx, query, &rows)
		},
		func() error {
			rows = nil
			return r.fromBaseTables(ctx, query, &rows)
		},
	)
	if err != nil {
		return nil, err
	}

	return toRecords(rows), nil
}

func (r *DistributionRepository) fromView(ctx context.Context, query model.DistributionQuery, rows *[]distributionRow) error {
	q := r.db.WithContext(ctx).
		Table(db.FranchiseDistributionView + " v").
		Select("v.franchise_id, v.franchise_name, v.server_id, v.server_name, v.total_leads, v.date")

	q = applyDistributionFilter(q, "v", query)

	return q.Order("v.date, v.franchise_name, v.server_name").Scan(rows).Error
}

func (r *DistributionRepository) fromBaseTables(ctx context.Context, query model.DistributionQuery, rows *[]distributionRow) error {
	q := r.db.WithContext(ctx).
		Table("lead_distributions ld").
		Select(`ld.franchise_id,
			f.name AS franchise_name,
			ld.server_id,
			s.name AS server_name,
			SUM(ld.leads_count) AS total_leads,
			ld.date`).
		Joins("LEFT JOIN franchises f ON f.id = ld.franchise_id").
		Joins("LEFT JOIN servers s ON s.id = ld.server_id")

	q = applyDistributionFilter(q, "ld", query)

	return q.Group("ld.franchise_id, f.name, ld.server_id, s.name, ld.date").
		Order("ld.date, f.name, s.name").
		Scan(rows).Error
}

func applyDistributionFilter(q *gorm.DB, alias string, query model.DistributionQuery) *gorm.DB {
	if !query.AllServers() {
		q = q.Where(alias+".server_id = ?", query.ServerID)
	}
	if id := strings.TrimSpace(query.FranchiseID); id != "" {
		q = q.Where(alias+".franchise_id = ?", id)
	}
	if query.Date != nil && !query.Date.IsZero() {
		q = q.Where(alias+".date = ?", *query.Date)
	}
	return q
}

func toRecords(rows []distributionRow) []model.LeadDistributionRecord {
	records := make([]model.LeadDistributionRecord, 0, len(rows))
	for _, row := range rows {
		record := model.LeadDistributionRecord{
			FranchiseName: row.FranchiseName,
			ServerName:    row.ServerName,
			Date:          row.Date,
		}
		if row.FranchiseID != nil {
			record.FranchiseID = *row.FranchiseID
		}
		if row.ServerID != nil {
			record.ServerID = *row.ServerID
		}
		if row.TotalLeads != nil {
			record.LeadCount = *row.TotalLeads
		}
		records = append(records, record)
	}
	return records
}

// Register stores a distribution entry and returns it as stored. An entry
// without a date goes through the register_lead_distribution procedure when the
// store provides it, so its date is the store's current date. An explicit date
// is always written as given.
func (r *DistributionRepository) Register(ctx context.Context, entry model.LeadDistribution) (*model.LeadDistribution, error) {
	insert := func() error {
		if entry.Date.IsZero() {
			entry.Date = model.Today()
		}
		now := time.Now().UTC()
		entry.ID = uuid.New()
		entry.CreatedAt = now
		entry.UpdatedAt = now
		return r.db.WithContext(ctx).Create(&entry).Error
	}

	if !entry.Date.IsZero() {
		if err := insert(); err != nil {
			return nil, transportError(err)
		}
		return &entry, nil
	}

	var procedureID uuid.UUID
	err := withProcedureFallback(r.log, registerDistributionProcedure,
		func() error {
			var raw string
			err := r.db.WithContext(ctx).
				Raw("SELECT register_lead_distribution(?, ?, ?, ?)",
					entry.FranchiseID, entry.FranchisePhoneID, entry.LeadsCount, entry.ServerID).
				Scan(&raw).Error
			if err != nil {
				return err
			}
			procedureID, err = uuid.Parse(raw)
			return err
		},
		insert,
	)
	if err != nil {
		return nil, err
	}
	if procedureID == uuid.Nil {
		return &entry, nil
	}

	// the procedure picks the date, so read back what it stored
	return getByID[model.LeadDistribution](ctx, r.db, procedureID)
}

// Count reports how many raw distribution entries match query.
func (r *DistributionRepository) Count(ctx context.Context, query model.DistributionQuery) (int64, error) {
	var count int64
	q := r.db.WithContext(ctx).Table("lead_distributions ld")
	q = applyDistributionFilter(q, "ld", query)
	if err := q.Count(&count).Error; err != nil {
		return 0, transportError(err)
	}
	return count, nil
}
