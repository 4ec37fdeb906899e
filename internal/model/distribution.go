package model

import (
	"time"

	"github.com/google/uuid"
)

// AllServers is the server filter value that disables server filtering.
const AllServers = "todos"

type LeadDistributionRecord struct {
	FranchiseID   string  `json:"franchise_id"`
	FranchiseName *string `json:"franchise_name"`
	ServerID      string  `json:"server_id"`
	ServerName    *string `json:"server_name"`
	LeadCount     int64   `json:"total_leads"`
	Date          Date    `json:"date"`
}

type DistributionQuery struct {
	ServerID    string `json:"server_id"`
	FranchiseID string `json:"franchise_id,omitempty"`
	Date        *Date  `json:"date,omitempty"`
}

func (q DistributionQuery) AllServers() bool {
	return q.ServerID == "" || q.ServerID == AllServers
}

type LeadDistribution struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FranchiseID      uuid.UUID `gorm:"type:uuid" json:"franchise_id"`
	FranchisePhoneID uuid.UUID `gorm:"type:uuid" json:"franchise_phone_id"`
	LeadsCount       int64     `json:"leads_count"`
	ServerID         uuid.UUID `gorm:"type:uuid" json:"server_id"`
	Date             Date      `json:"date"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (LeadDistribution) TableName() string { return "lead_distributions" }

type RegisterDistributionInput struct {
	FranchiseID      string `json:"franchise_id"`
	FranchisePhoneID string `json:"franchise_phone_id"`
	ServerID         string `json:"server_id"`
	LeadsCount       int64  `json:"leads_count"`
	Date             *Date  `json:"date,omitempty"`
}
