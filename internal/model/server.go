package model

import (
	"time"

	"github.com/google/uuid"
)

type Server struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string    `json:"name"`
	Description    *string   `json:"description"`
	TaxCoefficient float64   `json:"tax_coefficient"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Server) TableName() string { return "servers" }

type ServerInput struct {
	Name           *string  `json:"name"`
	Description    *string  `json:"description"`
	TaxCoefficient *float64 `json:"tax_coefficient"`
	IsActive       *bool    `json:"is_active"`
}

type ServerAd struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ServerID    uuid.UUID `gorm:"type:uuid" json:"server_id"`
	AdID        uuid.UUID `gorm:"type:uuid" json:"ad_id"`
	APIID       uuid.UUID `gorm:"column:api_id;type:uuid" json:"api_id"`
	DailyBudget float64   `json:"daily_budget"`
	Leads       int64     `json:"leads"`
	Loads       int64     `json:"loads"`
	Spent       float64   `json:"spent"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (ServerAd) TableName() string { return "server_ads" }

type ActiveServerAd struct {
	ID          uuid.UUID `json:"id"`
	ServerID    uuid.UUID `json:"server_id"`
	ServerName  *string   `json:"server_name"`
	AdID        uuid.UUID `json:"ad_id"`
	AdName      *string   `json:"ad_name"`
	APIID       uuid.UUID `gorm:"column:api_id" json:"api_id"`
	APIName     *string   `gorm:"column:api_name" json:"api_name"`
	APIPhone    *string   `gorm:"column:api_phone" json:"api_phone"`
	DailyBudget float64   `json:"daily_budget"`
	Leads       int64     `json:"leads"`
	Loads       int64     `json:"loads"`
	Spent       float64   `json:"spent"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ActivateAdInput struct {
	AdID        string  `json:"ad_id"`
	APIID       string  `json:"api_id"`
	DailyBudget float64 `json:"daily_budget"`
}

type ServerAdMetrics struct {
	Leads int64   `json:"leads"`
	Loads int64   `json:"loads"`
	Spent float64 `json:"spent"`
}
