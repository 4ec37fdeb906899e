package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Wallet struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `json:"name"`
	AccountNumber string    `json:"account_number"`
	Balance       float64   `json:"balance"`
	Currency      string    `json:"currency"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Wallet) TableName() string { return "wallets" }

type WalletSummary struct {
	Wallet
	PortfolioCount int64 `json:"portfolio_count"`
}

type Portfolio struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string     `json:"name"`
	AccountID  *string    `json:"account_id"`
	SpendLimit *float64   `json:"spend_limit"`
	Status     string     `json:"status"`
	WalletID   *uuid.UUID `gorm:"type:uuid" json:"wallet_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (Portfolio) TableName() string { return "portfolios" }

type PortfolioDetails struct {
	Portfolio
	BusinessManagerCount int64   `json:"business_manager_count"`
	TotalSpend           float64 `json:"total_spend"`
}

type BusinessManager struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string     `json:"name"`
	AccountID   *string    `json:"account_id"`
	Status      string     `json:"status"`
	PortfolioID *uuid.UUID `gorm:"type:uuid" json:"portfolio_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (BusinessManager) TableName() string { return "business_managers" }

type BusinessManagerDetails struct {
	BusinessManager
	ActiveCampaigns int64 `json:"active_campaigns"`
}

type Campaign struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name              string     `json:"name"`
	Objective         *string    `json:"objective"`
	Status            string     `json:"status"`
	BusinessManagerID *uuid.UUID `gorm:"type:uuid" json:"business_manager_id"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func (Campaign) TableName() string { return "campaigns" }

type AdSet struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string     `json:"name"`
	Budget     *float64   `json:"budget"`
	Status     string     `json:"status"`
	CampaignID *uuid.UUID `gorm:"type:uuid" json:"campaign_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (AdSet) TableName() string { return "ad_sets" }

type Ad struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string     `json:"name"`
	CreativeType *string    `json:"creative_type"`
	CreativeURL  *string    `gorm:"column:creative_url" json:"creative_url"`
	Status       string     `json:"status"`
	AdSetID      *uuid.UUID `gorm:"type:uuid" json:"ad_set_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Ad) TableName() string { return "ads" }

type AdHierarchy struct {
	AdID                  uuid.UUID  `json:"ad_id"`
	AdName                *string    `json:"ad_name"`
	AdStatus              *string    `json:"ad_status"`
	AdSetID               *uuid.UUID `json:"ad_set_id"`
	AdSetName             *string    `json:"ad_set_name"`
	AdSetStatus           *string    `json:"ad_set_status"`
	CampaignID            *uuid.UUID `json:"campaign_id"`
	CampaignName          *string    `json:"campaign_name"`
	CampaignStatus        *string    `json:"campaign_status"`
	BusinessManagerID     *uuid.UUID `json:"business_manager_id"`
	BusinessManagerName   *string    `json:"business_manager_name"`
	BusinessManagerStatus *string    `json:"business_manager_status"`
	PortfolioID           *uuid.UUID `json:"portfolio_id"`
	PortfolioName         *string    `json:"portfolio_name"`
	PortfolioStatus       *string    `json:"portfolio_status"`
}

type MessagingAPI struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string    `json:"name"`
	Token          string    `json:"token"`
	Phone          *string   `json:"phone"`
	MessagesPerDay int       `json:"messages_per_day"`
	MonthlyCost    float64   `json:"monthly_cost"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (MessagingAPI) TableName() string { return "apis" }

type WalletInput struct {
	Name          *string  `json:"name"`
	AccountNumber *string  `json:"account_number"`
	Balance       *float64 `json:"balance"`
	Currency      *string  `json:"currency"`
}

type PortfolioInput struct {
	Name       *string  `json:"name"`
	AccountID  *string  `json:"account_id"`
	SpendLimit *float64 `json:"spend_limit"`
	Status     *string  `json:"status"`
	WalletID   *string  `json:"wallet_id"`
}

type BusinessManagerInput struct {
	Name        *string `json:"name"`
	AccountID   *string `json:"account_id"`
	Status      *string `json:"status"`
	PortfolioID *string `json:"portfolio_id"`
}

type CampaignInput struct {
	Name              *string `json:"name"`
	Objective         *string `json:"objective"`
	Status            *string `json:"status"`
	BusinessManagerID *string `json:"business_manager_id"`
}

type AdSetInput struct {
	Name       *string  `json:"name"`
	Budget     *float64 `json:"budget"`
	Status     *string  `json:"status"`
	CampaignID *string  `json:"campaign_id"`
}

type AdInput struct {
	Name         *string `json:"name"`
	CreativeType *string `json:"creative_type"`
	CreativeURL  *string `json:"creative_url"`
	Status       *string `json:"status"`
	AdSetID      *string `json:"ad_set_id"`
}

type MessagingAPIInput struct {
	Name           *string  `json:"name"`
	Token          *string  `json:"token"`
	Phone          *string  `json:"phone"`
	MessagesPerDay *int     `json:"messages_per_day"`
	MonthlyCost    *float64 `json:"monthly_cost"`
	Status         *string  `json:"status"`
}
