package model

import (
	"time"

	"github.com/google/uuid"
)

type Franchise struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `json:"name"`
	PasswordHash string    `gorm:"column:password" json:"-"`
	CVU          string    `gorm:"column:cvu" json:"cvu"`
	Alias        string    `json:"alias"`
	Owner        string    `json:"owner"`
	Link         string    `json:"link"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Franchise) TableName() string { return "franchises" }

type FranchisePhone struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FranchiseID uuid.UUID `gorm:"type:uuid" json:"franchise_id"`
	Number      string    `json:"number"`
	Order       int       `gorm:"column:order" json:"order"`
	DailyGoal   int       `json:"daily_goal"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (FranchisePhone) TableName() string { return "franchise_phones" }

type FranchiseInput struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
	CVU      *string `json:"cvu"`
	Alias    *string `json:"alias"`
	Owner    *string `json:"owner"`
	Link     *string `json:"link"`
}

type FranchisePhoneInput struct {
	Number    string  `json:"number"`
	Order     int     `json:"order"`
	DailyGoal int     `json:"daily_goal"`
	Status    *string `json:"status"`
}
