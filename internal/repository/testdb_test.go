package repository

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"usina-leads/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.AutoMigrate(
		&model.Franchise{},
		&model.FranchisePhone{},
		&model.Server{},
		&model.LeadDistribution{},
		&model.ServerAd{},
		&model.UserRole{},
		&model.Wallet{},
		&model.Portfolio{},
		&model.BusinessManager{},
		&model.Campaign{},
		&model.AdSet{},
		&model.Ad{},
		&model.MessagingAPI{},
	))

	t.Cleanup(func() {
		if sqlDB, err := database.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return database
}

func nopLogger() zerolog.Logger {
	return zerolog.Nop()
}

func seedFranchise(t *testing.T, database *gorm.DB, name string) model.Franchise {
	t.Helper()
	f := model.Franchise{ID: uuid.New(), Name: name, PasswordHash: "x", CVU: "0000", Owner: "owner", Link: "https://example.com"}
	require.NoError(t, database.Create(&f).Error)
	return f
}

func seedServer(t *testing.T, database *gorm.DB, name string) model.Server {
	t.Helper()
	s := model.Server{ID: uuid.New(), Name: name, TaxCoefficient: 1, IsActive: true}
	require.NoError(t, database.Create(&s).Error)
	return s
}

func seedDistribution(t *testing.T, database *gorm.DB, franchiseID, serverID uuid.UUID, leads int64, date model.Date) {
	t.Helper()
	ld := model.LeadDistribution{
		ID:               uuid.New(),
		FranchiseID:      franchiseID,
		FranchisePhoneID: uuid.New(),
		LeadsCount:       leads,
		ServerID:         serverID,
		Date:             date,
	}
	require.NoError(t, database.Create(&ld).Error)
}

func mustDate(t *testing.T, value string) model.Date {
	t.Helper()
	d, err := model.ParseDate(value)
	require.NoError(t, err)
	return d
}
