package service

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
	"usina-leads/internal/repository"
)

var (
	admin  = model.Principal{UserID: uuid.New(), Email: "admin@usina.test", Role: model.RoleAdmin}
	viewer = model.Principal{UserID: uuid.New(), Email: "viewer@usina.test", Role: model.RoleViewer}
)

type fixture struct {
	db            *gorm.DB
	distributions *DistributionService
	franchises    *FranchiseService
	servers       *ServerService
	advertising   *AdvertisingService
}

func newFixture(t *testing.T) *fixture {
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

	log := zerolog.Nop()
	franchiseRepo := repository.NewFranchiseRepository(database)
	serverRepo := repository.NewServerRepository(database, log)
	advertisingRepo := repository.NewAdvertisingRepository(database, log)
	distributionRepo := repository.NewDistributionRepository(database, log)

	return &fixture{
		db:            database,
		distributions: NewDistributionService(distributionRepo, franchiseRepo, serverRepo),
		franchises:    NewFranchiseService(franchiseRepo),
		servers:       NewServerService(serverRepo, advertisingRepo),
		advertising:   NewAdvertisingService(advertisingRepo),
	}
}

func ptr[T any](v T) *T { return &v }
