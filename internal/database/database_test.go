package database_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"

	"github.com/emilythestrangee/yanews/internal/config"
	"github.com/emilythestrangee/yanews/internal/database"
	"github.com/emilythestrangee/yanews/internal/database/dbtest"
	"github.com/emilythestrangee/yanews/internal/models"
)

func TestMigrateCreatesTables(t *testing.T) {
	db := dbtest.New(t)

	for _, m := range []interface{}{&models.User{}, &models.News{}, &models.Comment{}} {
		assert.True(t, db.Migrator().HasTable(m), "missing table for %T", m)
	}
}

func TestNewSQLiteHealth(t *testing.T) {
	cfg := config.DBConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: "file:health_check?mode=memory&cache=shared",
	}

	svc, err := database.New(cfg, zap.NewNop().Sugar())
	require.NoError(t, err)

	stats := svc.Health(context.Background())
	assert.Equal(t, "up", stats["status"])
	assert.NotEmpty(t, stats["open_connections"])

	require.NoError(t, svc.Close())

	stats = svc.Health(context.Background())
	assert.Equal(t, "down", stats["status"])
	assert.Contains(t, stats["error"], "db down")
}

func TestOpenRejectsBadDSN(t *testing.T) {
	_, err := database.Open(sqlite.Open("/nonexistent/dir/x.db"), zap.NewNop().Sugar())
	assert.Error(t, err)
}
