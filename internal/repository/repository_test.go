package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"nc-news-api/internal/database"
	"nc-news-api/internal/seed"
)

// setupSeededDB opens a single-connection in-memory SQLite database loaded with the test dataset
func setupSeededDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.New(database.Config{
		Driver:       database.DriverSQLite,
		DSN:          "file::memory:?_foreign_keys=on",
		MaxOpenConns: 1,
	})
	require.NoError(t, err, "failed to open database")
	t.Cleanup(func() { _ = database.Close(db) })

	data, err := seed.Load(seed.DatasetTest)
	require.NoError(t, err)
	require.NoError(t, seed.Seed(context.Background(), db, data, zap.NewNop()))
	return db
}
