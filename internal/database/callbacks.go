package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"
)

const startTimeKey = "metrics:query_start_time"

// MetricsRecorder is an interface for recording database metrics
type MetricsRecorder interface {
	RecordDBQuery(operation, table string, duration time.Duration, err error)
	UpdateDBStats(stats sql.DBStats)
}

// RegisterMetricsCallbacks times every query, row scan, create, update and delete
func RegisterMetricsCallbacks(db *gorm.DB, recorder MetricsRecorder) error {
	cb := db.Callback()

	hooks := []struct {
		operation string
		anchor    string
		before    func(name string, fn func(*gorm.DB)) error
		after     func(name string, fn func(*gorm.DB)) error
	}{
		{"select", "gorm:query", cb.Query().Before("gorm:query").Register, cb.Query().After("gorm:query").Register},
		{"select", "gorm:row", cb.Row().Before("gorm:row").Register, cb.Row().After("gorm:row").Register},
		{"insert", "gorm:create", cb.Create().Before("gorm:create").Register, cb.Create().After("gorm:create").Register},
		{"update", "gorm:update", cb.Update().Before("gorm:update").Register, cb.Update().After("gorm:update").Register},
		{"delete", "gorm:delete", cb.Delete().Before("gorm:delete").Register, cb.Delete().After("gorm:delete").Register},
	}

	for _, h := range hooks {
		operation := h.operation
		if err := h.before("metrics:"+h.anchor+"_before", func(tx *gorm.DB) {
			tx.InstanceSet(startTimeKey, time.Now())
		}); err != nil {
			return err
		}
		if err := h.after("metrics:"+h.anchor+"_after", func(tx *gorm.DB) {
			startTime, ok := tx.InstanceGet(startTimeKey)
			if !ok {
				return
			}
			table := tx.Statement.Table
			if table == "" {
				table = "unknown"
			}
			queryErr := tx.Error
			if errors.Is(queryErr, gorm.ErrRecordNotFound) {
				queryErr = nil
			}
			recorder.RecordDBQuery(operation, table, time.Since(startTime.(time.Time)), queryErr)
		}); err != nil {
			return err
		}
	}
	return nil
}

// StartDBStatsCollector samples pool statistics until ctx is cancelled
func StartDBStatsCollector(ctx context.Context, db *gorm.DB, recorder MetricsRecorder, interval time.Duration) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		recorder.UpdateDBStats(sqlDB.Stats())
		for {
			select {
			case <-ticker.C:
				recorder.UpdateDBStats(sqlDB.Stats())
			case <-ctx.Done():
				return
			}
		}
	}()
}
