package metrics

import (
	"database/sql"
	"strings"
	"time"
)

// UpdateDBStats publishes a pool snapshot. Wait figures in sql.DBStats are
// cumulative, so only their growth since the last snapshot is added.
func (m *Metrics) UpdateDBStats(stats sql.DBStats) {
	m.safeExecute("UpdateDBStats", func() {
		m.DBConnectionsOpen.Set(float64(stats.OpenConnections))
		m.DBConnectionsInUse.Set(float64(stats.InUse))
		m.DBConnectionsIdle.Set(float64(stats.Idle))
		m.DBConnectionsMax.Set(float64(stats.MaxOpenConnections))

		waited := stats.WaitDuration.Seconds()

		m.statsMu.Lock()
		defer m.statsMu.Unlock()

		if stats.WaitCount > m.lastWaitCount {
			m.DBConnectionWaitTotal.Add(float64(stats.WaitCount - m.lastWaitCount))
		}
		if waited > m.lastWaitDuration {
			m.DBConnectionWaitDuration.Add(waited - m.lastWaitDuration)
		}
		m.lastWaitCount, m.lastWaitDuration = stats.WaitCount, waited
	})
}

// RecordDBQuery observes one statement. operation is lower-cased so
// "SELECT" and "select" share a series.
func (m *Metrics) RecordDBQuery(operation, table string, duration time.Duration, err error) {
	m.safeExecute("RecordDBQuery", func() {
		op := strings.ToLower(operation)
		m.DBQueryDuration.WithLabelValues(op, table).Observe(duration.Seconds())
		if err != nil {
			m.DBQueryErrors.WithLabelValues(op, table).Inc()
		}
	})
}
