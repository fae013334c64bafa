// Package dbmetrics обёртка над *sql.DB, снимающая метрики запросов и connection pool
package dbmetrics

import (
	"context"
	"database/sql"
	"time"
)

// DBExecutor интерфейс исполнителя запросов к БД
// Реализуется как *sql.DB, так и обёрткой *dbmetrics.DB
type DBExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// Collector интерфейс приёмника метрик (реализуется pkg/metrics)
type Collector interface {
	ObserveDBQuery(operation string, duration time.Duration, err error)
	SetDBPoolStats(db string, open, inUse, idle int)
}

// DB обёртка над *sql.DB с метриками
type DB struct {
	db        *sql.DB
	collector Collector
	name      string
}

// DefaultPoolStatsInterval период опроса статистики connection pool
const DefaultPoolStatsInterval = 15 * time.Second

// Wrap оборачивает *sql.DB в сборщик метрик
func Wrap(db *sql.DB, collector Collector, name string) *DB {
	return &DB{db: db, collector: collector, name: name}
}

// WrapWithDefault оборачивает *sql.DB и запускает фоновый опрос статистики pool
// до закрытия stopCh
func WrapWithDefault(db *sql.DB, collector Collector, name string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, collector, name)
	go wrapped.collectPoolStats(DefaultPoolStatsInterval, stopCh)
	return wrapped
}

func (d *DB) collectPoolStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := d.db.Stats()
			d.collector.SetDBPoolStats(d.name, stats.OpenConnections, stats.InUse, stats.Idle)
		}
	}
}

// QueryRowContext выполняет запрос с одной строкой результата
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.collector.ObserveDBQuery("query_row", time.Since(start), nil)
	return row
}

// QueryContext выполняет запрос с множеством строк результата
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.collector.ObserveDBQuery("query", time.Since(start), err)
	return rows, err
}

// ExecContext выполняет запрос без результата
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	result, err := d.db.ExecContext(ctx, query, args...)
	d.collector.ObserveDBQuery("exec", time.Since(start), err)
	return result, err
}

var _ DBExecutor = (*DB)(nil)
var _ DBExecutor = (*sql.DB)(nil)
