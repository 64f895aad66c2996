package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultCollectorSchedule refreshes the totals once a minute
const DefaultCollectorSchedule = "@every 1m"

// Counter reports the current number of rows of one kind
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// BusinessMetricsCollector refreshes the article and comment gauges on a cron schedule
type BusinessMetricsCollector struct {
	articles Counter
	comments Counter
	metrics  *Metrics
	logger   *zap.Logger
	schedule string
	cron     *cron.Cron
}

// NewBusinessMetricsCollector creates a new collector. An empty schedule uses DefaultCollectorSchedule.
func NewBusinessMetricsCollector(articles, comments Counter, metrics *Metrics, logger *zap.Logger, schedule string) *BusinessMetricsCollector {
	if schedule == "" {
		schedule = DefaultCollectorSchedule
	}
	return &BusinessMetricsCollector{
		articles: articles,
		comments: comments,
		metrics:  metrics,
		logger:   logger,
		schedule: schedule,
		cron:     cron.New(),
	}
}

// Start collects once immediately, then on every tick of the schedule
func (c *BusinessMetricsCollector) Start() error {
	if _, err := c.cron.AddFunc(c.schedule, c.collect); err != nil {
		return fmt.Errorf("invalid collector schedule %q: %w", c.schedule, err)
	}
	c.collect()
	c.cron.Start()
	return nil
}

// Stop stops the schedule and waits for a running collection to finish
func (c *BusinessMetricsCollector) Stop() {
	<-c.cron.Stop().Done()
}

func (c *BusinessMetricsCollector) collect() {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Panic in business metrics collection",
				zap.Any("panic", r),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if count, err := c.articles.Count(ctx); err != nil {
		c.logger.Error("Failed to count articles", zap.Error(err))
	} else {
		c.metrics.SetArticlesTotal(count)
	}

	if count, err := c.comments.Count(ctx); err != nil {
		c.logger.Error("Failed to count comments", zap.Error(err))
	} else {
		c.metrics.SetCommentsTotal(count)
	}
}
