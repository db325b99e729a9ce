package service

import (
	"time"

	"buymyshop/internal/repository"

	"go.uber.org/zap"
)

// DailyReportSpec runs shortly after midnight UTC, once yesterday's
// site_metrics row is final.
const DailyReportSpec = "5 0 * * *"

// DailyMetricsReport returns the cron job that logs yesterday's
// landing-page totals.
func DailyMetricsReport(repo *repository.MetricRepository, log *zap.Logger) func() {
	return func() {
		day := repository.Day(time.Now().UTC().AddDate(0, 0, -1))
		m, err := repo.GetByDate(day)
		if err != nil {
			log.Info("daily site metrics", zap.String("date", day), zap.String("result", "no data"))
			return
		}
		log.Info("daily site metrics",
			zap.String("date", day),
			zap.Int64("visits", m.Visits),
			zap.Int64("unique_visitors", m.UniqueVisitors),
			zap.Int64("conversions", m.Conversions),
		)
	}
}
