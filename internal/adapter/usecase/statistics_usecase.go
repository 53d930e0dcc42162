package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"banner-rotator/internal/core/domain"
	"banner-rotator/internal/core/port"
	"banner-rotator/internal/export"
	"banner-rotator/internal/metrics"
)

const (
	msgNoStatisticsYet = "No statistics available yet for this banner. Statistics will be generated once the banner receives impressions."
	msgUnpricedBanner  = "Statistics tracking is only available for banners with a price set."
)

// StatisticsUseCase tracks impressions and clicks of paid banners and serves
// statistics for reports and exports. It implements port.StatisticsUseCase.
type StatisticsUseCase struct {
	banners port.BannerRepository
	stats   port.StatisticRepository
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewStatisticsUseCase wires the tracker to its repositories.
func NewStatisticsUseCase(banners port.BannerRepository, stats port.StatisticRepository, logger *slog.Logger, m *metrics.Metrics) *StatisticsUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatisticsUseCase{banners: banners, stats: stats, logger: logger, metrics: m}
}

// TrackImpression records an impression for a paid banner. Unknown and
// unpriced banners are ignored.
func (u *StatisticsUseCase) TrackImpression(ctx context.Context, bannerID int64) error {
	b, err := u.banners.GetBanner(ctx, bannerID)
	if err != nil {
		return fmt.Errorf("get banner %d: %w", bannerID, err)
	}
	if b == nil {
		return nil
	}
	return u.RecordImpression(ctx, *b)
}

// RecordImpression records an impression for b when it is a paid banner.
func (u *StatisticsUseCase) RecordImpression(ctx context.Context, b domain.Banner) error {
	if !b.HasPrice() {
		return nil
	}
	if _, err := u.stats.RecordEvent(ctx, b, domain.EventImpression); err != nil {
		return fmt.Errorf("record %s for banner %d: %w", domain.EventImpression, b.ID, err)
	}
	u.metrics.Impression()
	return nil
}

// TrackClick records a click for a paid banner and returns the updated
// statistic.
func (u *StatisticsUseCase) TrackClick(ctx context.Context, bannerID int64) (*domain.Statistic, error) {
	stat, err := u.record(ctx, bannerID, domain.EventClick)
	if err != nil {
		return nil, err
	}
	u.metrics.Click()
	u.logger.DebugContext(ctx, "click tracked",
		slog.Int64("banner_id", bannerID),
		slog.Int64("stat_id", stat.ID),
		slog.Int64("clicks", stat.Clicks),
	)
	return stat, nil
}

func (u *StatisticsUseCase) record(ctx context.Context, bannerID int64, kind domain.EventKind) (*domain.Statistic, error) {
	b, err := u.banners.GetBanner(ctx, bannerID)
	if err != nil {
		return nil, fmt.Errorf("get banner %d: %w", bannerID, err)
	}
	if b == nil {
		return nil, port.ErrBannerNotFound
	}
	if !b.HasPrice() {
		return nil, port.ErrNotPaidBanner
	}
	stat, err := u.stats.RecordEvent(ctx, *b, kind)
	if err != nil {
		return nil, fmt.Errorf("record %s for banner %d: %w", kind, bannerID, err)
	}
	return stat, nil
}

// StatisticReport builds the admin view of a banner's statistics.
func (u *StatisticsUseCase) StatisticReport(ctx context.Context, bannerID int64) (*port.StatisticReport, error) {
	b, err := u.banners.GetBanner(ctx, bannerID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, port.ErrBannerNotFound
	}
	report := &port.StatisticReport{BannerID: b.ID, BannerTitle: b.Title}

	stat, err := u.stats.GetStatistic(ctx, bannerID)
	if err != nil {
		return nil, err
	}
	if stat == nil {
		report.Message = msgUnpricedBanner
		if b.HasPrice() {
			report.Message = msgNoStatisticsYet
		}
		return report, nil
	}

	report.Statistic = stat
	report.Impressions = export.FormatCount(stat.Impressions)
	report.Clicks = export.FormatCount(stat.Clicks)
	report.CTR = stat.CTR + "%"
	if b.HasPrice() {
		ppc, err := decimal.NewFromString(stat.PricePerClick)
		if err != nil {
			ppc = decimal.Zero
		}
		report.PricePerClick = "$" + export.FormatMoney(ppc)
	}
	return report, nil
}

// ExportStatistic returns the statistic of one banner with the banner's
// current title, or nil when the banner has no statistic.
func (u *StatisticsUseCase) ExportStatistic(ctx context.Context, bannerID int64) (*domain.Statistic, error) {
	stat, err := u.stats.GetStatistic(ctx, bannerID)
	if err != nil || stat == nil {
		return nil, err
	}
	if stat.BannerTitle == "" {
		b, err := u.banners.GetBanner(ctx, bannerID)
		if err != nil {
			return nil, err
		}
		if b != nil {
			stat.BannerTitle = b.Title
		}
	}
	u.metrics.Exported("single")
	return stat, nil
}

// ExportStatistics returns every statistic ordered by title.
func (u *StatisticsUseCase) ExportStatistics(ctx context.Context) ([]domain.Statistic, error) {
	stats, err := u.stats.ListStatistics(ctx)
	if err != nil {
		return nil, err
	}
	u.metrics.Exported("all")
	return stats, nil
}
