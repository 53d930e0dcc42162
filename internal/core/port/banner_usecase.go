package port

import (
	"context"

	"banner-rotator/internal/core/domain"
)

// BannerUseCase exposes selection and banner management. This interface is
// the primary port into the banner side of the application.
type BannerUseCase interface {
	// SelectBanner picks one eligible banner at location uniformly at random
	// and records an impression for it. It returns nil when nothing is
	// eligible.
	SelectBanner(ctx context.Context, location string) (*domain.Banner, error)

	// ListBanners returns every eligible banner at location in random order
	// and records an impression for each one.
	ListBanners(ctx context.Context, location string) ([]domain.Banner, error)

	GetBanner(ctx context.Context, id int64) (*domain.Banner, error)
	FindBanners(ctx context.Context, filter BannerFilter) ([]domain.Banner, error)
	CreateBanner(ctx context.Context, b *domain.Banner) error
	UpdateBanner(ctx context.Context, b *domain.Banner) error
}

// ImpressionTracker receives impression events fired by selection. The
// banner is the one selection already loaded, so no lookup happens per
// impression.
type ImpressionTracker interface {
	RecordImpression(ctx context.Context, b domain.Banner) error
}

// StatisticsUseCase tracks events for paid banners and serves reports.
type StatisticsUseCase interface {
	ImpressionTracker

	// TrackImpression records an impression for the banner with id bannerID.
	// Unknown and unpriced banners are ignored.
	TrackImpression(ctx context.Context, bannerID int64) error

	// TrackClick records a click. It returns ErrBannerNotFound for unknown
	// banners and ErrNotPaidBanner, without mutating anything, for banners
	// without a price.
	TrackClick(ctx context.Context, bannerID int64) (*domain.Statistic, error)

	// StatisticReport returns the admin view of a banner's statistics.
	StatisticReport(ctx context.Context, bannerID int64) (*StatisticReport, error)

	// ExportStatistic returns the statistic of one banner joined with the
	// banner's current title, or nil when none exists.
	ExportStatistic(ctx context.Context, bannerID int64) (*domain.Statistic, error)

	// ExportStatistics returns all statistics ordered by title.
	ExportStatistics(ctx context.Context) ([]domain.Statistic, error)
}

// StatisticReport is the admin view of a banner's statistics. When Statistic
// is nil, Message explains why nothing is tracked yet.
type StatisticReport struct {
	BannerID      int64
	BannerTitle   string
	Statistic     *domain.Statistic
	Impressions   string
	Clicks        string
	CTR           string
	PricePerClick string
	Message       string
}
