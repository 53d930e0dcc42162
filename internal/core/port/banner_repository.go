package port

import (
	"context"
	"errors"

	"banner-rotator/internal/core/domain"
)

var (
	ErrBannerNotFound = errors.New("banner not found")
	ErrNotPaidBanner  = errors.New("not a paid banner")
	ErrInvalidNonce   = errors.New("invalid nonce")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrInvalidWindow  = errors.New("stop time precedes start time")
)

// BannerFilter narrows admin banner listings. Empty fields match everything.
type BannerFilter struct {
	Location string
	Status   string
}

// BannerRepository defines the persistence layer for banners. It is an
// outbound port in hexagonal architecture.
type BannerRepository interface {
	// ListActive returns published banners flagged active, restricted to
	// location when it is non-empty. The validity window is not applied.
	ListActive(ctx context.Context, location string) ([]domain.Banner, error)
	// GetBanner returns a banner by id, or nil when it does not exist.
	GetBanner(ctx context.Context, id int64) (*domain.Banner, error)
	// FindBanners returns banners matching filter, newest first.
	FindBanners(ctx context.Context, filter BannerFilter) ([]domain.Banner, error)
	// CreateBanner inserts b and fills its id and timestamps.
	CreateBanner(ctx context.Context, b *domain.Banner) error
	// UpdateBanner overwrites the editable fields of b.
	UpdateBanner(ctx context.Context, b *domain.Banner) error
}

// StatisticRepository stores per-banner statistics. Implementations must
// serialize concurrent events for the same banner so no increment is lost.
type StatisticRepository interface {
	// RecordEvent creates the statistic for b if missing, applies the event
	// and persists the recomputed derived fields in a single transaction.
	RecordEvent(ctx context.Context, b domain.Banner, kind domain.EventKind) (*domain.Statistic, error)
	// GetStatistic returns the statistic of a banner, or nil when none exists.
	GetStatistic(ctx context.Context, bannerID int64) (*domain.Statistic, error)
	// ListStatistics returns every statistic ordered by title ascending.
	ListStatistics(ctx context.Context) ([]domain.Statistic, error)
}
