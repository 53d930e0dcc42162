package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"banner-rotator/internal/core/domain"
	"banner-rotator/internal/core/port"
	"banner-rotator/internal/metrics"
)

// BannerUseCase provides business logic for banner selection and banner
// management. It implements port.BannerUseCase.
type BannerUseCase struct {
	repo    port.BannerRepository
	tracker port.ImpressionTracker
	logger  *slog.Logger
	metrics *metrics.Metrics

	// now returns the reference time for validity windows.
	now func() time.Time
}

// NewBannerUseCase creates a use case reading banners from repo and reporting
// impressions to tracker. tracker may be nil, in which case selection fires
// no impression events.
func NewBannerUseCase(repo port.BannerRepository, tracker port.ImpressionTracker, logger *slog.Logger, m *metrics.Metrics) *BannerUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &BannerUseCase{
		repo:    repo,
		tracker: tracker,
		logger:  logger,
		metrics: m,
		now:     time.Now,
	}
}

// SelectBanner picks one eligible banner uniformly at random and records an
// impression for it. A nil banner with a nil error means nothing is eligible.
func (u *BannerUseCase) SelectBanner(ctx context.Context, location string) (*domain.Banner, error) {
	eligible, err := u.eligible(ctx, location)
	if err != nil {
		return nil, err
	}
	u.metrics.Selected(location, len(eligible) > 0)
	if len(eligible) == 0 {
		return nil, nil
	}
	chosen := eligible[rand.IntN(len(eligible))]
	u.impression(ctx, chosen)
	return &chosen, nil
}

// ListBanners returns every eligible banner in random order and records an
// impression for each of them.
func (u *BannerUseCase) ListBanners(ctx context.Context, location string) ([]domain.Banner, error) {
	eligible, err := u.eligible(ctx, location)
	if err != nil {
		return nil, err
	}
	u.metrics.Selected(location, len(eligible) > 0)
	rand.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})
	for _, b := range eligible {
		u.impression(ctx, b)
	}
	return eligible, nil
}

// eligible loads active banners and drops the ones outside their window.
func (u *BannerUseCase) eligible(ctx context.Context, location string) ([]domain.Banner, error) {
	banners, err := u.repo.ListActive(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("list active banners: %w", err)
	}
	now := u.now()
	valid := make([]domain.Banner, 0, len(banners))
	for _, b := range banners {
		if !b.Selectable(now) {
			continue
		}
		valid = append(valid, b)
	}
	u.logger.DebugContext(ctx, "valid banners found",
		slog.String("location", location),
		slog.Int("count", len(valid)),
	)
	return valid, nil
}

func (u *BannerUseCase) impression(ctx context.Context, b domain.Banner) {
	if u.tracker == nil {
		return
	}
	if err := u.tracker.RecordImpression(ctx, b); err != nil {
		u.logger.ErrorContext(ctx, "track impression",
			slog.Int64("banner_id", b.ID),
			slog.Any("error", err),
		)
	}
}

// GetBanner returns a banner by id or port.ErrBannerNotFound.
func (u *BannerUseCase) GetBanner(ctx context.Context, id int64) (*domain.Banner, error) {
	b, err := u.repo.GetBanner(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, port.ErrBannerNotFound
	}
	return b, nil
}

// FindBanners lists banners for the admin screens.
func (u *BannerUseCase) FindBanners(ctx context.Context, filter port.BannerFilter) ([]domain.Banner, error) {
	return u.repo.FindBanners(ctx, filter)
}

// CreateBanner stores a new banner. An empty status defaults to published.
func (u *BannerUseCase) CreateBanner(ctx context.Context, b *domain.Banner) error {
	if err := normalize(b); err != nil {
		return err
	}
	return u.repo.CreateBanner(ctx, b)
}

// UpdateBanner overwrites an existing banner.
func (u *BannerUseCase) UpdateBanner(ctx context.Context, b *domain.Banner) error {
	if err := normalize(b); err != nil {
		return err
	}
	existing, err := u.repo.GetBanner(ctx, b.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return port.ErrBannerNotFound
	}
	return u.repo.UpdateBanner(ctx, b)
}

func normalize(b *domain.Banner) error {
	b.Title = strings.TrimSpace(b.Title)
	b.Location = strings.TrimSpace(b.Location)
	if b.Status == "" {
		b.Status = domain.StatusPublish
	}
	if b.StartAt != nil && b.StopAt != nil && b.StopAt.Before(*b.StartAt) {
		return port.ErrInvalidWindow
	}
	return nil
}
