package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"banner-rotator/internal/core/domain"
	"banner-rotator/internal/core/port"
	"banner-rotator/internal/core/port/mocks"
)

var fixedNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func publishedBanner(id int64, location string) domain.Banner {
	return domain.Banner{
		ID:       id,
		Title:    "Banner",
		URL:      "https://sponsor.test",
		Location: location,
		Status:   domain.StatusPublish,
		Active:   true,
		Price:    decimal.NewNullDecimal(decimal.NewFromInt(20)),
	}
}

func newTestBannerUseCase(repo port.BannerRepository, tracker port.ImpressionTracker) *BannerUseCase {
	u := NewBannerUseCase(repo, tracker, nil, nil)
	u.now = func() time.Time { return fixedNow }
	return u
}

// TestSelectBannerSkipsExpired ensures banners outside their window are never
// chosen and that the chosen banner gets an impression.
func TestSelectBannerSkipsExpired(t *testing.T) {
	repo := mocks.NewMockBannerRepository(t)
	tracker := mocks.NewMockImpressionTracker(t)

	expired := publishedBanner(1, "Interior Page")
	stop := fixedNow.Add(-time.Hour)
	expired.StopAt = &stop
	live := publishedBanner(2, "Interior Page")

	repo.EXPECT().
		ListActive(mock.Anything, "Interior Page").
		Return([]domain.Banner{expired, live}, nil)
	tracker.EXPECT().RecordImpression(mock.Anything, live).Return(nil)

	svc := newTestBannerUseCase(repo, tracker)
	for i := 0; i < 20; i++ {
		b, err := svc.SelectBanner(context.Background(), "Interior Page")
		if err != nil {
			t.Fatalf("SelectBanner error: %v", err)
		}
		if b == nil || b.ID != 2 {
			t.Fatalf("expected banner 2, got %+v", b)
		}
	}
}

func TestSelectBannerNothingEligible(t *testing.T) {
	repo := mocks.NewMockBannerRepository(t)
	tracker := mocks.NewMockImpressionTracker(t)

	future := fixedNow.Add(24 * time.Hour)
	pending := publishedBanner(1, "Interior Page")
	pending.StartAt = &future

	repo.EXPECT().
		ListActive(mock.Anything, "Interior Page").
		Return([]domain.Banner{pending}, nil)

	svc := newTestBannerUseCase(repo, tracker)
	b, err := svc.SelectBanner(context.Background(), "Interior Page")
	if err != nil {
		t.Fatalf("SelectBanner error: %v", err)
	}
	if b != nil {
		t.Fatalf("expected no banner, got %d", b.ID)
	}
}

// TestListBannersTracksEveryBanner ensures the rotation listing fires one
// impression per returned banner.
func TestListBannersTracksEveryBanner(t *testing.T) {
	repo := mocks.NewMockBannerRepository(t)
	tracker := mocks.NewMockImpressionTracker(t)

	banners := []domain.Banner{
		publishedBanner(1, "Home Page - Standard Ad"),
		publishedBanner(2, "Home Page - Standard Ad"),
		publishedBanner(3, "Home Page - Standard Ad"),
	}
	repo.EXPECT().
		ListActive(mock.Anything, "Home Page - Standard Ad").
		Return(banners, nil)

	seen := map[int64]int{}
	tracker.EXPECT().
		RecordImpression(mock.Anything, mock.AnythingOfType("domain.Banner")).
		Run(func(_ context.Context, b domain.Banner) { seen[b.ID]++ }).
		Return(nil)

	svc := newTestBannerUseCase(repo, tracker)
	got, err := svc.ListBanners(context.Background(), "Home Page - Standard Ad")
	if err != nil {
		t.Fatalf("ListBanners error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 banners, got %d", len(got))
	}
	for _, id := range []int64{1, 2, 3} {
		if seen[id] != 1 {
			t.Fatalf("banner %d: expected 1 impression, got %d", id, seen[id])
		}
	}
}

// TestImpressionFailureDoesNotFailSelection ensures tracking errors are
// logged and swallowed.
func TestImpressionFailureDoesNotFailSelection(t *testing.T) {
	repo := mocks.NewMockBannerRepository(t)
	tracker := mocks.NewMockImpressionTracker(t)

	repo.EXPECT().
		ListActive(mock.Anything, "").
		Return([]domain.Banner{publishedBanner(5, "Interior Page")}, nil)
	tracker.EXPECT().
		RecordImpression(mock.Anything, publishedBanner(5, "Interior Page")).
		Return(errors.New("db down"))

	svc := newTestBannerUseCase(repo, tracker)
	b, err := svc.SelectBanner(context.Background(), "")
	if err != nil {
		t.Fatalf("SelectBanner error: %v", err)
	}
	if b == nil || b.ID != 5 {
		t.Fatalf("expected banner 5, got %+v", b)
	}
}

func TestListActiveError(t *testing.T) {
	repo := mocks.NewMockBannerRepository(t)
	boom := errors.New("connection refused")
	repo.EXPECT().ListActive(mock.Anything, "Interior Page").Return(nil, boom)

	svc := newTestBannerUseCase(repo, nil)
	if _, err := svc.ListBanners(context.Background(), "Interior Page"); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
}

func TestGetBannerNotFound(t *testing.T) {
	repo := mocks.NewMockBannerRepository(t)
	repo.EXPECT().GetBanner(mock.Anything, int64(42)).Return(nil, nil)

	svc := newTestBannerUseCase(repo, nil)
	if _, err := svc.GetBanner(context.Background(), 42); !errors.Is(err, port.ErrBannerNotFound) {
		t.Fatalf("expected ErrBannerNotFound, got %v", err)
	}
}

func TestCreateBannerDefaults(t *testing.T) {
	repo := mocks.NewMockBannerRepository(t)
	repo.EXPECT().
		CreateBanner(mock.Anything, mock.AnythingOfType("*domain.Banner")).
		Run(func(_ context.Context, b *domain.Banner) { b.ID = 11 }).
		Return(nil)

	svc := newTestBannerUseCase(repo, nil)
	b := &domain.Banner{Title: "  Spring Sale ", Location: " Interior Page", Active: true}
	if err := svc.CreateBanner(context.Background(), b); err != nil {
		t.Fatalf("CreateBanner error: %v", err)
	}
	if b.ID != 11 || b.Status != domain.StatusPublish || b.Title != "Spring Sale" || b.Location != "Interior Page" {
		t.Fatalf("unexpected banner after create: %+v", b)
	}
}

func TestCreateBannerRejectsInvertedWindow(t *testing.T) {
	repo := mocks.NewMockBannerRepository(t)
	svc := newTestBannerUseCase(repo, nil)

	start := fixedNow
	stop := fixedNow.Add(-time.Minute)
	err := svc.CreateBanner(context.Background(), &domain.Banner{Title: "x", StartAt: &start, StopAt: &stop})
	if !errors.Is(err, port.ErrInvalidWindow) {
		t.Fatalf("expected ErrInvalidWindow, got %v", err)
	}
}

func TestUpdateMissingBanner(t *testing.T) {
	repo := mocks.NewMockBannerRepository(t)
	repo.EXPECT().GetBanner(mock.Anything, int64(9)).Return(nil, nil)

	svc := newTestBannerUseCase(repo, nil)
	err := svc.UpdateBanner(context.Background(), &domain.Banner{ID: 9, Title: "x"})
	if !errors.Is(err, port.ErrBannerNotFound) {
		t.Fatalf("expected ErrBannerNotFound, got %v", err)
	}
}
