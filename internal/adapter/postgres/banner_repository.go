package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"banner-rotator/internal/core/domain"
	"banner-rotator/internal/core/port"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var bannerColumns = []string{
	"id",
	"title",
	"url",
	"html_snippet",
	"image_url",
	"location",
	"description",
	"status",
	"active",
	"start_at",
	"stop_at",
	"price::text",
	"created_at",
	"updated_at",
}

// BannerRepository implements port.BannerRepository on a pgx connection pool for
// PostgreSQL.
type BannerRepository struct {
	pool DB
}

// NewBannerRepository returns a new repository instance.
func NewBannerRepository(pool DB) *BannerRepository {
	return &BannerRepository{pool: pool}
}

// ListActive returns published, active banners at location (any location
// when empty).
func (r *BannerRepository) ListActive(ctx context.Context, location string) ([]domain.Banner, error) {
	qb := psql.Select(bannerColumns...).
		From("banners").
		Where(sq.Eq{"status": domain.StatusPublish, "active": true}).
		OrderBy("id")
	if location != "" {
		qb = qb.Where(sq.Eq{"location": location})
	}
	return r.query(ctx, qb)
}

// FindBanners returns banners matching filter, newest first.
func (r *BannerRepository) FindBanners(ctx context.Context, filter port.BannerFilter) ([]domain.Banner, error) {
	qb := psql.Select(bannerColumns...).
		From("banners").
		OrderBy("created_at DESC", "id DESC")
	if filter.Location != "" {
		qb = qb.Where(sq.Eq{"location": filter.Location})
	}
	if filter.Status != "" {
		qb = qb.Where(sq.Eq{"status": filter.Status})
	}
	return r.query(ctx, qb)
}

// GetBanner returns a banner by id.
func (r *BannerRepository) GetBanner(ctx context.Context, id int64) (*domain.Banner, error) {
	query, args, err := psql.Select(bannerColumns...).
		From("banners").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}
	b, err := scanBanner(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateBanner inserts b and fills its generated fields.
func (r *BannerRepository) CreateBanner(ctx context.Context, b *domain.Banner) error {
	err := r.pool.QueryRow(ctx, `
        INSERT INTO banners
            (title, url, html_snippet, image_url, location, description, status, active, start_at, stop_at, price)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11::text::numeric)
        RETURNING id, created_at, updated_at`,
		b.Title, b.URL, b.HTMLSnippet, b.ImageURL, b.Location, b.Description,
		b.Status, b.Active, b.StartAt, b.StopAt, priceArg(b.Price),
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert banner: %w", err)
	}
	return nil
}

// UpdateBanner overwrites the editable fields of b.
func (r *BannerRepository) UpdateBanner(ctx context.Context, b *domain.Banner) error {
	err := r.pool.QueryRow(ctx, `
        UPDATE banners SET
            title = $2, url = $3, html_snippet = $4, image_url = $5, location = $6,
            description = $7, status = $8, active = $9, start_at = $10, stop_at = $11,
            price = $12::text::numeric, updated_at = now()
        WHERE id = $1
        RETURNING created_at, updated_at`,
		b.ID, b.Title, b.URL, b.HTMLSnippet, b.ImageURL, b.Location, b.Description,
		b.Status, b.Active, b.StartAt, b.StopAt, priceArg(b.Price),
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return port.ErrBannerNotFound
	}
	if err != nil {
		return fmt.Errorf("update banner %d: %w", b.ID, err)
	}
	return nil
}

func (r *BannerRepository) query(ctx context.Context, qb sq.SelectBuilder) ([]domain.Banner, error) {
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Banner, error) {
		return scanBanner(row)
	})
}

func scanBanner(row pgx.Row) (domain.Banner, error) {
	var (
		b     domain.Banner
		price *string
	)
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.URL,
		&b.HTMLSnippet,
		&b.ImageURL,
		&b.Location,
		&b.Description,
		&b.Status,
		&b.Active,
		&b.StartAt,
		&b.StopAt,
		&price,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return b, err
	}
	if price != nil {
		d, err := decimal.NewFromString(*price)
		if err != nil {
			return b, fmt.Errorf("banner %d price %q: %w", b.ID, *price, err)
		}
		b.Price = decimal.NewNullDecimal(d)
	}
	return b, nil
}

// priceArg passes the price as text so NULL survives and numeric precision
// is kept.
func priceArg(p decimal.NullDecimal) *string {
	if !p.Valid {
		return nil
	}
	s := p.Decimal.String()
	return &s
}
