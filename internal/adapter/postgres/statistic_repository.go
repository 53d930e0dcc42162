package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"banner-rotator/internal/core/domain"
)

const statisticSelect = `
        SELECT
            s.id,
            s.banner_id,
            s.title,
            COALESCE(b.title, ''),
            s.banner_url,
            s.impressions,
            s.clicks,
            s.ctr,
            s.price_per_click,
            s.created_at,
            s.updated_at
        FROM banner_statistics s
        LEFT JOIN banners b ON b.id = s.banner_id`

// StatisticRepository implements port.StatisticRepository on a pgx connection pool.
type StatisticRepository struct {
	pool DB
}

// NewStatisticRepository returns a new repository instance.
func NewStatisticRepository(pool DB) *StatisticRepository {
	return &StatisticRepository{pool: pool}
}

// RecordEvent creates the statistic of b on first use, locks it, applies the
// event and stores the recomputed fields. The row lock serializes concurrent
// events for the same banner.
func (r *StatisticRepository) RecordEvent(ctx context.Context, b domain.Banner, kind domain.EventKind) (_ *domain.Statistic, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	seed := domain.NewStatistic(b)
	_, err = tx.Exec(ctx, `
        INSERT INTO banner_statistics (banner_id, title, banner_url, impressions, clicks, ctr, price_per_click)
        VALUES ($1, $2, $3, 0, 0, $4, $4)
        ON CONFLICT (banner_id) DO NOTHING`,
		seed.BannerID, seed.Title, seed.BannerURL, domain.ZeroRate)
	if err != nil {
		return nil, fmt.Errorf("create statistic: %w", err)
	}

	stat, err := scanStatistic(tx.QueryRow(ctx, statisticSelect+` WHERE s.banner_id = $1 FOR UPDATE OF s`, b.ID))
	if err != nil {
		return nil, fmt.Errorf("lock statistic: %w", err)
	}

	stat.Record(kind, b.Price.Decimal)

	err = tx.QueryRow(ctx, `
        UPDATE banner_statistics
        SET impressions = $2, clicks = $3, ctr = $4, price_per_click = $5, updated_at = now()
        WHERE id = $1
        RETURNING updated_at`,
		stat.ID, stat.Impressions, stat.Clicks, stat.CTR, stat.PricePerClick,
	).Scan(&stat.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("update statistic: %w", err)
	}
	return &stat, nil
}

// GetStatistic returns the statistic of a banner.
func (r *StatisticRepository) GetStatistic(ctx context.Context, bannerID int64) (*domain.Statistic, error) {
	stat, err := scanStatistic(r.pool.QueryRow(ctx, statisticSelect+` WHERE s.banner_id = $1`, bannerID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &stat, nil
}

// ListStatistics returns all statistics ordered by title.
func (r *StatisticRepository) ListStatistics(ctx context.Context) ([]domain.Statistic, error) {
	rows, err := r.pool.Query(ctx, statisticSelect+` ORDER BY s.title ASC, s.id ASC`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Statistic, error) {
		return scanStatistic(row)
	})
}

func scanStatistic(row pgx.Row) (domain.Statistic, error) {
	var s domain.Statistic
	err := row.Scan(
		&s.ID,
		&s.BannerID,
		&s.Title,
		&s.BannerTitle,
		&s.BannerURL,
		&s.Impressions,
		&s.Clicks,
		&s.CTR,
		&s.PricePerClick,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	return s, err
}
