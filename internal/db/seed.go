package db

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"banner-rotator/internal/core/domain"
)

// Seed inserts demo banners for every known location. Rows are keyed by id so
// running it twice is harmless.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	now := time.Now()

	id := 0
	for _, location := range domain.KnownLocations {
		for j := 1; j <= 3; j++ {
			id++
			title := fmt.Sprintf("%s #%d", location, j)
			url := fmt.Sprintf("https://example.com/sponsor/%d", id)
			image := fmt.Sprintf("https://example.com/images/banner-%d.png", id)
			description := fmt.Sprintf("<p>Demo banner %d for %s.</p>", j, location)

			var start, stop *time.Time
			switch j {
			case 2:
				s := now.AddDate(0, 0, -7)
				e := now.AddDate(0, 1, 0)
				start, stop = &s, &e
			case 3:
				// already finished, never selected
				e := now.AddDate(0, 0, -1)
				stop = &e
			}

			// every other banner is paid
			var price *string
			if id%2 == 1 {
				p := fmt.Sprintf("%d.00", 10+rand.IntN(90))
				price = &p
			}

			_, err := db.Exec(ctx, `INSERT INTO banners
    (id, title, url, image_url, location, description, status, active, start_at, stop_at, price)
VALUES ($1,$2,$3,$4,$5,$6,'publish',TRUE,$7,$8,$9::text::numeric) ON CONFLICT DO NOTHING`,
				id, title, url, image, location, description, start, stop, price)
			if err != nil {
				return fmt.Errorf("seed banner %d: %w", id, err)
			}
		}
	}

	// keep the sequence ahead of the explicit ids
	_, err := db.Exec(ctx, `SELECT setval(pg_get_serial_sequence('banners', 'id'), GREATEST((SELECT MAX(id) FROM banners), 1))`)
	return err
}
