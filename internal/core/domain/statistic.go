package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ZeroRate is the initial value of the derived statistic fields.
const ZeroRate = "0.00"

// EventKind identifies a tracked banner event.
type EventKind string

const (
	EventImpression EventKind = "impression"
	EventClick      EventKind = "click"
)

// Statistic accumulates impressions and clicks for one paid banner. CTR and
// PricePerClick are two-decimal strings derived from the counters.
type Statistic struct {
	ID            int64
	BannerID      int64
	Title         string
	BannerTitle   string // current title of the banner, filled on joins
	BannerURL     string
	Impressions   int64
	Clicks        int64
	CTR           string
	PricePerClick string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewStatistic returns the zero statistic created on a banner's first event.
func NewStatistic(b Banner) Statistic {
	return Statistic{
		BannerID:      b.ID,
		Title:         b.Title + " Statistics",
		BannerTitle:   b.Title,
		BannerURL:     b.URL,
		CTR:           ZeroRate,
		PricePerClick: ZeroRate,
	}
}

// Record increments the counter for kind and recomputes the derived fields
// using the banner's current price.
func (s *Statistic) Record(kind EventKind, price decimal.Decimal) {
	switch kind {
	case EventImpression:
		s.Impressions++
	case EventClick:
		s.Clicks++
	}
	s.Recalculate(price)
}

// Recalculate refreshes CTR when there are impressions and PricePerClick when
// there are clicks and a positive price. A field whose precondition fails
// keeps its previous value.
func (s *Statistic) Recalculate(price decimal.Decimal) {
	if s.Impressions > 0 {
		s.CTR = ClickThroughRate(s.Clicks, s.Impressions)
	}
	if s.Clicks > 0 && price.IsPositive() {
		s.PricePerClick = price.Div(decimal.NewFromInt(s.Clicks)).StringFixed(2)
	}
}

// ClickThroughRate returns clicks/impressions*100 with two decimals.
func ClickThroughRate(clicks, impressions int64) string {
	if impressions <= 0 {
		return ZeroRate
	}
	return decimal.NewFromInt(clicks).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(impressions)).
		StringFixed(2)
}
