package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Banner statuses. Only published banners take part in selection.
const (
	StatusPublish = "publish"
	StatusDraft   = "draft"
)

// KnownLocations lists the placement keys offered to editors when filtering
// banners by type.
var KnownLocations = []string{
	"Home Page - Standard Ad",
	"Home Page - Platinum Sponsor",
	"Interior Page",
}

// Banner represents a promotional unit shown at a placement. A banner with a
// non-zero Price is a paid banner and has its impressions and clicks tracked.
type Banner struct {
	ID          int64
	Title       string
	URL         string
	HTMLSnippet string // raw markup replacing the standard layout when set
	ImageURL    string
	Location    string
	Description string
	Status      string
	Active      bool
	StartAt     *time.Time
	StopAt      *time.Time
	Price       decimal.NullDecimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasPrice reports whether statistics tracking applies to the banner.
func (b Banner) HasPrice() bool {
	return b.Price.Valid && !b.Price.Decimal.IsZero()
}

// LiveAt reports whether now falls inside the banner's validity window. Open
// ends of the window never exclude the banner.
func (b Banner) LiveAt(now time.Time) bool {
	if b.StartAt != nil && b.StartAt.After(now) {
		return false
	}
	if b.StopAt != nil && b.StopAt.Before(now) {
		return false
	}
	return true
}

// Selectable reports whether the banner may be shown at now.
func (b Banner) Selectable(now time.Time) bool {
	return b.Status == StatusPublish && b.Active && b.LiveAt(now)
}
