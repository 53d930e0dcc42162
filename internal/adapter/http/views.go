package httpadapter

import (
	"time"

	"banner-rotator/internal/core/domain"
	"banner-rotator/internal/core/port"
)

type bannerResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	HTMLSnippet string     `json:"html_snippet,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	Location    string     `json:"location"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	Active      bool       `json:"active"`
	StartAt     *time.Time `json:"start_at,omitempty"`
	StopAt      *time.Time `json:"stop_at,omitempty"`
	Price       *string    `json:"price,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func newBannerResponse(b domain.Banner) bannerResponse {
	resp := bannerResponse{
		ID:          b.ID,
		Title:       b.Title,
		URL:         b.URL,
		HTMLSnippet: b.HTMLSnippet,
		ImageURL:    b.ImageURL,
		Location:    b.Location,
		Description: b.Description,
		Status:      b.Status,
		Active:      b.Active,
		StartAt:     b.StartAt,
		StopAt:      b.StopAt,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
	if b.Price.Valid {
		p := b.Price.Decimal.StringFixed(2)
		resp.Price = &p
	}
	return resp
}

type clickResponse struct {
	Message string `json:"message"`
	Clicks  int64  `json:"clicks"`
	StatID  int64  `json:"stat_id"`
}

type nonceResponse struct {
	Nonce string `json:"nonce"`
}

type reportResponse struct {
	BannerID      int64      `json:"banner_id"`
	BannerTitle   string     `json:"banner_title"`
	Message       string     `json:"message,omitempty"`
	StatID        int64      `json:"stat_id,omitempty"`
	Impressions   string     `json:"impressions,omitempty"`
	Clicks        string     `json:"clicks,omitempty"`
	CTR           string     `json:"ctr,omitempty"`
	PricePerClick string     `json:"price_per_click,omitempty"`
	LastUpdated   *time.Time `json:"last_updated,omitempty"`
}

func newReportResponse(rep port.StatisticReport) reportResponse {
	resp := reportResponse{
		BannerID:      rep.BannerID,
		BannerTitle:   rep.BannerTitle,
		Message:       rep.Message,
		Impressions:   rep.Impressions,
		Clicks:        rep.Clicks,
		CTR:           rep.CTR,
		PricePerClick: rep.PricePerClick,
	}
	if rep.Statistic != nil {
		resp.StatID = rep.Statistic.ID
		updated := rep.Statistic.UpdatedAt
		resp.LastUpdated = &updated
	}
	return resp
}
