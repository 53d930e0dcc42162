package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"banner-rotator/internal/core/domain"
	"banner-rotator/internal/core/port"
	"banner-rotator/internal/security"
)

// maxPrice is the largest value the NUMERIC(12, 2) price column holds.
var maxPrice = decimal.RequireFromString("9999999999.99")

// bannerPayload is the body of banner create and update requests.
type bannerPayload struct {
	Title       string           `json:"title" validate:"required,max=255"`
	URL         string           `json:"url" validate:"required_without=HTMLSnippet,omitempty,url"`
	HTMLSnippet string           `json:"html_snippet"`
	ImageURL    string           `json:"image_url" validate:"omitempty,url"`
	Location    string           `json:"location" validate:"required,max=255"`
	Description string           `json:"description"`
	Status      string           `json:"status" validate:"omitempty,oneof=publish draft"`
	Active      *bool            `json:"active"`
	StartAt     *time.Time       `json:"start_at"`
	StopAt      *time.Time       `json:"stop_at"`
	Price       *decimal.Decimal `json:"price"`
}

func (p bannerPayload) banner(id int64) domain.Banner {
	b := domain.Banner{
		ID:          id,
		Title:       p.Title,
		URL:         p.URL,
		HTMLSnippet: p.HTMLSnippet,
		ImageURL:    p.ImageURL,
		Location:    p.Location,
		Description: p.Description,
		Status:      p.Status,
		Active:      true,
		StartAt:     p.StartAt,
		StopAt:      p.StopAt,
	}
	if p.Active != nil {
		b.Active = *p.Active
	}
	if p.Price != nil {
		b.Price = decimal.NewNullDecimal(*p.Price)
	}
	return b
}

// handleBannerTypes lists the placement keys editors filter by.
func (h *Handler) handleBannerTypes(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, domain.KnownLocations)
}

// handleListBanners lists banners, optionally narrowed by the type
// (location) and status query parameters.
func (h *Handler) handleListBanners(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := port.BannerFilter{Location: q.Get("type"), Status: q.Get("status")}
	if filter.Status != "" && filter.Status != domain.StatusPublish && filter.Status != domain.StatusDraft {
		h.writeError(w, r, http.StatusBadRequest, "invalid status")
		return
	}
	banners, err := h.banners.FindBanners(r.Context(), filter)
	if err != nil {
		h.internalError(w, r, "find banners error", err)
		return
	}
	resp := make([]bannerResponse, 0, len(banners))
	for _, b := range banners {
		resp = append(resp, newBannerResponse(b))
	}
	h.writeJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) handleGetBanner(w http.ResponseWriter, r *http.Request) {
	id, ok := h.bannerID(w, r)
	if !ok {
		return
	}
	b, err := h.banners.GetBanner(r.Context(), id)
	if errors.Is(err, port.ErrBannerNotFound) {
		h.writeError(w, r, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		h.internalError(w, r, "get banner error", err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, newBannerResponse(*b))
}

func (h *Handler) handleCreateBanner(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decodeBanner(w, r)
	if !ok {
		return
	}
	b := payload.banner(0)
	if err := h.banners.CreateBanner(r.Context(), &b); err != nil {
		h.writeSaveError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusCreated, newBannerResponse(b))
}

func (h *Handler) handleUpdateBanner(w http.ResponseWriter, r *http.Request) {
	id, ok := h.bannerID(w, r)
	if !ok {
		return
	}
	payload, ok := h.decodeBanner(w, r)
	if !ok {
		return
	}
	b := payload.banner(id)
	if err := h.banners.UpdateBanner(r.Context(), &b); err != nil {
		h.writeSaveError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, newBannerResponse(b))
}

// handleAdminNonce issues a nonce for an admin action, bound to the caller.
func (h *Handler) handleAdminNonce(w http.ResponseWriter, r *http.Request) {
	action := r.URL.Query().Get("action")
	if action != security.ActionExportSingle {
		h.writeError(w, r, http.StatusBadRequest, "unknown action")
		return
	}
	nonce, err := h.nonces.Issue(action, subject(r.Context()))
	if err != nil {
		h.internalError(w, r, "issue admin nonce error", err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, nonceResponse{Nonce: nonce})
}

func (h *Handler) decodeBanner(w http.ResponseWriter, r *http.Request) (bannerPayload, bool) {
	var p bannerPayload
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPageSize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid JSON")
		return p, false
	}
	if err := h.validate.Struct(p); err != nil {
		h.writeError(w, r, http.StatusBadRequest, validationMessage(err))
		return p, false
	}
	if p.Price != nil && p.Price.IsNegative() {
		h.writeError(w, r, http.StatusBadRequest, "price: must not be negative")
		return p, false
	}
	if p.Price != nil && p.Price.Round(2).GreaterThan(maxPrice) {
		h.writeError(w, r, http.StatusBadRequest, "price: exceeds maximum of "+maxPrice.StringFixed(2))
		return p, false
	}
	return p, true
}

func (h *Handler) writeSaveError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, port.ErrBannerNotFound):
		h.writeError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, port.ErrInvalidWindow):
		h.writeError(w, r, http.StatusBadRequest, err.Error())
	default:
		h.internalError(w, r, "save banner error", err)
	}
}

// bannerID parses the {id} path parameter, answering 400 when it is invalid.
func (h *Handler) bannerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.writeError(w, r, http.StatusBadRequest, "invalid banner id")
		return 0, false
	}
	return id, true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, strings.ToLower(fe.Field())+": failed "+fe.Tag())
	}
	return strings.Join(msgs, "; ")
}
