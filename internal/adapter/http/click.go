package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"banner-rotator/internal/core/port"
	"banner-rotator/internal/security"
)

// Click failure reasons reported to the tracking script.
const (
	reasonInvalidRequest = "Invalid request"
	reasonNotPaid        = "Not a paid banner"
	reasonNotFound       = "Banner not found"
	reasonUpdateFailed   = "Failed to update clicks"
)

// handleBannerClick records a click posted by the tracking script. The form
// carries banner_id and a banner_click nonce. A missing id or an invalid
// nonce is rejected before anything is read or written.
func (h *Handler) handleBannerClick(w http.ResponseWriter, r *http.Request) {
	logger := h.log(r)
	if err := r.ParseForm(); err != nil {
		h.rejectClick(w, r, http.StatusBadRequest, "invalid_request", reasonInvalidRequest)
		return
	}

	rawID := r.PostFormValue("banner_id")
	if rawID == "" {
		logger.Warn("invalid click request: banner id missing")
		h.rejectClick(w, r, http.StatusBadRequest, "invalid_request", reasonInvalidRequest)
		return
	}
	if err := h.nonces.Verify(security.ActionBannerClick, "", r.PostFormValue("nonce")); err != nil {
		logger.Warn("invalid click request: nonce rejected", slog.Any("error", err))
		h.rejectClick(w, r, http.StatusForbidden, "invalid_nonce", reasonInvalidRequest)
		return
	}
	bannerID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || bannerID <= 0 {
		logger.Warn("invalid click request: bad banner id", slog.String("banner_id", rawID))
		h.rejectClick(w, r, http.StatusBadRequest, "invalid_request", reasonInvalidRequest)
		return
	}

	stat, err := h.stats.TrackClick(r.Context(), bannerID)
	switch {
	case errors.Is(err, port.ErrNotPaidBanner):
		logger.Info("click on unpaid banner ignored", slog.Int64("banner_id", bannerID))
		h.rejectClick(w, r, http.StatusUnprocessableEntity, "not_paid", reasonNotPaid)
		return
	case errors.Is(err, port.ErrBannerNotFound):
		h.rejectClick(w, r, http.StatusNotFound, "not_found", reasonNotFound)
		return
	case err != nil:
		logger.Error("failed to update clicks", slog.Int64("banner_id", bannerID), slog.Any("error", err))
		h.rejectClick(w, r, http.StatusInternalServerError, "update_failed", reasonUpdateFailed)
		return
	}

	h.ajaxSuccess(w, r, clickResponse{
		Message: "Click tracked successfully",
		Clicks:  stat.Clicks,
		StatID:  stat.ID,
	})
}

func (h *Handler) rejectClick(w http.ResponseWriter, r *http.Request, status int, metric, reason string) {
	h.metrics.ClickRejected(metric)
	h.ajaxError(w, r, status, reason)
}

// handleClickNonce issues a banner_click nonce for pages that embed the
// tracking script themselves.
func (h *Handler) handleClickNonce(w http.ResponseWriter, r *http.Request) {
	nonce, err := h.nonces.Issue(security.ActionBannerClick, "")
	if err != nil {
		h.internalError(w, r, "issue click nonce error", err)
		return
	}
	noCache(w)
	h.writeJSON(w, r, http.StatusOK, nonceResponse{Nonce: nonce})
}
