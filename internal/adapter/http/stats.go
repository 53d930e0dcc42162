package httpadapter

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"banner-rotator/internal/core/port"
	"banner-rotator/internal/export"
	"banner-rotator/internal/security"
)

// handleStatisticReport returns the statistics view of a banner. Banners
// without statistics get an explanatory message instead of counters.
func (h *Handler) handleStatisticReport(w http.ResponseWriter, r *http.Request) {
	id, ok := h.bannerID(w, r)
	if !ok {
		return
	}
	rep, err := h.stats.StatisticReport(r.Context(), id)
	if errors.Is(err, port.ErrBannerNotFound) {
		h.writeError(w, r, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		h.internalError(w, r, "statistic report error", err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, newReportResponse(*rep))
}

// handleExportSingle streams the statistics of one banner as CSV. The form
// must carry the export action, banner_id and a banner_stats_nonce issued to
// the caller. A banner without statistics yields 204 and no body.
func (h *Handler) handleExportSingle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid form")
		return
	}
	if r.PostFormValue("action") != security.ActionExportSingle {
		h.writeError(w, r, http.StatusBadRequest, "unknown action")
		return
	}
	if err := h.nonces.Verify(security.ActionExportSingle, subject(r.Context()), r.PostFormValue("banner_stats_nonce")); err != nil {
		h.log(r).Warn("export nonce rejected", slog.Any("error", err))
		h.writeError(w, r, http.StatusForbidden, "security check failed")
		return
	}
	id, err := strconv.ParseInt(r.PostFormValue("banner_id"), 10, 64)
	if err != nil || id <= 0 {
		h.writeError(w, r, http.StatusBadRequest, "invalid banner id")
		return
	}

	stat, err := h.stats.ExportStatistic(r.Context(), id)
	if err != nil {
		h.internalError(w, r, "export statistic error", err)
		return
	}
	if stat == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.SingleFilename(id)))
	if err := export.WriteSingle(w, *stat); err != nil {
		h.log(r).Error("write single export error", slog.Int64("banner_id", id), slog.Any("error", err))
	}
}

// handleExportAll streams every statistic as CSV, header only when there is
// nothing tracked yet.
func (h *Handler) handleExportAll(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.ExportStatistics(r.Context())
	if err != nil {
		h.internalError(w, r, "export statistics error", err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.AllFilename))
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")
	if err := export.WriteAll(w, stats); err != nil {
		h.log(r).Error("write export error", slog.Any("error", err))
	}
}
