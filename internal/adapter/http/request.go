package httpadapter

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"banner-rotator/internal/adapter/render"
	"banner-rotator/internal/security"
)

// maxPageSize bounds the content accepted by the render endpoint.
const maxPageSize = 1 << 20

// handleSelectBanner returns one banner picked at random among the eligible
// banners of the location query parameter. If no banner is eligible it
// returns HTTP 204 No Content. Internal errors result in HTTP 500.
func (h *Handler) handleSelectBanner(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")
	b, err := h.banners.SelectBanner(r.Context(), location)
	if err != nil {
		h.internalError(w, r, "select banner error", err)
		return
	}
	noCache(w)
	if b == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.writeJSON(w, r, http.StatusOK, newBannerResponse(*b))
}

// handlePlacement renders the rotation fragment of a location followed by
// the click tracking script. An empty location renders nothing.
func (h *Handler) handlePlacement(w http.ResponseWriter, r *http.Request) {
	page := h.newPage(r)
	fragment, err := page.Placement(r.Context(), r.URL.Query().Get("location"))
	if err != nil {
		h.internalError(w, r, "render placement error", err)
		return
	}
	footer, err := page.Footer()
	if err != nil {
		h.internalError(w, r, "render footer error", err)
		return
	}
	h.writeHTML(w, r, page.Detected(), string(fragment)+string(footer))
}

// handleRender expands banner shortcodes in the posted page content.
func (h *Handler) handleRender(w http.ResponseWriter, r *http.Request) {
	content, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPageSize))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeError(w, r, http.StatusRequestEntityTooLarge, "content too large")
			return
		}
		h.writeError(w, r, http.StatusBadRequest, "invalid body")
		return
	}
	page := h.newPage(r)
	out, err := page.Render(r.Context(), string(content))
	if err != nil {
		h.internalError(w, r, "render page error", err)
		return
	}
	h.writeHTML(w, r, page.Detected(), out)
}

func (h *Handler) newPage(r *http.Request) *render.Page {
	return h.renderer.NewPage(h.banners, h.nonces, security.ActionBannerClick, h.log(r))
}

func (h *Handler) writeHTML(w http.ResponseWriter, r *http.Request, banners bool, body string) {
	if banners {
		h.log(r).Debug("disabling cache for page with banners")
		noCache(w)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := io.WriteString(w, body); err != nil {
		h.log(r).Error("write page error", slog.Any("error", err))
	}
}
