package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/ulule/limiter/v3"

	"banner-rotator/internal/adapter/render"
	"banner-rotator/internal/core/port"
	"banner-rotator/internal/metrics"
	"banner-rotator/internal/security"
)

// Nonces issues and verifies action nonces.
type Nonces interface {
	Issue(action, subject string) (string, error)
	Verify(action, subject, token string) error
}

// TokenParser validates admin bearer tokens.
type TokenParser interface {
	Parse(raw string) (*security.Claims, error)
}

// Deps are the collaborators of a Handler. Metrics may be nil.
type Deps struct {
	Banners  port.BannerUseCase
	Stats    port.StatisticsUseCase
	Renderer *render.Renderer
	Nonces   Nonces
	Tokens   TokenParser
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
	// ClickRate limits click tracking per client IP. A zero limit disables
	// rate limiting.
	ClickRate limiter.Rate
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. Public routes serve banners to pages and collect clicks, admin routes
// require a bearer token granting manage_options.
type Handler struct {
	banners  port.BannerUseCase
	stats    port.StatisticsUseCase
	renderer *render.Renderer
	nonces   Nonces
	tokens   TokenParser
	metrics  *metrics.Metrics
	logger   *slog.Logger
	validate *validator.Validate
	router   chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(deps Deps) *Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{
		banners:  deps.Banners,
		stats:    deps.Stats,
		renderer: deps.Renderer,
		nonces:   deps.Nonces,
		tokens:   deps.Tokens,
		metrics:  deps.Metrics,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Handle("/metrics", h.metrics.Handler())
	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServerFS(render.Assets)))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/banners/random", h.handleSelectBanner)
		r.Get("/banners/placement", h.handlePlacement)
		r.Post("/render", h.handleRender)
		r.Get("/nonce/click", h.handleClickNonce)
		r.With(h.clickLimiter(deps.ClickRate)).Post("/banners/click", h.handleBannerClick)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(h.requireCapability(security.CapManageOptions))
		r.Get("/banner-types", h.handleBannerTypes)
		r.Get("/banners", h.handleListBanners)
		r.Post("/banners", h.handleCreateBanner)
		r.Get("/banners/{id}", h.handleGetBanner)
		r.Put("/banners/{id}", h.handleUpdateBanner)
		r.Get("/banners/{id}/statistics", h.handleStatisticReport)
		r.Get("/nonce", h.handleAdminNonce)
		r.Post("/statistics/export", h.handleExportSingle)
		r.Get("/statistics/export/all", h.handleExportAll)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// log returns the handler logger tagged with the request id.
func (h *Handler) log(r *http.Request) *slog.Logger {
	if id := middleware.GetReqID(r.Context()); id != "" {
		return h.logger.With(slog.String("request_id", id))
	}
	return h.logger
}

// noCache marks a response as never cacheable. Pages embedding banners are
// different on every request.
func noCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")
}
