package httpadapter

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ulule/limiter/v3"
	limiterhttp "github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"banner-rotator/internal/core/port"
	"banner-rotator/internal/security"
)

type ctxKey int

const claimsKey ctxKey = iota

// requireCapability rejects requests without a valid bearer token granting
// capability. The claims are stored on the request context.
func (h *Handler) requireCapability(capability string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := security.BearerToken(r.Header.Get("Authorization"))
			if err != nil {
				w.Header().Set("WWW-Authenticate", `Bearer realm="admin"`)
				h.writeError(w, r, http.StatusUnauthorized, port.ErrUnauthorized.Error())
				return
			}
			claims, err := h.tokens.Parse(raw)
			if err != nil {
				h.log(r).Warn("admin token rejected", slog.Any("error", err))
				w.Header().Set("WWW-Authenticate", `Bearer realm="admin", error="invalid_token"`)
				h.writeError(w, r, http.StatusUnauthorized, port.ErrUnauthorized.Error())
				return
			}
			if !claims.Can(capability) {
				h.log(r).Warn("admin capability missing",
					slog.String("subject", claims.Subject),
					slog.String("capability", capability),
				)
				h.writeError(w, r, http.StatusForbidden, port.ErrForbidden.Error())
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
		})
	}
}

// subject returns the authenticated admin, or "" for public requests.
func subject(ctx context.Context) string {
	claims, ok := ctx.Value(claimsKey).(*security.Claims)
	if !ok {
		return ""
	}
	return claims.Subject
}

// clickLimiter throttles click tracking per client IP. RealIP runs first so
// the remote address is already the client address.
func (h *Handler) clickLimiter(rate limiter.Rate) func(http.Handler) http.Handler {
	if rate.Limit <= 0 || rate.Period <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	mw := limiterhttp.NewMiddleware(
		limiter.New(memory.NewStore(), rate),
		limiterhttp.WithLimitReachedHandler(func(w http.ResponseWriter, r *http.Request) {
			h.metrics.ClickRejected("rate_limited")
			h.ajaxError(w, r, http.StatusTooManyRequests, "Too many requests")
		}),
		limiterhttp.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			h.internalError(w, r, "click limiter error", fmt.Errorf("limiter store: %w", err))
		}),
	)
	return mw.Handler
}
