package middleware

import (
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"pressroom-backend/pkg/common"
)

// identityHeader carries the caller identity. Authentication happens at
// the edge; this service trusts the header the gateway forwards.
const identityHeader = "X-User-ID"

// Identity copies the forwarded caller identity and request ID into the
// request context
func Identity() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if userID := r.Header.Get(identityHeader); userID != "" {
				ctx = common.WithUserID(ctx, userID)
			}
			if requestID := chimiddleware.GetReqID(ctx); requestID != "" {
				ctx = common.WithRequestID(ctx, requestID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
