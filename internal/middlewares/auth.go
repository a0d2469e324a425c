//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/fiton/internal/jwt"
	"github.com/sbilibin2017/fiton/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RevocationChecker reports whether a token id was revoked by logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthMiddleware validates the bearer token, rejects revoked tokens and stores the claims in the request context.
// revoked may be nil, in which case logout is client-side only.
func AuthMiddleware(tokener Tokener, revoked RevocationChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := logger.FromContext(ctx)

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				log.Errorw("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				log.Errorw("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			if revoked != nil {
				isRevoked, err := revoked.IsRevoked(ctx, claims.TokenID)
				if err != nil {
					log.Errorw("failed to check token revocation", "err", err, "jti", claims.TokenID)
					writeError(w, http.StatusInternalServerError, "internal server error")
					return
				}
				if isRevoked {
					log.Infow("revoked token used", "jti", claims.TokenID, "user_id", claims.UserID)
					writeError(w, http.StatusUnauthorized, "unauthorized")
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(jwt.WithClaims(ctx, claims)))
		})
	}
}
