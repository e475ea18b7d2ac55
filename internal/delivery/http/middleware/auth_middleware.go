package middleware

import (
	"context"
	"net/http"
	"strings"

	"clinic-records/internal/domain/entity"
	"clinic-records/internal/infrastructure/cache"
	"clinic-records/pkg/jwt"
	"clinic-records/pkg/response"

	"github.com/sirupsen/logrus"
)

type contextKey string

const authContextKey contextKey = "auth_context"

type AuthMiddleware struct {
	jwtService *jwt.JWTService
	tokenStore cache.TokenStore
	log        *logrus.Logger
}

func NewAuthMiddleware(jwtService *jwt.JWTService, tokenStore cache.TokenStore, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		tokenStore: tokenStore,
		log:        log,
	}
}

// Authenticate accepts a bearer access token that is still present in the token store
// and attaches the caller's AuthContext to the request.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		if claims.TokenType != jwt.AccessToken {
			response.Unauthorized(w, "Invalid token type")
			return
		}

		exists, err := m.tokenStore.Exists(r.Context(), jwt.AccessToken, claims.DoctorID, claims.TokenID)
		if err != nil {
			m.log.Warnf("Failed to validate token: %+v", err)
			response.InternalServerError(w, "Failed to validate token")
			return
		}
		if !exists {
			response.Unauthorized(w, "Token has been revoked")
			return
		}

		ctx := WithAuthContext(r.Context(), entity.AuthContext{
			DoctorID: claims.DoctorID,
			Email:    claims.Email,
			TokenID:  claims.TokenID,
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func WithAuthContext(ctx context.Context, auth entity.AuthContext) context.Context {
	return context.WithValue(ctx, authContextKey, auth)
}

// AuthFromContext extracts the authenticated doctor from context
func AuthFromContext(ctx context.Context) (entity.AuthContext, bool) {
	auth, ok := ctx.Value(authContextKey).(entity.AuthContext)
	return auth, ok
}
