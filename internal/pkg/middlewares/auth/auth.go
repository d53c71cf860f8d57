package auth

import (
	"context"
	"net/http"
	"strings"

	"delivery/internal/entities"
	"delivery/internal/pkg/jwt"
)

type contextKey struct{}

var claimsKey contextKey

type tokenValidator interface {
	ValidateToken(tokenStr string) (*jwt.Claims, error)
}

type userGetter interface {
	GetUser(ctx context.Context, id int64) (*entities.User, error)
}

// Middleware требует валидный bearer-токен и кладет claims в контекст запроса.
func Middleware(tokens tokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := tokens.ValidateToken(token)
			if err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithClaims(r.Context(), claims)))
		})
	}
}

// RequireAdmin сверяет роль по записи в БД, а не по claims токена.
// Токен, выпущенный до смены роли, не дает доступ к админке.
func RequireAdmin(users userGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			user, err := users.GetUser(r.Context(), claims.UserID)
			if err != nil {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			if user.Role != entities.RoleAdmin {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func ContextWithClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func ClaimsFromContext(ctx context.Context) (*jwt.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*jwt.Claims)
	return claims, ok
}
