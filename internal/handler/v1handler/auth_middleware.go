package v1handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/phluxx/gridtips/internal/config"
	"github.com/phluxx/gridtips/pkg/model/v1model"
)

const tokenLifetime = 3 * time.Hour

type Claims struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Identity is the decoded caller attached to the request context by
// the Auth middleware. Claims are trusted as-is until the token
// expires; there is no per-request re-check against the store.
type Identity struct {
	ID       string
	Username string
	Role     string
}

type ctxKey int

const identityKey ctxKey = 0

func IdentityFrom(ctx context.Context) (Identity, bool) {
	ident, ok := ctx.Value(identityKey).(Identity)
	return ident, ok
}

type AuthMiddleware struct {
	cfg *config.Config
}

func NewAuthMiddleware(cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{
		cfg: cfg,
	}
}

func (a *AuthMiddleware) IssueToken(user v1model.User, now time.Time) (string, error) {
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(a.cfg.Jwt.Secret))
}

// Auth rejects requests without a bearer token (401) and requests
// whose token fails verification or has expired (403). On success the
// decoded identity rides the request context.
func (a *AuthMiddleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		tokenString := r.Header.Get("Authorization")
		if len(tokenString) == 0 {
			writeError(w, http.StatusUnauthorized, "missing Authorization header")
			return
		}
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")
		claims, err := a.verifyToken(tokenString)
		if err != nil {
			writeError(w, http.StatusForbidden, "invalid token")
			return
		}

		ident := Identity{
			ID:       claims.UserID,
			Username: claims.Username,
			Role:     claims.Role,
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), identityKey, ident)))
	})
}

// Admin layers a role check on top of Auth.
func (a *AuthMiddleware) Admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, ok := IdentityFrom(r.Context())
		if !ok || ident.Role != v1model.RoleAdmin {
			writeError(w, http.StatusForbidden, "admin role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (a *AuthMiddleware) verifyToken(tokenString string) (*Claims, error) {
	signingKey := []byte(a.cfg.Jwt.Secret)
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return signingKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return &claims, nil
}
