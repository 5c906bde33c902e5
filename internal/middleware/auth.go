package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthCookieName — cookie с JWT сессии.
const AuthCookieName = "auth_token"

const tokenTTL = 24 * time.Hour

type ctxKey string

const userIDKey ctxKey = "user_id"

// Claims — утверждения токена: стандартные плюс id пользователя.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

func buildToken(userID int64, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
		UserID: userID,
	})
	return token.SignedString([]byte(secret))
}

func parseToken(tokenString, secret string) (int64, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, err
	}
	if !token.Valid {
		return 0, fmt.Errorf("invalid token")
	}
	return claims.UserID, nil
}

// SetLoginCookie выпускает токен и кладёт его в cookie ответа.
func SetLoginCookie(w http.ResponseWriter, userID int64, secret string) error {
	token, err := buildToken(userID, secret)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(tokenTTL),
	})
	return nil
}

// WithAuth кладёт user_id в контекст, если cookie содержит валидный токен.
// Анонимные запросы проходят дальше без user_id.
func WithAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(AuthCookieName)
			if err == nil && c.Value != "" {
				if uid, err := parseToken(c.Value, secret); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), userIDKey, uid))
				} else {
					sugar.Debugw("auth token rejected", "error", err)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WithDefaultUser подставляет демо-пользователя, если запрос не аутентифицирован.
func WithDefaultUser(userID int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := GetUserIDFromContext(r.Context()); !ok {
				r = r.WithContext(context.WithValue(r.Context(), userIDKey, userID))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireUser отвечает 401 на запросы без пользователя.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserIDFromContext(r.Context()); !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"unauthorized"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserIDFromContext возвращает id пользователя запроса.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	uid, ok := ctx.Value(userIDKey).(int64)
	return uid, ok
}
