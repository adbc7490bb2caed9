package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const AccountIDKey contextKey = "account_id"

const tokenTTL = 30 * 24 * time.Hour

func GenerateToken(accountID int64, email, secret string) (string, error) {
	claims := jwt.MapClaims{
		"account_id": accountID,
		"email":      email,
		"exp":        time.Now().Add(tokenTTL).Unix(),
		"iat":        time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// AccountID pulls the authenticated account out of the request context.
func AccountID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(AccountIDKey).(int64)
	return id, ok
}

func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				http.Error(w, `{"error":"missing authorization header"}`, http.StatusUnauthorized)
				return
			}

			tokenStr := strings.TrimPrefix(header, "Bearer ")
			if tokenStr == header {
				http.Error(w, `{"error":"invalid authorization format"}`, http.StatusUnauthorized)
				return
			}

			token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				http.Error(w, `{"error":"invalid or expired token"}`, http.StatusUnauthorized)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				http.Error(w, `{"error":"invalid token claims"}`, http.StatusUnauthorized)
				return
			}

			accountIDFloat, ok := claims["account_id"].(float64)
			if !ok {
				http.Error(w, `{"error":"invalid account id in token"}`, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), AccountIDKey, int64(accountIDFloat))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
