package handler

import (
	"account-api/common"
	"account-api/config"
	"account-api/model"
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const ClaimsKey contextKey = "claims"

// AuthMiddleware enforces a verified bearer token on the wrapped routes.
// It is only mounted when auth.enabled is set; the health and swagger
// endpoints are never behind it.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			err := common.NewAppError(http.StatusUnauthorized, "Authorization header is required", nil)
			err.Send(w)
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
			err := common.NewAppError(http.StatusUnauthorized, "Invalid authorization header format", nil)
			err.Send(w)
			return
		}

		tokenString := headerParts[1]
		claims := &model.AppClaims{}

		jwtKey := []byte(config.AppConfig.Auth.SecretKey)

		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return jwtKey, nil
		})

		if err != nil || !token.Valid {
			appErr := common.NewAppError(http.StatusUnauthorized, "Invalid or expired token", err)
			appErr.Send(w)
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
