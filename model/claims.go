package model

import "github.com/golang-jwt/jwt/v5"

// AppClaims carries the verified bearer identity. The service performs no
// authorization beyond checking the token signature and expiry.
type AppClaims struct {
	jwt.RegisteredClaims
}
