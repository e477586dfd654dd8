package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são as claims do token de sessão do operador. A aplicação tem uma
// única identidade administrativa, então basta o username.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}
