package models

import "github.com/golang-jwt/jwt/v5"

// UserClaims is the JWT payload carried by every authenticated request.
type UserClaims struct {
	jwt.RegisteredClaims
	UserID uint   `json:"user_id"`
	Phone  string `json:"phone_number"`
}
