package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Papéis de acesso ao painel
const (
	RoleOwner  = "owner"
	RoleViewer = "viewer"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type Claims struct {
	UserEmail string `json:"email"`
	UserRole  string `json:"role"`
	jwt.RegisteredClaims
}
