package model

import "github.com/golang-jwt/jwt/v5"

// Admin role holds the elevated privilege gating unsafe product operations.
const RoleAdmin = "admin"

// User represents an authenticated account
type User struct {
	ID       string `json:"id" gorm:"type:varchar(36);primaryKey"`
	Username string `json:"username" gorm:"type:varchar(100);uniqueIndex;not null"`
	Password string `json:"password,omitempty" gorm:"type:varchar(255);not null"`
	Role     string `json:"role" gorm:"type:varchar(50);not null"`
}

// IsAdmin reports whether the user holds the elevated privilege.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// JWTClaims are the claims carried by issued bearer tokens
type JWTClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// LoginRequest is the login request body
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the login response body
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
