package model

import "github.com/golang-jwt/jwt/v5"

// AdminClaims are JWT claims for admin authentication
type AdminClaims struct {
	AdminID string `json:"adminId"`
	jwt.RegisteredClaims
}

// PlayerClaims are JWT claims for player session-scoped tokens
type PlayerClaims struct {
	SessionCode string `json:"sessionCode"`
	PlayerID    string `json:"playerId"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for admin login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful admin login
type LoginResponse struct {
	Token   string `json:"token"`
	AdminID string `json:"adminId"`
}

// ResumeState is what the resume cache retains across page reloads so a
// client can rejoin without re-entering the code.
type ResumeState struct {
	PlayerID  string `json:"playerId,omitempty"`
	SessionID string `json:"sessionId"`
	IsAdmin   bool   `json:"isAdmin"`
}
