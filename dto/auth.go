package dto

import "time"

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type GoogleAuthInput struct {
	TokenID string `json:"tokenId" binding:"required"`
}

// GoogleUser là thông tin lấy từ payload của Google ID token
type GoogleUser struct {
	Name          string
	Email         string
	VerifiedEmail bool
	Picture       string
}

type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar"`
	Provider  string    `json:"provider"`
	CreatedAt time.Time `json:"createdAt"`
}

type LoginResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"accessToken"`
}
