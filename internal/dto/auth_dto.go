package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	FullName    string `json:"full_name" validate:"required,min=3"`
	CompanyName string `json:"company_name" validate:"required,min=2"`
	Industry    string `json:"industry" validate:"required"`
}

type RegisterResponse struct {
	UserId    uuid.UUID `json:"user_id"`
	CompanyId uuid.UUID `json:"company_id"`
}

type VerifyEmailRequest struct {
	Token string `json:"token" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string              `json:"access_token"`
	User        UserProfileResponse `json:"user"`
}

type GoogleLoginRequest struct {
	IdToken string `json:"id_token" validate:"required"`
}

type UserProfileResponse struct {
	Id        uuid.UUID `json:"id"`
	CompanyId uuid.UUID `json:"company_id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
