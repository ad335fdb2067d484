package dto

import (
	"strings"
	"time"

	"gomoto/infras/jwt"
	userModel "gomoto/internal/domains/user/model"
	userDto "gomoto/internal/domains/user/model/dto"
	"gomoto/shared/constant"
	gModel "gomoto/shared/model"
	"gomoto/shared/timezone"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Username string  `json:"username"            validate:"required,alphanum,min=3,max=30"`
	Email    string  `json:"email"               validate:"required,email"`
	Password string  `json:"password"            validate:"required,min=8,max=72"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,min=2,max=100"`
	Phone    *string `json:"phone,omitempty"     validate:"omitempty,e164"`
}

// ToUserModel lower-cases the email so lookups are case insensitive.
func (r *RegisterRequest) ToUserModel(hashedPassword string) userModel.User {
	now := timezone.Now()

	return userModel.User{
		ID:       uuid.NewString(),
		Username: r.Username,
		Email:    strings.ToLower(r.Email),
		Password: hashedPassword,
		Role:     constant.RoleUser,
		FullName: r.FullName,
		Phone:    r.Phone,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  constant.ContextGuest,
			ModifiedBy: constant.ContextGuest,
		},
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateLastLoginRequest optionally carries a rehashed password when the stored hash used an old cost.
type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login"`
	Password  string    `db:"password"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (t *TokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	t.AccessToken = tokenPair.AccessToken
	t.RefreshToken = tokenPair.RefreshToken
	t.TokenType = tokenPair.TokenType
	t.ExpiresIn = tokenPair.ExpiresIn
}

type LoginResponse struct {
	TokenResponse
	User userDto.UserResponse `json:"user"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,max=72,nefield=CurrentPassword"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password"`
}
