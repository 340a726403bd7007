package payload

import "github.com/vasapolrittideah/streamhub-api/services/api-service/internal/model"

type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,appemail"`
	Password string `json:"password" validate:"required,passwordlen,password"`
	Nickname string `json:"nickname"`
	Phone    string `json:"phone"    validate:"omitempty,phone"`
	Sex      string `json:"sex"      validate:"omitempty,oneof=male female other"`
	DOB      string `json:"dob"      validate:"omitempty,pastdate"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by every operation that signs a user in.
type AuthResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// GoogleAuthRequest carries either an authorization code from the redirect
// flow or an ID token from the one-tap button.
type GoogleAuthRequest struct {
	Code        string `json:"code"        validate:"required_without=IDToken"`
	RedirectURI string `json:"redirectUri"`
	IDToken     string `json:"idToken"`
}

// GoogleLoginRequest is the profile returned by GoogleAuth, posted back to
// sign in or create the matching account.
type GoogleLoginRequest struct {
	GoogleID string `json:"googleId" validate:"required"`
	Email    string `json:"email"    validate:"required,appemail"`
	Name     string `json:"name"`
	Picture  string `json:"picture"`
}

type UserByEmailRequest struct {
	Email string `form:"email" json:"email" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,appemail"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token"    validate:"required"`
	Password string `json:"password" validate:"required,passwordlen,password"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
