package inbound

import "time"

type RegistrationOTPSendRequest struct {
	Email string `json:"email"`
}

type RegistrationOTPSendResponse struct {
	ExpiresAt time.Time `json:"expires_at"`
}

func (RegistrationOTPSendResponse) Message() string {
	return "Verification code sent. Please check your email."
}

type RegistrationOTPVerifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type RegistrationOTPVerifyResponse struct{}

func (RegistrationOTPVerifyResponse) Message() string {
	return "Email verified. You can now complete your registration."
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role,omitempty"`
}

type RegisterResponse struct {
	UserID string `json:"user_id"`
}

func (RegisterResponse) Message() string {
	return "Registration successful. You can now sign in."
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginResponse struct {
	ExpiresAt time.Time `json:"expires_at"`
}

func (LoginResponse) Message() string {
	return "Login code sent. Please check your email."
}

type LoginOTPVerifyRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Code  string `json:"code"`
}

type LoginOTPVerifyResponse struct {
	AccessToken string   `json:"access_token"`
	Destination string   `json:"destination"`
	Roles       []string `json:"roles"`
}

type PasswordOTPSendRequest struct {
	Email string `json:"email"`
}

type PasswordOTPSendResponse struct {
	ExpiresAt time.Time `json:"expires_at"`
}

func (PasswordOTPSendResponse) Message() string {
	return "Password reset code sent. Please check your email."
}

type PasswordOTPVerifyRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type PasswordOTPVerifyResponse struct{}

func (PasswordOTPVerifyResponse) Message() string {
	return "Code verified. You can now set a new password."
}

type PasswordResetRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"new_password"`
}

type PasswordResetResponse struct{}

func (PasswordResetResponse) Message() string {
	return "Password has been reset. You can now sign in."
}

type ProfileResponse struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	FullName  string   `json:"full_name"`
	AvatarURL string   `json:"avatar_url"`
	Status    string   `json:"status"`
	Roles     []string `json:"roles"`
}
