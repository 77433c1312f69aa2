package inbound

import (
	"context"

	"github.com/shandysiswandi/gocommerce/internal/identity/usecase"
	"github.com/shandysiswandi/gocommerce/internal/pkg/router"
)

type uc interface {
	RegistrationOTPSend(ctx context.Context, in usecase.RegistrationOTPSendInput) (*usecase.RegistrationOTPSendOutput, error)
	RegistrationOTPVerify(ctx context.Context, in usecase.RegistrationOTPVerifyInput) error
	Register(ctx context.Context, in usecase.RegisterInput) (*usecase.RegisterOutput, error)

	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)
	LoginOTPVerify(ctx context.Context, in usecase.LoginOTPVerifyInput) (*usecase.LoginOTPVerifyOutput, error)

	PasswordOTPSend(ctx context.Context, in usecase.PasswordOTPSendInput) (*usecase.PasswordOTPSendOutput, error)
	PasswordOTPVerify(ctx context.Context, in usecase.PasswordOTPVerifyInput) error
	PasswordReset(ctx context.Context, in usecase.PasswordResetInput) error

	Profile(ctx context.Context) (*usecase.ProfileOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// Registration
	r.POST("/api/v1/identity/register/otp", end.RegistrationOTPSend)
	r.POST("/api/v1/identity/register/otp/verify", end.RegistrationOTPVerify)
	r.POST("/api/v1/identity/register", end.Register)

	// Login
	r.POST("/api/v1/identity/login", end.Login)
	r.POST("/api/v1/identity/login/otp/verify", end.LoginOTPVerify)

	// Password Reset
	r.POST("/api/v1/identity/password/otp", end.PasswordOTPSend)
	r.POST("/api/v1/identity/password/otp/verify", end.PasswordOTPVerify)
	r.POST("/api/v1/identity/password/reset", end.PasswordReset)

	// Profile (need authenticated)
	r.GET("/api/v1/identity/profile", end.Profile)
}
