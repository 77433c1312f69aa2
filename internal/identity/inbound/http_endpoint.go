package inbound

import (
	"strconv"

	"github.com/shandysiswandi/gocommerce/internal/identity/usecase"
	"github.com/shandysiswandi/gocommerce/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for the OTP-gated authentication flows.
type HTTPEndpoint struct {
	uc uc
}

// RegistrationOTPSend emails a verification code to a new address.
// @Summary Send registration code
// @Description Sends a one-time verification code to an email address that is not yet registered.
// @Tags Identity, Registration
// @Accept json
// @Produce json
// @Param request body RegistrationOTPSendRequest true "Registration OTP payload"
// @Success 200 {object} router.successResponse{data=RegistrationOTPSendResponse} "Code sent"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 409 {object} router.errorResponse "Email already registered"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 503 {object} router.errorResponse "Delivery failed, retryable"
// @Router /api/v1/identity/register/otp [post]
func (h *HTTPEndpoint) RegistrationOTPSend(r *router.Request) (any, error) {
	var req RegistrationOTPSendRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.RegistrationOTPSend(r.Context(), usecase.RegistrationOTPSendInput{Email: req.Email})
	if err != nil {
		return nil, err
	}

	return RegistrationOTPSendResponse{ExpiresAt: resp.ExpiresAt}, nil
}

// RegistrationOTPVerify validates a registration code.
// @Summary Verify registration code
// @Description Marks the pending registration challenge verified so registration can be completed.
// @Tags Identity, Registration
// @Accept json
// @Produce json
// @Param request body RegistrationOTPVerifyRequest true "Verification payload"
// @Success 200 {object} router.successResponse{data=RegistrationOTPVerifyResponse} "Code verified"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Incorrect or expired code"
// @Failure 404 {object} router.errorResponse "No pending code"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/identity/register/otp/verify [post]
func (h *HTTPEndpoint) RegistrationOTPVerify(r *router.Request) (any, error) {
	var req RegistrationOTPVerifyRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.RegistrationOTPVerify(r.Context(), usecase.RegistrationOTPVerifyInput{
		Email: req.Email,
		Code:  req.Code,
	}); err != nil {
		return nil, err
	}

	return RegistrationOTPVerifyResponse{}, nil
}

// Register creates a new user account after email verification.
// @Summary Register user
// @Description Creates the account. Requires a verified, still live registration challenge for the email.
// @Tags Identity, Registration
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration payload"
// @Success 200 {object} router.successResponse{data=RegisterResponse} "Account created"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Challenge missing, expired, or unverified"
// @Failure 409 {object} router.errorResponse "Email already registered"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/identity/register [post]
func (h *HTTPEndpoint) Register(r *router.Request) (any, error) {
	var req RegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Register(r.Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Role:     req.Role,
	})
	if err != nil {
		return nil, err
	}

	return RegisterResponse{UserID: strconv.FormatInt(resp.UserID, 10)}, nil
}

// Login validates credentials and sends a login code.
// @Summary Authenticate user
// @Description Validates email, password, and claimed role, then sends a one-time login code. No token is issued yet.
// @Tags Identity, Authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login payload"
// @Success 200 {object} router.successResponse{data=LoginResponse} "Code sent"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Invalid credentials"
// @Failure 403 {object} router.errorResponse "Role not held by account"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 503 {object} router.errorResponse "Delivery failed, retryable"
// @Router /api/v1/identity/login [post]
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return nil, err
	}

	return LoginResponse{ExpiresAt: resp.ExpiresAt}, nil
}

// LoginOTPVerify completes login and issues the session token.
// @Summary Complete login
// @Description Verifies the login code, consumes the challenge, and returns the access token plus landing destination.
// @Tags Identity, Authentication
// @Accept json
// @Produce json
// @Param request body LoginOTPVerifyRequest true "Login verification payload"
// @Success 200 {object} router.successResponse{data=LoginOTPVerifyResponse} "Authentication result"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Incorrect or expired code"
// @Failure 404 {object} router.errorResponse "No pending code"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/identity/login/otp/verify [post]
func (h *HTTPEndpoint) LoginOTPVerify(r *router.Request) (any, error) {
	var req LoginOTPVerifyRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.LoginOTPVerify(r.Context(), usecase.LoginOTPVerifyInput{
		Email: req.Email,
		Role:  req.Role,
		Code:  req.Code,
	})
	if err != nil {
		return nil, err
	}

	return LoginOTPVerifyResponse{
		AccessToken: resp.AccessToken,
		Destination: resp.Destination,
		Roles:       resp.Roles,
	}, nil
}

// PasswordOTPSend emails a password reset code.
// @Summary Send password reset code
// @Description Sends a one-time reset code to a registered email address.
// @Tags Identity, Password
// @Accept json
// @Produce json
// @Param request body PasswordOTPSendRequest true "Password OTP payload"
// @Success 200 {object} router.successResponse{data=PasswordOTPSendResponse} "Code sent"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 404 {object} router.errorResponse "Email not registered"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 503 {object} router.errorResponse "Delivery failed, retryable"
// @Router /api/v1/identity/password/otp [post]
func (h *HTTPEndpoint) PasswordOTPSend(r *router.Request) (any, error) {
	var req PasswordOTPSendRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.PasswordOTPSend(r.Context(), usecase.PasswordOTPSendInput{Email: req.Email})
	if err != nil {
		return nil, err
	}

	return PasswordOTPSendResponse{ExpiresAt: resp.ExpiresAt}, nil
}

// PasswordOTPVerify validates a password reset code.
// @Summary Verify password reset code
// @Description Marks the pending reset challenge verified so a new password can be submitted.
// @Tags Identity, Password
// @Accept json
// @Produce json
// @Param request body PasswordOTPVerifyRequest true "Verification payload"
// @Success 200 {object} router.successResponse{data=PasswordOTPVerifyResponse} "Code verified"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Incorrect or expired code"
// @Failure 404 {object} router.errorResponse "No pending code"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/identity/password/otp/verify [post]
func (h *HTTPEndpoint) PasswordOTPVerify(r *router.Request) (any, error) {
	var req PasswordOTPVerifyRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.PasswordOTPVerify(r.Context(), usecase.PasswordOTPVerifyInput{
		Email: req.Email,
		Code:  req.Code,
	}); err != nil {
		return nil, err
	}

	return PasswordOTPVerifyResponse{}, nil
}

// PasswordReset replaces the account password.
// @Summary Reset password
// @Description Sets a new password. Requires a verified, still live reset challenge for the email.
// @Tags Identity, Password
// @Accept json
// @Produce json
// @Param request body PasswordResetRequest true "Reset payload"
// @Success 200 {object} router.successResponse{data=PasswordResetResponse} "Password reset"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 401 {object} router.errorResponse "Challenge missing, expired, or unverified"
// @Failure 404 {object} router.errorResponse "Email not registered"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/identity/password/reset [post]
func (h *HTTPEndpoint) PasswordReset(r *router.Request) (any, error) {
	var req PasswordResetRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.PasswordReset(r.Context(), usecase.PasswordResetInput{
		Email:       req.Email,
		NewPassword: req.NewPassword,
	}); err != nil {
		return nil, err
	}

	return PasswordResetResponse{}, nil
}

// Profile returns the authenticated user's account data.
// @Summary Get profile
// @Description Returns the account data plus the role set carried by the presented token.
// @Tags Identity, Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} router.successResponse{data=ProfileResponse} "Profile"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Router /api/v1/identity/profile [get]
func (h *HTTPEndpoint) Profile(r *router.Request) (any, error) {
	resp, err := h.uc.Profile(r.Context())
	if err != nil {
		return nil, err
	}

	return ProfileResponse{
		ID:        strconv.FormatInt(resp.User.ID, 10),
		Email:     resp.User.Email,
		FullName:  resp.User.FullName,
		AvatarURL: resp.User.AvatarURL,
		Status:    resp.User.Status.String(),
		Roles:     resp.Roles,
	}, nil
}
