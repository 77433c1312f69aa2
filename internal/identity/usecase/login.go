package usecase

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/shandysiswandi/gocommerce/internal/identity/entity"
	"github.com/shandysiswandi/gocommerce/internal/pkg/goerror"
)

type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
	Role     string `validate:"required,oneof=Admin Manager ProductOwner StoreUser Customer"`
}

type LoginOutput struct {
	ExpiresAt time.Time
}

// Login validates the credentials and claimed role, then emails a login
// passcode. No token is issued here; the caller must complete the flow with
// LoginOTPVerify. The role check happens before any challenge is issued, so
// a role mismatch never triggers an email.
func (s *Usecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	ctx, span := s.startSpan(ctx, "Login")
	defer span.End()

	in.Email = normalizeEmail(in.Email)
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserLoginInfo(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "user account not found", "email", in.Email)
		return nil, goerror.NewBusiness("invalid email or password", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user login info", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.ensureUserStatusAllowed(ctx, user.ID, user.Status); err != nil {
		return nil, err
	}

	if !s.bcrypt.Verify(user.Password, in.Password) {
		slog.WarnContext(ctx, "password user account not match", "user_id", user.ID)
		return nil, goerror.NewBusiness("invalid email or password", goerror.CodeUnauthorized)
	}

	roles, err := s.rbac.RolesOf(ctx, user.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to resolve user roles", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !slices.Contains(roles, in.Role) {
		slog.WarnContext(ctx, "claimed role not held by user", "user_id", user.ID, "role", in.Role)
		return nil, goerror.NewBusiness("account does not have the requested role", goerror.CodeForbidden)
	}

	key := entity.ChallengeKey(in.Email, entity.OtpPurposeLogin, in.Role)
	expiresAt, err := s.issueChallenge(ctx, key, in.Email,
		"Your login code",
		"Use the code below to finish signing in.",
	)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{ExpiresAt: expiresAt}, nil
}
