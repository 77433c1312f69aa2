package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/gocommerce/internal/identity/entity"
	"github.com/shandysiswandi/gocommerce/internal/pkg/goerror"
	"github.com/shandysiswandi/gocommerce/internal/pkg/otpledger"
)

type LoginOTPVerifyInput struct {
	Email string `validate:"required,email"`
	Role  string `validate:"required,oneof=Admin Manager ProductOwner StoreUser Customer"`
	Code  string `validate:"required,otpcode"`
}

type LoginOTPVerifyOutput struct {
	AccessToken string
	Destination string
	Roles       []string
}

// LoginOTPVerify completes the login flow: it validates the submitted code,
// consumes the challenge, re-resolves the user's roles, and mints the session
// token. Roles carried by the token reflect membership at consumption time,
// not at issuance. Two ledger operations back to back at the same instant
// guarantee exactly one concurrent caller gets a token.
func (s *Usecase) LoginOTPVerify(ctx context.Context, in LoginOTPVerifyInput) (*LoginOTPVerifyOutput, error) {
	ctx, span := s.startSpan(ctx, "LoginOTPVerify")
	defer span.End()

	in.Email = normalizeEmail(in.Email)
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserLoginInfo(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "user account not found", "email", in.Email)
		return nil, rejectChallenge(otpledger.ResultNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user login info", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.ensureUserStatusAllowed(ctx, user.ID, user.Status); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	key := entity.ChallengeKey(in.Email, entity.OtpPurposeLogin, in.Role)

	if res := s.ledger.CompareAndMarkVerified(key, in.Code, now); res != otpledger.ResultSuccess {
		slog.WarnContext(ctx, "login code rejected", "user_id", user.ID, "reason", res.String())
		return nil, rejectChallenge(res)
	}

	if res := s.ledger.ConsumeVerified(key, now); res != otpledger.ResultSuccess {
		slog.WarnContext(ctx, "login challenge not consumable", "user_id", user.ID, "reason", res.String())
		return nil, rejectChallenge(res)
	}

	roles, err := s.rbac.RolesOf(ctx, user.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to resolve user roles", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	token, err := s.jwt.Generate(user.ID, user.Email, roles)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate access token", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &LoginOTPVerifyOutput{
		AccessToken: token,
		Destination: s.destinationFor(in.Role, user.ID),
		Roles:       roles,
	}, nil
}
