package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/gocommerce/internal/identity/entity"
	"github.com/shandysiswandi/gocommerce/internal/pkg/goerror"
	"github.com/shandysiswandi/gocommerce/internal/pkg/otpledger"
)

type PasswordResetInput struct {
	Email       string `validate:"required,email"`
	NewPassword string `validate:"required,password"`
}

// PasswordReset completes the password reset flow. It requires a verified,
// still live reset challenge and consumes it before replacing the secret.
func (s *Usecase) PasswordReset(ctx context.Context, in PasswordResetInput) error {
	ctx, span := s.startSpan(ctx, "PasswordReset")
	defer span.End()

	in.Email = normalizeEmail(in.Email)
	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		return goerror.NewBusiness("email is not registered", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return goerror.NewServer(err)
	}

	key := entity.ChallengeKey(in.Email, entity.OtpPurposePasswordReset, "")
	if res := s.ledger.ConsumeVerified(key, s.clock.Now()); res != otpledger.ResultSuccess {
		slog.WarnContext(ctx, "password reset challenge not consumable", "user_id", user.ID, "reason", res.String())
		return rejectChallenge(res)
	}

	hashedPassword, err := s.bcrypt.Hash(in.NewPassword)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return goerror.NewServer(err)
	}

	if err := s.repoDB.UpdateUserPassword(ctx, user.ID, string(hashedPassword)); err != nil {
		slog.ErrorContext(ctx, "failed to repo update user password", "user_id", user.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
