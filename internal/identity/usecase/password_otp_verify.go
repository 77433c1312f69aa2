package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/gocommerce/internal/identity/entity"
	"github.com/shandysiswandi/gocommerce/internal/pkg/goerror"
	"github.com/shandysiswandi/gocommerce/internal/pkg/otpledger"
)

type PasswordOTPVerifyInput struct {
	Email string `validate:"required,email"`
	Code  string `validate:"required,otpcode"`
}

// PasswordOTPVerify marks the pending password reset challenge verified so
// the caller may submit the new password while the challenge is still live.
func (s *Usecase) PasswordOTPVerify(ctx context.Context, in PasswordOTPVerifyInput) error {
	ctx, span := s.startSpan(ctx, "PasswordOTPVerify")
	defer span.End()

	in.Email = normalizeEmail(in.Email)
	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	key := entity.ChallengeKey(in.Email, entity.OtpPurposePasswordReset, "")
	if res := s.ledger.CompareAndMarkVerified(key, in.Code, s.clock.Now()); res != otpledger.ResultSuccess {
		slog.WarnContext(ctx, "password reset code rejected", "email", in.Email, "reason", res.String())
		return rejectChallenge(res)
	}

	return nil
}
