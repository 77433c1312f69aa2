package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/gocommerce/internal/identity/entity"
	"github.com/shandysiswandi/gocommerce/internal/pkg/goerror"
	"github.com/shandysiswandi/gocommerce/internal/pkg/otpledger"
)

type RegistrationOTPVerifyInput struct {
	Email string `validate:"required,email"`
	Code  string `validate:"required,otpcode"`
}

// RegistrationOTPVerify marks the pending registration challenge verified so
// the caller may complete registration while the challenge is still live.
func (s *Usecase) RegistrationOTPVerify(ctx context.Context, in RegistrationOTPVerifyInput) error {
	ctx, span := s.startSpan(ctx, "RegistrationOTPVerify")
	defer span.End()

	in.Email = normalizeEmail(in.Email)
	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	key := entity.ChallengeKey(in.Email, entity.OtpPurposeRegistration, "")
	if res := s.ledger.CompareAndMarkVerified(key, in.Code, s.clock.Now()); res != otpledger.ResultSuccess {
		slog.WarnContext(ctx, "registration code rejected", "email", in.Email, "reason", res.String())
		return rejectChallenge(res)
	}

	return nil
}
