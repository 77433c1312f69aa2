package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shandysiswandi/gocommerce/internal/identity/entity"
	"github.com/shandysiswandi/gocommerce/internal/pkg/goerror"
)

type RegistrationOTPSendInput struct {
	Email string `validate:"required,email"`
}

type RegistrationOTPSendOutput struct {
	ExpiresAt time.Time
}

// RegistrationOTPSend starts the registration flow by emailing a passcode to
// an address that is not yet registered.
func (s *Usecase) RegistrationOTPSend(ctx context.Context, in RegistrationOTPSendInput) (*RegistrationOTPSendOutput, error) {
	ctx, span := s.startSpan(ctx, "RegistrationOTPSend")
	defer span.End()

	in.Email = normalizeEmail(in.Email)
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	_, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if err == nil {
		return nil, goerror.NewBusiness("email already registered", goerror.CodeConflict)
	}
	if !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	key := entity.ChallengeKey(in.Email, entity.OtpPurposeRegistration, "")
	expiresAt, err := s.issueChallenge(ctx, key, in.Email,
		"Verify your email address",
		"Welcome! Use the code below to verify your email address.",
	)
	if err != nil {
		return nil, err
	}

	return &RegistrationOTPSendOutput{ExpiresAt: expiresAt}, nil
}
