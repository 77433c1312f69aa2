package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shandysiswandi/gocommerce/internal/identity/entity"
	"github.com/shandysiswandi/gocommerce/internal/pkg/goerror"
)

type PasswordOTPSendInput struct {
	Email string `validate:"required,email"`
}

type PasswordOTPSendOutput struct {
	ExpiresAt time.Time
}

// PasswordOTPSend starts the password reset flow. Unlike login, this
// endpoint confirms identity existence explicitly: resetting a password for
// an unknown email is reported as not found.
func (s *Usecase) PasswordOTPSend(ctx context.Context, in PasswordOTPSendInput) (*PasswordOTPSendOutput, error) {
	ctx, span := s.startSpan(ctx, "PasswordOTPSend")
	defer span.End()

	in.Email = normalizeEmail(in.Email)
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByEmail(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("email is not registered", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.ensureUserStatusAllowed(ctx, user.ID, user.Status); err != nil {
		return nil, err
	}

	key := entity.ChallengeKey(in.Email, entity.OtpPurposePasswordReset, "")
	expiresAt, err := s.issueChallenge(ctx, key, in.Email,
		"Reset your password",
		"Use the code below to reset your password.",
	)
	if err != nil {
		return nil, err
	}

	return &PasswordOTPSendOutput{ExpiresAt: expiresAt}, nil
}
