package usecase

import (
	"context"
	"fmt"
	"log/slog"
)

type ConsumeUserRegisteredInput struct {
	UserID   int64  `validate:"required,gt=0"`
	Email    string `validate:"required,email"`
	FullName string `validate:"required"`
	Role     string `validate:"required"`
}

// ConsumeUserRegistered sends the welcome email for a freshly registered
// account. Malformed payloads are dropped, not retried.
func (s *Usecase) ConsumeUserRegistered(ctx context.Context, in ConsumeUserRegisteredInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeUserRegistered")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "invalid user registered payload", "error", err)
		return nil
	}

	body := fmt.Sprintf(
		"Hi %s,\n\nWelcome aboard! Your account is ready and you can sign in at %s.\n\nHappy shopping!",
		in.FullName, s.cfg.GetString("app.web"),
	)

	s.sendEmailWithRetry(ctx, emailMessage(in.Email, "Welcome to the store", body))

	return nil
}
