package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shandysiswandi/gocommerce/internal/pkg/goerror"
	"github.com/shandysiswandi/gocommerce/internal/pkg/otpledger"
)

// issueChallenge generates a passcode, delivers it, and records the challenge
// under key. Delivery happens before the ledger write so a failed send never
// strands a challenge whose code the subject can never learn; any previously
// live challenge under the same key is silently replaced (latest wins).
func (s *Usecase) issueChallenge(ctx context.Context, key, email, subject, intro string) (time.Time, error) {
	code, err := s.otp.Generate()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate verification code", "error", err)
		return time.Time{}, goerror.NewServer(err)
	}

	now := s.clock.Now()
	ttl := s.cfg.GetMinute("modules.identity.otp_ttl_minutes")
	expiresAt := now.Add(ttl)

	body := fmt.Sprintf(
		"%s\n\nYour verification code is %s. It expires in %d minutes.\n\nIf you did not request this, you can ignore this email.",
		intro, code, int(ttl.Minutes()),
	)

	sendCtx, cancel := context.WithTimeout(ctx, s.cfg.GetSecond("modules.identity.otp_send_timeout_seconds"))
	defer cancel()

	if err := s.notifier.Send(sendCtx, email, subject, body); err != nil {
		slog.ErrorContext(ctx, "failed to deliver verification code", "email", email, "error", err)

		if errors.Is(err, context.DeadlineExceeded) {
			return time.Time{}, goerror.NewBusiness("verification code delivery timed out, please try again", goerror.CodeTimeout)
		}

		return time.Time{}, goerror.NewBusiness("failed to deliver verification code, please try again", goerror.CodeUnavailable)
	}

	codeHash, err := s.hmac.Hash(code)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash verification code", "error", err)
		return time.Time{}, goerror.NewServer(err)
	}

	s.ledger.Put(key, otpledger.Challenge{
		CodeHash:  codeHash,
		IssuedAt:  now,
		ExpiresAt: expiresAt,
	})

	return expiresAt, nil
}
