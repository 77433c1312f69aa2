package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/shandysiswandi/gocommerce/internal/pkg/config"
	"github.com/shandysiswandi/gocommerce/internal/pkg/instrument"
	"github.com/shandysiswandi/gocommerce/internal/pkg/mail"
	"github.com/shandysiswandi/gocommerce/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoEmail interface {
	Send(ctx context.Context, msg mail.Message) error
}

type Usecase struct {
	repoEmail repoEmail
	validator validator.Validator
	cfg       config.Config
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoEmail  repoEmail
	Validator  validator.Validator
	Config     config.Config
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoEmail: dep.RepoEmail,
		validator: dep.Validator,
		cfg:       dep.Config,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("notification.usecase").Start(ctx, name)
}

// sendEmailWithRetry retries transient SMTP failures with exponential
// backoff. These emails are informational; a send that still fails after the
// last attempt is logged and dropped rather than re-queued.
func (s *Usecase) sendEmailWithRetry(ctx context.Context, msg mail.Message) {
	backoff := retry.WithMaxRetries(
		s.cfg.GetUint64("modules.notification.email_max_retries"),
		retry.NewExponential(500*time.Millisecond),
	)

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := s.repoEmail.Send(ctx, msg); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to send email after retries", "to", msg.To, "subject", msg.Subject, "error", err)
	}
}
