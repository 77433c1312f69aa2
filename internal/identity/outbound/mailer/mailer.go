package mailer

import (
	"context"

	"github.com/shandysiswandi/gocommerce/internal/pkg/instrument"
	"github.com/shandysiswandi/gocommerce/internal/pkg/mail"
	"go.opentelemetry.io/otel/codes"
)

// Mailer delivers passcode emails synchronously. Passcodes never travel
// through the message broker; the caller needs the delivery outcome before
// recording the challenge.
type Mailer struct {
	client mail.Mail
	ins    instrument.Instrumentation
}

func NewMailer(client mail.Mail, ins instrument.Instrumentation) *Mailer {
	return &Mailer{client: client, ins: ins}
}

func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	ctx, span := m.ins.Tracer("identity.outbound.mailer").Start(ctx, "Send")
	defer span.End()

	if err := m.client.Send(ctx, mail.Message{
		To:       []string{to},
		Subject:  subject,
		TextBody: body,
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
