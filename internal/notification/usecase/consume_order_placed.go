package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/gocommerce/internal/pkg/mail"
)

type ConsumeOrderPlacedInput struct {
	OrderID    int64  `validate:"required,gt=0"`
	UserID     int64  `validate:"required,gt=0"`
	Email      string `validate:"required,email"`
	TotalCents int64  `validate:"gte=0"`
	Items      []OrderPlacedItem
}

type OrderPlacedItem struct {
	Name       string
	Quantity   int32
	PriceCents int64
}

// ConsumeOrderPlaced sends the order receipt email.
func (s *Usecase) ConsumeOrderPlaced(ctx context.Context, in ConsumeOrderPlacedInput) error {
	ctx, span := s.startSpan(ctx, "ConsumeOrderPlaced")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "invalid order placed payload", "error", err)
		return nil
	}

	var lines strings.Builder
	for _, item := range in.Items {
		fmt.Fprintf(&lines, "- %s x%d ($%.2f)\n", item.Name, item.Quantity, float64(item.PriceCents)/100)
	}

	body := fmt.Sprintf(
		"Thank you for your order #%d.\n\n%s\nTotal: $%.2f\n\nWe will let you know when it ships.",
		in.OrderID, lines.String(), float64(in.TotalCents)/100,
	)

	s.sendEmailWithRetry(ctx, emailMessage(in.Email, fmt.Sprintf("Your order #%d receipt", in.OrderID), body))

	return nil
}

func emailMessage(to, subject, body string) mail.Message {
	return mail.Message{
		To:       []string{to},
		Subject:  subject,
		TextBody: body,
	}
}
