package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shandysiswandi/gocommerce/internal/pkg/instrument"
	"github.com/shandysiswandi/gocommerce/internal/pkg/mail"
	"github.com/shandysiswandi/gocommerce/internal/pkg/validator"
)

type fakeEmail struct {
	sent     []mail.Message
	failures int
}

func (f *fakeEmail) Send(_ context.Context, msg mail.Message) error {
	if f.failures > 0 {
		f.failures--
		return errors.New("smtp unavailable")
	}
	f.sent = append(f.sent, msg)
	return nil
}

type fakeConfig struct{}

func (fakeConfig) Close() error                   { return nil }
func (fakeConfig) GetSecond(string) time.Duration { return time.Second }
func (fakeConfig) GetMinute(string) time.Duration { return time.Minute }
func (fakeConfig) GetHour(string) time.Duration   { return time.Hour }
func (fakeConfig) GetDay(string) time.Duration    { return 24 * time.Hour }
func (fakeConfig) GetInt(string) int              { return 0 }
func (fakeConfig) GetInt32(string) int32          { return 0 }
func (fakeConfig) GetInt64(string) int64          { return 0 }
func (fakeConfig) GetUint(string) uint            { return 0 }
func (fakeConfig) GetUint16(string) uint16        { return 0 }
func (fakeConfig) GetUint32(string) uint32        { return 0 }
func (fakeConfig) GetUint64(string) uint64        { return 2 }
func (fakeConfig) GetFloat32(string) float32      { return 0 }
func (fakeConfig) GetFloat64(string) float64      { return 0 }
func (fakeConfig) GetBool(string) bool            { return false }
func (fakeConfig) GetString(string) string        { return "https://shop.gocommerce.com" }
func (fakeConfig) GetBinary(string) []byte        { return nil }
func (fakeConfig) GetArray(string) []string       { return nil }
func (fakeConfig) GetMap(string) map[string]string {
	return map[string]string{}
}

func newUsecase(t *testing.T, email *fakeEmail) *Usecase {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	return New(Dependency{
		RepoEmail:  email,
		Validator:  v,
		Config:     fakeConfig{},
		Instrument: instrument.NewNoop(),
	})
}

func TestConsumeUserRegistered(t *testing.T) {
	t.Run("SendsWelcomeEmail", func(t *testing.T) {
		email := &fakeEmail{}
		uc := newUsecase(t, email)

		err := uc.ConsumeUserRegistered(context.Background(), ConsumeUserRegisteredInput{
			UserID:   7,
			Email:    "jane@example.com",
			FullName: "Jane Austen",
			Role:     "Customer",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(email.sent) != 1 {
			t.Fatalf("expected one email, got %d", len(email.sent))
		}
		msg := email.sent[0]
		if msg.To[0] != "jane@example.com" {
			t.Fatalf("unexpected recipient %v", msg.To)
		}
		if !strings.Contains(msg.TextBody, "Jane Austen") {
			t.Fatalf("body should greet the user by name, got %q", msg.TextBody)
		}
		if !strings.Contains(msg.TextBody, "https://shop.gocommerce.com") {
			t.Fatalf("body should link the storefront, got %q", msg.TextBody)
		}
	})

	t.Run("MalformedPayloadIsDropped", func(t *testing.T) {
		email := &fakeEmail{}
		uc := newUsecase(t, email)

		err := uc.ConsumeUserRegistered(context.Background(), ConsumeUserRegisteredInput{
			Email: "not-an-email",
		})

		// Bad payloads must not be retried by the broker, so no error.
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(email.sent) != 0 {
			t.Fatalf("no email should be sent for a bad payload")
		}
	})

	t.Run("TransientFailureIsRetried", func(t *testing.T) {
		email := &fakeEmail{failures: 1}
		uc := newUsecase(t, email)

		err := uc.ConsumeUserRegistered(context.Background(), ConsumeUserRegisteredInput{
			UserID:   7,
			Email:    "jane@example.com",
			FullName: "Jane Austen",
			Role:     "Customer",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(email.sent) != 1 {
			t.Fatalf("expected the retry to deliver the email, got %d", len(email.sent))
		}
	})
}

func TestConsumeOrderPlaced(t *testing.T) {
	t.Run("SendsReceipt", func(t *testing.T) {
		email := &fakeEmail{}
		uc := newUsecase(t, email)

		err := uc.ConsumeOrderPlaced(context.Background(), ConsumeOrderPlacedInput{
			OrderID:    9001,
			UserID:     7,
			Email:      "jane@example.com",
			TotalCents: 29700,
			Items: []OrderPlacedItem{
				{Name: "Mechanical Keyboard", Quantity: 2, PriceCents: 12900},
				{Name: "USB Hub", Quantity: 1, PriceCents: 3900},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(email.sent) != 1 {
			t.Fatalf("expected one email, got %d", len(email.sent))
		}
		msg := email.sent[0]
		if !strings.Contains(msg.Subject, "#9001") {
			t.Fatalf("subject should reference the order, got %q", msg.Subject)
		}
		if !strings.Contains(msg.TextBody, "Mechanical Keyboard x2 ($129.00)") {
			t.Fatalf("body should itemize the order, got %q", msg.TextBody)
		}
		if !strings.Contains(msg.TextBody, "Total: $297.00") {
			t.Fatalf("body should state the total, got %q", msg.TextBody)
		}
	})

	t.Run("MalformedPayloadIsDropped", func(t *testing.T) {
		email := &fakeEmail{}
		uc := newUsecase(t, email)

		err := uc.ConsumeOrderPlaced(context.Background(), ConsumeOrderPlacedInput{OrderID: 0})

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(email.sent) != 0 {
			t.Fatalf("no email should be sent for a bad payload")
		}
	})
}
