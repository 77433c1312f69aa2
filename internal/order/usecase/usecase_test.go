package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/model"
	libJWT "github.com/golang-jwt/jwt/v5"
	"github.com/shandysiswandi/gocommerce/internal/order/entity"
	"github.com/shandysiswandi/gocommerce/internal/pkg/goerror"
	"github.com/shandysiswandi/gocommerce/internal/pkg/idempotency"
	"github.com/shandysiswandi/gocommerce/internal/pkg/instrument"
	"github.com/shandysiswandi/gocommerce/internal/pkg/jwt"
	"github.com/shandysiswandi/gocommerce/internal/pkg/validator"
)

type fakeUID struct {
	next int64
}

func (f *fakeUID) Generate() int64 {
	f.next++
	return 5000 + f.next
}

type fakeDB struct {
	carts   map[int64][]entity.CartItem
	pricing map[int64]entity.CartItem
	orders  []entity.NewOrder
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		carts:   map[int64][]entity.CartItem{},
		pricing: map[int64]entity.CartItem{},
	}
}

func (f *fakeDB) GetCartItems(_ context.Context, userID int64) ([]entity.CartItem, error) {
	return f.carts[userID], nil
}

func (f *fakeDB) UpsertCartItem(_ context.Context, item entity.CartItem) error {
	for i, existing := range f.carts[item.UserID] {
		if existing.ProductID == item.ProductID {
			f.carts[item.UserID][i] = item
			return nil
		}
	}

	f.carts[item.UserID] = append(f.carts[item.UserID], item)
	return nil
}

func (f *fakeDB) DeleteCartItem(_ context.Context, userID, productID int64) error {
	items := f.carts[userID]
	for i, item := range items {
		if item.ProductID == productID {
			f.carts[userID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeDB) GetProductPricing(_ context.Context, productID int64) (string, int64, error) {
	p, ok := f.pricing[productID]
	if !ok {
		return "", 0, goerror.ErrNotFound
	}
	return p.Name, p.PriceCents, nil
}

func (f *fakeDB) CreateOrderFromCart(_ context.Context, order entity.NewOrder) error {
	f.orders = append(f.orders, order)
	f.carts[order.UserID] = nil
	return nil
}

type fakeMessaging struct {
	events []OrderPlacedEvent
}

func (f *fakeMessaging) PublishOrderPlaced(_ context.Context, msg OrderPlacedEvent) error {
	f.events = append(f.events, msg)
	return nil
}

type fakeIdempotency struct {
	keys    []string
	execErr error
}

func (f *fakeIdempotency) Acquire(context.Context, string, time.Duration) (idempotency.State, error) {
	return idempotency.StateNone, nil
}

func (f *fakeIdempotency) MarkCompleted(context.Context, string, time.Duration) error {
	return nil
}

func (f *fakeIdempotency) MarkFailed(context.Context, string, time.Duration) error {
	return nil
}

func (f *fakeIdempotency) Exec(ctx context.Context, key string, fn func(context.Context) error, _ ...idempotency.Option) error {
	f.keys = append(f.keys, key)
	if f.execErr != nil {
		return f.execErr
	}
	return fn(ctx)
}

type fakeConfig struct{}

func (fakeConfig) Close() error                   { return nil }
func (fakeConfig) GetSecond(string) time.Duration { return time.Second }
func (fakeConfig) GetMinute(string) time.Duration { return time.Minute }
func (fakeConfig) GetHour(string) time.Duration   { return 24 * time.Hour }
func (fakeConfig) GetDay(string) time.Duration    { return 24 * time.Hour }
func (fakeConfig) GetInt(string) int              { return 0 }
func (fakeConfig) GetInt32(string) int32          { return 0 }
func (fakeConfig) GetInt64(string) int64          { return 0 }
func (fakeConfig) GetUint(string) uint            { return 0 }
func (fakeConfig) GetUint16(string) uint16        { return 0 }
func (fakeConfig) GetUint32(string) uint32        { return 0 }
func (fakeConfig) GetUint64(string) uint64        { return 0 }
func (fakeConfig) GetFloat32(string) float32      { return 0 }
func (fakeConfig) GetFloat64(string) float64      { return 0 }
func (fakeConfig) GetBool(string) bool            { return false }
func (fakeConfig) GetString(string) string        { return "" }
func (fakeConfig) GetBinary(string) []byte        { return nil }
func (fakeConfig) GetArray(string) []string       { return nil }
func (fakeConfig) GetMap(string) map[string]string {
	return map[string]string{}
}

const testRBACModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`

func newTestEnforcer(t *testing.T) *casbin.Enforcer {
	t.Helper()

	m, err := model.NewModelFromString(testRBACModel)
	if err != nil {
		t.Fatalf("failed to build casbin model: %v", err)
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		t.Fatalf("failed to build enforcer: %v", err)
	}

	if _, err := e.AddPolicy("Customer", "order:cart", "*"); err != nil {
		t.Fatalf("failed to add policy: %v", err)
	}
	if _, err := e.AddPolicy("Customer", "order:checkout", "write"); err != nil {
		t.Fatalf("failed to add policy: %v", err)
	}
	if _, err := e.AddRoleForUser("7", "Customer"); err != nil {
		t.Fatalf("failed to add grouping: %v", err)
	}

	return e
}

type fixture struct {
	uc    *Usecase
	db    *fakeDB
	msg   *fakeMessaging
	idemp *fakeIdempotency
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	f := &fixture{
		db:    newFakeDB(),
		msg:   &fakeMessaging{},
		idemp: &fakeIdempotency{},
	}

	f.uc = New(Dependency{
		RepoDB:        f.db,
		RepoMessaging: f.msg,
		Idempotency:   f.idemp,
		Validator:     v,
		Config:        fakeConfig{},
		UID:           &fakeUID{},
		Instrument:    instrument.NewNoop(),
		Enforcer:      newTestEnforcer(t),
	})

	return f
}

func authCtx(userID string, id int64, email string) context.Context {
	return jwt.SetAuth(context.Background(), jwt.Claims{
		RegisteredClaims: libJWT.RegisteredClaims{Subject: userID},
		UserID:           id,
		UserEmail:        email,
		Roles:            []string{"Customer"},
	})
}

func wantCode(t *testing.T, err error, code goerror.Code) {
	t.Helper()

	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *goerror.Error, got %v", err)
	}
	if gerr.Code() != code {
		t.Fatalf("expected code %s, got %s (%s)", code, gerr.Code(), gerr.Msg())
	}
}

func TestCart(t *testing.T) {
	t.Run("RequiresAuthentication", func(t *testing.T) {
		f := newFixture(t)

		err := f.uc.CartAdd(context.Background(), CartAddInput{ProductID: 1, Quantity: 1})

		wantCode(t, err, goerror.CodeUnauthorized)
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		f := newFixture(t)

		err := f.uc.CartAdd(authCtx("7", 7, "jane@example.com"), CartAddInput{ProductID: 404, Quantity: 1})

		wantCode(t, err, goerror.CodeNotFound)
	})

	t.Run("AddListRemove", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.db.pricing[10] = entity.CartItem{Name: "Mechanical Keyboard", PriceCents: 12900}
		f.db.pricing[11] = entity.CartItem{Name: "USB Hub", PriceCents: 3900}
		ctx := authCtx("7", 7, "jane@example.com")

		// Act
		if err := f.uc.CartAdd(ctx, CartAddInput{ProductID: 10, Quantity: 2}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := f.uc.CartAdd(ctx, CartAddInput{ProductID: 11, Quantity: 1}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out, err := f.uc.CartList(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Assert price captured at add time.
		if len(out.Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(out.Items))
		}
		if out.TotalCents != 2*12900+3900 {
			t.Fatalf("unexpected total %d", out.TotalCents)
		}

		// Act: remove one and re-list.
		if err := f.uc.CartRemove(ctx, CartRemoveInput{ProductID: 10}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out, err = f.uc.CartList(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Items) != 1 || out.TotalCents != 3900 {
			t.Fatalf("expected only the hub left, got %+v", out)
		}
	})

	t.Run("AddSameProductReplacesQuantity", func(t *testing.T) {
		f := newFixture(t)
		f.db.pricing[10] = entity.CartItem{Name: "Mechanical Keyboard", PriceCents: 12900}
		ctx := authCtx("7", 7, "jane@example.com")

		if err := f.uc.CartAdd(ctx, CartAddInput{ProductID: 10, Quantity: 1}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := f.uc.CartAdd(ctx, CartAddInput{ProductID: 10, Quantity: 3}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out, err := f.uc.CartList(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Items) != 1 || out.Items[0].Quantity != 3 {
			t.Fatalf("expected one item with quantity 3, got %+v", out.Items)
		}
	})
}

func TestCheckout(t *testing.T) {
	t.Run("EmptyCart", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.Checkout(authCtx("7", 7, "jane@example.com"), CheckoutInput{IdempotencyKey: "key-12345678"})

		wantCode(t, err, goerror.CodeInvalidInput)
	})

	t.Run("HappyPath", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.db.pricing[10] = entity.CartItem{Name: "Mechanical Keyboard", PriceCents: 12900}
		ctx := authCtx("7", 7, "jane@example.com")
		if err := f.uc.CartAdd(ctx, CartAddInput{ProductID: 10, Quantity: 2}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Act
		out, err := f.uc.Checkout(ctx, CheckoutInput{IdempotencyKey: "key-12345678"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Assert
		if out.TotalCents != 2*12900 {
			t.Fatalf("unexpected total %d", out.TotalCents)
		}
		if len(f.db.orders) != 1 || f.db.orders[0].UserID != 7 {
			t.Fatalf("expected one order for user 7, got %+v", f.db.orders)
		}
		if len(f.msg.events) != 1 || f.msg.events[0].OrderID != out.OrderID {
			t.Fatalf("expected order placed event, got %+v", f.msg.events)
		}
		if f.msg.events[0].Email != "jane@example.com" {
			t.Fatalf("event should carry the buyer email, got %q", f.msg.events[0].Email)
		}
		if len(f.db.carts[7]) != 0 {
			t.Fatalf("cart should be cleared after checkout")
		}
		if len(f.idemp.keys) != 1 || f.idemp.keys[0] != "checkout:7:key-12345678" {
			t.Fatalf("idempotency key should be scoped per user, got %v", f.idemp.keys)
		}
	})

	t.Run("ReplayIsConflict", func(t *testing.T) {
		f := newFixture(t)
		f.idemp.execErr = idempotency.ErrAlreadyCompleted

		_, err := f.uc.Checkout(authCtx("7", 7, "jane@example.com"), CheckoutInput{IdempotencyKey: "key-12345678"})

		wantCode(t, err, goerror.CodeConflict)
	})

	t.Run("InProgressIsConflict", func(t *testing.T) {
		f := newFixture(t)
		f.idemp.execErr = idempotency.ErrAlreadyInProgress

		_, err := f.uc.Checkout(authCtx("7", 7, "jane@example.com"), CheckoutInput{IdempotencyKey: "key-12345678"})

		wantCode(t, err, goerror.CodeConflict)
	})

	t.Run("MissingKey", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.Checkout(authCtx("7", 7, "jane@example.com"), CheckoutInput{})

		wantCode(t, err, goerror.CodeInvalidInput)
	})
}
