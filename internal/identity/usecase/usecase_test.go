package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/shandysiswandi/gocommerce/internal/identity/entity"
	"github.com/shandysiswandi/gocommerce/internal/pkg/goerror"
	"github.com/shandysiswandi/gocommerce/internal/pkg/hash"
	"github.com/shandysiswandi/gocommerce/internal/pkg/instrument"
	"github.com/shandysiswandi/gocommerce/internal/pkg/jwt"
	"github.com/shandysiswandi/gocommerce/internal/pkg/otpledger"
	"github.com/shandysiswandi/gocommerce/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	return f.now
}

type fakeUUID struct{}

func (fakeUUID) Generate() string {
	return "00000000-0000-0000-0000-000000000000"
}

type fakeUID struct {
	next int64
}

func (f *fakeUID) Generate() int64 {
	f.next++
	return 1000 + f.next
}

type fakeOTP struct {
	codes []string
}

func (f *fakeOTP) Generate() (string, error) {
	code := fmt.Sprintf("%06d", 111111+len(f.codes))
	f.codes = append(f.codes, code)
	return code, nil
}

func (f *fakeOTP) last() string {
	return f.codes[len(f.codes)-1]
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeNotifier struct {
	sent []sentMail
	err  error
}

func (f *fakeNotifier) Send(_ context.Context, to, subject, body string) error {
	if f.err != nil {
		return f.err
	}

	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

type fakeDB struct {
	users     map[string]*entity.User
	logins    map[string]*entity.UserLoginInfo
	created   []entity.NewUser
	passwords map[int64]string
	createErr error
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		users:     map[string]*entity.User{},
		logins:    map[string]*entity.UserLoginInfo{},
		passwords: map[int64]string{},
	}
}

func (f *fakeDB) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeDB) GetUserByID(_ context.Context, id int64) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeDB) GetUserLoginInfo(_ context.Context, email string) (*entity.UserLoginInfo, error) {
	if u, ok := f.logins[email]; ok {
		return u, nil
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeDB) CreateUser(_ context.Context, user entity.NewUser, passwordHash string) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.users[user.Email]; ok {
		return goerror.ErrConflict
	}

	f.created = append(f.created, user)
	f.users[user.Email] = &entity.User{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Status:   user.Status,
	}
	f.logins[user.Email] = &entity.UserLoginInfo{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Status:   user.Status,
		Password: passwordHash,
	}
	return nil
}

func (f *fakeDB) UpdateUserPassword(_ context.Context, userID int64, passwordHash string) error {
	f.passwords[userID] = passwordHash
	return nil
}

type fakeRBAC struct {
	roles  map[int64][]string
	grants map[int64][]string
}

func newFakeRBAC() *fakeRBAC {
	return &fakeRBAC{roles: map[int64][]string{}, grants: map[int64][]string{}}
}

func (f *fakeRBAC) RolesOf(_ context.Context, userID int64) ([]string, error) {
	return f.roles[userID], nil
}

func (f *fakeRBAC) Grant(_ context.Context, userID int64, role string) error {
	f.roles[userID] = append(f.roles[userID], role)
	f.grants[userID] = append(f.grants[userID], role)
	return nil
}

type fakeMessaging struct {
	events []UserRegisteredEvent
	err    error
}

func (f *fakeMessaging) PublishUserRegistered(_ context.Context, msg UserRegisteredEvent) error {
	if f.err != nil {
		return f.err
	}

	f.events = append(f.events, msg)
	return nil
}

type fakeConfig struct{}

func (fakeConfig) Close() error                   { return nil }
func (fakeConfig) GetSecond(string) time.Duration { return 2 * time.Second }
func (fakeConfig) GetMinute(string) time.Duration { return 5 * time.Minute }
func (fakeConfig) GetHour(string) time.Duration   { return time.Hour }
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
	return map[string]string{
		"Admin":     "/admin/tools",
		"StoreUser": "/store/dashboard",
		"Customer":  "/customers/{id}",
	}
}

type fixture struct {
	uc        *Usecase
	db        *fakeDB
	rbac      *fakeRBAC
	msg       *fakeMessaging
	notifier  *fakeNotifier
	otp       *fakeOTP
	clock     *fakeClock
	ledger    *otpledger.Ledger
	jwt       jwt.JWT
	passwords *hash.Bcrypt
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}

	clk := &fakeClock{now: time.Now()}
	tokens, err := jwt.NewHS512(jwt.Config{
		Secret:    []byte(strings.Repeat("s", 64)),
		Issuer:    "gocommerce",
		Audiences: []string{"gocommerce-api"},
		TTL:       15 * time.Minute,
		Clock:     clk,
		UUID:      fakeUUID{},
	})
	if err != nil {
		t.Fatalf("failed to build jwt: %v", err)
	}

	hmac := hash.NewHMACSHA256("test-secret")
	passwords := hash.NewBcrypt(bcrypt.MinCost, "")
	ledger := otpledger.New(hmac)

	f := &fixture{
		db:        newFakeDB(),
		rbac:      newFakeRBAC(),
		msg:       &fakeMessaging{},
		notifier:  &fakeNotifier{},
		otp:       &fakeOTP{},
		clock:     clk,
		ledger:    ledger,
		jwt:       tokens,
		passwords: passwords,
	}

	f.uc = New(Dependency{
		RepoDB:        f.db,
		RepoMessaging: f.msg,
		RBAC:          f.rbac,
		Notifier:      f.notifier,
		Ledger:        ledger,
		OTP:           f.otp,
		Validator:     v,
		Config:        fakeConfig{},
		HMAC:          hmac,
		Bcrypt:        passwords,
		UID:           &fakeUID{},
		Clock:         clk,
		JWT:           tokens,
		Instrument:    instrument.NewNoop(),
	})

	return f
}

// seedUser registers an active account directly in the fakes.
func (f *fixture) seedUser(t *testing.T, id int64, email, password string, roles ...string) {
	t.Helper()

	hashed, err := f.passwords.Hash(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	f.db.users[email] = &entity.User{ID: id, Email: email, FullName: "Seeded User", Status: entity.UserStatusActive}
	f.db.logins[email] = &entity.UserLoginInfo{
		ID:       id,
		Email:    email,
		FullName: "Seeded User",
		Status:   entity.UserStatusActive,
		Password: string(hashed),
	}
	f.rbac.roles[id] = roles
}

func wantCode(t *testing.T, err error, code goerror.Code) *goerror.Error {
	t.Helper()

	var gerr *goerror.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *goerror.Error, got %v", err)
	}
	if gerr.Code() != code {
		t.Fatalf("expected code %s, got %s (%s)", code, gerr.Code(), gerr.Msg())
	}
	return gerr
}

func TestRegistrationFlow(t *testing.T) {
	ctx := context.Background()

	t.Run("SendRejectsRegisteredEmail", func(t *testing.T) {
		f := newFixture(t)
		f.seedUser(t, 1, "jane@example.com", "Sup3rSecret!", entity.RoleCustomer)

		_, err := f.uc.RegistrationOTPSend(ctx, RegistrationOTPSendInput{Email: "jane@example.com"})

		wantCode(t, err, goerror.CodeConflict)
		if len(f.notifier.sent) != 0 {
			t.Fatalf("no email should be sent for a registered address")
		}
	})

	t.Run("DeliveryFailureLeavesNoChallenge", func(t *testing.T) {
		f := newFixture(t)
		f.notifier.err = errors.New("smtp connection refused")

		_, err := f.uc.RegistrationOTPSend(ctx, RegistrationOTPSendInput{Email: "jane@example.com"})

		wantCode(t, err, goerror.CodeUnavailable)
		if f.ledger.Len() != 0 {
			t.Fatalf("failed delivery must not record a challenge")
		}
	})

	t.Run("DeliveryTimeoutReportedAsTimeout", func(t *testing.T) {
		f := newFixture(t)
		f.notifier.err = context.DeadlineExceeded

		_, err := f.uc.RegistrationOTPSend(ctx, RegistrationOTPSendInput{Email: "jane@example.com"})

		wantCode(t, err, goerror.CodeTimeout)
		if f.ledger.Len() != 0 {
			t.Fatalf("timed out delivery must not record a challenge")
		}
	})

	t.Run("HappyPath", func(t *testing.T) {
		// Arrange
		f := newFixture(t)

		// Act
		sendOut, err := f.uc.RegistrationOTPSend(ctx, RegistrationOTPSendInput{Email: "Jane@Example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Assert delivery before ledger write, with normalized email.
		if len(f.notifier.sent) != 1 {
			t.Fatalf("expected one email, got %d", len(f.notifier.sent))
		}
		if f.notifier.sent[0].to != "jane@example.com" {
			t.Fatalf("expected normalized recipient, got %q", f.notifier.sent[0].to)
		}
		if !strings.Contains(f.notifier.sent[0].body, f.otp.last()) {
			t.Fatalf("email body should contain the passcode")
		}
		if got, want := sendOut.ExpiresAt, f.clock.now.Add(5*time.Minute); !got.Equal(want) {
			t.Fatalf("expected expiry %v, got %v", want, got)
		}

		// Act: verify then register.
		if err := f.uc.RegistrationOTPVerify(ctx, RegistrationOTPVerifyInput{
			Email: "jane@example.com",
			Code:  f.otp.last(),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		regOut, err := f.uc.Register(ctx, RegisterInput{
			Email:    "jane@example.com",
			Password: "Sup3rSecret!",
			FullName: "Jane Austen",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Assert
		if regOut.UserID == 0 {
			t.Fatalf("expected a user id")
		}
		if got := f.rbac.grants[regOut.UserID]; !slices.Equal(got, []string{entity.RoleCustomer}) {
			t.Fatalf("expected default Customer grant, got %v", got)
		}
		if len(f.msg.events) != 1 || f.msg.events[0].UserID != regOut.UserID {
			t.Fatalf("expected user registered event, got %v", f.msg.events)
		}
		if !f.passwords.Verify(f.db.logins["jane@example.com"].Password, "Sup3rSecret!") {
			t.Fatalf("stored password hash should verify")
		}

		// Registration consumed the verified challenge: nothing is left in
		// the ledger and replaying the spent code finds no challenge.
		if f.ledger.Len() != 0 {
			t.Fatalf("expected the verified challenge to be consumed, %d left", f.ledger.Len())
		}
		err = f.uc.RegistrationOTPVerify(ctx, RegistrationOTPVerifyInput{
			Email: "jane@example.com",
			Code:  f.otp.last(),
		})
		wantCode(t, err, goerror.CodeNotFound)
	})

	t.Run("RegisterWithoutChallenge", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.Register(ctx, RegisterInput{
			Email:    "jane@example.com",
			Password: "Sup3rSecret!",
			FullName: "Jane Austen",
		})

		wantCode(t, err, goerror.CodeNotFound)
	})

	t.Run("RegisterWithoutVerification", func(t *testing.T) {
		f := newFixture(t)
		if _, err := f.uc.RegistrationOTPSend(ctx, RegistrationOTPSendInput{Email: "jane@example.com"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := f.uc.Register(ctx, RegisterInput{
			Email:    "jane@example.com",
			Password: "Sup3rSecret!",
			FullName: "Jane Austen",
		})

		wantCode(t, err, goerror.CodeUnauthorized)
	})

	t.Run("SupersededCodeIsRejected", func(t *testing.T) {
		f := newFixture(t)
		if _, err := f.uc.RegistrationOTPSend(ctx, RegistrationOTPSendInput{Email: "jane@example.com"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		firstCode := f.otp.last()
		if _, err := f.uc.RegistrationOTPSend(ctx, RegistrationOTPSendInput{Email: "jane@example.com"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		err := f.uc.RegistrationOTPVerify(ctx, RegistrationOTPVerifyInput{Email: "jane@example.com", Code: firstCode})

		// The second send replaced the challenge under the same key, so the
		// first code now compares against the latest hash and is rejected as
		// incorrect rather than missing.
		gerr := wantCode(t, err, goerror.CodeUnauthorized)
		if !strings.Contains(gerr.Msg(), "incorrect") {
			t.Fatalf("expected an incorrect-code rejection, got %q", gerr.Msg())
		}
	})

	t.Run("ExpiryDominatesVerification", func(t *testing.T) {
		f := newFixture(t)
		if _, err := f.uc.RegistrationOTPSend(ctx, RegistrationOTPSendInput{Email: "jane@example.com"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := f.uc.RegistrationOTPVerify(ctx, RegistrationOTPVerifyInput{
			Email: "jane@example.com",
			Code:  f.otp.last(),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		f.clock.now = f.clock.now.Add(10 * time.Minute)

		_, err := f.uc.Register(ctx, RegisterInput{
			Email:    "jane@example.com",
			Password: "Sup3rSecret!",
			FullName: "Jane Austen",
		})

		gerr := wantCode(t, err, goerror.CodeUnauthorized)
		if !strings.Contains(gerr.Msg(), "expired") {
			t.Fatalf("expected expiry message, got %q", gerr.Msg())
		}
	})
}

func TestLoginFlow(t *testing.T) {
	ctx := context.Background()

	t.Run("WrongPassword", func(t *testing.T) {
		f := newFixture(t)
		f.seedUser(t, 1, "jane@example.com", "Sup3rSecret!", entity.RoleCustomer)

		_, err := f.uc.Login(ctx, LoginInput{
			Email:    "jane@example.com",
			Password: "WrongPassword",
			Role:     entity.RoleCustomer,
		})

		wantCode(t, err, goerror.CodeUnauthorized)
		if len(f.notifier.sent) != 0 {
			t.Fatalf("no email should be sent for bad credentials")
		}
	})

	t.Run("UnknownEmailLooksLikeBadPassword", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.Login(ctx, LoginInput{
			Email:    "ghost@example.com",
			Password: "Sup3rSecret!",
			Role:     entity.RoleCustomer,
		})

		gerr := wantCode(t, err, goerror.CodeUnauthorized)
		if gerr.Msg() != "invalid email or password" {
			t.Fatalf("unknown email must not be distinguishable, got %q", gerr.Msg())
		}
	})

	t.Run("RoleNotHeldSendsNoEmail", func(t *testing.T) {
		f := newFixture(t)
		f.seedUser(t, 1, "jane@example.com", "Sup3rSecret!", entity.RoleCustomer)

		_, err := f.uc.Login(ctx, LoginInput{
			Email:    "jane@example.com",
			Password: "Sup3rSecret!",
			Role:     entity.RoleAdmin,
		})

		wantCode(t, err, goerror.CodeForbidden)
		if len(f.notifier.sent) != 0 {
			t.Fatalf("role mismatch must never trigger an email")
		}
		if f.ledger.Len() != 0 {
			t.Fatalf("role mismatch must never record a challenge")
		}
	})

	t.Run("BannedAccount", func(t *testing.T) {
		f := newFixture(t)
		f.seedUser(t, 1, "jane@example.com", "Sup3rSecret!", entity.RoleCustomer)
		f.db.logins["jane@example.com"].Status = entity.UserStatusBanned

		_, err := f.uc.Login(ctx, LoginInput{
			Email:    "jane@example.com",
			Password: "Sup3rSecret!",
			Role:     entity.RoleCustomer,
		})

		wantCode(t, err, goerror.CodeForbidden)
	})

	t.Run("HappyPath", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.seedUser(t, 7, "jane@example.com", "Sup3rSecret!", entity.RoleCustomer, entity.RoleStoreUser)

		// Act
		if _, err := f.uc.Login(ctx, LoginInput{
			Email:    "jane@example.com",
			Password: "Sup3rSecret!",
			Role:     entity.RoleCustomer,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out, err := f.uc.LoginOTPVerify(ctx, LoginOTPVerifyInput{
			Email: "jane@example.com",
			Role:  entity.RoleCustomer,
			Code:  f.otp.last(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Assert
		claims, err := f.jwt.Verify(out.AccessToken)
		if err != nil {
			t.Fatalf("minted token should verify: %v", err)
		}
		if claims.UserID != 7 {
			t.Fatalf("expected user id 7 in claims, got %d", claims.UserID)
		}
		if !slices.Equal(claims.Roles, []string{entity.RoleCustomer, entity.RoleStoreUser}) {
			t.Fatalf("token must carry all held roles, got %v", claims.Roles)
		}
		if out.Destination != "/customers/7" {
			t.Fatalf("expected customer destination with id, got %q", out.Destination)
		}
	})

	t.Run("CodeIsSingleUse", func(t *testing.T) {
		f := newFixture(t)
		f.seedUser(t, 7, "jane@example.com", "Sup3rSecret!", entity.RoleCustomer)

		if _, err := f.uc.Login(ctx, LoginInput{
			Email:    "jane@example.com",
			Password: "Sup3rSecret!",
			Role:     entity.RoleCustomer,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		in := LoginOTPVerifyInput{Email: "jane@example.com", Role: entity.RoleCustomer, Code: f.otp.last()}
		if _, err := f.uc.LoginOTPVerify(ctx, in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := f.uc.LoginOTPVerify(ctx, in)
		wantCode(t, err, goerror.CodeNotFound)
	})

	t.Run("ChallengeIsRoleScoped", func(t *testing.T) {
		f := newFixture(t)
		f.seedUser(t, 7, "jane@example.com", "Sup3rSecret!", entity.RoleCustomer, entity.RoleStoreUser)

		if _, err := f.uc.Login(ctx, LoginInput{
			Email:    "jane@example.com",
			Password: "Sup3rSecret!",
			Role:     entity.RoleCustomer,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := f.uc.LoginOTPVerify(ctx, LoginOTPVerifyInput{
			Email: "jane@example.com",
			Role:  entity.RoleStoreUser,
			Code:  f.otp.last(),
		})

		wantCode(t, err, goerror.CodeNotFound)
	})

	t.Run("RolesResolvedAtConsumptionTime", func(t *testing.T) {
		f := newFixture(t)
		f.seedUser(t, 7, "jane@example.com", "Sup3rSecret!", entity.RoleCustomer)

		if _, err := f.uc.Login(ctx, LoginInput{
			Email:    "jane@example.com",
			Password: "Sup3rSecret!",
			Role:     entity.RoleCustomer,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Membership changes between send and verify.
		f.rbac.roles[7] = append(f.rbac.roles[7], entity.RoleStoreUser)

		out, err := f.uc.LoginOTPVerify(ctx, LoginOTPVerifyInput{
			Email: "jane@example.com",
			Role:  entity.RoleCustomer,
			Code:  f.otp.last(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !slices.Contains(out.Roles, entity.RoleStoreUser) {
			t.Fatalf("token roles must reflect membership at consumption, got %v", out.Roles)
		}
	})
}

func TestPasswordResetFlow(t *testing.T) {
	ctx := context.Background()

	t.Run("UnknownEmailReported", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.PasswordOTPSend(ctx, PasswordOTPSendInput{Email: "ghost@example.com"})

		wantCode(t, err, goerror.CodeNotFound)
		if len(f.notifier.sent) != 0 {
			t.Fatalf("no email should be sent for an unknown address")
		}
	})

	t.Run("HappyPath", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.seedUser(t, 7, "jane@example.com", "OldSecret99!", entity.RoleCustomer)

		// Act
		if _, err := f.uc.PasswordOTPSend(ctx, PasswordOTPSendInput{Email: "jane@example.com"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := f.uc.PasswordOTPVerify(ctx, PasswordOTPVerifyInput{
			Email: "jane@example.com",
			Code:  f.otp.last(),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := f.uc.PasswordReset(ctx, PasswordResetInput{
			Email:       "jane@example.com",
			NewPassword: "BrandNewSecret1!",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Assert
		stored, ok := f.db.passwords[7]
		if !ok {
			t.Fatalf("expected password to be updated")
		}
		if !f.passwords.Verify(stored, "BrandNewSecret1!") {
			t.Fatalf("new password hash should verify")
		}

		// A verified code grants exactly one reset.
		err := f.uc.PasswordReset(ctx, PasswordResetInput{
			Email:       "jane@example.com",
			NewPassword: "AnotherSecret2!",
		})
		wantCode(t, err, goerror.CodeNotFound)
	})

	t.Run("ResetCodeCannotCompleteRegistration", func(t *testing.T) {
		f := newFixture(t)
		f.seedUser(t, 7, "jane@example.com", "OldSecret99!", entity.RoleCustomer)

		if _, err := f.uc.PasswordOTPSend(ctx, PasswordOTPSendInput{Email: "jane@example.com"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		err := f.uc.RegistrationOTPVerify(ctx, RegistrationOTPVerifyInput{
			Email: "jane@example.com",
			Code:  f.otp.last(),
		})

		wantCode(t, err, goerror.CodeNotFound)
	})
}
