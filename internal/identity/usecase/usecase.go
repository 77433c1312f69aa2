package usecase

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shandysiswandi/gocommerce/internal/identity/entity"
	"github.com/shandysiswandi/gocommerce/internal/pkg/clock"
	"github.com/shandysiswandi/gocommerce/internal/pkg/config"
	"github.com/shandysiswandi/gocommerce/internal/pkg/goerror"
	"github.com/shandysiswandi/gocommerce/internal/pkg/hash"
	"github.com/shandysiswandi/gocommerce/internal/pkg/instrument"
	"github.com/shandysiswandi/gocommerce/internal/pkg/jwt"
	"github.com/shandysiswandi/gocommerce/internal/pkg/otp"
	"github.com/shandysiswandi/gocommerce/internal/pkg/otpledger"
	"github.com/shandysiswandi/gocommerce/internal/pkg/uid"
	"github.com/shandysiswandi/gocommerce/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type UserRegisteredEvent struct {
	UserID   int64
	Email    string
	FullName string
	Role     string
}

type repoMessaging interface {
	PublishUserRegistered(ctx context.Context, msg UserRegisteredEvent) error
}

type repoDB interface {
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByID(ctx context.Context, id int64) (*entity.User, error)
	GetUserLoginInfo(ctx context.Context, email string) (*entity.UserLoginInfo, error)
	CreateUser(ctx context.Context, user entity.NewUser, passwordHash string) error
	UpdateUserPassword(ctx context.Context, userID int64, passwordHash string) error
}

type rbac interface {
	RolesOf(ctx context.Context, userID int64) ([]string, error)
	Grant(ctx context.Context, userID int64, role string) error
}

// notifier delivers the plaintext passcode out of band. Delivery is
// synchronous so a failed send can prevent the challenge from ever being
// written.
type notifier interface {
	Send(ctx context.Context, to, subject, body string) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	rbac          rbac
	notifier      notifier
	ledger        *otpledger.Ledger
	otp           otp.Generator
	validator     validator.Validator
	cfg           config.Config
	hmac          hash.Hash
	bcrypt        hash.Hash
	uid           uid.NumberID
	clock         clock.Clocker
	jwt           jwt.JWT
	ins           instrument.Instrumentation
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	RBAC          rbac
	Notifier      notifier
	Ledger        *otpledger.Ledger
	OTP           otp.Generator
	Validator     validator.Validator
	Config        config.Config
	HMAC          hash.Hash
	Bcrypt        hash.Hash
	UID           uid.NumberID
	Clock         clock.Clocker
	JWT           jwt.JWT
	Instrument    instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		rbac:          dep.RBAC,
		notifier:      dep.Notifier,
		ledger:        dep.Ledger,
		otp:           dep.OTP,
		validator:     dep.Validator,
		cfg:           dep.Config,
		hmac:          dep.HMAC,
		bcrypt:        dep.Bcrypt,
		uid:           dep.UID,
		clock:         dep.Clock,
		jwt:           dep.JWT,
		ins:           dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.usecase").Start(ctx, name)
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

func (s *Usecase) ensureUserStatusAllowed(ctx context.Context, userID int64, status entity.UserStatus) error {
	switch status.Ensure() {
	case entity.UserStatusUnknown:
		slog.WarnContext(ctx, "user account status is unrecognized", "user_id", userID)
		return goerror.NewBusiness("account status is unrecognized", goerror.CodeForbidden)

	case entity.UserStatusBanned:
		slog.WarnContext(ctx, "user account is banned", "user_id", userID)
		return goerror.NewBusiness("account is banned", goerror.CodeForbidden)

	case entity.UserStatusInactive:
		slog.WarnContext(ctx, "user account is deactivated", "user_id", userID)
		return goerror.NewBusiness("account is deactivated", goerror.CodeForbidden)

	default:
		return nil
	}
}

// rejectChallenge translates a ledger outcome into a caller-facing rejection.
// Unknown keys report not-found; everything else is an authorization failure
// with the reason in the message.
func rejectChallenge(res otpledger.Result) error {
	switch res {
	case otpledger.ResultNotFound:
		return goerror.NewBusiness("no pending verification code, please request a new one", goerror.CodeNotFound)
	case otpledger.ResultExpired:
		return goerror.NewBusiness("verification code has expired, please request a new one", goerror.CodeUnauthorized)
	case otpledger.ResultMismatch:
		return goerror.NewBusiness("incorrect verification code", goerror.CodeUnauthorized)
	case otpledger.ResultNotVerified:
		return goerror.NewBusiness("verification code has not been verified", goerror.CodeUnauthorized)
	default:
		return nil
	}
}

// destinationFor resolves the post-login landing route for the claimed role.
// The map is configuration data; a Customer route may carry an {id}
// placeholder substituted with the user id.
func (s *Usecase) destinationFor(role string, userID int64) string {
	dest, ok := s.cfg.GetMap("modules.identity.role_destinations")[role]
	if !ok {
		return "/"
	}

	return strings.ReplaceAll(dest, "{id}", strconv.FormatInt(userID, 10))
}
