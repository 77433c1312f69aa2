package identity

import (
	"github.com/casbin/casbin/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/gocommerce/internal/identity/inbound"
	"github.com/shandysiswandi/gocommerce/internal/identity/outbound/db"
	"github.com/shandysiswandi/gocommerce/internal/identity/outbound/mailer"
	"github.com/shandysiswandi/gocommerce/internal/identity/outbound/mq"
	"github.com/shandysiswandi/gocommerce/internal/identity/outbound/rbac"
	"github.com/shandysiswandi/gocommerce/internal/identity/usecase"
	"github.com/shandysiswandi/gocommerce/internal/pkg/clock"
	"github.com/shandysiswandi/gocommerce/internal/pkg/config"
	"github.com/shandysiswandi/gocommerce/internal/pkg/hash"
	"github.com/shandysiswandi/gocommerce/internal/pkg/instrument"
	"github.com/shandysiswandi/gocommerce/internal/pkg/jwt"
	"github.com/shandysiswandi/gocommerce/internal/pkg/mail"
	"github.com/shandysiswandi/gocommerce/internal/pkg/messaging"
	"github.com/shandysiswandi/gocommerce/internal/pkg/otp"
	"github.com/shandysiswandi/gocommerce/internal/pkg/otpledger"
	"github.com/shandysiswandi/gocommerce/internal/pkg/router"
	"github.com/shandysiswandi/gocommerce/internal/pkg/uid"
	"github.com/shandysiswandi/gocommerce/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Enforcer   *casbin.Enforcer           `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Messaging  messaging.Messaging        `validate:"required"`
	Mail       mail.Mail                  `validate:"required"`
	Ledger     *otpledger.Ledger          `validate:"required"`
	OTP        otp.Generator              `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	HMAC       hash.Hash                  `validate:"required"`
	Bcrypt     hash.Hash                  `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	repoDB := db.NewDB(dep.DBConn, dep.Instrument)
	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument)
	roles := rbac.NewRBAC(dep.Enforcer, dep.Instrument)
	notifier := mailer.NewMailer(dep.Mail, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:        repoDB,
		RepoMessaging: repoMsg,
		RBAC:          roles,
		Notifier:      notifier,
		Ledger:        dep.Ledger,
		OTP:           dep.OTP,
		Validator:     dep.Validator,
		Config:        dep.Config,
		HMAC:          dep.HMAC,
		Bcrypt:        dep.Bcrypt,
		UID:           dep.UID,
		Clock:         dep.Clock,
		JWT:           dep.JWT,
		Instrument:    dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
