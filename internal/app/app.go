package app

import (
	"context"
	"net/http"

	"github.com/casbin/casbin/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/gocommerce/internal/pkg/clock"
	"github.com/shandysiswandi/gocommerce/internal/pkg/config"
	"github.com/shandysiswandi/gocommerce/internal/pkg/goroutine"
	"github.com/shandysiswandi/gocommerce/internal/pkg/hash"
	"github.com/shandysiswandi/gocommerce/internal/pkg/idempotency"
	"github.com/shandysiswandi/gocommerce/internal/pkg/instrument"
	"github.com/shandysiswandi/gocommerce/internal/pkg/jwt"
	"github.com/shandysiswandi/gocommerce/internal/pkg/mail"
	"github.com/shandysiswandi/gocommerce/internal/pkg/messaging"
	"github.com/shandysiswandi/gocommerce/internal/pkg/otp"
	"github.com/shandysiswandi/gocommerce/internal/pkg/otpledger"
	"github.com/shandysiswandi/gocommerce/internal/pkg/pgxcasbin"
	"github.com/shandysiswandi/gocommerce/internal/pkg/router"
	"github.com/shandysiswandi/gocommerce/internal/pkg/storage"
	"github.com/shandysiswandi/gocommerce/internal/pkg/uid"
	"github.com/shandysiswandi/gocommerce/internal/pkg/validator"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	hmac      hash.Hash
	bcrypt    hash.Hash
	uid       uid.NumberID
	uuid      uid.StringID
	oid       uid.StringID
	otp       otp.Generator
	ledger    *otpledger.Ledger
	jwt       jwt.JWT

	// resources
	dbConn        *pgxpool.Pool
	cacheConn     *redis.Client
	idemp         idempotency.Idempotency
	mail          mail.Mail
	messaging     messaging.Messaging
	storage       storage.Storage
	casbin        *casbin.Enforcer
	casbinWatcher *pgxcasbin.Watcher

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initOTPLedger()
	app.initDatabase()
	app.initCache()
	app.initMail()
	app.initStorage()
	app.initMessaging()
	app.initCasbin()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
