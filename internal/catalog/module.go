package catalog

import (
	"github.com/casbin/casbin/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shandysiswandi/gocommerce/internal/catalog/inbound"
	"github.com/shandysiswandi/gocommerce/internal/catalog/outbound/db"
	"github.com/shandysiswandi/gocommerce/internal/catalog/usecase"
	"github.com/shandysiswandi/gocommerce/internal/pkg/clock"
	"github.com/shandysiswandi/gocommerce/internal/pkg/config"
	"github.com/shandysiswandi/gocommerce/internal/pkg/instrument"
	"github.com/shandysiswandi/gocommerce/internal/pkg/router"
	"github.com/shandysiswandi/gocommerce/internal/pkg/storage"
	"github.com/shandysiswandi/gocommerce/internal/pkg/uid"
	"github.com/shandysiswandi/gocommerce/internal/pkg/validator"
)

type Dependency struct {
	DBConn     *pgxpool.Pool              `validate:"required"`
	Enforcer   *casbin.Enforcer           `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Storage    storage.Storage            `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	OID        uid.StringID               `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	repoDB := db.NewDB(dep.DBConn, dep.Instrument)

	uc := usecase.New(usecase.Dependency{
		RepoDB:     repoDB,
		Storage:    dep.Storage,
		Validator:  dep.Validator,
		Config:     dep.Config,
		UID:        dep.UID,
		OID:        dep.OID,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
		Enforcer:   dep.Enforcer,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
