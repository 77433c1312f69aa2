package usecase

import (
	"context"
	"log/slog"

	"github.com/casbin/casbin/v3"
	"github.com/shandysiswandi/gocommerce/internal/catalog/entity"
	"github.com/shandysiswandi/gocommerce/internal/pkg/clock"
	"github.com/shandysiswandi/gocommerce/internal/pkg/config"
	"github.com/shandysiswandi/gocommerce/internal/pkg/goerror"
	"github.com/shandysiswandi/gocommerce/internal/pkg/instrument"
	"github.com/shandysiswandi/gocommerce/internal/pkg/jwt"
	"github.com/shandysiswandi/gocommerce/internal/pkg/storage"
	"github.com/shandysiswandi/gocommerce/internal/pkg/uid"
	"github.com/shandysiswandi/gocommerce/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	GetCategoryList(ctx context.Context) ([]entity.Category, error)
	CreateCategory(ctx context.Context, category entity.Category) error
	GetProductList(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, int64, error)
	GetProductByID(ctx context.Context, id int64) (*entity.Product, error)
	CreateProduct(ctx context.Context, product entity.NewProduct) error
	UpdateProductImage(ctx context.Context, id int64, imageURL string) error
}

type Usecase struct {
	repoDB    repoDB
	storage   storage.Storage
	validator validator.Validator
	cfg       config.Config
	uid       uid.NumberID
	oid       uid.StringID
	clock     clock.Clocker
	ins       instrument.Instrumentation
	enforcer  *casbin.Enforcer
}

type Dependency struct {
	RepoDB     repoDB
	Storage    storage.Storage
	Validator  validator.Validator
	Config     config.Config
	UID        uid.NumberID
	OID        uid.StringID
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
	Enforcer   *casbin.Enforcer
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		storage:   dep.Storage,
		validator: dep.Validator,
		cfg:       dep.Config,
		uid:       dep.UID,
		oid:       dep.OID,
		clock:     dep.Clock,
		ins:       dep.Instrument,
		enforcer:  dep.Enforcer,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("catalog.usecase").Start(ctx, name)
}

func (s *Usecase) authenticatedAndAuthorized(ctx context.Context, obj, act string) (*jwt.Claims, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	ok, err := s.enforcer.Enforce(clm.Subject, obj, act)
	if err != nil {
		slog.ErrorContext(ctx, "failed to check authorization", "user_id", clm.Subject, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !ok {
		return nil, goerror.NewBusiness("Account not allowed", goerror.CodeForbidden)
	}

	return clm, nil
}
