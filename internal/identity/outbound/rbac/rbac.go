package rbac

import (
	"context"
	"strconv"

	"github.com/casbin/casbin/v3"
	"github.com/shandysiswandi/gocommerce/internal/pkg/instrument"
	"go.opentelemetry.io/otel/codes"
)

// RBAC resolves role membership from the casbin grouping rules. Subjects are
// the decimal user id, matching the subject claim carried by access tokens.
type RBAC struct {
	enforcer *casbin.Enforcer
	ins      instrument.Instrumentation
}

func NewRBAC(enforcer *casbin.Enforcer, ins instrument.Instrumentation) *RBAC {
	return &RBAC{enforcer: enforcer, ins: ins}
}

func (r *RBAC) RolesOf(ctx context.Context, userID int64) ([]string, error) {
	_, span := r.ins.Tracer("identity.outbound.rbac").Start(ctx, "RolesOf")
	defer span.End()

	roles, err := r.enforcer.GetRolesForUser(strconv.FormatInt(userID, 10))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return roles, nil
}

func (r *RBAC) Grant(ctx context.Context, userID int64, role string) error {
	_, span := r.ins.Tracer("identity.outbound.rbac").Start(ctx, "Grant")
	defer span.End()

	if _, err := r.enforcer.AddRoleForUser(strconv.FormatInt(userID, 10), role); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
