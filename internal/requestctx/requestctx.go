package requestctx

import (
	"context"

	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/ability"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/employee"
)

type ctxKey string

const (
	employeeKey ctxKey = "employee"
	abilityKey  ctxKey = "ability"
)

// WithEmployee stores the resolved tenant-scoped employee for the request.
func WithEmployee(ctx context.Context, emp employee.Employee) context.Context {
	return context.WithValue(ctx, employeeKey, emp)
}

// Employee returns the employee injected by the access-control middleware.
func Employee(ctx context.Context) (employee.Employee, bool) {
	emp, ok := ctx.Value(employeeKey).(employee.Employee)
	return emp, ok
}

// WithAbility stores the ability set built for the request principal.
func WithAbility(ctx context.Context, set ability.Set) context.Context {
	return context.WithValue(ctx, abilityKey, set)
}

// Ability returns the ability set injected by the access-control middleware.
// Absent value means the empty set, so checks fail closed.
func Ability(ctx context.Context) ability.Set {
	if set, ok := ctx.Value(abilityKey).(ability.Set); ok {
		return set
	}
	return ability.Set{}
}
