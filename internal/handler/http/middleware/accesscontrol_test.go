package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/ability"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/employee"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/cache"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/jwt"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/requestctx"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memberRepo struct {
	members map[string]employee.Employee // keyed by orgID:userID
}

func (r *memberRepo) GetByUserAndOrganization(_ context.Context, userID string, organizationID string) (employee.Employee, error) {
	emp, ok := r.members[organizationID+":"+userID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *memberRepo) GetByID(context.Context, string, string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *memberRepo) ListByOrganization(context.Context, string) ([]employee.Employee, error) {
	return nil, nil
}

func (r *memberRepo) ListOrganizationIDsByUser(context.Context, string) ([]string, error) {
	return nil, nil
}

func (r *memberRepo) Create(_ context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	return newEmployee, nil
}

func (r *memberRepo) Update(context.Context, string, employee.UpdateEmployeeRequest) error {
	return nil
}

func (r *memberRepo) SoftDelete(context.Context, string, string) error {
	return nil
}

func newTestStack(members map[string]employee.Employee) (jwt.Service, *AccessControl) {
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
	employeeCache := cache.NewEmployeeCache(&memberRepo{members: members})
	return jwtService, NewAccessControl(employeeCache)
}

// serveWithTenant runs a request with the given bearer token through
// Verifier, AuthRequired and WithTenant, recording what reaches the handler.
func serveWithTenant(t *testing.T, jwtService jwt.Service, ac *AccessControl, token string, inner http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	handler := jwtauth.Verifier(jwtService.JWTAuth())(
		AuthRequired(jwtService.JWTAuth())(
			ac.WithTenant(inner),
		),
	)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestWithTenant_NoTenantClaimRejectedBeforeLookup(t *testing.T) {
	jwtService, ac := newTestStack(nil)

	// Access token without tenant claims: authenticated but no organization
	// selected. The membership lookup must never run.
	token, _, err := jwtService.GenerateAccessToken("user-1", "u@example.com", nil)
	require.NoError(t, err)

	rec := serveWithTenant(t, jwtService, ac, token, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a tenant claim")
	})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "No active organization selected")
}

func TestWithTenant_NonMemberRejected(t *testing.T) {
	jwtService, ac := newTestStack(map[string]employee.Employee{})

	token, _, err := jwtService.GenerateAccessToken("user-1", "u@example.com", &jwt.TenantClaims{
		OrganizationID: "org-1",
		EmployeeID:     "emp-1",
		Designation:    "employee",
	})
	require.NoError(t, err)

	rec := serveWithTenant(t, jwtService, ac, token, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for a non-member")
	})

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Not a member of this organization")
}

func TestWithTenant_InactiveMemberRejected(t *testing.T) {
	jwtService, ac := newTestStack(map[string]employee.Employee{
		"org-1:user-1": {
			ID:             "emp-1",
			UserID:         "user-1",
			OrganizationID: "org-1",
			Designation:    employee.DesignationEmployee,
			Status:         employee.StatusTerminated,
		},
	})

	token, _, err := jwtService.GenerateAccessToken("user-1", "u@example.com", &jwt.TenantClaims{
		OrganizationID: "org-1",
		EmployeeID:     "emp-1",
		Designation:    "employee",
	})
	require.NoError(t, err)

	rec := serveWithTenant(t, jwtService, ac, token, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for a terminated member")
	})

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestWithTenant_InjectsEmployeeAndAbility(t *testing.T) {
	jwtService, ac := newTestStack(map[string]employee.Employee{
		"org-1:user-1": {
			ID:             "emp-1",
			UserID:         "user-1",
			OrganizationID: "org-1",
			Designation:    employee.DesignationHR,
			Status:         employee.StatusActive,
		},
	})

	token, _, err := jwtService.GenerateAccessToken("user-1", "u@example.com", &jwt.TenantClaims{
		OrganizationID: "org-1",
		EmployeeID:     "emp-1",
		Designation:    "hr",
	})
	require.NoError(t, err)

	var gotEmployee employee.Employee
	var gotSet ability.Set
	rec := serveWithTenant(t, jwtService, ac, token, func(w http.ResponseWriter, r *http.Request) {
		emp, ok := requestctx.Employee(r.Context())
		require.True(t, ok)
		gotEmployee = emp
		gotSet = requestctx.Ability(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "emp-1", gotEmployee.ID)
	assert.True(t, gotSet.Can(ability.CapabilityManage, ability.SubjectEmployee))
	assert.False(t, gotSet.Can(ability.CapabilityUpdate, ability.SubjectOrganization))
}

func TestWithTenant_InvalidTokenRejected(t *testing.T) {
	jwtService, ac := newTestStack(nil)

	rec := serveWithTenant(t, jwtService, ac, "not-a-token", func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with an invalid token")
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWithTenant_RefreshTokenRejected(t *testing.T) {
	jwtService, ac := newTestStack(nil)

	// Refresh tokens authenticate the refresh endpoint only.
	token, _, err := jwtService.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	rec := serveWithTenant(t, jwtService, ac, token, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with a refresh token")
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func withPrincipal(designation employee.Designation) *http.Request {
	emp := employee.Employee{
		ID:             "emp-1",
		OrganizationID: "org-1",
		Designation:    designation,
		Status:         employee.StatusActive,
	}
	ctx := requestctx.WithEmployee(context.Background(), emp)
	ctx = requestctx.WithAbility(ctx, ability.BuildForEmployee(&emp))
	return httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
}

func TestRequire(t *testing.T) {
	gate := Require(ability.CapabilityCreate, ability.SubjectPayroll)
	handler := gate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, withPrincipal(employee.DesignationHR))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, withPrincipal(employee.DesignationEmployee))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireOwnedOr_PassesOnSelfScopedGrant(t *testing.T) {
	gate := RequireOwnedOr(ability.CapabilityRead, ability.SubjectPayroll)
	handler := gate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Plain employees hold a self-scoped payroll read; the route lets them
	// through and the service narrows to their own rows.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, withPrincipal(employee.DesignationEmployee))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, withPrincipal(employee.DesignationHR))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireOwnedOr_DeniesWithoutAnyGrant(t *testing.T) {
	gate := RequireOwnedOr(ability.CapabilityUpdate, ability.SubjectSalarySettings)
	handler := gate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, withPrincipal(employee.DesignationEmployee))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// No principal in context at all.
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
