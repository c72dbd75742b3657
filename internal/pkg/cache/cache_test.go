package cache

import (
	"context"
	"testing"

	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRepo struct {
	members map[string]employee.Employee // keyed by orgID:userID
	calls   int
}

func (r *countingRepo) GetByUserAndOrganization(_ context.Context, userID string, organizationID string) (employee.Employee, error) {
	r.calls++
	emp, ok := r.members[organizationID+":"+userID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *countingRepo) GetByID(context.Context, string, string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *countingRepo) ListByOrganization(context.Context, string) ([]employee.Employee, error) {
	return nil, nil
}

func (r *countingRepo) ListOrganizationIDsByUser(context.Context, string) ([]string, error) {
	return nil, nil
}

func (r *countingRepo) Create(_ context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	return newEmployee, nil
}

func (r *countingRepo) Update(context.Context, string, employee.UpdateEmployeeRequest) error {
	return nil
}

func (r *countingRepo) SoftDelete(context.Context, string, string) error {
	return nil
}

func seededRepo() *countingRepo {
	return &countingRepo{members: map[string]employee.Employee{
		"org-1:user-1": {ID: "emp-1", UserID: "user-1", OrganizationID: "org-1", Status: employee.StatusActive},
		"org-1:user-2": {ID: "emp-2", UserID: "user-2", OrganizationID: "org-1", Status: employee.StatusActive},
		"org-2:user-1": {ID: "emp-3", UserID: "user-1", OrganizationID: "org-2", Status: employee.StatusActive},
	}}
}

func TestEmployeeCache_ServesSecondLookupFromCache(t *testing.T) {
	ctx := context.Background()
	repo := seededRepo()
	c := NewEmployeeCache(repo)

	first, err := c.GetByUserAndOrganization(ctx, "user-1", "org-1")
	require.NoError(t, err)
	second, err := c.GetByUserAndOrganization(ctx, "user-1", "org-1")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, repo.calls)
}

func TestEmployeeCache_MissesAreNotCached(t *testing.T) {
	ctx := context.Background()
	repo := seededRepo()
	c := NewEmployeeCache(repo)

	_, err := c.GetByUserAndOrganization(ctx, "user-9", "org-1")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	_, err = c.GetByUserAndOrganization(ctx, "user-9", "org-1")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	assert.Equal(t, 2, repo.calls, "a miss must fall through every time")
}

func TestEmployeeCache_KeysAreTenantScoped(t *testing.T) {
	ctx := context.Background()
	repo := seededRepo()
	c := NewEmployeeCache(repo)

	a, err := c.GetByUserAndOrganization(ctx, "user-1", "org-1")
	require.NoError(t, err)
	b, err := c.GetByUserAndOrganization(ctx, "user-1", "org-2")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, repo.calls)
}

func TestEmployeeCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	repo := seededRepo()
	c := NewEmployeeCache(repo)

	_, err := c.GetByUserAndOrganization(ctx, "user-1", "org-1")
	require.NoError(t, err)

	c.Invalidate("org-1", "user-1")

	_, err = c.GetByUserAndOrganization(ctx, "user-1", "org-1")
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}

func TestEmployeeCache_InvalidateOrganization(t *testing.T) {
	ctx := context.Background()
	repo := seededRepo()
	c := NewEmployeeCache(repo)

	for _, pair := range [][2]string{{"user-1", "org-1"}, {"user-2", "org-1"}, {"user-1", "org-2"}} {
		_, err := c.GetByUserAndOrganization(ctx, pair[0], pair[1])
		require.NoError(t, err)
	}
	require.Equal(t, 3, repo.calls)

	c.InvalidateOrganization("org-1")

	// org-1 entries reload; the org-2 entry is still cached.
	_, _ = c.GetByUserAndOrganization(ctx, "user-1", "org-1")
	_, _ = c.GetByUserAndOrganization(ctx, "user-2", "org-1")
	_, _ = c.GetByUserAndOrganization(ctx, "user-1", "org-2")
	assert.Equal(t, 5, repo.calls)
}
