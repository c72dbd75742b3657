package cache

import (
	"context"
	"sync"
	"time"

	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/employee"
)

const defaultTTL = 5 * time.Minute

type entry struct {
	emp       employee.Employee
	expiresAt time.Time
}

// EmployeeCache is a read-through cache over the employee repository, keyed
// by (organization, user). Correctness never depends on it: every miss falls
// through to the repository, and writes invalidate explicitly.
type EmployeeCache struct {
	repo    employee.EmployeeRepository
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]entry
}

func NewEmployeeCache(repo employee.EmployeeRepository) *EmployeeCache {
	return &EmployeeCache{
		repo:    repo,
		ttl:     defaultTTL,
		entries: make(map[string]entry),
	}
}

func key(organizationID, userID string) string {
	return organizationID + ":" + userID
}

// GetByUserAndOrganization resolves tenant membership, serving from cache
// when fresh.
func (c *EmployeeCache) GetByUserAndOrganization(ctx context.Context, userID string, organizationID string) (employee.Employee, error) {
	k := key(organizationID, userID)

	c.mu.RLock()
	e, ok := c.entries[k]
	c.mu.RUnlock()
	if ok && time.Now().Before(e.expiresAt) {
		return e.emp, nil
	}

	emp, err := c.repo.GetByUserAndOrganization(ctx, userID, organizationID)
	if err != nil {
		return employee.Employee{}, err
	}

	c.mu.Lock()
	c.entries[k] = entry{emp: emp, expiresAt: time.Now().Add(c.ttl)}
	c.mu.Unlock()

	return emp, nil
}

// Invalidate drops the cached membership for one (organization, user) pair.
// Called on every employee mutation.
func (c *EmployeeCache) Invalidate(organizationID string, userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key(organizationID, userID))
}

// InvalidateOrganization drops every cached membership of one organization.
func (c *EmployeeCache) InvalidateOrganization(organizationID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	prefix := organizationID + ":"
	for k := range c.entries {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(c.entries, k)
		}
	}
}
