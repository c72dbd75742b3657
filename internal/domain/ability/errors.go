package ability

import "errors"

// Enforcement failures. All three are terminal for the request and differ
// only by error, not control flow.
var (
	ErrNoActiveTenant = errors.New("no active organization selected")
	ErrNotAMember     = errors.New("not a member of this organization")
	ErrForbidden      = errors.New("insufficient permissions")
)
