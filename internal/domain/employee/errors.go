package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrAlreadyMember    = errors.New("user is already a member of this organization")
	ErrEmployeeInactive = errors.New("employee is not active")
)
