package response

import (
	"errors"
	"net/http"

	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/ability"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/attendance"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/auth"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/document"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/employee"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/invitation"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/leave"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/news"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/organization"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/payroll"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/recruitment"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/user"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthFailed):
		Unauthorized(w, "OAuth sign-in failed")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Access control errors
	case errors.Is(err, ability.ErrNoActiveTenant):
		Forbidden(w, "No active organization selected")
	case errors.Is(err, ability.ErrNotAMember):
		Forbidden(w, "Not a member of this organization")
	case errors.Is(err, ability.ErrForbidden):
		Forbidden(w, "You are not allowed to perform this action")

	// Organization domain errors
	case errors.Is(err, organization.ErrOrganizationNotFound):
		NotFound(w, "Organization not found")
	case errors.Is(err, organization.ErrSlugExists):
		Conflict(w, "Organization slug already taken")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrAlreadyMember):
		Conflict(w, "User is already a member of this organization")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee is not active")

	// Invitation domain errors
	case errors.Is(err, invitation.ErrInvitationNotFound):
		NotFound(w, "Invitation not found")
	case errors.Is(err, invitation.ErrInvitationExpired):
		BadRequest(w, "Invitation has expired", nil)
	case errors.Is(err, invitation.ErrInvitationAccepted):
		Conflict(w, "Invitation already accepted")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in today")
	case errors.Is(err, attendance.ErrNotClockedIn):
		BadRequest(w, "No open attendance record for today", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeavePolicyNotFound):
		NotFound(w, "Leave policy not found")
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrRequestAlreadyClosed):
		Conflict(w, "Leave request already reviewed")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrSalarySettingsNotFound):
		NotFound(w, "Salary settings not found for this employee")
	case errors.Is(err, payroll.ErrPayrollRecordNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrPayrollRecordExists):
		Conflict(w, "Payroll record already exists for this employee and month")
	case errors.Is(err, payroll.ErrInvalidPaymentStatus):
		BadRequest(w, "Invalid payment status", nil)

	// News domain errors
	case errors.Is(err, news.ErrNewsNotFound):
		NotFound(w, "News item not found")

	// Recruitment domain errors
	case errors.Is(err, recruitment.ErrJobPostingNotFound):
		NotFound(w, "Job posting not found")
	case errors.Is(err, recruitment.ErrCandidateNotFound):
		NotFound(w, "Candidate not found")
	case errors.Is(err, recruitment.ErrPostingClosed):
		Conflict(w, "Job posting is closed")
	case errors.Is(err, recruitment.ErrNoResume):
		BadRequest(w, "Candidate has no resume to screen", nil)

	// Document domain errors
	case errors.Is(err, document.ErrDocumentNotFound):
		NotFound(w, "Document not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
