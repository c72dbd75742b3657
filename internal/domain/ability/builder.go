package ability

import (
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/employee"
)

// BuildForEmployee resolves the rule set for one employee. Pure function of
// the designation; conditioned rules embed the employee and organization ids
// at build time. A nil employee yields the empty set.
func BuildForEmployee(emp *employee.Employee) Set {
	if emp == nil {
		return Set{}
	}

	selfOwned := []Condition{{Field: FieldEmployeeID, Value: emp.ID}}
	ownOrganization := []Condition{{Field: FieldOrganizationID, Value: emp.OrganizationID}}

	switch emp.Designation {
	case employee.DesignationFounder:
		return NewSet(
			Rule{Capability: CapabilityManage, Subject: SubjectAll},
		)

	case employee.DesignationHR:
		return NewSet(
			Rule{Capability: CapabilityManage, Subject: SubjectEmployee},
			// Deliberately no manage on Payroll: balance-adjustment style
			// capabilities stay out of the HR grant.
			Rule{Capability: CapabilityCreate, Subject: SubjectPayroll},
			Rule{Capability: CapabilityRead, Subject: SubjectPayroll},
			Rule{Capability: CapabilityUpdate, Subject: SubjectPayroll},
			Rule{Capability: CapabilityDelete, Subject: SubjectPayroll},
			Rule{Capability: CapabilityManage, Subject: SubjectSalarySettings},
			Rule{Capability: CapabilityRead, Subject: SubjectAttendance},
			Rule{Capability: CapabilityCreate, Subject: SubjectAttendance},
			Rule{Capability: CapabilityManage, Subject: SubjectLeaveRequest},
			Rule{Capability: CapabilityManage, Subject: SubjectLeavePolicy},
			Rule{Capability: CapabilityManage, Subject: SubjectNews},
			Rule{Capability: CapabilityManage, Subject: SubjectRecruitment},
			Rule{Capability: CapabilityManage, Subject: SubjectDocument},
		)

	case employee.DesignationProjectManager:
		return NewSet(
			Rule{Capability: CapabilityRead, Subject: SubjectEmployee},
			Rule{Capability: CapabilityUpdate, Subject: SubjectEmployee},
			Rule{Capability: CapabilityRead, Subject: SubjectAttendance},
			Rule{Capability: CapabilityCreate, Subject: SubjectAttendance},
			Rule{Capability: CapabilityRead, Subject: SubjectLeaveRequest},
			Rule{Capability: CapabilityCreate, Subject: SubjectLeaveRequest},
			Rule{Capability: CapabilityUpdate, Subject: SubjectLeaveRequest},
			Rule{Capability: CapabilityRead, Subject: SubjectLeavePolicy},
			// Self-scoped only: managers see their own payslips, not the team's.
			Rule{Capability: CapabilityRead, Subject: SubjectPayroll, Conditions: selfOwned},
			Rule{Capability: CapabilityCreate, Subject: SubjectNews},
			Rule{Capability: CapabilityRead, Subject: SubjectNews},
			Rule{Capability: CapabilityUpdate, Subject: SubjectNews},
			Rule{Capability: CapabilityDelete, Subject: SubjectNews},
		)

	default:
		// Every other designation gets the ordinary employee rules.
		return NewSet(
			Rule{Capability: CapabilityRead, Subject: SubjectOrganization, Conditions: []Condition{{Field: FieldID, Value: emp.OrganizationID}}},
			Rule{Capability: CapabilityRead, Subject: SubjectEmployee},
			Rule{Capability: CapabilityCreate, Subject: SubjectLeaveRequest},
			Rule{Capability: CapabilityRead, Subject: SubjectLeavePolicy, Conditions: ownOrganization},
			Rule{Capability: CapabilityRead, Subject: SubjectLeaveRequest, Conditions: selfOwned},
			Rule{Capability: CapabilityRead, Subject: SubjectAttendance, Conditions: selfOwned},
			Rule{Capability: CapabilityRead, Subject: SubjectPayroll, Conditions: selfOwned},
			Rule{Capability: CapabilityRead, Subject: SubjectSalarySettings, Conditions: selfOwned},
			Rule{Capability: CapabilityCreate, Subject: SubjectNews},
			Rule{Capability: CapabilityRead, Subject: SubjectNews},
			Rule{Capability: CapabilityUpdate, Subject: SubjectNews},
			Rule{Capability: CapabilityDelete, Subject: SubjectNews},
			Rule{Capability: CapabilityRead, Subject: SubjectDocument},
		)
	}
}
