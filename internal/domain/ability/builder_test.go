package ability

import (
	"testing"

	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/employee"
	"github.com/stretchr/testify/assert"
)

func testEmployee(designation employee.Designation) *employee.Employee {
	return &employee.Employee{
		ID:             "emp-1",
		OrganizationID: "org-1",
		Designation:    designation,
	}
}

func TestBuildForEmployee_NilYieldsEmptySet(t *testing.T) {
	s := BuildForEmployee(nil)

	assert.Empty(t, s.Rules())
	assert.False(t, s.Can(CapabilityRead, SubjectEmployee))
}

func TestBuildForEmployee_Founder(t *testing.T) {
	s := BuildForEmployee(testEmployee(employee.DesignationFounder))

	assert.True(t, s.Can(CapabilityManage, SubjectAll))
	assert.True(t, s.Can(CapabilityDelete, SubjectEmployee))
	assert.True(t, s.Can(CapabilityUpdate, SubjectSalarySettings))
	assert.True(t, s.Can(CapabilityRead, SubjectPayroll), "founder reads payroll without ownership fields")
}

func TestBuildForEmployee_HR(t *testing.T) {
	s := BuildForEmployee(testEmployee(employee.DesignationHR))

	assert.True(t, s.Can(CapabilityManage, SubjectEmployee))
	assert.True(t, s.Can(CapabilityCreate, SubjectPayroll))
	assert.True(t, s.Can(CapabilityRead, SubjectPayroll))
	assert.True(t, s.Can(CapabilityUpdate, SubjectPayroll))
	assert.True(t, s.Can(CapabilityDelete, SubjectPayroll))
	assert.False(t, s.Can(CapabilityManage, SubjectPayroll), "hr holds the four payroll capabilities but not manage")
	assert.True(t, s.Can(CapabilityUpdate, SubjectSalarySettings))
	assert.True(t, s.Can(CapabilityDelete, SubjectLeavePolicy))
	assert.False(t, s.Can(CapabilityUpdate, SubjectOrganization))
}

func TestBuildForEmployee_ProjectManager(t *testing.T) {
	s := BuildForEmployee(testEmployee(employee.DesignationProjectManager))

	assert.True(t, s.Can(CapabilityUpdate, SubjectEmployee))
	assert.False(t, s.Can(CapabilityDelete, SubjectEmployee))
	assert.True(t, s.Can(CapabilityUpdate, SubjectLeaveRequest), "managers review leave requests")

	// Payroll is self-scoped only.
	assert.False(t, s.Can(CapabilityRead, SubjectPayroll))
	assert.True(t, s.Can(CapabilityRead, SubjectPayroll, OwnedBy("emp-1")))
	assert.False(t, s.Can(CapabilityRead, SubjectPayroll, OwnedBy("emp-2")))

	assert.False(t, s.Can(CapabilityUpdate, SubjectSalarySettings))
	assert.False(t, s.Can(CapabilityCreate, SubjectLeavePolicy))
}

func TestBuildForEmployee_DefaultEmployee(t *testing.T) {
	s := BuildForEmployee(testEmployee(employee.DesignationEmployee))

	cases := []struct {
		name       string
		capability Capability
		subject    Subject
		fields     []Fields
		want       bool
	}{
		{"read own organization", CapabilityRead, SubjectOrganization, []Fields{{FieldID: "org-1"}}, true},
		{"read other organization", CapabilityRead, SubjectOrganization, []Fields{{FieldID: "org-2"}}, false},
		{"read employees", CapabilityRead, SubjectEmployee, nil, true},
		{"update employees", CapabilityUpdate, SubjectEmployee, nil, false},
		{"file leave request", CapabilityCreate, SubjectLeaveRequest, nil, true},
		{"review leave request", CapabilityUpdate, SubjectLeaveRequest, nil, false},
		{"read own leave request", CapabilityRead, SubjectLeaveRequest, []Fields{OwnedBy("emp-1")}, true},
		{"read foreign leave request", CapabilityRead, SubjectLeaveRequest, []Fields{OwnedBy("emp-2")}, false},
		{"read own attendance", CapabilityRead, SubjectAttendance, []Fields{OwnedBy("emp-1")}, true},
		{"read own payroll", CapabilityRead, SubjectPayroll, []Fields{OwnedBy("emp-1")}, true},
		{"read payroll unscoped", CapabilityRead, SubjectPayroll, nil, false},
		{"read own salary settings", CapabilityRead, SubjectSalarySettings, []Fields{OwnedBy("emp-1")}, true},
		{"generate payroll", CapabilityCreate, SubjectPayroll, nil, false},
		{"publish news", CapabilityCreate, SubjectNews, nil, true},
		{"delete news", CapabilityDelete, SubjectNews, nil, true},
		{"manage recruitment", CapabilityRead, SubjectRecruitment, nil, false},
		{"read documents", CapabilityRead, SubjectDocument, nil, true},
		{"create documents", CapabilityCreate, SubjectDocument, nil, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, s.Can(c.capability, c.subject, c.fields...))
		})
	}
}

func TestBuildForEmployee_UnknownDesignationGetsEmployeeRules(t *testing.T) {
	s := BuildForEmployee(testEmployee(employee.Designation("intern")))

	assert.True(t, s.Can(CapabilityRead, SubjectEmployee))
	assert.False(t, s.Can(CapabilityCreate, SubjectPayroll))
}
