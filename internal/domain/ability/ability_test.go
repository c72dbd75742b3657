package ability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_EmptySetDeniesEverything(t *testing.T) {
	var s Set

	assert.False(t, s.Can(CapabilityRead, SubjectEmployee))
	assert.False(t, s.Can(CapabilityManage, SubjectAll))
	assert.False(t, s.Can(CapabilityRead, SubjectPayroll, OwnedBy("emp-1")))
}

func TestSet_ManageImpliesCRUD(t *testing.T) {
	s := NewSet(Rule{Capability: CapabilityManage, Subject: SubjectLeaveRequest})

	for _, capability := range []Capability{CapabilityCreate, CapabilityRead, CapabilityUpdate, CapabilityDelete, CapabilityManage} {
		assert.True(t, s.Can(capability, SubjectLeaveRequest), "manage should imply %s", capability)
	}
	assert.False(t, s.Can(CapabilityRead, SubjectPayroll), "manage on one subject must not leak to another")
}

func TestSet_SubjectAllCoversEverySubject(t *testing.T) {
	s := NewSet(Rule{Capability: CapabilityManage, Subject: SubjectAll})

	subjects := []Subject{
		SubjectOrganization, SubjectEmployee, SubjectAttendance, SubjectPayroll,
		SubjectSalarySettings, SubjectLeaveRequest, SubjectLeavePolicy,
		SubjectNews, SubjectRecruitment, SubjectDocument,
	}
	for _, subject := range subjects {
		assert.True(t, s.Can(CapabilityDelete, subject), "manage all should cover %s", subject)
	}
}

func TestSet_SubjectAllWithSingleCapability(t *testing.T) {
	s := NewSet(Rule{Capability: CapabilityRead, Subject: SubjectAll})

	assert.True(t, s.Can(CapabilityRead, SubjectEmployee))
	assert.False(t, s.Can(CapabilityUpdate, SubjectEmployee))
}

func TestSet_ConditionedRuleFailsClosedWithoutFields(t *testing.T) {
	s := NewSet(Rule{
		Capability: CapabilityRead,
		Subject:    SubjectPayroll,
		Conditions: []Condition{{Field: FieldEmployeeID, Value: "emp-1"}},
	})

	assert.False(t, s.Can(CapabilityRead, SubjectPayroll), "no fields supplied must deny a conditioned rule")
	assert.True(t, s.Can(CapabilityRead, SubjectPayroll, OwnedBy("emp-1")))
	assert.False(t, s.Can(CapabilityRead, SubjectPayroll, OwnedBy("emp-2")))
}

func TestSet_AllConditionsMustMatch(t *testing.T) {
	s := NewSet(Rule{
		Capability: CapabilityRead,
		Subject:    SubjectLeavePolicy,
		Conditions: []Condition{
			{Field: FieldOrganizationID, Value: "org-1"},
			{Field: FieldEmployeeID, Value: "emp-1"},
		},
	})

	assert.False(t, s.Can(CapabilityRead, SubjectLeavePolicy, Fields{FieldOrganizationID: "org-1"}))
	assert.True(t, s.Can(CapabilityRead, SubjectLeavePolicy, Fields{
		FieldOrganizationID: "org-1",
		FieldEmployeeID:     "emp-1",
	}))
}

func TestSet_RulesAreAdditive(t *testing.T) {
	s := NewSet(
		Rule{Capability: CapabilityRead, Subject: SubjectPayroll, Conditions: []Condition{{Field: FieldEmployeeID, Value: "emp-1"}}},
		Rule{Capability: CapabilityRead, Subject: SubjectPayroll, Conditions: []Condition{{Field: FieldEmployeeID, Value: "emp-2"}}},
	)

	assert.True(t, s.Can(CapabilityRead, SubjectPayroll, OwnedBy("emp-1")))
	assert.True(t, s.Can(CapabilityRead, SubjectPayroll, OwnedBy("emp-2")))
	assert.False(t, s.Can(CapabilityRead, SubjectPayroll, OwnedBy("emp-3")))
}

func TestSet_MultipleFieldArgumentsMerge(t *testing.T) {
	s := NewSet(Rule{
		Capability: CapabilityRead,
		Subject:    SubjectAttendance,
		Conditions: []Condition{
			{Field: FieldEmployeeID, Value: "emp-1"},
			{Field: FieldOrganizationID, Value: "org-1"},
		},
	})

	assert.True(t, s.Can(CapabilityRead, SubjectAttendance,
		OwnedBy("emp-1"),
		Fields{FieldOrganizationID: "org-1"},
	))
}

func TestSet_RulesReturnsACopy(t *testing.T) {
	s := NewSet(Rule{Capability: CapabilityRead, Subject: SubjectNews})

	rules := s.Rules()
	rules[0].Capability = CapabilityManage

	assert.False(t, s.Can(CapabilityUpdate, SubjectNews), "mutating the returned slice must not affect the set")
}
