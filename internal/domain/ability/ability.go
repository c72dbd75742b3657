package ability

// Capability is one of the actions a rule can grant. Manage implies the four
// CRUD capabilities on its subject.
type Capability string

const (
	CapabilityManage Capability = "manage"
	CapabilityCreate Capability = "create"
	CapabilityRead   Capability = "read"
	CapabilityUpdate Capability = "update"
	CapabilityDelete Capability = "delete"
)

// Subject is a resource type capabilities apply to. SubjectAll paired with
// manage grants unconditional global access.
type Subject string

const (
	SubjectAll            Subject = "all"
	SubjectOrganization   Subject = "Organization"
	SubjectEmployee       Subject = "Employee"
	SubjectAttendance     Subject = "Attendance"
	SubjectPayroll        Subject = "Payroll"
	SubjectSalarySettings Subject = "SalarySettings"
	SubjectLeaveRequest   Subject = "LeaveRequest"
	SubjectLeavePolicy    Subject = "LeavePolicy"
	SubjectNews           Subject = "News"
	SubjectRecruitment    Subject = "Recruitment"
	SubjectDocument       Subject = "Document"
)

// Condition narrows a rule to instances whose field equals the value that was
// resolved from the principal when the rule set was built.
type Condition struct {
	Field string
	Value string
}

// Rule grants a capability on a subject, optionally narrowed by conditions.
// There is no deny rule type; rules are additive and OR together.
type Rule struct {
	Capability Capability
	Subject    Subject
	Conditions []Condition
}

// Fields carries instance attributes for evaluating conditioned rules.
type Fields map[string]string

// Set is the immutable rule collection built for one employee. The zero value
// is the empty set: every check fails closed.
type Set struct {
	rules []Rule
}

func NewSet(rules ...Rule) Set {
	return Set{rules: rules}
}

// Rules returns a copy of the rule list.
func (s Set) Rules() []Rule {
	out := make([]Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Can reports whether any rule grants the capability on the subject. A rule
// with conditions grants only when every condition matches the supplied
// fields; with no fields supplied a conditioned rule never grants.
func (s Set) Can(capability Capability, subject Subject, fields ...Fields) bool {
	merged := mergeFields(fields)
	for _, rule := range s.rules {
		if !rule.covers(capability, subject) {
			continue
		}
		if rule.satisfied(merged) {
			return true
		}
	}
	return false
}

func (r Rule) covers(capability Capability, subject Subject) bool {
	if r.Subject != SubjectAll && r.Subject != subject {
		return false
	}
	return r.Capability == CapabilityManage || r.Capability == capability
}

func (r Rule) satisfied(fields Fields) bool {
	if len(r.Conditions) == 0 {
		return true
	}
	if fields == nil {
		return false
	}
	for _, cond := range r.Conditions {
		if fields[cond.Field] != cond.Value {
			return false
		}
	}
	return true
}

func mergeFields(fields []Fields) Fields {
	if len(fields) == 0 {
		return nil
	}
	if len(fields) == 1 {
		return fields[0]
	}
	merged := make(Fields)
	for _, f := range fields {
		for k, v := range f {
			merged[k] = v
		}
	}
	return merged
}

// Field names used in rule conditions and Can checks.
const (
	FieldID             = "id"
	FieldEmployeeID     = "employee_id"
	FieldOrganizationID = "organization_id"
)

// OwnedBy builds the fields for a self-ownership check.
func OwnedBy(employeeID string) Fields {
	return Fields{FieldEmployeeID: employeeID}
}
