package models

// Gender defines the accepted gender values for teachers and students.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)

// IsValid reports whether g is one of the accepted gender values.
func (g Gender) IsValid() bool {
	switch g {
	case Male, Female, Other:
		return true
	}
	return false
}

// Role identifies the four account kinds.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleTeacher       Role = "teacher"
	RoleStudent       Role = "student"
	RoleParent        Role = "parent"
)

// IsValid reports whether r is a known account role.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdministrator, RoleTeacher, RoleStudent, RoleParent:
		return true
	}
	return false
}

// FeeStatus is derived from the numeric amount/paid pair and is never
// settable on its own.
type FeeStatus string

const (
	FeePending FeeStatus = "pending"
	FeePartial FeeStatus = "partial"
	FeePaid    FeeStatus = "paid"
)

// DayOfWeek labels a weekly schedule slot.
type DayOfWeek string

const (
	Monday    DayOfWeek = "Monday"
	Tuesday   DayOfWeek = "Tuesday"
	Wednesday DayOfWeek = "Wednesday"
	Thursday  DayOfWeek = "Thursday"
	Friday    DayOfWeek = "Friday"
	Saturday  DayOfWeek = "Saturday"
	Sunday    DayOfWeek = "Sunday"
)

// dayRank holds the canonical Monday-first week ordering. Unrecognized days
// sort after Sunday.
var dayRank = map[DayOfWeek]int{
	Monday:    1,
	Tuesday:   2,
	Wednesday: 3,
	Thursday:  4,
	Friday:    5,
	Saturday:  6,
	Sunday:    7,
}

// DayOrder returns the sort rank of a day in the canonical week order.
func DayOrder(day DayOfWeek) int {
	if rank, ok := dayRank[day]; ok {
		return rank
	}
	return 8
}

// IsValid reports whether d is one of the seven known day labels.
func (d DayOfWeek) IsValid() bool {
	_, ok := dayRank[d]
	return ok
}
