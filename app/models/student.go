package models

// Student is an account row plus a detail row provisioned with it. Deleting
// a student cascades to the detail row, enrollments and fees, and nulls out
// any parent's child reference.
type Student struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Password string  `json:"-"`
	Phone    *string `json:"phone,omitempty"`
	Gender   Gender  `json:"gender"`

	// Detail row fields; both rows are created in the same transaction.
	Class *string `json:"class,omitempty"`
	Grade *string `json:"grade,omitempty"`
}
