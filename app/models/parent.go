package models

// Parent signs in with its own generated id. ChildID references the student
// and is nulled when the student is deleted; at most one parent per child.
type Parent struct {
	ID        int     `json:"id"`
	Password  string  `json:"-"`
	ChildID   *int    `json:"child_id"`
	ChildName *string `json:"child_name,omitempty"`
}
