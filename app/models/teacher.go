package models

// Teacher owns subjects and weekly schedule slots. Deleting a teacher
// removes its schedules and orphans its subjects (teacher_id set to null).
type Teacher struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Password string  `json:"-"`
	Phone    *string `json:"phone,omitempty"`
	Gender   Gender  `json:"gender"`

	// Subjects is the aggregated list of subject names this teacher is
	// assigned to; populated by list queries only.
	Subjects string `json:"subjects,omitempty"`
}
