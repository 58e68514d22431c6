package models

import "sort"

// Schedule is one weekly time slot taught by one teacher. The subject field
// is a free label, not a foreign key; deleting the teacher removes the slot.
type Schedule struct {
	ScheduleID  int       `json:"schedule_id"`
	TeacherID   int       `json:"teacher_id"`
	TeacherName *string   `json:"teacher_name,omitempty"`
	Term        *string   `json:"term,omitempty"`
	Subject     string    `json:"subject"`
	Day         DayOfWeek `json:"day"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
}

// SortSchedules orders slots by canonical day of week (Monday first,
// unknown days last), then by start time within a day. Times are HH:MM:SS
// strings so lexical comparison matches chronological order.
func SortSchedules(schedules []*Schedule) {
	sort.SliceStable(schedules, func(i, j int) bool {
		di, dj := DayOrder(schedules[i].Day), DayOrder(schedules[j].Day)
		if di != dj {
			return di < dj
		}
		return schedules[i].StartTime < schedules[j].StartTime
	})
}
