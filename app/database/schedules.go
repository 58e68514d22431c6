package database

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/Boren168-g/Daa-Management-System/app/models"
)

// scheduleDayOrder is the canonical week ordering, unknown days last. The
// same ordering backs models.SortSchedules for in-memory slices.
const scheduleDayOrder = `CASE s.day
		WHEN 'Monday' THEN 1
		WHEN 'Tuesday' THEN 2
		WHEN 'Wednesday' THEN 3
		WHEN 'Thursday' THEN 4
		WHEN 'Friday' THEN 5
		WHEN 'Saturday' THEN 6
		WHEN 'Sunday' THEN 7
		ELSE 8
	END`

func validateSchedule(schedule *models.Schedule) error {
	if schedule.TeacherID <= 0 {
		return &models.ValidationError{Field: "teacher_id", Reason: "is required"}
	}
	if strings.TrimSpace(schedule.Subject) == "" {
		return &models.ValidationError{Field: "subject", Reason: "is required"}
	}
	if strings.TrimSpace(string(schedule.Day)) == "" {
		return &models.ValidationError{Field: "day", Reason: "is required"}
	}
	if schedule.StartTime == "" || schedule.EndTime == "" {
		return &models.ValidationError{Field: "time", Reason: "start and end times are required"}
	}
	return nil
}

// AddSchedule creates one weekly slot for a teacher. Overlapping slots are
// accepted; there is no conflict detection.
func AddSchedule(db *sql.DB, schedule *models.Schedule) error {
	if err := validateSchedule(schedule); err != nil {
		return err
	}
	err := db.QueryRow(
		`INSERT INTO schedules (teacher_id, term, subject, day, start_time, end_time)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING schedule_id`,
		schedule.TeacherID, schedule.Term, schedule.Subject,
		string(schedule.Day), schedule.StartTime, schedule.EndTime,
	).Scan(&schedule.ScheduleID)
	if err != nil {
		return models.MapStoreError("add schedule", "schedule", err)
	}
	return nil
}

// GetScheduleByID returns a single slot.
func GetScheduleByID(db *sql.DB, scheduleID int) (*models.Schedule, error) {
	schedule := &models.Schedule{}
	err := db.QueryRow(
		`SELECT s.schedule_id, s.teacher_id, t.name, s.term, s.subject, s.day,
		        TO_CHAR(s.start_time, 'HH24:MI:SS'), TO_CHAR(s.end_time, 'HH24:MI:SS')
		 FROM schedules s
		 LEFT JOIN teachers t ON s.teacher_id = t.id
		 WHERE s.schedule_id = $1`, scheduleID,
	).Scan(&schedule.ScheduleID, &schedule.TeacherID, &schedule.TeacherName,
		&schedule.Term, &schedule.Subject, &schedule.Day,
		&schedule.StartTime, &schedule.EndTime)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &models.NotFoundError{Entity: "schedule", ID: scheduleID}
	}
	if err != nil {
		return nil, &models.StoreUnavailableError{Op: "get schedule", Err: err}
	}
	return schedule, nil
}

// ListSchedules returns every slot in canonical week order, then by start
// time within a day.
func ListSchedules(db *sql.DB) ([]*models.Schedule, error) {
	return querySchedules(db,
		`SELECT s.schedule_id, s.teacher_id, t.name, s.term, s.subject, s.day,
		        TO_CHAR(s.start_time, 'HH24:MI:SS'), TO_CHAR(s.end_time, 'HH24:MI:SS')
		 FROM schedules s
		 LEFT JOIN teachers t ON s.teacher_id = t.id
		 ORDER BY `+scheduleDayOrder+`, s.start_time`)
}

// ListTeacherSchedules returns one teacher's slots in the same order.
func ListTeacherSchedules(db *sql.DB, teacherID int) ([]*models.Schedule, error) {
	return querySchedules(db,
		`SELECT s.schedule_id, s.teacher_id, t.name, s.term, s.subject, s.day,
		        TO_CHAR(s.start_time, 'HH24:MI:SS'), TO_CHAR(s.end_time, 'HH24:MI:SS')
		 FROM schedules s
		 LEFT JOIN teachers t ON s.teacher_id = t.id
		 WHERE s.teacher_id = $1
		 ORDER BY `+scheduleDayOrder+`, s.start_time`, teacherID)
}

func querySchedules(db *sql.DB, query string, args ...interface{}) ([]*models.Schedule, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, &models.StoreUnavailableError{Op: "list schedules", Err: err}
	}
	defer rows.Close()

	schedules := []*models.Schedule{}
	for rows.Next() {
		schedule := &models.Schedule{}
		if err := rows.Scan(&schedule.ScheduleID, &schedule.TeacherID,
			&schedule.TeacherName, &schedule.Term, &schedule.Subject,
			&schedule.Day, &schedule.StartTime, &schedule.EndTime); err != nil {
			return nil, &models.StoreUnavailableError{Op: "list schedules", Err: err}
		}
		schedules = append(schedules, schedule)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.StoreUnavailableError{Op: "list schedules", Err: err}
	}
	return schedules, nil
}

// UpdateSchedule rewrites a slot.
func UpdateSchedule(db *sql.DB, schedule *models.Schedule) error {
	if err := validateSchedule(schedule); err != nil {
		return err
	}
	result, err := db.Exec(
		`UPDATE schedules
		 SET teacher_id = $1, term = $2, subject = $3, day = $4, start_time = $5, end_time = $6
		 WHERE schedule_id = $7`,
		schedule.TeacherID, schedule.Term, schedule.Subject,
		string(schedule.Day), schedule.StartTime, schedule.EndTime,
		schedule.ScheduleID,
	)
	if err != nil {
		return models.MapStoreError("update schedule", "schedule", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return &models.StoreUnavailableError{Op: "update schedule", Err: err}
	}
	if affected == 0 {
		return &models.NotFoundError{Entity: "schedule", ID: schedule.ScheduleID}
	}
	return nil
}

// DeleteSchedule removes a slot.
func DeleteSchedule(db *sql.DB, scheduleID int) error {
	result, err := db.Exec(`DELETE FROM schedules WHERE schedule_id = $1`, scheduleID)
	if err != nil {
		return models.MapStoreError("delete schedule", "schedule", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return &models.StoreUnavailableError{Op: "delete schedule", Err: err}
	}
	if affected == 0 {
		return &models.NotFoundError{Entity: "schedule", ID: scheduleID}
	}
	return nil
}
