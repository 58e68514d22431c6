package database

import (
	"database/sql"

	"github.com/Boren168-g/Daa-Management-System/app/models"
)

// DashboardStats holds the entity counts shown on the landing dashboard.
type DashboardStats struct {
	TotalStudents  int              `json:"total_students"`
	TotalTeachers  int              `json:"total_teachers"`
	TotalParents   int              `json:"total_parents"`
	TotalSubjects  int              `json:"total_subjects"`
	TotalSchedules int              `json:"total_schedules"`
	Fees           *models.FeeStats `json:"fees"`
}

// GetDashboardStats counts every entity table and folds in the fee ledger
// aggregates.
func GetDashboardStats(db *sql.DB) (*DashboardStats, error) {
	stats := &DashboardStats{}
	err := db.QueryRow(
		`SELECT
		    (SELECT COUNT(*) FROM students),
		    (SELECT COUNT(*) FROM teachers),
		    (SELECT COUNT(*) FROM parents),
		    (SELECT COUNT(*) FROM subjects),
		    (SELECT COUNT(*) FROM schedules)`,
	).Scan(&stats.TotalStudents, &stats.TotalTeachers, &stats.TotalParents,
		&stats.TotalSubjects, &stats.TotalSchedules)
	if err != nil {
		return nil, &models.StoreUnavailableError{Op: "dashboard stats", Err: err}
	}

	feeStats, err := GetFeeStats(db)
	if err != nil {
		return nil, err
	}
	stats.Fees = feeStats
	return stats, nil
}
