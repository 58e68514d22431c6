package database

import (
	"database/sql"
	"errors"

	"github.com/Boren168-g/Daa-Management-System/app/models"
)

// GetParentByID returns a parent with the child's name joined in when the
// child still exists.
func GetParentByID(db *sql.DB, parentID int) (*models.Parent, error) {
	parent := &models.Parent{}
	err := db.QueryRow(
		`SELECT p.id, p.child_id, s.name
		 FROM parents p
		 LEFT JOIN students s ON p.child_id = s.id
		 WHERE p.id = $1`, parentID,
	).Scan(&parent.ID, &parent.ChildID, &parent.ChildName)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &models.NotFoundError{Entity: "parent", ID: parentID}
	}
	if err != nil {
		return nil, &models.StoreUnavailableError{Op: "get parent", Err: err}
	}
	return parent, nil
}

// ListParents returns all parents with child names.
func ListParents(db *sql.DB) ([]*models.Parent, error) {
	rows, err := db.Query(
		`SELECT p.id, p.child_id, s.name
		 FROM parents p
		 LEFT JOIN students s ON p.child_id = s.id
		 ORDER BY p.id`)
	if err != nil {
		return nil, &models.StoreUnavailableError{Op: "list parents", Err: err}
	}
	defer rows.Close()

	parents := []*models.Parent{}
	for rows.Next() {
		parent := &models.Parent{}
		if err := rows.Scan(&parent.ID, &parent.ChildID, &parent.ChildName); err != nil {
			return nil, &models.StoreUnavailableError{Op: "list parents", Err: err}
		}
		parents = append(parents, parent)
	}
	if err := rows.Err(); err != nil {
		return nil, &models.StoreUnavailableError{Op: "list parents", Err: err}
	}
	return parents, nil
}

// DeleteParent removes a parent account.
func DeleteParent(db *sql.DB, parentID int) error {
	result, err := db.Exec(`DELETE FROM parents WHERE id = $1`, parentID)
	if err != nil {
		return models.MapStoreError("delete parent", "parent", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return &models.StoreUnavailableError{Op: "delete parent", Err: err}
	}
	if affected == 0 {
		return &models.NotFoundError{Entity: "parent", ID: parentID}
	}
	return nil
}
