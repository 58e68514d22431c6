package database

import (
	"fmt"
	"strconv"

	"github.com/Boren168-g/Daa-Management-System/app/models"
)

// parseID converts a textual identifier into a positive integer id.
func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, &models.ValidationError{Field: "id", Reason: "must be a positive number"}
	}
	return id, nil
}

func parentDisplayName(parentID int) string {
	return fmt.Sprintf("Parent#%d", parentID)
}
