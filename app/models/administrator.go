package models

// Administrator is a standalone account with no relationships to the rest of
// the schema.
type Administrator struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Password string `json:"-"`
}
