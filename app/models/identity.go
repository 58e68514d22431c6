package models

// Identity is the minimal record returned by a successful authentication.
// The caller owns turning it into a session (JWT cookie in the web layer);
// the core never touches session storage.
type Identity struct {
	ID   int    `json:"id"`
	Role Role   `json:"role"`
	Name string `json:"name"`
}
