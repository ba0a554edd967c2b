package client

import "time"

// User is the client's copy of a user record as returned by the API.
// CreatedAt is kept as sent so that any date format the server uses renders.
type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

var joinedLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// Joined formats CreatedAt as a short date, falling back to the raw value.
func (u User) Joined() string {
	for _, layout := range joinedLayouts {
		if t, err := time.Parse(layout, u.CreatedAt); err == nil {
			return t.Format("1/2/2006")
		}
	}
	return u.CreatedAt
}
