package models

import "time"

// Session is the authentication context of the running client. It is
// created when the user signs in, persisted locally between runs and torn
// down on logout.
type Session struct {
	// UserID identifies the acting user; every note in the collection
	// belongs to this user.
	UserID string `json:"user_id"`

	// Token is the bearer token attached to requests to the note service.
	// Empty when the service runs without authentication.
	Token string `json:"-"`

	// CreatedAt is the moment the session was started.
	CreatedAt time.Time `json:"created_at"`
}

// IsZero reports whether s holds no user.
func (s Session) IsZero() bool {
	return s.UserID == ""
}
