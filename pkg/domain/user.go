package domain

import "time"

// User represents a student known to the system. Email is optional and
// unique when present; Name starts empty and is filled once the interview
// learns it.
type User struct {
	ID        string
	Email     string
	Name      string
	CreatedAt time.Time
}
