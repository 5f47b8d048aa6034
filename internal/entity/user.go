package entity

import "time"

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleParticipant Role = "participant"
)

// ParseRole maps a form value onto a known role. Anything unknown
// (including the empty string) signs up as a participant.
func ParseRole(s string) Role {
	if s == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleParticipant
}

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleParticipant
}

type User struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Password  string    `json:"-" db:"password"` // stored in plaintext, inherited from the source system
	Role      Role      `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
