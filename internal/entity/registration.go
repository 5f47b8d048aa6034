package entity

import "time"

type Registration struct {
	ID           int64     `json:"id" db:"id"`
	EventID      int64     `json:"event_id" db:"event_id"`
	UserID       int64     `json:"user_id" db:"user_id"`
	FullName     string    `json:"full_name" db:"full_name"`
	Mobile       string    `json:"mobile" db:"mobile"`
	Email        string    `json:"email" db:"email"`
	College      string    `json:"college" db:"college"`
	Year         string    `json:"year" db:"year"`
	Branch       string    `json:"branch" db:"branch"`
	PaymentImage string    `json:"payment_image" db:"payment_image"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// RegistrationWithUser joins a registration with the identity of the
// participant who submitted it, for the admin listing.
type RegistrationWithUser struct {
	Registration
	Username string `json:"username"`
}
