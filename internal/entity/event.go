package entity

import "time"

type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
)

// TeamEvent keeps the "yes"/"no" representation the source schema uses.
type TeamEvent string

const (
	TeamEventYes TeamEvent = "yes"
	TeamEventNo  TeamEvent = "no"
)

type Event struct {
	ID               int64       `json:"id" db:"id"`
	Title            string      `json:"title" db:"title"`
	Description      string      `json:"description" db:"description"`
	Category         string      `json:"category" db:"category"`
	Date             string      `json:"date" db:"date"`
	StartTime        string      `json:"start_time" db:"start_time"`
	EndTime          string      `json:"end_time" db:"end_time"`
	Venue            string      `json:"venue" db:"venue"`
	Deadline         string      `json:"deadline" db:"deadline"`
	Fee              float64     `json:"fee" db:"fee"`
	IsTeamEvent      TeamEvent   `json:"is_team_event" db:"is_team_event"`
	TeamSize         int         `json:"team_size" db:"team_size"`
	OrganizerName    string      `json:"organizer_name" db:"organizer_name"`
	OrganizerContact string      `json:"organizer_contact" db:"organizer_contact"`
	Status           EventStatus `json:"status" db:"status"`
	CreatedAt        time.Time   `json:"created_at" db:"created_at"`
}
