package v1model

import "time"

type Event struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	EventDate time.Time `db:"event_date"`
	IsActive  bool      `db:"is_active"`
}

// UpcomingEvent is an event with its full tipping program attached.
type UpcomingEvent struct {
	Event
	Tips []TipWithOptions
}
