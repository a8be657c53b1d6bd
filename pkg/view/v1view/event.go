package v1view

import "time"

// UpcomingEvent carries the full tipping program for one event so the
// player console renders it without follow-up requests.
type UpcomingEvent struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	EventDate time.Time     `json:"event_date"`
	Tips      []UpcomingTip `json:"tips"`
}

type UpcomingTip struct {
	ID       string      `json:"id"`
	Question string      `json:"question"`
	Points   int         `json:"points"`
	Options  []TipOption `json:"tip_options"`
}
