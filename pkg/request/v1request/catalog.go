package v1request

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/phluxx/gridtips/pkg/model/v1model"
)

type Team struct {
	Name string `json:"name"`
}

func (t Team) Validate() error {
	if t.Name == "" {
		return errors.New("team name is required")
	}
	return nil
}

func (t Team) ToModel() v1model.Team {
	return v1model.Team{
		ID:   uuid.NewString(),
		Name: t.Name,
	}
}

type Driver struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Teamname  string `json:"teamname"`
}

func (d Driver) Validate() error {
	if d.Firstname == "" || d.Lastname == "" {
		return errors.New("firstname and lastname are required")
	}
	return nil
}

// ToModel leaves the team unresolved: attaching a team is a
// lookup-or-create against the store, keyed on Teamname.
func (d Driver) ToModel() v1model.Driver {
	return v1model.Driver{
		ID:        uuid.NewString(),
		Firstname: d.Firstname,
		Lastname:  d.Lastname,
	}
}

type Event struct {
	Name      string `json:"name"`
	EventDate string `json:"eventDate"`
}

func (e Event) Validate() error {
	if e.Name == "" {
		return errors.New("event name is required")
	}
	if e.EventDate != "" {
		if _, err := time.Parse(time.RFC3339, e.EventDate); err != nil {
			return errors.New("eventDate must be RFC 3339")
		}
	}
	return nil
}

func (e Event) ToModel(now time.Time) v1model.Event {
	date := now
	if e.EventDate != "" {
		date, _ = time.Parse(time.RFC3339, e.EventDate)
	}
	return v1model.Event{
		ID:        uuid.NewString(),
		Name:      e.Name,
		EventDate: date,
		IsActive:  true,
	}
}
