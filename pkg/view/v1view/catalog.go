package v1view

import "time"

type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Driver struct {
	ID        string  `json:"id"`
	Firstname string  `json:"firstname"`
	Lastname  string  `json:"lastname"`
	Team      *string `json:"team"`
}

type Event struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	EventDate time.Time `json:"event_date"`
}

type TipOption struct {
	ID     string `json:"id"`
	Answer string `json:"answer"`
}

type Tip struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Points   int    `json:"points"`
	EventID  string `json:"event_id"`
}

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role,omitempty"`
}
