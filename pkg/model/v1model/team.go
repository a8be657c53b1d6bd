package v1model

type Team struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

type Driver struct {
	ID        string  `db:"id"`
	Firstname string  `db:"firstname"`
	Lastname  string  `db:"lastname"`
	TeamID    *string `db:"team_id"`
	TeamName  *string `db:"team_name"`
}
