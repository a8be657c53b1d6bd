package v1model

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID           string `db:"id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	Role         string `db:"role"`
}

// LeaderboardRow is a derived ranking entry: points are summed from
// the user's correct submissions at read time, never stored.
type LeaderboardRow struct {
	Username string `db:"username"`
	Points   int    `db:"points"`
}
