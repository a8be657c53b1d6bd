package v1model

import "time"

// UserTip is a user's one recorded answer to a tip. Correctness is
// computed once at insert time and never revisited.
type UserTip struct {
	ID               string    `db:"id"`
	UserID           string    `db:"user_id"`
	TipID            string    `db:"tip_id"`
	SelectedOptionID string    `db:"selected_option_id"`
	IsCorrect        bool      `db:"is_correct"`
	CreatedAt        time.Time `db:"created_at"`
}

// UserTipSummary joins a submission with its question and the answer
// text for the player's personal overview.
type UserTipSummary struct {
	TipID     string    `db:"tip_id"`
	Question  string    `db:"question"`
	Answer    string    `db:"answer"`
	IsCorrect bool      `db:"is_correct"`
	Points    int       `db:"points"`
	CreatedAt time.Time `db:"created_at"`
}
