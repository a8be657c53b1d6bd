package v1view

import "time"

type UserTip struct {
	ID        string    `json:"id"`
	TipID     string    `json:"tip_id"`
	IsCorrect bool      `json:"is_correct"`
	CreatedAt time.Time `json:"created_at"`
}

type UserTipSummary struct {
	TipID     string    `json:"tip_id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	IsCorrect bool      `json:"is_correct"`
	Points    int       `json:"points"`
	CreatedAt time.Time `json:"created_at"`
}

type LeaderboardRow struct {
	Username string `json:"username"`
	Points   int    `json:"points"`
}
