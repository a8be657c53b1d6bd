package v1model

type Tip struct {
	ID                 string  `db:"id"`
	Question           string  `db:"question"`
	Points             int     `db:"points"`
	EventID            string  `db:"event_id"`
	CorrectTipOptionID *string `db:"correct_tip_option_id"`
}

type TipOption struct {
	ID     string `db:"id"`
	Answer string `db:"answer"`
	TipID  string `db:"tip_id"`
}

type TipWithOptions struct {
	Tip
	Options []TipOption
}
