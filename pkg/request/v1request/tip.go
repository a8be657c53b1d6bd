package v1request

import (
	"errors"

	"github.com/google/uuid"
	"github.com/phluxx/gridtips/pkg/model/v1model"
)

type Tip struct {
	Question string `json:"question"`
	Points   int    `json:"points"`
	EventID  string `json:"eventId"`
}

func (t Tip) Validate() error {
	if t.Question == "" || t.EventID == "" {
		return errors.New("question and eventId are required")
	}
	if t.Points <= 0 {
		return errors.New("points must be positive")
	}
	return nil
}

func (t Tip) ToModel() v1model.Tip {
	return v1model.Tip{
		ID:       uuid.NewString(),
		Question: t.Question,
		Points:   t.Points,
		EventID:  t.EventID,
	}
}

type TipOption struct {
	Answer string `json:"answer"`
	TipID  string `json:"tipId"`
}

func (o TipOption) Validate() error {
	if o.Answer == "" || o.TipID == "" {
		return errors.New("answer and tipId are required")
	}
	return nil
}

func (o TipOption) ToModel() v1model.TipOption {
	return v1model.TipOption{
		ID:     uuid.NewString(),
		Answer: o.Answer,
		TipID:  o.TipID,
	}
}

type CorrectOption struct {
	OptionID string `json:"optionId"`
}

func (c CorrectOption) Validate() error {
	if c.OptionID == "" {
		return errors.New("optionId is required")
	}
	return nil
}
