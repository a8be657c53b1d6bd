package v1request

import "errors"

// Submit is the payload for /api/tips/submit.
type Submit struct {
	TipID    string `json:"tipId"`
	OptionID string `json:"optionId"`
}

func (s Submit) Validate() error {
	if s.TipID == "" || s.OptionID == "" {
		return errors.New("tipId and optionId are required")
	}
	return nil
}

// UserTip is the payload for /api/usertips. Same operation as Submit
// under the older field names the first console shipped with.
type UserTip struct {
	TipID            string `json:"tipId"`
	SelectedOptionID string `json:"selectedOptionId"`
}

func (u UserTip) Validate() error {
	if u.TipID == "" || u.SelectedOptionID == "" {
		return errors.New("tipId and selectedOptionId are required")
	}
	return nil
}
