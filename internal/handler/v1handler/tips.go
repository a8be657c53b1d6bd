package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/phluxx/gridtips/internal/store"
	"github.com/phluxx/gridtips/pkg/model/v1model"
	"github.com/phluxx/gridtips/pkg/request/v1request"
	"github.com/phluxx/gridtips/pkg/view/v1view"
)

func (h *HttpHandler) upcomingEventsHandler(w http.ResponseWriter, r *http.Request) {
	events, err := h.store.GetUpcomingEvents(r.Context(), time.Now().UTC())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch events")
		return
	}

	vEvents := make([]v1view.UpcomingEvent, 0, len(events))
	for _, event := range events {
		vEvent := v1view.UpcomingEvent{
			ID:        event.ID,
			Name:      event.Name,
			EventDate: event.EventDate,
			Tips:      make([]v1view.UpcomingTip, 0, len(event.Tips)),
		}
		for _, tip := range event.Tips {
			vTip := v1view.UpcomingTip{
				ID:       tip.ID,
				Question: tip.Question,
				Points:   tip.Points,
				Options:  make([]v1view.TipOption, 0, len(tip.Options)),
			}
			for _, option := range tip.Options {
				vTip.Options = append(vTip.Options, v1view.TipOption{
					ID:     option.ID,
					Answer: option.Answer,
				})
			}
			vEvent.Tips = append(vEvent.Tips, vTip)
		}
		vEvents = append(vEvents, vEvent)
	}
	writeJSON(w, http.StatusOK, vEvents)
}

func (h *HttpHandler) submitTipHandler(w http.ResponseWriter, r *http.Request) {
	var payload v1request.Submit
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "unable to parse request")
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.submitTip(w, r, payload.TipID, payload.OptionID)
}

func (h *HttpHandler) createUserTipHandler(w http.ResponseWriter, r *http.Request) {
	var payload v1request.UserTip
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "unable to parse request")
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.submitTip(w, r, payload.TipID, payload.SelectedOptionID)
}

// submitTip records the caller's one answer to a tip. Correctness is
// fixed here, at submission time, by comparing the chosen option
// against the tip's configured correct option; a tip with no correct
// option scores false. Duplicates are not pre-checked: the insert
// rides the unique key and a violation comes back as a conflict, so
// two simultaneous submissions cannot both land.
func (h *HttpHandler) submitTip(w http.ResponseWriter, r *http.Request, tipID, optionID string) {
	ident, ok := IdentityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	tip, err := h.store.GetTip(r.Context(), tipID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "tip not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to submit tip")
		return
	}

	option, err := h.store.GetTipOption(r.Context(), optionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "tip option not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to submit tip")
		return
	}
	if option.TipID != tip.ID {
		writeError(w, http.StatusBadRequest, "option does not belong to this tip")
		return
	}

	ut := v1model.UserTip{
		ID:               uuid.NewString(),
		UserID:           ident.ID,
		TipID:            tip.ID,
		SelectedOptionID: option.ID,
		IsCorrect:        tip.CorrectTipOptionID != nil && *tip.CorrectTipOptionID == option.ID,
		CreatedAt:        time.Now().UTC(),
	}

	if err := h.store.CreateUserTip(r.Context(), ut); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			writeError(w, http.StatusConflict, "tip already submitted")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to submit tip")
		return
	}

	writeJSON(w, http.StatusCreated, v1view.UserTip{
		ID:        ut.ID,
		TipID:     ut.TipID,
		IsCorrect: ut.IsCorrect,
		CreatedAt: ut.CreatedAt,
	})
}

func (h *HttpHandler) myTipsHandler(w http.ResponseWriter, r *http.Request) {
	ident, ok := IdentityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	tips, err := h.store.GetUserTips(r.Context(), ident.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch tips")
		return
	}
	vTips := make([]v1view.UserTipSummary, 0, len(tips))
	for _, tip := range tips {
		vTips = append(vTips, v1view.UserTipSummary{
			TipID:     tip.TipID,
			Question:  tip.Question,
			Answer:    tip.Answer,
			IsCorrect: tip.IsCorrect,
			Points:    tip.Points,
			CreatedAt: tip.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, vTips)
}

func (h *HttpHandler) leaderboardHandler(w http.ResponseWriter, r *http.Request) {
	board, err := h.store.GetLeaderboard(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch leaderboard")
		return
	}
	vBoard := make([]v1view.LeaderboardRow, 0, len(board))
	for _, row := range board {
		vBoard = append(vBoard, v1view.LeaderboardRow{
			Username: row.Username,
			Points:   row.Points,
		})
	}
	writeJSON(w, http.StatusOK, vBoard)
}
