package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/phluxx/gridtips/internal/store"
	"github.com/phluxx/gridtips/pkg/request/v1request"
	"github.com/phluxx/gridtips/pkg/view/v1view"
)

func (h *HttpHandler) createTeamHandler(w http.ResponseWriter, r *http.Request) {
	var payload v1request.Team
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "unable to parse request")
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	team := payload.ToModel()
	if err := h.store.CreateTeam(r.Context(), team); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create team")
		return
	}
	writeJSON(w, http.StatusCreated, v1view.Team{ID: team.ID, Name: team.Name})
}

func (h *HttpHandler) listTeamsHandler(w http.ResponseWriter, r *http.Request) {
	teams, err := h.store.GetTeams(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch teams")
		return
	}
	vTeams := make([]v1view.Team, 0, len(teams))
	for _, team := range teams {
		vTeams = append(vTeams, v1view.Team{
			ID:   team.ID,
			Name: team.Name,
		})
	}
	writeJSON(w, http.StatusOK, vTeams)
}

// createDriverHandler attaches a team by name when one is given:
// an existing non-deleted team is reused, otherwise it is created.
func (h *HttpHandler) createDriverHandler(w http.ResponseWriter, r *http.Request) {
	var payload v1request.Driver
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "unable to parse request")
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	driver := payload.ToModel()

	var teamName *string
	if payload.Teamname != "" {
		team, err := h.store.GetTeamByName(r.Context(), payload.Teamname)
		if errors.Is(err, store.ErrNotFound) {
			team = v1request.Team{Name: payload.Teamname}.ToModel()
			err = h.store.CreateTeam(r.Context(), team)
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to resolve team")
			return
		}
		driver.TeamID = &team.ID
		teamName = &team.Name
	}

	if err := h.store.CreateDriver(r.Context(), driver); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create driver")
		return
	}
	writeJSON(w, http.StatusCreated, v1view.Driver{
		ID:        driver.ID,
		Firstname: driver.Firstname,
		Lastname:  driver.Lastname,
		Team:      teamName,
	})
}

func (h *HttpHandler) listDriversHandler(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.store.GetDrivers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch drivers")
		return
	}
	vDrivers := make([]v1view.Driver, 0, len(drivers))
	for _, driver := range drivers {
		vDrivers = append(vDrivers, v1view.Driver{
			ID:        driver.ID,
			Firstname: driver.Firstname,
			Lastname:  driver.Lastname,
			Team:      driver.TeamName,
		})
	}
	writeJSON(w, http.StatusOK, vDrivers)
}

func (h *HttpHandler) createEventHandler(w http.ResponseWriter, r *http.Request) {
	var payload v1request.Event
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "unable to parse request")
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	event := payload.ToModel(time.Now().UTC())
	if err := h.store.CreateEvent(r.Context(), event); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create event")
		return
	}
	writeJSON(w, http.StatusCreated, v1view.Event{
		ID:        event.ID,
		Name:      event.Name,
		EventDate: event.EventDate,
	})
}

func (h *HttpHandler) listEventsHandler(w http.ResponseWriter, r *http.Request) {
	events, err := h.store.GetEvents(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch events")
		return
	}
	vEvents := make([]v1view.Event, 0, len(events))
	for _, event := range events {
		vEvents = append(vEvents, v1view.Event{
			ID:        event.ID,
			Name:      event.Name,
			EventDate: event.EventDate,
		})
	}
	writeJSON(w, http.StatusOK, vEvents)
}

func (h *HttpHandler) deleteEventHandler(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.store.DeleteEvent(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "event not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete event")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *HttpHandler) createTipHandler(w http.ResponseWriter, r *http.Request) {
	var payload v1request.Tip
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "unable to parse request")
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.store.GetEvent(r.Context(), payload.EventID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "event not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create tip")
		return
	}

	tip := payload.ToModel()
	if err := h.store.CreateTip(r.Context(), tip); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create tip")
		return
	}
	writeJSON(w, http.StatusCreated, v1view.Tip{
		ID:       tip.ID,
		Question: tip.Question,
		Points:   tip.Points,
		EventID:  tip.EventID,
	})
}

func (h *HttpHandler) createTipOptionHandler(w http.ResponseWriter, r *http.Request) {
	var payload v1request.TipOption
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "unable to parse request")
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.store.GetTip(r.Context(), payload.TipID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "tip not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create tip option")
		return
	}

	option := payload.ToModel()
	if err := h.store.CreateTipOption(r.Context(), option); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create tip option")
		return
	}
	writeJSON(w, http.StatusCreated, v1view.TipOption{ID: option.ID, Answer: option.Answer})
}

func (h *HttpHandler) listTipOptionsHandler(w http.ResponseWriter, r *http.Request) {
	options, err := h.store.GetTipOptions(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch tip options")
		return
	}
	vOptions := make([]v1view.TipOption, 0, len(options))
	for _, option := range options {
		vOptions = append(vOptions, v1view.TipOption{
			ID:     option.ID,
			Answer: option.Answer,
		})
	}
	writeJSON(w, http.StatusOK, vOptions)
}

// setCorrectOptionHandler marks the winning answer of a tip. The
// option must be one of the tip's own options; submissions already
// scored keep their recorded correctness.
func (h *HttpHandler) setCorrectOptionHandler(w http.ResponseWriter, r *http.Request) {
	tipID := mux.Vars(r)["id"]

	var payload v1request.CorrectOption
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "unable to parse request")
		return
	}
	if err := payload.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tip, err := h.store.GetTip(r.Context(), tipID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "tip not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update tip")
		return
	}

	option, err := h.store.GetTipOption(r.Context(), payload.OptionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "tip option not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update tip")
		return
	}
	if option.TipID != tip.ID {
		writeError(w, http.StatusBadRequest, "option does not belong to this tip")
		return
	}

	if err := h.store.SetCorrectTipOption(r.Context(), tip.ID, option.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update tip")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
