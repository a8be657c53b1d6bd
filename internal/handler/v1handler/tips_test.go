package v1handler

import (
	"encoding/json"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/phluxx/gridtips/pkg/model/v1model"
	"github.com/phluxx/gridtips/pkg/view/v1view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedTipFixture sets up one event with one tip and two options, with
// "Max" configured as the correct answer.
func seedTipFixture(s *stubStore) (tipID, correctID, wrongID string) {
	s.events["e1"] = v1model.Event{ID: "e1", Name: "Monaco GP", EventDate: time.Now().Add(24 * time.Hour), IsActive: true}
	correct := "o-max"
	s.tips["t1"] = v1model.Tip{ID: "t1", Question: "Winner?", Points: 25, EventID: "e1", CorrectTipOptionID: &correct}
	s.options["o-max"] = v1model.TipOption{ID: "o-max", Answer: "Max", TipID: "t1"}
	s.options["o-lewis"] = v1model.TipOption{ID: "o-lewis", Answer: "Lewis", TipID: "t1"}
	return "t1", "o-max", "o-lewis"
}

func TestSubmitTipCorrect(t *testing.T) {
	h, s := newTestHandler()
	tipID, correctID, _ := seedTipFixture(s)
	token := tokenFor(t, h, v1model.User{ID: "u1", Username: "max", Role: v1model.RoleUser})

	w := doRequest(t, h, http.MethodPost, "/api/tips/submit", token, map[string]string{
		"tipId":    tipID,
		"optionId": correctID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp v1view.UserTip
	require.NoError(t, decodeBody(w, &resp))
	assert.True(t, resp.IsCorrect)
	assert.Equal(t, tipID, resp.TipID)
}

func TestSubmitTipIncorrect(t *testing.T) {
	h, s := newTestHandler()
	tipID, _, wrongID := seedTipFixture(s)
	token := tokenFor(t, h, v1model.User{ID: "u1", Username: "max", Role: v1model.RoleUser})

	w := doRequest(t, h, http.MethodPost, "/api/tips/submit", token, map[string]string{
		"tipId":    tipID,
		"optionId": wrongID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp v1view.UserTip
	require.NoError(t, decodeBody(w, &resp))
	assert.False(t, resp.IsCorrect)
}

func TestSubmitTipNoCorrectOptionConfigured(t *testing.T) {
	h, s := newTestHandler()
	tipID, correctID, _ := seedTipFixture(s)
	tip := s.tips[tipID]
	tip.CorrectTipOptionID = nil
	s.tips[tipID] = tip

	token := tokenFor(t, h, v1model.User{ID: "u1", Username: "max", Role: v1model.RoleUser})
	w := doRequest(t, h, http.MethodPost, "/api/tips/submit", token, map[string]string{
		"tipId":    tipID,
		"optionId": correctID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp v1view.UserTip
	require.NoError(t, decodeBody(w, &resp))
	assert.False(t, resp.IsCorrect)
}

func TestSubmitTipDuplicate(t *testing.T) {
	h, s := newTestHandler()
	tipID, correctID, wrongID := seedTipFixture(s)
	token := tokenFor(t, h, v1model.User{ID: "u1", Username: "max", Role: v1model.RoleUser})

	w := doRequest(t, h, http.MethodPost, "/api/tips/submit", token, map[string]string{
		"tipId": tipID, "optionId": correctID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// A second attempt for the same tip is rejected, even with a
	// different option; the first answer stays.
	w = doRequest(t, h, http.MethodPost, "/api/tips/submit", token, map[string]string{
		"tipId": tipID, "optionId": wrongID,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, correctID, s.userTips["u1|"+tipID].SelectedOptionID)
}

func TestSubmitTipConcurrentDuplicates(t *testing.T) {
	h, s := newTestHandler()
	tipID, correctID, _ := seedTipFixture(s)
	token := tokenFor(t, h, v1model.User{ID: "u1", Username: "max", Role: v1model.RoleUser})

	const attempts = 2
	codes := make(chan int, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := doRequest(t, h, http.MethodPost, "/api/tips/submit", token, map[string]string{
				"tipId": tipID, "optionId": correctID,
			})
			codes <- w.Code
		}()
	}
	wg.Wait()
	close(codes)

	var created, conflicted int
	for code := range codes {
		switch code {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
			conflicted++
		}
	}
	assert.Equal(t, 1, created, "exactly one submission must win")
	assert.Equal(t, 1, conflicted, "the loser must see a conflict")
}

func TestSubmitTipUnknownTip(t *testing.T) {
	h, s := newTestHandler()
	_, correctID, _ := seedTipFixture(s)
	token := tokenFor(t, h, v1model.User{ID: "u1", Username: "max", Role: v1model.RoleUser})

	w := doRequest(t, h, http.MethodPost, "/api/tips/submit", token, map[string]string{
		"tipId": "missing", "optionId": correctID,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitTipForeignOption(t *testing.T) {
	h, s := newTestHandler()
	tipID, _, _ := seedTipFixture(s)
	s.tips["t2"] = v1model.Tip{ID: "t2", Question: "Pole?", Points: 10, EventID: "e1"}
	s.options["o-other"] = v1model.TipOption{ID: "o-other", Answer: "Charles", TipID: "t2"}

	token := tokenFor(t, h, v1model.User{ID: "u1", Username: "max", Role: v1model.RoleUser})
	w := doRequest(t, h, http.MethodPost, "/api/tips/submit", token, map[string]string{
		"tipId": tipID, "optionId": "o-other",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitTipMissingFields(t *testing.T) {
	h, _ := newTestHandler()
	token := tokenFor(t, h, v1model.User{ID: "u1", Username: "max", Role: v1model.RoleUser})

	w := doRequest(t, h, http.MethodPost, "/api/usertips", token, map[string]string{"tipId": "t1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserTipsRouteSharesSubmitFlow(t *testing.T) {
	h, s := newTestHandler()
	tipID, correctID, _ := seedTipFixture(s)
	token := tokenFor(t, h, v1model.User{ID: "u1", Username: "max", Role: v1model.RoleUser})

	w := doRequest(t, h, http.MethodPost, "/api/usertips", token, map[string]string{
		"tipId": tipID, "selectedOptionId": correctID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, h, http.MethodPost, "/api/usertips", token, map[string]string{
		"tipId": tipID, "selectedOptionId": correctID,
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestMyTips(t *testing.T) {
	h, s := newTestHandler()
	tipID, correctID, _ := seedTipFixture(s)
	token := tokenFor(t, h, v1model.User{ID: "u1", Username: "max", Role: v1model.RoleUser})

	w := doRequest(t, h, http.MethodPost, "/api/tips/submit", token, map[string]string{
		"tipId": tipID, "optionId": correctID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, h, http.MethodGet, "/api/usertips", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []v1view.UserTipSummary
	require.NoError(t, decodeBody(w, &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Winner?", resp[0].Question)
	assert.Equal(t, "Max", resp[0].Answer)
	assert.True(t, resp[0].IsCorrect)
	assert.Equal(t, 25, resp[0].Points)
}

func TestUpcomingEvents(t *testing.T) {
	h, s := newTestHandler()
	correct := "o-max"
	s.upcoming = []v1model.UpcomingEvent{
		{
			Event: v1model.Event{ID: "e1", Name: "Monaco GP", EventDate: time.Now().Add(24 * time.Hour)},
			Tips: []v1model.TipWithOptions{
				{
					Tip: v1model.Tip{ID: "t1", Question: "Winner?", Points: 25, EventID: "e1", CorrectTipOptionID: &correct},
					Options: []v1model.TipOption{
						{ID: "o-max", Answer: "Max", TipID: "t1"},
						{ID: "o-lewis", Answer: "Lewis", TipID: "t1"},
					},
				},
			},
		},
	}

	token := tokenFor(t, h, v1model.User{ID: "u1", Username: "max", Role: v1model.RoleUser})
	w := doRequest(t, h, http.MethodGet, "/api/events/upcoming", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()

	var resp []v1view.UpcomingEvent
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.Len(t, resp, 1)
	require.Len(t, resp[0].Tips, 1)
	assert.Len(t, resp[0].Tips[0].Options, 2)

	// The date filter is live: the store is asked for events from
	// (roughly) now, not from the zero time.
	assert.WithinDuration(t, time.Now(), s.upcomingFrom, time.Minute)

	// The correct answer never leaks into the player payload.
	assert.NotContains(t, body, "correct")
}

func TestLeaderboard(t *testing.T) {
	h, s := newTestHandler()
	s.board = []v1model.LeaderboardRow{
		{Username: "max", Points: 50},
		{Username: "lewis", Points: 25},
		{Username: "lando", Points: 25},
	}

	token := tokenFor(t, h, v1model.User{ID: "u1", Username: "max", Role: v1model.RoleUser})
	w := doRequest(t, h, http.MethodGet, "/api/leaderboard", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []v1view.LeaderboardRow
	require.NoError(t, decodeBody(w, &resp))
	require.Len(t, resp, 3)
	assert.Equal(t, "max", resp[0].Username)
	assert.Equal(t, 50, resp[0].Points)
}
