package v1handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/phluxx/gridtips/internal/config"
	"github.com/phluxx/gridtips/internal/store"
	"github.com/phluxx/gridtips/pkg/model/v1model"
)

// stubStore is an in-memory Store for handler tests. The (user, tip)
// uniqueness rule is enforced under a mutex, mirroring what the
// MySQL unique key provides.
type stubStore struct {
	mu sync.Mutex

	users    map[string]v1model.User // keyed by username
	teams    map[string]v1model.Team
	drivers  []v1model.Driver
	events   map[string]v1model.Event
	tips     map[string]v1model.Tip
	options  map[string]v1model.TipOption
	userTips map[string]v1model.UserTip // keyed by userID+"|"+tipID

	upcoming     []v1model.UpcomingEvent
	upcomingFrom time.Time
	board        []v1model.LeaderboardRow
}

func newStubStore() *stubStore {
	return &stubStore{
		users:    map[string]v1model.User{},
		teams:    map[string]v1model.Team{},
		events:   map[string]v1model.Event{},
		tips:     map[string]v1model.Tip{},
		options:  map[string]v1model.TipOption{},
		userTips: map[string]v1model.UserTip{},
	}
}

func (s *stubStore) CreateUser(_ context.Context, user v1model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.Username]; ok {
		return store.ErrDuplicate
	}
	s.users[user.Username] = user
	return nil
}

func (s *stubStore) GetUserByUsername(_ context.Context, username string) (v1model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[username]
	if !ok {
		return v1model.User{}, store.ErrNotFound
	}
	return user, nil
}

func (s *stubStore) GetUsers(_ context.Context) ([]v1model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]v1model.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	return users, nil
}

func (s *stubStore) DeleteUser(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, user := range s.users {
		if user.ID == id {
			delete(s.users, name)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *stubStore) GetLeaderboard(_ context.Context) ([]v1model.LeaderboardRow, error) {
	return s.board, nil
}

func (s *stubStore) CreateTeam(_ context.Context, team v1model.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams[team.ID] = team
	return nil
}

func (s *stubStore) GetTeams(_ context.Context) ([]v1model.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	teams := make([]v1model.Team, 0, len(s.teams))
	for _, team := range s.teams {
		teams = append(teams, team)
	}
	return teams, nil
}

func (s *stubStore) GetTeamByName(_ context.Context, name string) (v1model.Team, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, team := range s.teams {
		if team.Name == name {
			return team, nil
		}
	}
	return v1model.Team{}, store.ErrNotFound
}

func (s *stubStore) CreateDriver(_ context.Context, driver v1model.Driver) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drivers = append(s.drivers, driver)
	return nil
}

func (s *stubStore) GetDrivers(_ context.Context) ([]v1model.Driver, error) {
	return s.drivers, nil
}

func (s *stubStore) CreateEvent(_ context.Context, event v1model.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.ID] = event
	return nil
}

func (s *stubStore) GetEvents(_ context.Context) ([]v1model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := make([]v1model.Event, 0, len(s.events))
	for _, event := range s.events {
		events = append(events, event)
	}
	return events, nil
}

func (s *stubStore) GetEvent(_ context.Context, id string) (v1model.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	event, ok := s.events[id]
	if !ok {
		return v1model.Event{}, store.ErrNotFound
	}
	return event, nil
}

func (s *stubStore) DeleteEvent(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.events, id)
	return nil
}

func (s *stubStore) CreateTip(_ context.Context, tip v1model.Tip) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tips[tip.ID] = tip
	return nil
}

func (s *stubStore) GetTip(_ context.Context, id string) (v1model.Tip, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tip, ok := s.tips[id]
	if !ok {
		return v1model.Tip{}, store.ErrNotFound
	}
	return tip, nil
}

func (s *stubStore) SetCorrectTipOption(_ context.Context, tipID, optionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tip, ok := s.tips[tipID]
	if !ok {
		return store.ErrNotFound
	}
	tip.CorrectTipOptionID = &optionID
	s.tips[tipID] = tip
	return nil
}

func (s *stubStore) CreateTipOption(_ context.Context, option v1model.TipOption) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.options[option.ID] = option
	return nil
}

func (s *stubStore) GetTipOptions(_ context.Context) ([]v1model.TipOption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	options := make([]v1model.TipOption, 0, len(s.options))
	for _, option := range s.options {
		options = append(options, option)
	}
	return options, nil
}

func (s *stubStore) GetTipOption(_ context.Context, id string) (v1model.TipOption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	option, ok := s.options[id]
	if !ok {
		return v1model.TipOption{}, store.ErrNotFound
	}
	return option, nil
}

func (s *stubStore) GetUpcomingEvents(_ context.Context, from time.Time) ([]v1model.UpcomingEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upcomingFrom = from
	return s.upcoming, nil
}

func (s *stubStore) CreateUserTip(_ context.Context, ut v1model.UserTip) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := ut.UserID + "|" + ut.TipID
	if _, ok := s.userTips[key]; ok {
		return store.ErrDuplicate
	}
	s.userTips[key] = ut
	return nil
}

func (s *stubStore) GetUserTips(_ context.Context, userID string) ([]v1model.UserTipSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var tips []v1model.UserTipSummary
	for _, ut := range s.userTips {
		if ut.UserID != userID {
			continue
		}
		tip := s.tips[ut.TipID]
		option := s.options[ut.SelectedOptionID]
		tips = append(tips, v1model.UserTipSummary{
			TipID:     ut.TipID,
			Question:  tip.Question,
			Answer:    option.Answer,
			IsCorrect: ut.IsCorrect,
			Points:    tip.Points,
			CreatedAt: ut.CreatedAt,
		})
	}
	return tips, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Jwt: config.JwtConfig{Secret: "test-secret"},
	}
}

func newTestHandler() (*HttpHandler, *stubStore) {
	s := newStubStore()
	return New(testConfig(), s), s
}

func tokenFor(t *testing.T, h *HttpHandler, user v1model.User) string {
	t.Helper()
	token, err := h.auth.IssueToken(user, time.Now())
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return token
}

func doRequest(t *testing.T, h *HttpHandler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody(w *httptest.ResponseRecorder, v interface{}) error {
	return json.NewDecoder(w.Body).Decode(v)
}
