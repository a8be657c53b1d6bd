package v1handler

import (
	"context"
	"time"

	"github.com/phluxx/gridtips/pkg/model/v1model"
)

// Store is everything the handlers need from the data layer. The
// MySQL implementation lives in internal/store; tests substitute a
// stub.
type Store interface {
	CreateUser(ctx context.Context, user v1model.User) error
	GetUserByUsername(ctx context.Context, username string) (v1model.User, error)
	GetUsers(ctx context.Context) ([]v1model.User, error)
	DeleteUser(ctx context.Context, id string) error
	GetLeaderboard(ctx context.Context) ([]v1model.LeaderboardRow, error)

	CreateTeam(ctx context.Context, team v1model.Team) error
	GetTeams(ctx context.Context) ([]v1model.Team, error)
	GetTeamByName(ctx context.Context, name string) (v1model.Team, error)
	CreateDriver(ctx context.Context, driver v1model.Driver) error
	GetDrivers(ctx context.Context) ([]v1model.Driver, error)
	CreateEvent(ctx context.Context, event v1model.Event) error
	GetEvents(ctx context.Context) ([]v1model.Event, error)
	GetEvent(ctx context.Context, id string) (v1model.Event, error)
	DeleteEvent(ctx context.Context, id string) error

	CreateTip(ctx context.Context, tip v1model.Tip) error
	GetTip(ctx context.Context, id string) (v1model.Tip, error)
	SetCorrectTipOption(ctx context.Context, tipID, optionID string) error
	CreateTipOption(ctx context.Context, option v1model.TipOption) error
	GetTipOptions(ctx context.Context) ([]v1model.TipOption, error)
	GetTipOption(ctx context.Context, id string) (v1model.TipOption, error)
	GetUpcomingEvents(ctx context.Context, from time.Time) ([]v1model.UpcomingEvent, error)
	CreateUserTip(ctx context.Context, ut v1model.UserTip) error
	GetUserTips(ctx context.Context, userID string) ([]v1model.UserTipSummary, error)
}
