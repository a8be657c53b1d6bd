package store

import (
	"context"

	"github.com/phluxx/gridtips/pkg/model/v1model"
)

func (m *Mysql) CreateTeam(ctx context.Context, team v1model.Team) error {
	_, err := m.db.NamedExecContext(ctx,
		`INSERT INTO teams (id, name) VALUES (:id, :name)`, team)
	return translate(err)
}

func (m *Mysql) GetTeams(ctx context.Context) ([]v1model.Team, error) {
	rows, err := m.db.QueryxContext(ctx,
		`SELECT id, name FROM teams WHERE is_deleted = 0 ORDER BY name ASC`)
	if err != nil {
		return []v1model.Team{}, err
	}

	defer rows.Close()

	var teams []v1model.Team
	for rows.Next() {
		var team v1model.Team
		if err := rows.StructScan(&team); err != nil {
			return []v1model.Team{}, err
		}
		teams = append(teams, team)
	}
	return teams, nil
}

func (m *Mysql) GetTeamByName(ctx context.Context, name string) (v1model.Team, error) {
	var team v1model.Team
	err := m.db.GetContext(ctx, &team,
		`SELECT id, name FROM teams WHERE name = ? AND is_deleted = 0`, name)
	return team, translate(err)
}

func (m *Mysql) CreateDriver(ctx context.Context, driver v1model.Driver) error {
	_, err := m.db.NamedExecContext(ctx,
		`INSERT INTO drivers (id, firstname, lastname, team_id) VALUES (:id, :firstname, :lastname, :team_id)`,
		driver)
	return translate(err)
}

func (m *Mysql) GetDrivers(ctx context.Context) ([]v1model.Driver, error) {
	rows, err := m.db.QueryxContext(ctx,
		`SELECT d.id, d.firstname, d.lastname, d.team_id, t.name AS team_name
		 FROM drivers d
		 LEFT JOIN teams t ON t.id = d.team_id AND t.is_deleted = 0
		 WHERE d.is_deleted = 0
		 ORDER BY d.lastname ASC, d.firstname ASC`)
	if err != nil {
		return []v1model.Driver{}, err
	}

	defer rows.Close()

	var drivers []v1model.Driver
	for rows.Next() {
		var driver v1model.Driver
		if err := rows.StructScan(&driver); err != nil {
			return []v1model.Driver{}, err
		}
		drivers = append(drivers, driver)
	}
	return drivers, nil
}

func (m *Mysql) CreateEvent(ctx context.Context, event v1model.Event) error {
	_, err := m.db.NamedExecContext(ctx,
		`INSERT INTO events (id, name, event_date, is_active) VALUES (:id, :name, :event_date, :is_active)`,
		event)
	return translate(err)
}

func (m *Mysql) GetEvents(ctx context.Context) ([]v1model.Event, error) {
	rows, err := m.db.QueryxContext(ctx,
		`SELECT id, name, event_date, is_active FROM events WHERE is_deleted = 0 ORDER BY event_date ASC`)
	if err != nil {
		return []v1model.Event{}, err
	}

	defer rows.Close()

	var events []v1model.Event
	for rows.Next() {
		var event v1model.Event
		if err := rows.StructScan(&event); err != nil {
			return []v1model.Event{}, err
		}
		events = append(events, event)
	}
	return events, nil
}

func (m *Mysql) GetEvent(ctx context.Context, id string) (v1model.Event, error) {
	var event v1model.Event
	err := m.db.GetContext(ctx, &event,
		`SELECT id, name, event_date, is_active FROM events WHERE id = ? AND is_deleted = 0`, id)
	return event, translate(err)
}

func (m *Mysql) DeleteEvent(ctx context.Context, id string) error {
	res, err := m.db.ExecContext(ctx,
		`UPDATE events SET is_deleted = 1 WHERE id = ? AND is_deleted = 0`, id)
	if err != nil {
		return translate(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
