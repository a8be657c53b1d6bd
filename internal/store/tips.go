package store

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/phluxx/gridtips/pkg/model/v1model"
)

func (m *Mysql) CreateTip(ctx context.Context, tip v1model.Tip) error {
	_, err := m.db.NamedExecContext(ctx,
		`INSERT INTO tips (id, question, points, event_id) VALUES (:id, :question, :points, :event_id)`,
		tip)
	return translate(err)
}

func (m *Mysql) GetTip(ctx context.Context, id string) (v1model.Tip, error) {
	var tip v1model.Tip
	err := m.db.GetContext(ctx, &tip,
		`SELECT id, question, points, event_id, correct_tip_option_id FROM tips WHERE id = ? AND is_deleted = 0`,
		id)
	return tip, translate(err)
}

func (m *Mysql) CreateTipOption(ctx context.Context, option v1model.TipOption) error {
	_, err := m.db.NamedExecContext(ctx,
		`INSERT INTO tip_options (id, answer, tip_id) VALUES (:id, :answer, :tip_id)`,
		option)
	return translate(err)
}

func (m *Mysql) GetTipOptions(ctx context.Context) ([]v1model.TipOption, error) {
	rows, err := m.db.QueryxContext(ctx,
		`SELECT id, answer, tip_id FROM tip_options WHERE is_deleted = 0 ORDER BY answer ASC`)
	if err != nil {
		return []v1model.TipOption{}, err
	}

	defer rows.Close()

	var options []v1model.TipOption
	for rows.Next() {
		var option v1model.TipOption
		if err := rows.StructScan(&option); err != nil {
			return []v1model.TipOption{}, err
		}
		options = append(options, option)
	}
	return options, nil
}

func (m *Mysql) GetTipOption(ctx context.Context, id string) (v1model.TipOption, error) {
	var option v1model.TipOption
	err := m.db.GetContext(ctx, &option,
		`SELECT id, answer, tip_id FROM tip_options WHERE id = ? AND is_deleted = 0`, id)
	return option, translate(err)
}

// SetCorrectTipOption records the winning answer. Option membership
// is the caller's check; already-recorded submissions keep the
// correctness they were scored with.
func (m *Mysql) SetCorrectTipOption(ctx context.Context, tipID, optionID string) error {
	res, err := m.db.ExecContext(ctx,
		`UPDATE tips SET correct_tip_option_id = ? WHERE id = ? AND is_deleted = 0`,
		optionID, tipID)
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

// GetUpcomingEvents returns future, active, non-deleted events in
// date order with their tips and options attached. Three queries
// total, keyed on id sets, so the nesting cost stays flat.
func (m *Mysql) GetUpcomingEvents(ctx context.Context, from time.Time) ([]v1model.UpcomingEvent, error) {
	events := []v1model.UpcomingEvent{}

	rows, err := m.db.QueryxContext(ctx,
		`SELECT id, name, event_date, is_active FROM events
		 WHERE is_deleted = 0 AND is_active = 1 AND event_date >= ?
		 ORDER BY event_date ASC`, from)
	if err != nil {
		return events, err
	}
	defer rows.Close()

	eventIndex := map[string]int{}
	for rows.Next() {
		var event v1model.Event
		if err := rows.StructScan(&event); err != nil {
			return events, err
		}
		eventIndex[event.ID] = len(events)
		events = append(events, v1model.UpcomingEvent{Event: event, Tips: []v1model.TipWithOptions{}})
	}
	if len(events) == 0 {
		return events, nil
	}

	eventIDs := make([]string, 0, len(events))
	for id := range eventIndex {
		eventIDs = append(eventIDs, id)
	}

	query, args, err := sqlx.In(
		`SELECT id, question, points, event_id, correct_tip_option_id FROM tips
		 WHERE is_deleted = 0 AND event_id IN (?) ORDER BY created_at ASC`, eventIDs)
	if err != nil {
		return events, err
	}
	tipRows, err := m.db.QueryxContext(ctx, m.db.Rebind(query), args...)
	if err != nil {
		return events, err
	}
	defer tipRows.Close()

	tipIndex := map[string][2]int{}
	tipIDs := []string{}
	for tipRows.Next() {
		var tip v1model.Tip
		if err := tipRows.StructScan(&tip); err != nil {
			return events, err
		}
		ei := eventIndex[tip.EventID]
		tipIndex[tip.ID] = [2]int{ei, len(events[ei].Tips)}
		events[ei].Tips = append(events[ei].Tips, v1model.TipWithOptions{Tip: tip, Options: []v1model.TipOption{}})
		tipIDs = append(tipIDs, tip.ID)
	}
	if len(tipIDs) == 0 {
		return events, nil
	}

	query, args, err = sqlx.In(
		`SELECT id, answer, tip_id FROM tip_options
		 WHERE is_deleted = 0 AND tip_id IN (?) ORDER BY created_at ASC`, tipIDs)
	if err != nil {
		return events, err
	}
	optRows, err := m.db.QueryxContext(ctx, m.db.Rebind(query), args...)
	if err != nil {
		return events, err
	}
	defer optRows.Close()

	for optRows.Next() {
		var option v1model.TipOption
		if err := optRows.StructScan(&option); err != nil {
			return events, err
		}
		pos := tipIndex[option.TipID]
		tip := &events[pos[0]].Tips[pos[1]]
		tip.Options = append(tip.Options, option)
	}

	return events, nil
}

// CreateUserTip inserts the submission and lets the unique key on
// (user_id, tip_id) decide duplicates: a second submission surfaces
// as ErrDuplicate, with no existence read beforehand.
func (m *Mysql) CreateUserTip(ctx context.Context, ut v1model.UserTip) error {
	_, err := m.db.NamedExecContext(ctx,
		`INSERT INTO user_tips (id, user_id, tip_id, selected_option_id, is_correct, created_at)
		 VALUES (:id, :user_id, :tip_id, :selected_option_id, :is_correct, :created_at)`,
		ut)
	return translate(err)
}

func (m *Mysql) GetUserTips(ctx context.Context, userID string) ([]v1model.UserTipSummary, error) {
	rows, err := m.db.QueryxContext(ctx,
		`SELECT ut.tip_id, t.question, o.answer, ut.is_correct, t.points, ut.created_at
		 FROM user_tips ut
		 JOIN tips t ON t.id = ut.tip_id
		 JOIN tip_options o ON o.id = ut.selected_option_id
		 WHERE ut.user_id = ? AND ut.is_deleted = 0
		 ORDER BY ut.created_at DESC`, userID)
	if err != nil {
		return []v1model.UserTipSummary{}, err
	}

	defer rows.Close()

	var tips []v1model.UserTipSummary
	for rows.Next() {
		var tip v1model.UserTipSummary
		if err := rows.StructScan(&tip); err != nil {
			return []v1model.UserTipSummary{}, err
		}
		tips = append(tips, tip)
	}
	return tips, nil
}
