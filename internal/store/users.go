package store

import (
	"context"

	"github.com/phluxx/gridtips/pkg/model/v1model"
)

func (m *Mysql) CreateUser(ctx context.Context, user v1model.User) error {
	_, err := m.db.NamedExecContext(ctx,
		`INSERT INTO users (id, username, password_hash, role) VALUES (:id, :username, :password_hash, :role)`,
		user)
	return translate(err)
}

func (m *Mysql) GetUserByUsername(ctx context.Context, username string) (v1model.User, error) {
	var user v1model.User
	err := m.db.GetContext(ctx, &user,
		`SELECT id, username, password_hash, role FROM users WHERE username = ? AND is_deleted = 0`,
		username)
	return user, translate(err)
}

func (m *Mysql) GetUsers(ctx context.Context) ([]v1model.User, error) {
	rows, err := m.db.QueryxContext(ctx,
		`SELECT id, username, role FROM users WHERE is_deleted = 0 ORDER BY username ASC`)
	if err != nil {
		return []v1model.User{}, err
	}

	defer rows.Close()

	var users []v1model.User
	for rows.Next() {
		var user v1model.User
		if err := rows.StructScan(&user); err != nil {
			return []v1model.User{}, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (m *Mysql) DeleteUser(ctx context.Context, id string) error {
	res, err := m.db.ExecContext(ctx,
		`UPDATE users SET is_deleted = 1 WHERE id = ? AND is_deleted = 0`, id)
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

// GetLeaderboard derives points at read time: the sum of tip point
// values over each user's correct submissions. Ties break on
// username so the order is deterministic.
func (m *Mysql) GetLeaderboard(ctx context.Context) ([]v1model.LeaderboardRow, error) {
	rows, err := m.db.QueryxContext(ctx,
		`SELECT u.username AS username, CAST(COALESCE(SUM(t.points), 0) AS SIGNED) AS points
		 FROM users u
		 LEFT JOIN user_tips ut ON ut.user_id = u.id AND ut.is_correct = 1 AND ut.is_deleted = 0
		 LEFT JOIN tips t ON t.id = ut.tip_id AND t.is_deleted = 0
		 WHERE u.is_deleted = 0
		 GROUP BY u.id, u.username
		 ORDER BY points DESC, u.username ASC`)
	if err != nil {
		return []v1model.LeaderboardRow{}, err
	}

	defer rows.Close()

	var board []v1model.LeaderboardRow
	for rows.Next() {
		var row v1model.LeaderboardRow
		if err := rows.StructScan(&row); err != nil {
			return []v1model.LeaderboardRow{}, err
		}
		board = append(board, row)
	}
	return board, nil
}
