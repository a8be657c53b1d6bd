package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phluxx/gridtips/pkg/model/v1model"
	"golang.org/x/crypto/bcrypt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id CHAR(36) NOT NULL PRIMARY KEY,
		username VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(50) NOT NULL DEFAULT 'user',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		is_deleted TINYINT(1) NOT NULL DEFAULT 0,
		UNIQUE KEY uq_users_username (username)
	)`,
	`CREATE TABLE IF NOT EXISTS teams (
		id CHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		is_deleted TINYINT(1) NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS drivers (
		id CHAR(36) NOT NULL PRIMARY KEY,
		firstname VARCHAR(255) NOT NULL,
		lastname VARCHAR(255) NOT NULL,
		team_id CHAR(36) NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		is_deleted TINYINT(1) NOT NULL DEFAULT 0,
		CONSTRAINT fk_drivers_team FOREIGN KEY (team_id) REFERENCES teams (id)
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id CHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		event_date DATETIME NOT NULL,
		is_active TINYINT(1) NOT NULL DEFAULT 1,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		is_deleted TINYINT(1) NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS tips (
		id CHAR(36) NOT NULL PRIMARY KEY,
		question TEXT NOT NULL,
		points INT NOT NULL DEFAULT 10,
		event_id CHAR(36) NOT NULL,
		correct_tip_option_id CHAR(36) NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		is_deleted TINYINT(1) NOT NULL DEFAULT 0,
		CONSTRAINT fk_tips_event FOREIGN KEY (event_id) REFERENCES events (id)
	)`,
	`CREATE TABLE IF NOT EXISTS tip_options (
		id CHAR(36) NOT NULL PRIMARY KEY,
		answer VARCHAR(255) NOT NULL,
		tip_id CHAR(36) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		is_deleted TINYINT(1) NOT NULL DEFAULT 0,
		CONSTRAINT fk_tip_options_tip FOREIGN KEY (tip_id) REFERENCES tips (id)
	)`,
	`CREATE TABLE IF NOT EXISTS user_tips (
		id CHAR(36) NOT NULL PRIMARY KEY,
		user_id CHAR(36) NOT NULL,
		tip_id CHAR(36) NOT NULL,
		selected_option_id CHAR(36) NOT NULL,
		is_correct TINYINT(1) NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		is_deleted TINYINT(1) NOT NULL DEFAULT 0,
		UNIQUE KEY uq_user_tips_user_tip (user_id, tip_id),
		CONSTRAINT fk_user_tips_user FOREIGN KEY (user_id) REFERENCES users (id),
		CONSTRAINT fk_user_tips_tip FOREIGN KEY (tip_id) REFERENCES tips (id),
		CONSTRAINT fk_user_tips_option FOREIGN KEY (selected_option_id) REFERENCES tip_options (id)
	)`,
}

// EnsureSchema creates missing tables. The unique key on
// user_tips(user_id, tip_id) is the duplicate-submission guarantee;
// nothing above the store re-checks it.
func (m *Mysql) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// SeedAdmin inserts the bootstrap admin account if no user with that
// name exists yet.
func (m *Mysql) SeedAdmin(ctx context.Context, username, password string) error {
	var exists bool
	err := m.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = ?)`, username)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return m.CreateUser(ctx, v1model.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         v1model.RoleAdmin,
	})
}
