package v1request

import (
	"errors"

	"github.com/google/uuid"
	"github.com/phluxx/gridtips/pkg/model/v1model"
)

type Login struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (l Login) Validate() error {
	if l.Username == "" || l.Password == "" {
		return errors.New("username and password are required")
	}
	return nil
}

type CreateUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (c CreateUser) Validate() error {
	if c.Username == "" || c.Password == "" {
		return errors.New("username and password are required")
	}
	if c.Role != "" && c.Role != v1model.RoleAdmin && c.Role != v1model.RoleUser {
		return errors.New("role must be admin or user")
	}
	return nil
}

// ToModel mints the user id and applies the role default. Password
// hashing stays with the caller.
func (c CreateUser) ToModel(passwordHash string) v1model.User {
	role := c.Role
	if role == "" {
		role = v1model.RoleUser
	}
	return v1model.User{
		ID:           uuid.NewString(),
		Username:     c.Username,
		PasswordHash: passwordHash,
		Role:         role,
	}
}
