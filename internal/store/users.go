package store

import (
	"fmt"

	"github.com/aureliacouture/boutique/internal/models"
	"github.com/google/uuid"
)

const usersKey = "users"

// GetUserByUsername returns nil without an error when no such user exists.
func (s *Store) GetUserByUsername(username string) (*models.User, error) {
	var users []models.User
	s.Get(usersKey, &users)

	for _, u := range users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

// CreateUser is mainly for seeding the initial admin via the CLI.
func (s *Store) CreateUser(username, hashedPassword string) error {
	var users []models.User
	s.Get(usersKey, &users)

	for _, u := range users {
		if u.Username == username {
			return fmt.Errorf("user %q already exists", username)
		}
	}

	users = append(users, models.User{
		ID:       uuid.New().String(),
		Username: username,
		Password: hashedPassword,
	})
	return s.Put(usersKey, users)
}
