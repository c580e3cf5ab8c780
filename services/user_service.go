package services

import (
	"Eatdentify/config/database"
	"Eatdentify/models"
	"Eatdentify/utils"
	"context"
	"database/sql"
	"errors"
	"net/http"
)

// UserService reads and updates user profiles.
type UserService struct {
	DB *sql.DB
}

// NewUserService initializes UserService with the Postgres pool
func NewUserService() *UserService {
	return &UserService{DB: database.GetPostgresDB()}
}

// GetUserProfile returns the stored profile for a username.
func (s *UserService) GetUserProfile(ctx context.Context, username string) (*models.Profile, error) {
	var profile models.Profile
	err := s.DB.QueryRowContext(ctx,
		`SELECT username, remarks FROM users WHERE username = $1`, username).
		Scan(&profile.Username, &profile.Remarks)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.NewCustomError(http.StatusNotFound, "User not found")
		}
		return nil, err
	}
	return &profile, nil
}

// UpdateRemarks replaces the eating-habit remarks used to personalize
// searches.
func (s *UserService) UpdateRemarks(ctx context.Context, username, remarks string) error {
	result, err := s.DB.ExecContext(ctx,
		`UPDATE users SET remarks = $1 WHERE username = $2`, remarks, username)
	if err != nil {
		return err
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return utils.NewCustomError(http.StatusNotFound, "User not found")
	}
	return nil
}
