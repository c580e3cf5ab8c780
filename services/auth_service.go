package services

import (
	"Eatdentify/config/database"
	"Eatdentify/config/environment"
	"Eatdentify/utils"
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

const uniqueViolation = "23505"

// AuthService handles registration and login against the users table.
type AuthService struct {
	DB *sql.DB
}

// NewAuthService initializes AuthService with the Postgres pool
func NewAuthService() *AuthService {
	return &AuthService{DB: database.GetPostgresDB()}
}

// Register stores a new user with a hashed password and the free-text
// eating-habit remarks.
func (s *AuthService) Register(ctx context.Context, username, password, remarks string) error {
	if username == "" || password == "" {
		return utils.NewCustomError(http.StatusBadRequest, "Username and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.DB.ExecContext(ctx,
		`INSERT INTO users (username, password, remarks) VALUES ($1, $2, $3)`,
		username, string(hash), remarks)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return utils.NewCustomError(http.StatusConflict, "Username already exists")
		}
		return err
	}
	return nil
}

// Login verifies the credentials and returns a signed bearer token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	var storedHash string
	err := s.DB.QueryRowContext(ctx,
		`SELECT password FROM users WHERE username = $1`, username).Scan(&storedHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", utils.NewCustomError(http.StatusUnauthorized, "Incorrect username or password")
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) != nil {
		return "", utils.NewCustomError(http.StatusUnauthorized, "Incorrect username or password")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": username,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString([]byte(environment.GetJWTSecret()))
}
