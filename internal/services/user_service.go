package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/aldisn/contactbook-be/internal/apperr"
	"github.com/aldisn/contactbook-be/internal/auth"
	"github.com/aldisn/contactbook-be/internal/models"
	"github.com/google/uuid"
)

// UserUpdateInput carries the optional profile fields; nil means "leave as is".
type UserUpdateInput struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	Register(username, password, name string) (models.User, error)
	Login(username, password string) (models.User, error)
	GetUserByToken(token string) (models.User, error)
	UpdateProfile(userID string, input UserUpdateInput) (models.User, error)
	Logout(userID string) error
}

// UserService provides business logic for accounts and sessions.
type UserService struct {
	db     *sql.DB
	hasher auth.PasswordHasher
	tokens auth.TokenSource
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB, hasher auth.PasswordHasher, tokens auth.TokenSource) *UserService {
	return &UserService{db: db, hasher: hasher, tokens: tokens}
}

// Register creates a new user with a hashed password and a fresh session token.
func (s *UserService) Register(username, password, name string) (models.User, error) {
	var problems []string
	if strings.TrimSpace(username) == "" {
		problems = append(problems, "username is required")
	}
	if password == "" {
		problems = append(problems, "password is required")
	}
	if strings.TrimSpace(name) == "" {
		problems = append(problems, "name is required")
	}
	if len(problems) > 0 {
		return models.User{}, apperr.Validation(problems...)
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(1) FROM users WHERE username = ?", username).Scan(&count); err != nil {
		return models.User{}, err
	}
	if count > 0 {
		return models.User{}, apperr.Validation("username already registered")
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}
	token, err := s.tokens.NewToken()
	if err != nil {
		return models.User{}, fmt.Errorf("failed to generate token: %w", err)
	}

	user := models.User{
		ID:           uuid.New().String(),
		Username:     username,
		Name:         name,
		PasswordHash: hashed,
		Token:        &token,
	}

	stmt, err := s.db.Prepare("INSERT INTO users(id, username, name, password_hash, token) VALUES(?, ?, ?, ?, ?)")
	if err != nil {
		return models.User{}, err
	}
	defer stmt.Close()

	if _, err := stmt.Exec(user.ID, user.Username, user.Name, user.PasswordHash, user.Token); err != nil {
		// Lost the race against a concurrent registration with the same name.
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return models.User{}, apperr.Validation("username already registered")
		}
		return models.User{}, err
	}

	// Return user without password hash
	user.PasswordHash = ""
	return user, nil
}

// Login verifies the credentials and rotates the session token. Unknown
// usernames and wrong passwords produce the same error.
func (s *UserService) Login(username, password string) (models.User, error) {
	if username == "" || password == "" {
		return models.User{}, apperr.Validation("username and password are required")
	}

	user, err := s.getUserByUsername(username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, apperr.ErrInvalidCredentials
		}
		return models.User{}, err
	}
	if !s.hasher.Compare(user.PasswordHash, password) {
		return models.User{}, apperr.ErrInvalidCredentials
	}

	token, err := s.tokens.NewToken()
	if err != nil {
		return models.User{}, fmt.Errorf("failed to generate token: %w", err)
	}
	if _, err := s.db.Exec("UPDATE users SET token = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?", token, user.ID); err != nil {
		return models.User{}, err
	}

	user.Token = &token
	user.PasswordHash = ""
	return user, nil
}

// GetUserByToken resolves the account holding the given session token.
func (s *UserService) GetUserByToken(token string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, username, name, password_hash, token FROM users WHERE token = ?", token)
	if err := row.Scan(&user.ID, &user.Username, &user.Name, &user.PasswordHash, &user.Token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, apperr.ErrUnauthenticated
		}
		return models.User{}, err
	}
	return user, nil
}

// UpdateProfile overwrites only the fields present in the input. A new
// password is hashed before storage.
func (s *UserService) UpdateProfile(userID string, input UserUpdateInput) (models.User, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return models.User{}, apperr.Validation("name must not be empty")
	}
	if input.Password != nil && *input.Password == "" {
		return models.User{}, apperr.Validation("password must not be empty")
	}

	if input.Name != nil {
		if _, err := s.db.Exec("UPDATE users SET name = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?", *input.Name, userID); err != nil {
			return models.User{}, err
		}
	}
	if input.Password != nil {
		hashed, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return models.User{}, fmt.Errorf("failed to hash password: %w", err)
		}
		if _, err := s.db.Exec("UPDATE users SET password_hash = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?", hashed, userID); err != nil {
			return models.User{}, err
		}
	}

	user, err := s.getUserByID(userID)
	if err != nil {
		return models.User{}, err
	}
	user.PasswordHash = ""
	return user, nil
}

// Logout clears the session token; any further use of the old token fails
// authentication.
func (s *UserService) Logout(userID string) error {
	_, err := s.db.Exec("UPDATE users SET token = NULL, updated_at = CURRENT_TIMESTAMP WHERE id = ?", userID)
	return err
}

func (s *UserService) getUserByID(id string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, username, name, password_hash, token FROM users WHERE id = ?", id)
	if err := row.Scan(&user.ID, &user.Username, &user.Name, &user.PasswordHash, &user.Token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, apperr.NotFound("user")
		}
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) getUserByUsername(username string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, username, name, password_hash, token FROM users WHERE username = ?", username)
	if err := row.Scan(&user.ID, &user.Username, &user.Name, &user.PasswordHash, &user.Token); err != nil {
		return models.User{}, err
	}
	return user, nil
}
