package services

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/aldisn/contactbook-be/internal/apperr"
	"github.com/aldisn/contactbook-be/internal/models"
	"github.com/google/uuid"
)

// ContactInput carries contact fields for create and update; nil means the
// field was absent from the request.
type ContactInput struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

// ContactServiceProvider defines the interface for contact services.
type ContactServiceProvider interface {
	GetAllContacts(userID string) ([]models.Contact, error)
	CreateContact(userID string, input ContactInput) (models.Contact, error)
	GetContactByID(userID, id string) (models.Contact, error)
	UpdateContact(userID, id string, input ContactInput) (models.Contact, error)
	DeleteContact(userID, id string) error
}

// ContactService provides business logic for contact management.
type ContactService struct {
	db *sql.DB
}

// NewContactService creates a new ContactService.
func NewContactService(db *sql.DB) *ContactService {
	return &ContactService{db: db}
}

// findOwnedContact resolves a contact by id scoped to its owner. A contact
// that exists but belongs to someone else is reported exactly like a missing
// one; callers never learn the difference.
func findOwnedContact(db *sql.DB, userID, id string) (models.Contact, error) {
	var c models.Contact
	row := db.QueryRow(
		"SELECT id, user_id, first_name, last_name, email, phone FROM contacts WHERE id = ? AND user_id = ?",
		id, userID,
	)
	if err := row.Scan(&c.ID, &c.UserID, &c.FirstName, &c.LastName, &c.Email, &c.Phone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Contact{}, apperr.NotFound("contact")
		}
		return models.Contact{}, err
	}
	return c, nil
}

// GetAllContacts retrieves all contacts owned by the user.
func (s *ContactService) GetAllContacts(userID string) ([]models.Contact, error) {
	rows, err := s.db.Query(
		"SELECT id, user_id, first_name, last_name, email, phone FROM contacts WHERE user_id = ?",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []models.Contact
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ID, &c.UserID, &c.FirstName, &c.LastName, &c.Email, &c.Phone); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

// CreateContact validates the input and persists a new contact for the user.
func (s *ContactService) CreateContact(userID string, input ContactInput) (models.Contact, error) {
	if input.FirstName == nil || strings.TrimSpace(*input.FirstName) == "" {
		return models.Contact{}, apperr.Validation("first_name is required")
	}

	contact := models.Contact{
		ID:        uuid.New().String(),
		UserID:    userID,
		FirstName: *input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Addresses: []models.Address{},
	}

	stmt, err := s.db.Prepare("INSERT INTO contacts(id, user_id, first_name, last_name, email, phone) VALUES(?, ?, ?, ?, ?, ?)")
	if err != nil {
		return models.Contact{}, err
	}
	defer stmt.Close()

	if _, err := stmt.Exec(contact.ID, contact.UserID, contact.FirstName, contact.LastName, contact.Email, contact.Phone); err != nil {
		return models.Contact{}, err
	}
	return contact, nil
}

// GetContactByID retrieves a single owned contact with its addresses loaded.
func (s *ContactService) GetContactByID(userID, id string) (models.Contact, error) {
	contact, err := findOwnedContact(s.db, userID, id)
	if err != nil {
		return models.Contact{}, err
	}

	addresses, err := listAddresses(s.db, contact.ID)
	if err != nil {
		return models.Contact{}, err
	}
	contact.Addresses = addresses
	return contact, nil
}

// UpdateContact overwrites only the fields present in the input.
func (s *ContactService) UpdateContact(userID, id string, input ContactInput) (models.Contact, error) {
	contact, err := findOwnedContact(s.db, userID, id)
	if err != nil {
		return models.Contact{}, err
	}

	if input.FirstName != nil {
		if strings.TrimSpace(*input.FirstName) == "" {
			return models.Contact{}, apperr.Validation("first_name must not be empty")
		}
		contact.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		contact.LastName = input.LastName
	}
	if input.Email != nil {
		contact.Email = input.Email
	}
	if input.Phone != nil {
		contact.Phone = input.Phone
	}

	_, err = s.db.Exec(
		"UPDATE contacts SET first_name = ?, last_name = ?, email = ?, phone = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		contact.FirstName, contact.LastName, contact.Email, contact.Phone, contact.ID,
	)
	if err != nil {
		return models.Contact{}, err
	}
	return s.GetContactByID(userID, id)
}

// DeleteContact removes an owned contact and all of its addresses in one
// transaction.
func (s *ContactService) DeleteContact(userID, id string) error {
	if _, err := findOwnedContact(s.db, userID, id); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM addresses WHERE contact_id = ?", id); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM contacts WHERE id = ? AND user_id = ?", id, userID); err != nil {
		return err
	}
	return tx.Commit()
}
