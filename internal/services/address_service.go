package services

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/aldisn/contactbook-be/internal/apperr"
	"github.com/aldisn/contactbook-be/internal/models"
	"github.com/google/uuid"
)

// AddressInput carries address fields for create and update; nil means the
// field was absent from the request.
type AddressInput struct {
	Street     *string `json:"street"`
	City       *string `json:"city"`
	Province   *string `json:"province"`
	Country    *string `json:"country"`
	PostalCode *string `json:"postal_code"`
}

// AddressServiceProvider defines the interface for address services.
type AddressServiceProvider interface {
	CreateAddress(userID, contactID string, input AddressInput) (models.Address, error)
	UpdateAddress(userID, contactID, id string, input AddressInput) (models.Address, error)
	DeleteAddress(userID, contactID, id string) error
}

// AddressService provides business logic for addresses, always reached
// through the owning contact.
type AddressService struct {
	db *sql.DB
}

// NewAddressService creates a new AddressService.
func NewAddressService(db *sql.DB) *AddressService {
	return &AddressService{db: db}
}

// listAddresses returns all addresses of a contact in storage order.
func listAddresses(db *sql.DB, contactID string) ([]models.Address, error) {
	rows, err := db.Query(
		"SELECT id, contact_id, street, city, province, country, postal_code FROM addresses WHERE contact_id = ?",
		contactID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	addresses := []models.Address{}
	for rows.Next() {
		var a models.Address
		if err := rows.Scan(&a.ID, &a.ContactID, &a.Street, &a.City, &a.Province, &a.Country, &a.PostalCode); err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}
	return addresses, rows.Err()
}

// findScopedAddress resolves an address by id within one contact. An address
// hanging off a different contact is reported as missing.
func findScopedAddress(db *sql.DB, contactID, id string) (models.Address, error) {
	var a models.Address
	row := db.QueryRow(
		"SELECT id, contact_id, street, city, province, country, postal_code FROM addresses WHERE id = ? AND contact_id = ?",
		id, contactID,
	)
	if err := row.Scan(&a.ID, &a.ContactID, &a.Street, &a.City, &a.Province, &a.Country, &a.PostalCode); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Address{}, apperr.NotFound("address")
		}
		return models.Address{}, err
	}
	return a, nil
}

// CreateAddress resolves the parent contact under the caller's ownership, then
// persists a new address for it.
func (s *AddressService) CreateAddress(userID, contactID string, input AddressInput) (models.Address, error) {
	contact, err := findOwnedContact(s.db, userID, contactID)
	if err != nil {
		return models.Address{}, err
	}

	if input.Country == nil || strings.TrimSpace(*input.Country) == "" {
		return models.Address{}, apperr.Validation("country is required")
	}

	address := models.Address{
		ID:         uuid.New().String(),
		ContactID:  contact.ID,
		Street:     input.Street,
		City:       input.City,
		Province:   input.Province,
		Country:    *input.Country,
		PostalCode: input.PostalCode,
	}

	stmt, err := s.db.Prepare("INSERT INTO addresses(id, contact_id, street, city, province, country, postal_code) VALUES(?, ?, ?, ?, ?, ?, ?)")
	if err != nil {
		return models.Address{}, err
	}
	defer stmt.Close()

	if _, err := stmt.Exec(address.ID, address.ContactID, address.Street, address.City, address.Province, address.Country, address.PostalCode); err != nil {
		return models.Address{}, err
	}
	return address, nil
}

// UpdateAddress resolves contact then address, and overwrites only the fields
// present in the input.
func (s *AddressService) UpdateAddress(userID, contactID, id string, input AddressInput) (models.Address, error) {
	contact, err := findOwnedContact(s.db, userID, contactID)
	if err != nil {
		return models.Address{}, err
	}
	address, err := findScopedAddress(s.db, contact.ID, id)
	if err != nil {
		return models.Address{}, err
	}

	if input.Country != nil {
		if strings.TrimSpace(*input.Country) == "" {
			return models.Address{}, apperr.Validation("country must not be empty")
		}
		address.Country = *input.Country
	}
	if input.Street != nil {
		address.Street = input.Street
	}
	if input.City != nil {
		address.City = input.City
	}
	if input.Province != nil {
		address.Province = input.Province
	}
	if input.PostalCode != nil {
		address.PostalCode = input.PostalCode
	}

	_, err = s.db.Exec(
		"UPDATE addresses SET street = ?, city = ?, province = ?, country = ?, postal_code = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		address.Street, address.City, address.Province, address.Country, address.PostalCode, address.ID,
	)
	if err != nil {
		return models.Address{}, err
	}
	return findScopedAddress(s.db, contact.ID, id)
}

// DeleteAddress resolves contact then address, and removes the address.
func (s *AddressService) DeleteAddress(userID, contactID, id string) error {
	contact, err := findOwnedContact(s.db, userID, contactID)
	if err != nil {
		return err
	}
	address, err := findScopedAddress(s.db, contact.ID, id)
	if err != nil {
		return err
	}

	_, err = s.db.Exec("DELETE FROM addresses WHERE id = ?", address.ID)
	return err
}
