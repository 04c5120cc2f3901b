package services

import (
	"testing"

	"github.com/aldisn/contactbook-be/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAddress_RequiresCountry(t *testing.T) {
	db := newTestDB(t)
	owner := registerUser(t, db, "alice")
	contact, err := NewContactService(db).CreateContact(owner.ID, ContactInput{FirstName: ptr("Bob")})
	require.NoError(t, err)

	s := NewAddressService(db)

	var vErr *apperr.ValidationError
	_, err = s.CreateAddress(owner.ID, contact.ID, AddressInput{Street: ptr("123 Main St")})
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Messages, "country is required")
}

func TestCreateAddress_UnownedContactNotFound(t *testing.T) {
	db := newTestDB(t)
	alice := registerUser(t, db, "alice")
	bob := registerUser(t, db, "bob")
	contact, err := NewContactService(db).CreateContact(alice.ID, ContactInput{FirstName: ptr("Carol")})
	require.NoError(t, err)

	s := NewAddressService(db)

	// The ownership check fires before field validation.
	_, err = s.CreateAddress(bob.ID, contact.ID, AddressInput{})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = s.CreateAddress(alice.ID, "no-such-contact", AddressInput{Country: ptr("Indonesia")})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateAddress_TwoHopResolution(t *testing.T) {
	db := newTestDB(t)
	alice := registerUser(t, db, "alice")
	bob := registerUser(t, db, "bob")
	contacts := NewContactService(db)
	s := NewAddressService(db)

	first, err := contacts.CreateContact(alice.ID, ContactInput{FirstName: ptr("Carol")})
	require.NoError(t, err)
	second, err := contacts.CreateContact(alice.ID, ContactInput{FirstName: ptr("Dave")})
	require.NoError(t, err)

	address, err := s.CreateAddress(alice.ID, first.ID, AddressInput{Country: ptr("Indonesia")})
	require.NoError(t, err)

	// Address reached through the wrong parent contact is missing.
	_, err = s.UpdateAddress(alice.ID, second.ID, address.ID, AddressInput{Country: ptr("Japan")})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	// Another user cannot reach it at all.
	_, err = s.UpdateAddress(bob.ID, first.ID, address.ID, AddressInput{Country: ptr("Japan")})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	err = s.DeleteAddress(bob.ID, first.ID, address.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateAddress_PartialFields(t *testing.T) {
	db := newTestDB(t)
	owner := registerUser(t, db, "alice")
	contact, err := NewContactService(db).CreateContact(owner.ID, ContactInput{FirstName: ptr("Bob")})
	require.NoError(t, err)

	s := NewAddressService(db)
	address, err := s.CreateAddress(owner.ID, contact.ID, AddressInput{
		Country: ptr("Indonesia"),
		City:    ptr("Jakarta"),
	})
	require.NoError(t, err)

	updated, err := s.UpdateAddress(owner.ID, contact.ID, address.ID, AddressInput{
		Street: ptr("123 Main St"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Street)
	assert.Equal(t, "123 Main St", *updated.Street)
	require.NotNil(t, updated.City)
	assert.Equal(t, "Jakarta", *updated.City)
	assert.Equal(t, "Indonesia", updated.Country)
	assert.Nil(t, updated.Province)
	assert.Nil(t, updated.PostalCode)

	var vErr *apperr.ValidationError
	_, err = s.UpdateAddress(owner.ID, contact.ID, address.ID, AddressInput{Country: ptr(" ")})
	require.ErrorAs(t, err, &vErr)
}

func TestDeleteAddress(t *testing.T) {
	db := newTestDB(t)
	owner := registerUser(t, db, "alice")
	contacts := NewContactService(db)
	contact, err := contacts.CreateContact(owner.ID, ContactInput{FirstName: ptr("Bob")})
	require.NoError(t, err)

	s := NewAddressService(db)
	address, err := s.CreateAddress(owner.ID, contact.ID, AddressInput{Country: ptr("Indonesia")})
	require.NoError(t, err)

	require.NoError(t, s.DeleteAddress(owner.ID, contact.ID, address.ID))

	got, err := contacts.GetContactByID(owner.ID, contact.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Addresses)

	err = s.DeleteAddress(owner.ID, contact.ID, address.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
