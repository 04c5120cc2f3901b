package models

import (
	"strings"
	"time"
)

// Contact is a person in a user's contact book. Every contact belongs to
// exactly one user.
type Contact struct {
	ID        string
	UserID    string
	FirstName string
	LastName  *string
	Email     *string
	Phone     *string
	Addresses []Address
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContactResource is the wire representation of a Contact. First and last name
// collapse into a single display name; optional fields render as JSON null.
type ContactResource struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Email     *string           `json:"email"`
	Phone     *string           `json:"phone"`
	Addresses []AddressResource `json:"addresses"`
}

// Resource shapes the contact for API responses.
func (c Contact) Resource() ContactResource {
	var last string
	if c.LastName != nil {
		last = *c.LastName
	}

	res := ContactResource{
		ID:        c.ID,
		Name:      strings.TrimSpace(c.FirstName + " " + last),
		Email:     c.Email,
		Phone:     c.Phone,
		Addresses: make([]AddressResource, 0, len(c.Addresses)),
	}
	for _, a := range c.Addresses {
		res.Addresses = append(res.Addresses, a.Resource())
	}
	return res
}
