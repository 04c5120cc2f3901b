package models

import "time"

// Address belongs to exactly one contact and is only ever reached through it.
type Address struct {
	ID         string
	ContactID  string
	Street     *string
	City       *string
	Province   *string
	Country    string
	PostalCode *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AddressResource is the wire representation of an Address.
type AddressResource struct {
	ID         string  `json:"id"`
	Street     *string `json:"street"`
	City       *string `json:"city"`
	Province   *string `json:"province"`
	Country    string  `json:"country"`
	PostalCode *string `json:"postal_code"`
}

// Resource shapes the address for API responses.
func (a Address) Resource() AddressResource {
	return AddressResource{
		ID:         a.ID,
		Street:     a.Street,
		City:       a.City,
		Province:   a.Province,
		Country:    a.Country,
		PostalCode: a.PostalCode,
	}
}
