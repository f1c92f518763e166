package client

import (
	"errors"
	"strings"
)

var (
	ErrMissingFullName = errors.New("full name is required")
	ErrMissingAddress  = errors.New("address is required")
	ErrMissingCity     = errors.New("city is required")
	ErrMissingEmail    = errors.New("email is required")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrMissingPhone    = errors.New("phone number is required")
)

// Client is a hotel guest record. Every contact field except the postal
// code is required; no uniqueness is enforced beyond the generated ID.
type Client struct {
	id         int64
	address    string
	city       string
	postalCode int
	email      string
	phone      string
	fullName   string
}

func NewClient(address, city string, postalCode int, email, phone, fullName string) (*Client, error) {
	address = strings.TrimSpace(address)
	city = strings.TrimSpace(city)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)
	fullName = strings.TrimSpace(fullName)

	switch {
	case fullName == "":
		return nil, ErrMissingFullName
	case address == "":
		return nil, ErrMissingAddress
	case city == "":
		return nil, ErrMissingCity
	case email == "":
		return nil, ErrMissingEmail
	case phone == "":
		return nil, ErrMissingPhone
	}

	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return nil, ErrInvalidEmail
	}

	return &Client{
		address:    address,
		city:       city,
		postalCode: postalCode,
		email:      email,
		phone:      phone,
		fullName:   fullName,
	}, nil
}

func ReconstructClient(id int64, address, city string, postalCode int, email, phone, fullName string) *Client {
	return &Client{
		id:         id,
		address:    address,
		city:       city,
		postalCode: postalCode,
		email:      email,
		phone:      phone,
		fullName:   fullName,
	}
}

func (c *Client) ID() int64        { return c.id }
func (c *Client) Address() string  { return c.address }
func (c *Client) City() string     { return c.city }
func (c *Client) PostalCode() int  { return c.postalCode }
func (c *Client) Email() string    { return c.email }
func (c *Client) Phone() string    { return c.phone }
func (c *Client) FullName() string { return c.fullName }
