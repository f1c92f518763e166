//go:build unit || e2e

package builder

import (
	domclient "hotel-desk/internal/domain/client"
	reqdto "hotel-desk/internal/handler/dto/request"
	"hotel-desk/internal/usecase/queries"
)

type ClientBuilder struct {
	FullName   string
	Address    string
	City       string
	PostalCode int
	Email      string
	Phone      string
}

func NewClientBuilder() *ClientBuilder {
	return &ClientBuilder{
		FullName:   "Sophie Bernard",
		Address:    "14 Rue du Commerce",
		City:       "Toulouse",
		PostalCode: 31000,
		Email:      "sophie.bernard@email.fr",
		Phone:      "0667890123",
	}
}

func (c *ClientBuilder) With(mutate func(*ClientBuilder)) *ClientBuilder {
	mutate(c)
	return c
}

func (c *ClientBuilder) BuildDomain() (*domclient.Client, error) {
	return domclient.NewClient(c.Address, c.City, c.PostalCode, c.Email, c.Phone, c.FullName)
}

func (c *ClientBuilder) BuildRegisterRequestDTO() reqdto.RegisterClientRequest {
	return reqdto.RegisterClientRequest{
		FullName:   c.FullName,
		Address:    c.Address,
		City:       c.City,
		PostalCode: c.PostalCode,
		Email:      c.Email,
		Phone:      c.Phone,
	}
}

func (c *ClientBuilder) BuildViewQuery(id int64) *queries.ClientView {
	return &queries.ClientView{
		ID:         id,
		Address:    c.Address,
		City:       c.City,
		PostalCode: c.PostalCode,
		Email:      c.Email,
		Phone:      c.Phone,
		FullName:   c.FullName,
	}
}

// Fluent builder methods
func (c *ClientBuilder) WithFullName(fullName string) *ClientBuilder {
	c.FullName = fullName
	return c
}

func (c *ClientBuilder) WithAddress(address string) *ClientBuilder {
	c.Address = address
	return c
}

func (c *ClientBuilder) WithCity(city string) *ClientBuilder {
	c.City = city
	return c
}

func (c *ClientBuilder) WithEmail(email string) *ClientBuilder {
	c.Email = email
	return c
}

func (c *ClientBuilder) WithPhone(phone string) *ClientBuilder {
	c.Phone = phone
	return c
}
