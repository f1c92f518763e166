package request

import (
	"hotel-desk/internal/domain/client"
)

type RegisterClientRequest struct {
	FullName   string `json:"full_name" binding:"required"`
	Address    string `json:"address" binding:"required"`
	City       string `json:"city" binding:"required"`
	PostalCode int    `json:"postal_code"`
	Email      string `json:"email" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
}

func (r RegisterClientRequest) ToDomain() (*client.Client, error) {
	return client.NewClient(r.Address, r.City, r.PostalCode, r.Email, r.Phone, r.FullName)
}
