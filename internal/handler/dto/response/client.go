package response

import (
	"hotel-desk/internal/usecase/commands"
	"hotel-desk/internal/usecase/queries"
)

type ClientResponse struct {
	ID         int64  `json:"id"`
	FullName   string `json:"full_name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode int    `json:"postal_code"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

type RegisterClientResponse struct {
	ID int64 `json:"id"`
}

type ReviewResponse struct {
	ID       int64   `json:"id"`
	Date     string  `json:"date"`
	Rating   int     `json:"rating"`
	Comment  *string `json:"comment,omitempty"`
	ClientID int64   `json:"client_id"`
}

func FromClientView(rm *queries.ClientView) *ClientResponse {
	return &ClientResponse{
		ID:         rm.ID,
		FullName:   rm.FullName,
		Address:    rm.Address,
		City:       rm.City,
		PostalCode: rm.PostalCode,
		Email:      rm.Email,
		Phone:      rm.Phone,
	}
}

func FromRegisterClientResult(result *commands.RegisterClientResult) *RegisterClientResponse {
	return &RegisterClientResponse{ID: result.ClientID}
}

func FromReviewView(rm *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:       rm.ID,
		Date:     rm.Date.String(),
		Rating:   rm.Rating,
		Comment:  rm.Comment,
		ClientID: rm.ClientID,
	}
}
