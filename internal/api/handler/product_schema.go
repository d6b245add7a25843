package handler

import (
	"time"

	"github.com/commercebook/commerce-api/internal/core/domain"
)

// --- Request / Response types ---

type createProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	OwnerEmail  string  `json:"ownerEmail" validate:"required,email"`
	OwnerName   string  `json:"ownerName"`
	Price       float64 `json:"price" validate:"gte=0"`
	Quantity    int     `json:"quantity"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

func (r createProductRequest) toDomain() domain.Product {
	return domain.Product{
		Name:        r.Name,
		OwnerEmail:  r.OwnerEmail,
		OwnerName:   r.OwnerName,
		Price:       r.Price,
		Quantity:    r.Quantity,
		Category:    r.Category,
		Description: r.Description,
		Image:       r.Image,
	}
}

type commentRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
	Text  string `json:"text" validate:"required"`
}

func (r commentRequest) toDomain() domain.Comment {
	return domain.Comment{
		Email:     r.Email,
		Name:      r.Name,
		Text:      r.Text,
		CreatedAt: time.Now().UTC(),
	}
}

type insertedResponse struct {
	InsertedID string `json:"insertedId"`
}

type countResponse struct {
	ProductCount int64 `json:"productCount"`
}
