package dto

import "github.com/google/uuid"

type BrandCreateDTO struct {
	Name string `json:"name" binding:"required,max=100"`
}

type CategoryCreateDTO struct {
	Name string `json:"name" binding:"required,max=100"`
}

type ProductCreateDTO struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Quantity    int     `json:"quantity" binding:"min=0"`
	SKU         string  `json:"sku" binding:"required,max=64"`
	ImageURL    *string `json:"image_url"`
	CategoryID  uint    `json:"category_id" binding:"required"`
	BrandID     uint    `json:"brand_id" binding:"required"`
}

type ProductDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	SKU         string    `json:"sku"`
	ImageURL    *string   `json:"image_url,omitempty"`
	CategoryID  uint      `json:"category_id"`
	BrandID     uint      `json:"brand_id"`
}
