package models

import (
	"time"

	"gorm.io/gorm"
)

// Product represents a catalog entry. Category is the belongs-to reference,
// loaded whenever a product is read back from the store.
type Product struct {
	ID              string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name            string    `json:"name" gorm:"type:varchar(255);not null"`
	Description     string    `json:"description"`
	RichDescription string    `json:"richDescription"`
	Image           string    `json:"image"`
	Images          []string  `json:"images" gorm:"serializer:json"`
	Brand           string    `json:"brand"`
	Price           float64   `json:"price"`
	CategoryID      string    `json:"-" gorm:"type:varchar(36);not null"`
	Category        *Category `json:"category" gorm:"foreignKey:CategoryID;references:ID"`
	CountInStock    int       `json:"countInStock"`
	Rating          float64   `json:"rating"`
	NumReviews      int       `json:"numReviews"`
	IsFeatured      bool      `json:"isFeatured"`
	DateCreated     time.Time `json:"dateCreated" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"-"`
}

// AfterFind keeps an empty gallery serialized as [] instead of null.
func (p *Product) AfterFind(tx *gorm.DB) error {
	if p.Images == nil {
		p.Images = []string{}
	}
	return nil
}
