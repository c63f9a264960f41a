package models

import "time"

// Category groups products. Products reference it by ID.
type Category struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(100);not null" validate:"required,max=100"`
	Icon      string    `json:"icon" validate:"omitempty,max=100"`
	Color     string    `json:"color" validate:"omitempty,max=20"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
