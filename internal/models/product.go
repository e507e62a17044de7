package models

import "time"

// Product represents a catalog item. Slugs are derived from the name and
// are the public lookup key; IDs are only used internally and by orders.
type Product struct {
	ID            string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name          string    `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Slug          string    `json:"slug" gorm:"uniqueIndex;type:varchar(120)"`
	Description   string    `json:"description" validate:"omitempty,max=500"`
	Price         float64   `json:"price" validate:"required,gt=0"`
	StockQuantity int       `json:"stockQuantity" validate:"gte=0"`
	ImageURL      string    `json:"imageUrl" gorm:"type:varchar(255)"`
	IsFeatured    bool      `json:"isFeatured"`
	CategoryID    string    `json:"categoryId" gorm:"type:varchar(36);index"`
	Category      *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
