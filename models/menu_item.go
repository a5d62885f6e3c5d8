package models

import "time"

// Menu item categories.
const (
	CategoryStarter = "starter"
	CategoryMain    = "main"
	CategoryDessert = "dessert"
	CategoryDrink   = "drink"
)

// MenuItemCategories lists the valid category values.
var MenuItemCategories = []string{CategoryStarter, CategoryMain, CategoryDessert, CategoryDrink}

func IsValidCategory(category string) bool {
	for _, c := range MenuItemCategories {
		if c == category {
			return true
		}
	}
	return false
}

type MenuItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(200);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"type:varchar(20);not null;index" json:"category"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL    string    `gorm:"type:varchar(255)" json:"image_url"`
	Ingredients string    `gorm:"type:text" json:"ingredients"`
	Allergens   string    `gorm:"type:text" json:"allergens"`
	IsAvailable bool      `gorm:"not null" json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
