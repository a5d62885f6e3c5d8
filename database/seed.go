package database

import (
	"github.com/bellavista/restaurant-backend/models"
	"github.com/bellavista/restaurant-backend/utils"
	"gorm.io/gorm"
)

// sampleMenuItems is the starter menu inserted on first run.
var sampleMenuItems = []models.MenuItem{
	{
		Name:        "Margherita Pizza",
		Description: "Classic Italian pizza with fresh mozzarella, tomato sauce, and basil",
		Category:    models.CategoryMain,
		Price:       12.99,
		Ingredients: "Tomato sauce, Mozzarella cheese, Fresh basil, Olive oil",
		Allergens:   "Gluten, Dairy",
		IsAvailable: true,
	},
	{
		Name:        "Caesar Salad",
		Description: "Crisp romaine lettuce with Caesar dressing, croutons, and parmesan",
		Category:    models.CategoryStarter,
		Price:       8.99,
		Ingredients: "Romaine lettuce, Caesar dressing, Croutons, Parmesan cheese",
		Allergens:   "Gluten, Dairy, Eggs, Fish (anchovies)",
		IsAvailable: true,
	},
	{
		Name:        "Spaghetti Carbonara",
		Description: "Traditional Roman pasta with eggs, pecorino cheese, guanciale, and black pepper",
		Category:    models.CategoryMain,
		Price:       14.99,
		Ingredients: "Spaghetti, Eggs, Pecorino cheese, Guanciale, Black pepper",
		Allergens:   "Gluten, Dairy, Eggs",
		IsAvailable: true,
	},
	{
		Name:        "Tiramisu",
		Description: "Classic Italian dessert with coffee-soaked ladyfingers and mascarpone cream",
		Category:    models.CategoryDessert,
		Price:       6.99,
		Ingredients: "Ladyfingers, Espresso, Mascarpone, Eggs, Cocoa powder",
		Allergens:   "Gluten, Dairy, Eggs",
		IsAvailable: true,
	},
	{
		Name:        "Bruschetta",
		Description: "Toasted bread topped with fresh tomatoes, garlic, basil, and olive oil",
		Category:    models.CategoryStarter,
		Price:       7.99,
		Ingredients: "Bread, Tomatoes, Garlic, Basil, Olive oil",
		Allergens:   "Gluten",
		IsAvailable: true,
	},
	{
		Name:        "Grilled Salmon",
		Description: "Fresh Atlantic salmon grilled to perfection with lemon butter sauce",
		Category:    models.CategoryMain,
		Price:       18.99,
		Ingredients: "Salmon, Lemon, Butter, Herbs",
		Allergens:   "Fish, Dairy",
		IsAvailable: true,
	},
	{
		Name:        "Chocolate Lava Cake",
		Description: "Warm chocolate cake with a molten center, served with vanilla ice cream",
		Category:    models.CategoryDessert,
		Price:       7.99,
		Ingredients: "Chocolate, Eggs, Butter, Flour, Sugar",
		Allergens:   "Gluten, Dairy, Eggs",
		IsAvailable: true,
	},
	{
		Name:        "Fresh Orange Juice",
		Description: "Freshly squeezed orange juice",
		Category:    models.CategoryDrink,
		Price:       3.99,
		Ingredients: "Fresh oranges",
		Allergens:   "None",
		IsAvailable: true,
	},
	{
		Name:        "Cappuccino",
		Description: "Espresso with steamed milk and foam",
		Category:    models.CategoryDrink,
		Price:       4.50,
		Ingredients: "Espresso, Milk",
		Allergens:   "Dairy",
		IsAvailable: true,
	},
	{
		Name:        "Chicken Parmesan",
		Description: "Breaded chicken breast topped with marinara sauce and melted mozzarella",
		Category:    models.CategoryMain,
		Price:       16.99,
		Ingredients: "Chicken, Breadcrumbs, Marinara sauce, Mozzarella, Parmesan",
		Allergens:   "Gluten, Dairy",
		IsAvailable: true,
	},
	{
		Name:        "Truffle Arancini",
		Description: "Golden-fried Italian rice balls filled with creamy risotto, mozzarella, and aromatic truffle oil, served with a rich tomato sauce.",
		Category:    models.CategoryStarter,
		Price:       10.50,
		Ingredients: "Arborio Rice, Mozzarella, Parmesan, Truffle Oil, Breadcrumbs, Tomato Sauce, Fresh Herbs",
		Allergens:   "Contains: Gluten, Dairy, Eggs",
		IsAvailable: true,
	},
	{
		Name:        "Crispy Calamari",
		Description: "Tender squid rings lightly battered and fried to golden perfection, served with a zesty lemon aioli and fresh herbs.",
		Category:    models.CategoryStarter,
		Price:       11.50,
		Ingredients: "Squid, Flour, Cornstarch, Garlic, Lemon, Aioli, Fresh Parsley",
		Allergens:   "Contains: Seafood, Gluten, Eggs",
		IsAvailable: true,
	},
	{
		Name:        "Classic Creme Brulee",
		Description: "A timeless French dessert featuring silky smooth vanilla custard with a perfectly caramelized sugar crust that shatters with each spoonful.",
		Category:    models.CategoryDessert,
		Price:       7.50,
		Ingredients: "Heavy Cream, Egg Yolks, Vanilla Bean, Sugar, Caramel",
		Allergens:   "Contains: Eggs, Dairy",
		IsAvailable: true,
	},
	{
		Name:        "Espresso Martini",
		Description: "A sophisticated blend of premium vodka, freshly brewed espresso, and coffee liqueur, shaken to perfection for a velvety smooth finish.",
		Category:    models.CategoryDrink,
		Price:       12.50,
		Ingredients: "Vodka, Espresso, Coffee Liqueur, Sugar Syrup",
		IsAvailable: true,
	},
	{
		Name:        "Cucumber Mint",
		Description: "A refreshing combination of crisp cucumber, fresh mint leaves, and sparkling water, perfectly balanced with a hint of lime.",
		Category:    models.CategoryDrink,
		Price:       7.50,
		Ingredients: "Fresh Cucumber, Mint Leaves, Lime Juice, Sparkling Water, Simple Syrup",
		IsAvailable: true,
	},
}

// SeedMenuItems inserts the sample menu. Items are matched by name so
// re-running the seed never duplicates them.
func SeedMenuItems(db *gorm.DB) error {
	created := 0
	for _, item := range sampleMenuItems {
		var count int64
		if err := db.Model(&models.MenuItem{}).Where("name = ?", item.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&item).Error; err != nil {
			return err
		}
		created++
	}

	utils.InfoLogger.Printf("Menu seed completed: %d new items", created)
	return nil
}
