package entities

type RecipeStatus string

const (
	RecipeStatusPending  RecipeStatus = "PENDING"
	RecipeStatusApproved RecipeStatus = "APPROVED"
	RecipeStatusRejected RecipeStatus = "REJECTED"
)

type Recipe struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	UserID      uint         `gorm:"not null" json:"user_id"`
	Title       string       `gorm:"size:100;uniqueIndex;not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	Preparation string       `gorm:"type:text" json:"preparation"`
	ImageURL    string       `json:"image_url,omitempty"`
	Popularity  uint         `gorm:"not null;default:0" json:"popularity"`
	Status      RecipeStatus `gorm:"size:16;not null" json:"status"`

	User              *User               `gorm:"foreignKey:UserID"`
	Categories        []*Category         `gorm:"many2many:recipe_categories"`
	RecipeIngredients []*RecipeIngredient `gorm:"foreignKey:RecipeID"`
	Timestamp
}

// RecipeIngredient carries the quantity of one ingredient in one recipe.
// At most one row exists per (recipe, ingredient) pair.
type RecipeIngredient struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	RecipeID     uint    `gorm:"not null;uniqueIndex:idx_recipe_ingredient" json:"recipe_id"`
	IngredientID uint    `gorm:"not null;uniqueIndex:idx_recipe_ingredient" json:"ingredient_id"`
	Quantity     float64 `gorm:"not null" json:"quantity"`

	Recipe     *Recipe     `gorm:"foreignKey:RecipeID"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
}
