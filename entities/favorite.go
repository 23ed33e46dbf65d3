package entities

// Favorite marks one recipe as a favorite of one user.
// At most one row exists per (user, recipe) pair.
type Favorite struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	UserID   uint `gorm:"not null;uniqueIndex:idx_user_recipe" json:"user_id"`
	RecipeID uint `gorm:"not null;uniqueIndex:idx_user_recipe" json:"recipe_id"`

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	Timestamp
}
