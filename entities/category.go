package entities

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;uniqueIndex;not null" json:"name"`

	Recipes []*Recipe `gorm:"many2many:recipe_categories"`
	Timestamp
}
