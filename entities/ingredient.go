package entities

type UnitMeasure string

const (
	UnitGrams       UnitMeasure = "GRAMS"
	UnitMilliliters UnitMeasure = "MILLILITERS"
	UnitCups        UnitMeasure = "CUPS"
	UnitUnits       UnitMeasure = "UNITS"
	UnitLiters      UnitMeasure = "LITERS"
	UnitTablespoons UnitMeasure = "TABLESPOONS"
	UnitTeaspoons   UnitMeasure = "TEASPOONS"
)

type Ingredient struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Name        string      `gorm:"size:50;uniqueIndex;not null" json:"name"`
	UnitMeasure UnitMeasure `gorm:"size:16;not null" json:"unit_measure"`
	Active      bool        `gorm:"not null;default:true" json:"active"`
	ImageURL    string      `json:"image_url,omitempty"`

	RecipeIngredients []*RecipeIngredient `gorm:"foreignKey:IngredientID"`
	Timestamp
}

func ValidUnitMeasure(u UnitMeasure) bool {
	switch u {
	case UnitGrams, UnitMilliliters, UnitCups, UnitUnits, UnitLiters, UnitTablespoons, UnitTeaspoons:
		return true
	}
	return false
}
