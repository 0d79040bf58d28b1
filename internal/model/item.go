package model

// Category is one of the three resource tracks a player can build in.
type Category string

const (
	CategoryEnergy   Category = "energy"
	CategoryWater    Category = "water"
	CategoryGreenery Category = "greenery"
)

// Categories lists every valid category.
var Categories = []Category{CategoryEnergy, CategoryWater, CategoryGreenery}

// Valid reports whether c is one of the three known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryEnergy, CategoryWater, CategoryGreenery:
		return true
	}
	return false
}

// CatalogItem is an immutable shop item definition.
type CatalogItem struct {
	ID          string   `json:"id" bson:"id"`
	Name        string   `json:"name" bson:"name"`
	Category    Category `json:"category" bson:"category"`
	Tier        int      `json:"tier" bson:"tier"`
	BasePrice   int      `json:"basePrice" bson:"basePrice"`
	Efficiency  int      `json:"efficiency" bson:"efficiency"`
	Ecology     int      `json:"ecology" bson:"ecology"`
	Description string   `json:"description" bson:"description"`
}

// InventoryItem is a catalog item owned by a player at some upgrade level.
type InventoryItem struct {
	CatalogItem `bson:",inline"`
	Level       int `json:"level" bson:"level"`
}
