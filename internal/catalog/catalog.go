// Package catalog holds the static, read-only definition of every purchasable
// item. It is the leaf dependency for pricing and treasure selection.
package catalog

import (
	"math/rand"

	"ecohome/internal/model"
)

var (
	allItems []model.CatalogItem
	byID     map[string]model.CatalogItem
)

func init() {
	allItems = make([]model.CatalogItem, 0, len(energyItems)+len(waterItems)+len(greeneryItems))
	allItems = append(allItems, energyItems...)
	allItems = append(allItems, waterItems...)
	allItems = append(allItems, greeneryItems...)

	byID = make(map[string]model.CatalogItem, len(allItems))
	for _, item := range allItems {
		byID[item.ID] = item
	}
}

// Lookup returns the catalog item with the given id.
func Lookup(id string) (model.CatalogItem, bool) {
	item, ok := byID[id]
	return item, ok
}

// All returns every catalog item across all categories. The returned slice is
// a copy; callers may reorder it freely.
func All() []model.CatalogItem {
	out := make([]model.CatalogItem, len(allItems))
	copy(out, allItems)
	return out
}

// ByCategory returns the items of one category, in tier order.
func ByCategory(c model.Category) []model.CatalogItem {
	switch c {
	case model.CategoryEnergy:
		return append([]model.CatalogItem(nil), energyItems...)
	case model.CategoryWater:
		return append([]model.CatalogItem(nil), waterItems...)
	case model.CategoryGreenery:
		return append([]model.CatalogItem(nil), greeneryItems...)
	}
	return nil
}

// DrawTreasures picks n distinct item ids uniformly at random from the whole
// catalog. Used once per session start.
func DrawTreasures(n int) []string {
	items := All()
	rand.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
	if n > len(items) {
		n = len(items)
	}
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = items[i].ID
	}
	return ids
}
