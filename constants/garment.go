package constants

import (
	"strings"
)

type Category string

const (
	Top       Category = "top"
	Bottom    Category = "bottom"
	Dress     Category = "dress"
	Outerwear Category = "outerwear"
	Shoes     Category = "shoes"
	Bag       Category = "bag"
	Accessory Category = "accessory"
	Other     Category = "other"
)

var allCategories = []Category{
	Top,
	Bottom,
	Dress,
	Outerwear,
	Shoes,
	Bag,
	Accessory,
	Other,
}

// Subcategories is the documented per-category vocabulary. It steers the prompt
// but is NOT enforced by the extraction schema; subcategory stays free text.
var Subcategories = map[Category][]string{
	Top:       {"t-shirt", "polo", "shirt", "tank", "sweatshirt", "hoodie", "blouse"},
	Bottom:    {"jeans", "trousers", "shorts", "skirt"},
	Dress:     {"midi-dress", "mini-dress", "maxi-dress", "jumpsuit"},
	Outerwear: {"blazer", "coat", "jacket", "cardigan", "gilet"},
	Shoes:     {"sneakers", "boots", "heels", "flats", "loafers", "sandals"},
	Bag:       {"tote", "crossbody", "backpack", "clutch"},
	Accessory: {"belt", "hat", "scarf", "watch", "jewelry", "sunglasses"},
	Other:     {"other"},
}

func CategoryStrings() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

func IsCategory(input string) bool {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, cat := range allCategories {
		if normalized == string(cat) {
			return true
		}
	}
	return false
}
