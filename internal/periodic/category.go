package periodic

// Category is the chemical family an element belongs to.
type Category string

const (
	CategoryAlkaliMetal    Category = "alkali-metal"
	CategoryAlkalineEarth  Category = "alkaline-earth"
	CategoryTransition     Category = "transition-metal"
	CategoryPostTransition Category = "post-transition"
	CategoryMetalloid      Category = "metalloid"
	CategoryNonmetal       Category = "nonmetal"
	CategoryNobleGas       Category = "noble-gas"
	CategoryLanthanide     Category = "lanthanide"
	CategoryActinide       Category = "actinide"
	CategoryUnknown        Category = "unknown"
)

// AllCategories lists every category in legend order.
func AllCategories() []Category {
	return []Category{
		CategoryAlkaliMetal,
		CategoryAlkalineEarth,
		CategoryTransition,
		CategoryPostTransition,
		CategoryMetalloid,
		CategoryNonmetal,
		CategoryNobleGas,
		CategoryLanthanide,
		CategoryActinide,
		CategoryUnknown,
	}
}

// CategoriesInPool returns the distinct categories present in the given
// pool, in legend order. Quiz distractors are drawn from this set rather
// than the full enumeration so every offered category actually exists.
func CategoriesInPool(pool []Element) []Category {
	present := make(map[Category]bool, len(pool))
	for _, e := range pool {
		present[e.Category] = true
	}
	out := make([]Category, 0, len(present))
	for _, c := range AllCategories() {
		if present[c] {
			out = append(out, c)
		}
	}
	return out
}
