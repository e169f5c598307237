package browse

const (
	KeyClass              = "class"
	KeyCategoryLevel1     = "category_level_1"
	KeyCategoryLevel2     = "category_level_2"
	KeyCategoryLevel3     = "category_level_3"
	KeyCategoryLevel4     = "category_level_4"
	KeyGender             = "gender"
	KeySize               = "size"
	KeyUSSize             = "us_size"
	KeyUKSize             = "uk_size"
	KeyJPSize             = "jp_size"
	KeyEUSize             = "eu_size"
	KeyLowestListingPrice = "lowest_listing_price"
	KeyDropYear           = "drop_year"
	KeyMainColor          = "main_color"
	KeyMainBrand          = "main_brand"
	KeyCollection         = "collection"
	KeyIsInstantAvailable = "is_instant_available"
)

type defaultEntry struct {
	key  string
	kind Kind
}

// defaultOrder is the canonical key order and shape of the browse filters.
var defaultOrder = []defaultEntry{
	{KeyClass, KindString},
	{KeyCategoryLevel1, KindString},
	{KeyCategoryLevel2, KindString},
	{KeyCategoryLevel3, KindString},
	{KeyCategoryLevel4, KindString},
	{KeyGender, KindList},
	{KeySize, KindList},
	{KeyUSSize, KindList},
	{KeyUKSize, KindList},
	{KeyJPSize, KindList},
	{KeyEUSize, KindList},
	{KeyLowestListingPrice, KindList},
	{KeyDropYear, KindString},
	{KeyMainColor, KindList},
	{KeyMainBrand, KindString},
	{KeyCollection, KindString},
	{KeyIsInstantAvailable, KindBool},
}

// DefaultFilters returns a fresh state with every browse filter cleared.
func DefaultFilters() FilterState {
	f := FilterState{
		keys:   make([]string, 0, len(defaultOrder)),
		values: make(map[string]Value, len(defaultOrder)),
	}
	for _, e := range defaultOrder {
		f.keys = append(f.keys, e.key)
		f.values[e.key] = Value{kind: e.kind}
	}
	return f
}

// Reset is DefaultFilters under the name the browse flow uses.
func Reset() FilterState { return DefaultFilters() }

// DefaultKind reports the shape of a default filter key.
func DefaultKind(key string) (Kind, bool) {
	for _, e := range defaultOrder {
		if e.key == key {
			return e.kind, true
		}
	}
	return 0, false
}
