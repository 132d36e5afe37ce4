package entities

type Shop struct {
	ID          string
	Name        string
	Category    ShopCategoryType
	Latitude    *float64
	Longitude   *float64
	DeliveryFee *float64
	// Addons - общий каталог добавок магазина. Используется вместо
	// каталога продукта для магазинов категории RESTAURANT.
	Addons []AddonGroup
}

type ShopCategoryType string

const (
	ShopRestaurant ShopCategoryType = "RESTAURANT"
	ShopFashion    ShopCategoryType = "FASHION"
	ShopGrocery    ShopCategoryType = "GROCERY"
	ShopRetail     ShopCategoryType = "RETAIL"
)

func (c ShopCategoryType) String() string {
	return string(c)
}

func (s *Shop) HasCoordinates() bool {
	return s != nil && s.Latitude != nil && s.Longitude != nil
}

type AddonGroup struct {
	ID      string
	Title   string
	Options []AddonOption
}

type AddonOption struct {
	ID       string
	Name     string
	Variants []AddonVariant
}

type AddonVariant struct {
	ID    string
	Label string
	Price float64
}
