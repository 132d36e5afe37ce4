package shop

type ShopDB struct {
	ID          string
	Name        string
	Category    string
	Latitude    *float64
	Longitude   *float64
	DeliveryFee *float64
	Addons      []byte
}

type addonGroupDB struct {
	ID      string          `json:"id"`
	Title   string          `json:"title"`
	Options []addonOptionDB `json:"options"`
}

type addonOptionDB struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Variants []addonVariantDB `json:"variants"`
}

type addonVariantDB struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Price float64 `json:"price"`
}
