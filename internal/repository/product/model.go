package product

import "time"

type ProductDB struct {
	ID           string
	ShopID       string
	Name         string
	Price        float64
	IsActive     bool
	Stock        *int64
	TrackStock   bool
	MenuVariants []byte
	Colors       []byte
	Sizes        []byte
	PackOptions  []byte
	Addons       []byte
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type menuVariantTypeDB struct {
	ID    string              `json:"id"`
	Name  string              `json:"name"`
	Sizes []menuVariantSizeDB `json:"sizes"`
}

type menuVariantSizeDB struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

type colorOptionDB struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type sizeOptionDB struct {
	Label string   `json:"label"`
	Price *float64 `json:"price,omitempty"`
}

type packOptionDB struct {
	ID         string  `json:"id"`
	Label      string  `json:"label"`
	QtyPerPack int64   `json:"qtyPerPack"`
	Price      float64 `json:"price"`
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
