package offer

import "time"

type OfferDB struct {
	ID             string
	ShopID         string
	ProductID      string
	Title          string
	NewPrice       *float64
	Discount       *float64
	VariantPricing []byte
	IsActive       bool
	ExpiresAt      time.Time
	CreatedAt      time.Time
}

type variantPriceDB struct {
	TypeID   string  `json:"typeId"`
	SizeID   string  `json:"sizeId"`
	NewPrice float64 `json:"newPrice"`
}
