package entities

import "time"

// Offer - промо-предложение магазина (не путать с CourierOffer).
// Активно пока IsActive и ExpiresAt в будущем.
type Offer struct {
	ID        string
	ShopID    string
	ProductID string
	Title     string

	// NewPrice - фиксированная новая цена, Discount - процент скидки.
	// Для fashion-продуктов процент имеет приоритет над NewPrice:
	// он означает "одна и та же скидка на любой размер".
	NewPrice *float64
	Discount *float64

	// VariantPricing - переопределения цены листа дерева вариантов.
	VariantPricing []VariantPrice

	IsActive  bool
	ExpiresAt time.Time
	CreatedAt time.Time
}

type VariantPrice struct {
	TypeID   string
	SizeID   string
	NewPrice float64
}

func (o *Offer) FindVariantPrice(typeID, sizeID string) *VariantPrice {
	if o == nil {
		return nil
	}
	for i := range o.VariantPricing {
		if o.VariantPricing[i].TypeID == typeID && o.VariantPricing[i].SizeID == sizeID {
			return &o.VariantPricing[i]
		}
	}
	return nil
}
