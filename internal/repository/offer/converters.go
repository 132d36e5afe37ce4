package offer

import (
	"encoding/json"
	"fmt"

	"marketplace/internal/entities"
)

func ToDomain(o *OfferDB) (*entities.Offer, error) {
	if o == nil {
		return nil, nil
	}

	offerEntity := &entities.Offer{
		ID:        o.ID,
		ShopID:    o.ShopID,
		ProductID: o.ProductID,
		Title:     o.Title,
		NewPrice:  o.NewPrice,
		Discount:  o.Discount,
		IsActive:  o.IsActive,
		ExpiresAt: o.ExpiresAt,
		CreatedAt: o.CreatedAt,
	}

	if len(o.VariantPricing) > 0 {
		var pricingDB []variantPriceDB
		if err := json.Unmarshal(o.VariantPricing, &pricingDB); err != nil {
			return nil, fmt.Errorf("offer %s variant pricing: %w", o.ID, err)
		}

		offerEntity.VariantPricing = make([]entities.VariantPrice, 0, len(pricingDB))
		for _, p := range pricingDB {
			offerEntity.VariantPricing = append(offerEntity.VariantPricing, entities.VariantPrice{
				TypeID:   p.TypeID,
				SizeID:   p.SizeID,
				NewPrice: p.NewPrice,
			})
		}
	}

	return offerEntity, nil
}
