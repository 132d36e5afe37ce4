package courieroffer

import "marketplace/internal/entities"

func ToDomain(o *CourierOfferDB) *entities.CourierOffer {
	if o == nil {
		return nil
	}

	return &entities.CourierOffer{
		ID:          o.ID,
		OrderID:     o.OrderID,
		CourierID:   o.CourierID,
		Rank:        o.Rank,
		Status:      entities.CourierOfferStatusType(o.Status),
		ExpiresAt:   o.ExpiresAt,
		RespondedAt: o.RespondedAt,
		CreatedAt:   o.CreatedAt,
	}
}

func ToDomainList(offers []CourierOfferDB) []entities.CourierOffer {
	result := make([]entities.CourierOffer, 0, len(offers))
	for i := range offers {
		result = append(result, *ToDomain(&offers[i]))
	}
	return result
}
