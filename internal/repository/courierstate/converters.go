package courierstate

import "marketplace/internal/entities"

func ToDomain(s *CourierStateDB) *entities.CourierState {
	if s == nil {
		return nil
	}

	return &entities.CourierState{
		UserID:      s.UserID,
		IsAvailable: s.IsAvailable,
		LastLat:     s.LastLat,
		LastLng:     s.LastLng,
		Accuracy:    s.Accuracy,
		LastSeenAt:  s.LastSeenAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func ToDomainList(states []CourierStateDB) []entities.CourierState {
	result := make([]entities.CourierState, 0, len(states))
	for i := range states {
		result = append(result, *ToDomain(&states[i]))
	}
	return result
}
