package order

import (
	"strings"

	"marketplace/internal/entities"
)

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isKnownStatus(status entities.OrderStatusType) bool {
	switch status {
	case entities.OrderPending, entities.OrderConfirmed, entities.OrderPreparing,
		entities.OrderReady, entities.OrderDelivered, entities.OrderCancelled,
		entities.OrderRefunded:
		return true
	default:
		return false
	}
}
