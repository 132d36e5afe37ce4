package order

import (
	"encoding/json"
	"fmt"

	"marketplace/internal/entities"
)

func ToDomain(o *OrderDB, items []OrderItemDB) (*entities.Order, error) {
	if o == nil {
		return nil, nil
	}

	domainItems := make([]entities.OrderItem, 0, len(items))
	for _, item := range items {
		domainItem, err := itemToDomain(&item)
		if err != nil {
			return nil, err
		}
		domainItems = append(domainItems, *domainItem)
	}

	return &entities.Order{
		ID:             o.ID,
		ShopID:         o.ShopID,
		UserID:         o.UserID,
		CourierID:      o.CourierID,
		Status:         entities.OrderStatusType(o.Status),
		Total:          o.Total,
		PaymentMethod:  o.PaymentMethod,
		Notes:          o.Notes,
		Items:          domainItems,
		CreatedAt:      o.CreatedAt,
		DeliveredAt:    o.DeliveredAt,
		CODCollectedAt: o.CODCollectedAt,
	}, nil
}

func itemToDomain(item *OrderItemDB) (*entities.OrderItem, error) {
	domainItem := &entities.OrderItem{
		ID:          item.ID,
		OrderID:     item.OrderID,
		ProductID:   item.ProductID,
		Quantity:    item.Quantity,
		Price:       item.Price,
		ReturnedQty: item.ReturnedQty,
	}

	if len(item.Addons) > 0 {
		if err := json.Unmarshal(item.Addons, &domainItem.Addons); err != nil {
			return nil, fmt.Errorf("order item %s addons: %w", item.ID, err)
		}
	}
	if len(item.VariantSelection) > 0 {
		var selection entities.NormalizedSelection
		if err := json.Unmarshal(item.VariantSelection, &selection); err != nil {
			return nil, fmt.Errorf("order item %s selection: %w", item.ID, err)
		}
		domainItem.VariantSelection = &selection
	}

	return domainItem, nil
}

func itemFromDomain(item *entities.OrderItem) (*OrderItemDB, error) {
	itemDB := &OrderItemDB{
		ID:          item.ID,
		OrderID:     item.OrderID,
		ProductID:   item.ProductID,
		Quantity:    item.Quantity,
		Price:       item.Price,
		ReturnedQty: item.ReturnedQty,
	}

	if len(item.Addons) > 0 {
		raw, err := json.Marshal(item.Addons)
		if err != nil {
			return nil, fmt.Errorf("order item %s addons: %w", item.ID, err)
		}
		itemDB.Addons = raw
	}
	if item.VariantSelection != nil {
		raw, err := json.Marshal(item.VariantSelection)
		if err != nil {
			return nil, fmt.Errorf("order item %s selection: %w", item.ID, err)
		}
		itemDB.VariantSelection = raw
	}

	return itemDB, nil
}
