package order

import "marketplace/internal/entities"

// unitsPerSale - сколько складских единиц списывается за одну единицу
// позиции. Для паков это размер пака, для остальных схем единица.
func unitsPerSale(item *entities.OrderItem) int64 {
	if item.VariantSelection != nil &&
		item.VariantSelection.Kind == entities.SelectionPack &&
		item.VariantSelection.QtyPerPack > 0 {
		return item.VariantSelection.QtyPerPack
	}
	return 1
}

// restockDelta - сколько складских единиц вернуть при отмене заказа.
// Уже возвращенное через возвраты количество не возвращается второй раз.
func restockDelta(item *entities.OrderItem) int64 {
	remaining := item.Quantity - item.ReturnedQty
	if remaining <= 0 {
		return 0
	}
	return remaining * unitsPerSale(item)
}
