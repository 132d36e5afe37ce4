package order

import "time"

type OrderDB struct {
	ID             string
	ShopID         string
	UserID         string
	CourierID      *string
	Status         string
	Total          float64
	PaymentMethod  *string
	Notes          *string
	CreatedAt      time.Time
	DeliveredAt    *time.Time
	CODCollectedAt *time.Time
}

type OrderItemDB struct {
	ID               string
	OrderID          string
	ProductID        string
	Quantity         int64
	Price            float64
	Addons           []byte
	VariantSelection []byte
	ReturnedQty      int64
}
