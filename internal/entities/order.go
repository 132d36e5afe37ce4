package entities

import "time"

type Order struct {
	ID             string
	ShopID         string
	UserID         string
	CourierID      *string
	Status         OrderStatusType
	Total          float64
	PaymentMethod  *string
	Notes          *string
	Items          []OrderItem
	CreatedAt      time.Time
	DeliveredAt    *time.Time
	CODCollectedAt *time.Time
}

type OrderStatusType string

const (
	OrderPending   OrderStatusType = "PENDING"
	OrderConfirmed OrderStatusType = "CONFIRMED"
	OrderPreparing OrderStatusType = "PREPARING"
	OrderReady     OrderStatusType = "READY"
	OrderDelivered OrderStatusType = "DELIVERED"
	OrderCancelled OrderStatusType = "CANCELLED"
	OrderRefunded  OrderStatusType = "REFUNDED"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// IsTerminal сообщает, завершен ли заказ для целей диспетчеризации.
func (s OrderStatusType) IsTerminal() bool {
	switch s {
	case OrderDelivered, OrderCancelled, OrderRefunded:
		return true
	default:
		return false
	}
}

// ActiveOrderStatuses - статусы, в которых заказ еще в работе.
var ActiveOrderStatuses = []OrderStatusType{
	OrderPending, OrderConfirmed, OrderPreparing, OrderReady,
}

type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string

	Quantity int64
	// Price - разрешенная цена за единицу на момент заказа.
	// Не меняется задним числом при изменении цен и промо.
	Price float64

	Addons           []ResolvedAddon
	VariantSelection *NormalizedSelection

	// ReturnedQty - суммарно возвращенное количество по позиции.
	ReturnedQty int64
}

type OrderModify struct {
	ID             *string
	Status         *OrderStatusType
	CourierID      *string
	Notes          *string
	DeliveredAt    *time.Time
	CODCollectedAt *time.Time
}

// NewOrderItem - позиция создаваемого заказа.
type NewOrderItem struct {
	ProductID string
	Quantity  int64
	Addons    []AddonSelection
	Selection Selection
}

type OrderCreate struct {
	ShopID        string
	UserID        string
	Items         []NewOrderItem
	PaymentMethod *string
	Notes         *string
}

// ReturnLine - возврат по одной позиции заказа.
type ReturnLine struct {
	OrderItemID string
	Quantity    int64
}

type OrderReturn struct {
	ID        string
	OrderID   string
	Lines     []ReturnLine
	Restock   bool
	Reason    *string
	CreatedAt time.Time
}
