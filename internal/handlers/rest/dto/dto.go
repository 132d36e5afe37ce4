// Package dto - JSON-контракты REST API. Преобразования в доменные
// типы и обратно живут рядом с контрактами, хендлеры с JSON напрямую
// не работают.
package dto

import (
	"errors"
	"time"

	"marketplace/internal/entities"
)

var ErrUnknownSelectionKind = errors.New("unknown selection kind")

type Selection struct {
	Kind string `json:"kind"`

	TypeID string `json:"type_id,omitempty"`
	SizeID string `json:"size_id,omitempty"`

	ColorName  string `json:"color_name,omitempty"`
	ColorValue string `json:"color_value,omitempty"`
	Size       string `json:"size,omitempty"`

	PackID string `json:"pack_id,omitempty"`
}

// ToEntity разворачивает тегированный union в типизированный выбор.
func (s *Selection) ToEntity() (entities.Selection, error) {
	if s == nil {
		return nil, nil
	}

	switch entities.SelectionKind(s.Kind) {
	case entities.SelectionMenuVariant:
		return entities.MenuVariantSelection{
			TypeID: s.TypeID,
			SizeID: s.SizeID,
		}, nil
	case entities.SelectionFashion:
		return entities.FashionSelection{
			ColorName:  s.ColorName,
			ColorValue: s.ColorValue,
			Size:       s.Size,
		}, nil
	case entities.SelectionPack:
		return entities.PackSelection{
			PackID: s.PackID,
		}, nil
	default:
		return nil, ErrUnknownSelectionKind
	}
}

type AddonSelection struct {
	OptionID  string `json:"option_id"`
	VariantID string `json:"variant_id"`
}

type OrderItemCreate struct {
	ProductID string           `json:"product_id"`
	Quantity  int64            `json:"quantity"`
	Addons    []AddonSelection `json:"addons,omitempty"`
	Selection *Selection       `json:"selection,omitempty"`
}

type OrderCreate struct {
	ShopID        string            `json:"shop_id"`
	UserID        string            `json:"user_id,omitempty"`
	Items         []OrderItemCreate `json:"items"`
	PaymentMethod *string           `json:"payment_method,omitempty"`
	Notes         *string           `json:"notes,omitempty"`
}

func (c *OrderCreate) ToEntity() (entities.OrderCreate, error) {
	items := make([]entities.NewOrderItem, 0, len(c.Items))
	for _, item := range c.Items {
		selection, err := item.Selection.ToEntity()
		if err != nil {
			return entities.OrderCreate{}, err
		}

		addons := make([]entities.AddonSelection, 0, len(item.Addons))
		for _, addon := range item.Addons {
			addons = append(addons, entities.AddonSelection{
				OptionID:  addon.OptionID,
				VariantID: addon.VariantID,
			})
		}

		items = append(items, entities.NewOrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Addons:    addons,
			Selection: selection,
		})
	}

	return entities.OrderCreate{
		ShopID:        c.ShopID,
		UserID:        c.UserID,
		Items:         items,
		PaymentMethod: c.PaymentMethod,
		Notes:         c.Notes,
	}, nil
}

type OrderUpdate struct {
	Status         *string    `json:"status,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
	DeliveredAt    *time.Time `json:"delivered_at,omitempty"`
	CODCollectedAt *time.Time `json:"cod_collected_at,omitempty"`
}

type ReturnLine struct {
	OrderItemID string `json:"order_item_id"`
	Quantity    int64  `json:"quantity"`
}

type ReturnCreate struct {
	Lines   []ReturnLine `json:"lines"`
	Restock bool         `json:"restock,omitempty"`
	Reason  *string      `json:"reason,omitempty"`
}

type AssignCourier struct {
	CourierID string `json:"courier_id"`
}

type CourierStateUpdate struct {
	IsAvailable *bool    `json:"is_available,omitempty"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
	Accuracy    *float64 `json:"accuracy,omitempty"`
}

type OrderItem struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id"`
	Quantity    int64   `json:"quantity"`
	Price       float64 `json:"price"`
	ReturnedQty int64   `json:"returned_qty,omitempty"`

	Addons    []entities.ResolvedAddon      `json:"addons,omitempty"`
	Selection *entities.NormalizedSelection `json:"selection,omitempty"`
}

type Order struct {
	ID             string      `json:"id"`
	ShopID         string      `json:"shop_id"`
	UserID         string      `json:"user_id"`
	CourierID      *string     `json:"courier_id,omitempty"`
	Status         string      `json:"status"`
	Total          float64     `json:"total"`
	PaymentMethod  *string     `json:"payment_method,omitempty"`
	Notes          *string     `json:"notes,omitempty"`
	Items          []OrderItem `json:"items"`
	CreatedAt      time.Time   `json:"created_at"`
	DeliveredAt    *time.Time  `json:"delivered_at,omitempty"`
	CODCollectedAt *time.Time  `json:"cod_collected_at,omitempty"`
}

func FromOrder(order *entities.Order) Order {
	items := make([]OrderItem, 0, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		items = append(items, OrderItem{
			ID:          item.ID,
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			Price:       item.Price,
			ReturnedQty: item.ReturnedQty,
			Addons:      item.Addons,
			Selection:   item.VariantSelection,
		})
	}

	return Order{
		ID:             order.ID,
		ShopID:         order.ShopID,
		UserID:         order.UserID,
		CourierID:      order.CourierID,
		Status:         order.Status.String(),
		Total:          order.Total,
		PaymentMethod:  order.PaymentMethod,
		Notes:          order.Notes,
		Items:          items,
		CreatedAt:      order.CreatedAt,
		DeliveredAt:    order.DeliveredAt,
		CODCollectedAt: order.CODCollectedAt,
	}
}

func FromOrderList(orders []entities.Order) []Order {
	res := make([]Order, 0, len(orders))
	for i := range orders {
		res = append(res, FromOrder(&orders[i]))
	}
	return res
}

type OrderReturn struct {
	ID        string       `json:"id"`
	OrderID   string       `json:"order_id"`
	Lines     []ReturnLine `json:"lines"`
	Restock   bool         `json:"restock"`
	Reason    *string      `json:"reason,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

func FromOrderReturn(orderReturn *entities.OrderReturn) OrderReturn {
	lines := make([]ReturnLine, 0, len(orderReturn.Lines))
	for _, line := range orderReturn.Lines {
		lines = append(lines, ReturnLine{
			OrderItemID: line.OrderItemID,
			Quantity:    line.Quantity,
		})
	}

	return OrderReturn{
		ID:        orderReturn.ID,
		OrderID:   orderReturn.OrderID,
		Lines:     lines,
		Restock:   orderReturn.Restock,
		Reason:    orderReturn.Reason,
		CreatedAt: orderReturn.CreatedAt,
	}
}

type CourierOffer struct {
	ID          string     `json:"id"`
	OrderID     string     `json:"order_id"`
	Rank        int32      `json:"rank"`
	Status      string     `json:"status"`
	ExpiresAt   time.Time  `json:"expires_at"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FromCourierOffer(offer *entities.CourierOffer) CourierOffer {
	return CourierOffer{
		ID:          offer.ID,
		OrderID:     offer.OrderID,
		Rank:        offer.Rank,
		Status:      offer.Status.String(),
		ExpiresAt:   offer.ExpiresAt,
		RespondedAt: offer.RespondedAt,
		CreatedAt:   offer.CreatedAt,
	}
}

func FromCourierOfferList(offers []entities.CourierOffer) []CourierOffer {
	res := make([]CourierOffer, 0, len(offers))
	for i := range offers {
		res = append(res, FromCourierOffer(&offers[i]))
	}
	return res
}

type CourierState struct {
	UserID      string     `json:"user_id"`
	IsAvailable bool       `json:"is_available"`
	Lat         *float64   `json:"lat,omitempty"`
	Lng         *float64   `json:"lng,omitempty"`
	Accuracy    *float64   `json:"accuracy,omitempty"`
	LastSeenAt  *time.Time `json:"last_seen_at,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func FromCourierState(state *entities.CourierState) CourierState {
	return CourierState{
		UserID:      state.UserID,
		IsAvailable: state.IsAvailable,
		Lat:         state.LastLat,
		Lng:         state.LastLng,
		Accuracy:    state.Accuracy,
		LastSeenAt:  state.LastSeenAt,
		UpdatedAt:   state.UpdatedAt,
	}
}

type DispatchWave struct {
	OrderID    string   `json:"order_id"`
	CourierIDs []string `json:"courier_ids"`
}

func FromDispatchWave(wave *entities.DispatchWave) DispatchWave {
	return DispatchWave{
		OrderID:    wave.OrderID,
		CourierIDs: wave.CourierIDs,
	}
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
