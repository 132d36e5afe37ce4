//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"marketplace/internal/entities"
)

type ShopRepository interface {
	GetByID(ctx context.Context, shopID string) (*entities.Shop, error)
}

type ProductRepository interface {
	GetActiveForUpdate(ctx context.Context, shopID string, productIDs []string) ([]*entities.Product, error)
	ApplyStockDelta(ctx context.Context, productID string, delta int64) error
}

type OrderRepository interface {
	Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	GetByIDForUpdate(ctx context.Context, orderID string) (*entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	MarkCancelled(ctx context.Context, orderID string) (bool, error)

	ListByShop(ctx context.Context, shopID string) ([]entities.Order, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Order, error)
	ListActiveByCourier(ctx context.Context, courierID string) ([]entities.Order, error)

	IncrementReturnedQty(ctx context.Context, orderItemID string, qty int64) error
	CreateReturn(ctx context.Context, orderReturn entities.OrderReturn) (*entities.OrderReturn, error)
}

type OfferRepository interface {
	GetActiveByProducts(ctx context.Context, shopID string, productIDs []string) (map[string]*entities.Offer, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, userID string) (*entities.User, error)
}

// NotificationSink сохраняет уведомление по принципу best-effort.
// Сбой записи не должен влиять на исход операции с заказом.
type NotificationSink interface {
	Notify(ctx context.Context, notificationEntity entities.Notification)
}

type CourierOfferRepository interface {
	ExpirePendingForOrder(ctx context.Context, orderID string) (int64, error)
}

// EventPublisher отдает событие в брокер без ожидания результата.
// Ошибки публикации логирует сама реализация.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, orderID string)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
