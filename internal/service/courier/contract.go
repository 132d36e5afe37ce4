//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_test
package courier

import (
	"context"
	"time"

	"marketplace/internal/entities"
)

type CourierOfferRepository interface {
	GetByIDForUpdate(ctx context.Context, offerID string) (*entities.CourierOffer, error)
	UpdateStatus(ctx context.Context, offerID string, status entities.CourierOfferStatusType) (*entities.CourierOffer, error)
	RejectOtherPending(ctx context.Context, orderID, acceptedOfferID string) (int64, error)
	ListPendingByCourier(ctx context.Context, courierID string) ([]entities.CourierOffer, error)
}

type OrderRepository interface {
	GetByIDForUpdate(ctx context.Context, orderID string) (*entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	ListActiveByCourier(ctx context.Context, courierID string) ([]entities.Order, error)
}

type CourierStateRepository interface {
	Get(ctx context.Context, userID string) (*entities.CourierState, error)
	Upsert(ctx context.Context, stateModify entities.CourierStateModify) (*entities.CourierState, error)
}

// NotificationSink сохраняет уведомление по принципу best-effort.
// Сбой записи не должен влиять на исход операции с предложением.
type NotificationSink interface {
	Notify(ctx context.Context, notificationEntity entities.Notification)
}

type Clock interface {
	Now() time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
