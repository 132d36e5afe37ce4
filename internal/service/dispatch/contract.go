//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"
	"time"

	"marketplace/internal/entities"
)

type OrderRepository interface {
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	ListUnassigned(ctx context.Context, limit int64) ([]entities.Order, error)
}

type ShopRepository interface {
	GetByID(ctx context.Context, shopID string) (*entities.Shop, error)
}

type CourierStateRepository interface {
	ListDispatchable(ctx context.Context, cutoff time.Time) ([]entities.CourierState, error)
}

type CourierOfferRepository interface {
	Upsert(ctx context.Context, upsert entities.CourierOfferUpsert) (*entities.CourierOffer, error)
	CountLivePending(ctx context.Context, orderID string) (int64, error)
	ExpireStale(ctx context.Context, orderID *string) (int64, error)
}

type DispatchWindowFactory interface {
	OfferDeadline(baseTime time.Time) time.Time
	StalenessCutoff(baseTime time.Time) time.Time
}

type Clock interface {
	Now() time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
