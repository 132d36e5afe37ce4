package dispatch_sweep

import (
	"context"
	"time"

	"marketplace/pkg/logger"
)

type Service interface {
	DispatchUnassignedOrders(ctx context.Context, limit int64) (int64, error)
}

// DispatchSweep периодически добирает неназначенные заказы, по которым
// событие order.created потерялось или волна предложений истекла без
// акцепта.
type DispatchSweep struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	batch    int64
}

func NewDispatchSweep(log logger.Logger, service Service, interval time.Duration, batch int64) *DispatchSweep {
	return &DispatchSweep{
		log:      log,
		service:  service,
		interval: interval,
		batch:    batch,
	}
}

func (d *DispatchSweep) TTL() time.Duration {
	return d.interval
}

func (d *DispatchSweep) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, d.interval)
	defer cancel()

	waves, err := d.service.DispatchUnassignedOrders(ctxWithTimeout, d.batch)

	if waves > 0 {
		d.log.With(
			logger.NewField("waves", waves),
		).Info("dispatch sweep")
	}

	return err
}

func (d *DispatchSweep) Info() string {
	return "dispatch sweep"
}
