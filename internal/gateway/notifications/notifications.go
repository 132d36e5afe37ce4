package notifications

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

// Notifier сохраняет уведомления по принципу best-effort: сбой записи
// логируется, но не влияет на исход бизнес-операции. Уведомление - это
// побочный эффект, а не часть контракта заказа.
type Notifier struct {
	repo notificationRepository
	log  gatewayLogger
}

func New(log gatewayLogger, repo notificationRepository) *Notifier {
	return &Notifier{
		repo: repo,
		log:  log.With(),
	}
}

func (n *Notifier) Notify(ctx context.Context, notificationEntity entities.Notification) {
	if _, err := n.repo.Create(ctx, notificationEntity); err != nil {
		n.log.Error("create notification",
			logger.NewField("shop", notificationEntity.ShopID),
			logger.NewField("title", notificationEntity.Title),
			logger.NewField("error", err),
		)
	}
}
