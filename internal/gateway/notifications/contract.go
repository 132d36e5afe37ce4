//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notifications_test
package notifications

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type notificationRepository interface {
	Create(ctx context.Context, notificationEntity entities.Notification) (*entities.Notification, error)
}

type gatewayLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
