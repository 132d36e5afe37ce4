//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=offer_accept_post_test
package offer_accept_post

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	AcceptOffer(ctx context.Context, actor entities.Actor, offerID string) (*entities.CourierOffer, error)
}
