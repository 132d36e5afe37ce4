//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orderevents_test
package orderevents

import (
	"context"

	"marketplace/pkg/logger"
)

type producer interface {
	Send(topic, key string, value []byte) error
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type gatewayLogger interface {
	Info(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
