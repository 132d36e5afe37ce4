//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"marketplace/internal/gateway/kafka/orderevents"
	"marketplace/internal/gateway/notifications"
	"marketplace/internal/handlers/rest/courier_offers_get"
	"marketplace/internal/handlers/rest/courier_state_get"
	"marketplace/internal/handlers/rest/courier_state_put"
	"marketplace/internal/handlers/rest/dispatch_post"
	"marketplace/internal/handlers/rest/my_orders_get"
	"marketplace/internal/handlers/rest/offer_accept_post"
	"marketplace/internal/handlers/rest/offer_reject_post"
	"marketplace/internal/handlers/rest/order_assign_post"
	"marketplace/internal/handlers/rest/order_get"
	"marketplace/internal/handlers/rest/order_post"
	"marketplace/internal/handlers/rest/order_put"
	"marketplace/internal/handlers/rest/order_return_post"
	"marketplace/internal/handlers/rest/shop_orders_get"
	"marketplace/internal/handlers/tasks/dispatch_sweep"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/factory/dispatch_window"
	"marketplace/internal/pkg/kafka"

	courierOfferRepo "marketplace/internal/repository/courieroffer"
	courierStateRepo "marketplace/internal/repository/courierstate"
	notificationRepo "marketplace/internal/repository/notification"
	offerRepo "marketplace/internal/repository/offer"
	orderRepo "marketplace/internal/repository/order"
	productRepo "marketplace/internal/repository/product"
	shopRepo "marketplace/internal/repository/shop"
	userRepo "marketplace/internal/repository/user"
	courierService "marketplace/internal/service/courier"
	dispatchService "marketplace/internal/service/dispatch"
	orderService "marketplace/internal/service/order"

	"marketplace/pkg/background"
	"marketplace/pkg/clock"
	"marketplace/pkg/logger"
	"marketplace/pkg/querier"
	"marketplace/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	SweepInterval time.Duration
	SweepBatch    int64
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceCourier    ServiceCourier
	ServiceDispatch   ServiceDispatch
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	order_get.Service
	order_put.Service
	order_return_post.Service
	order_assign_post.Service
	shop_orders_get.Service
	my_orders_get.Service
}

type ServiceCourier interface {
	courier_state_put.Service
	courier_state_get.Service
	courier_offers_get.Service
	offer_accept_post.Service
	offer_reject_post.Service
}

type ServiceDispatch interface {
	dispatch_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideSweepInterval,
		provideSweepBatch,

		provideShopRepository,
		provideProductRepository,
		provideOrderRepository,
		provideOfferRepository,
		provideUserRepository,
		provideNotificationRepository,
		provideCourierOfferRepository,
		provideCourierStateRepository,

		provideOrderEventsGateway,
		provideNotifier,
		provideDispatchWindowFactory,
		provideClock,

		provideOrderService,
		provideCourierService,
		provideDispatchService,

		provideDispatchSweepTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceCourier), new(*courierService.Service)),
		wire.Bind(new(ServiceDispatch), new(*dispatchService.Service)),

		wire.Bind(new(orderService.ShopRepository), new(*shopRepo.Repository)),
		wire.Bind(new(orderService.ProductRepository), new(*productRepo.Repository)),
		wire.Bind(new(orderService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.OfferRepository), new(*offerRepo.Repository)),
		wire.Bind(new(orderService.UserRepository), new(*userRepo.Repository)),
		wire.Bind(new(orderService.NotificationSink), new(*notifications.Notifier)),
		wire.Bind(new(orderService.CourierOfferRepository), new(*courierOfferRepo.Repository)),
		wire.Bind(new(orderService.EventPublisher), new(*orderevents.Gateway)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(courierService.CourierOfferRepository), new(*courierOfferRepo.Repository)),
		wire.Bind(new(courierService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(courierService.CourierStateRepository), new(*courierStateRepo.Repository)),
		wire.Bind(new(courierService.NotificationSink), new(*notifications.Notifier)),
		wire.Bind(new(courierService.Clock), new(clock.System)),
		wire.Bind(new(courierService.TxManager), new(*tx.Manager)),

		wire.Bind(new(dispatchService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(dispatchService.ShopRepository), new(*shopRepo.Repository)),
		wire.Bind(new(dispatchService.CourierStateRepository), new(*courierStateRepo.Repository)),
		wire.Bind(new(dispatchService.CourierOfferRepository), new(*courierOfferRepo.Repository)),
		wire.Bind(new(dispatchService.DispatchWindowFactory), new(*dispatch_window.WindowFactory)),
		wire.Bind(new(dispatchService.Clock), new(clock.System)),
		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),

		wire.Bind(new(dispatch_sweep.Service), new(*dispatchService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	DispatchService *dispatchService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-dispatch)
func InitializeKafkaWorkerApp(
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideShopRepository,
		provideOrderRepository,
		provideCourierOfferRepository,
		provideCourierStateRepository,

		provideDispatchWindowFactory,
		provideClock,
		provideDispatchService,

		wire.Bind(new(dispatchService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(dispatchService.ShopRepository), new(*shopRepo.Repository)),
		wire.Bind(new(dispatchService.CourierStateRepository), new(*courierStateRepo.Repository)),
		wire.Bind(new(dispatchService.CourierOfferRepository), new(*courierOfferRepo.Repository)),
		wire.Bind(new(dispatchService.DispatchWindowFactory), new(*dispatch_window.WindowFactory)),
		wire.Bind(new(dispatchService.Clock), new(clock.System)),
		wire.Bind(new(dispatchService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideShopRepository(querier *querier.Querier) *shopRepo.Repository {
	return shopRepo.New(querier)
}

func provideProductRepository(querier *querier.Querier) *productRepo.Repository {
	return productRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideOfferRepository(querier *querier.Querier) *offerRepo.Repository {
	return offerRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideNotificationRepository(querier *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(querier)
}

func provideCourierOfferRepository(querier *querier.Querier) *courierOfferRepo.Repository {
	return courierOfferRepo.New(querier)
}

func provideCourierStateRepository(querier *querier.Querier) *courierStateRepo.Repository {
	return courierStateRepo.New(querier)
}

func provideOrderEventsGateway(log logger.Logger, producer *kafka.Producer, cfg *config.Config) *orderevents.Gateway {
	return orderevents.New(log, producer, cfg.Kafka.Topic)
}

func provideNotifier(log logger.Logger, notificationRepository *notificationRepo.Repository) *notifications.Notifier {
	return notifications.New(log, notificationRepository)
}

func provideDispatchWindowFactory(cfg *config.Config) *dispatch_window.WindowFactory {
	return dispatch_window.New(cfg.Dispatch.OfferTTL, cfg.Dispatch.CourierStaleness)
}

func provideClock() clock.System {
	return clock.New()
}

func provideOrderService(
	shopRepository orderService.ShopRepository,
	productRepository orderService.ProductRepository,
	orderRepository orderService.OrderRepository,
	offerRepository orderService.OfferRepository,
	userRepository orderService.UserRepository,
	notifier orderService.NotificationSink,
	courierOfferRepository orderService.CourierOfferRepository,
	events orderService.EventPublisher,
	txManager orderService.TxManager,
) *orderService.Service {
	return orderService.New(
		shopRepository,
		productRepository,
		orderRepository,
		offerRepository,
		userRepository,
		notifier,
		courierOfferRepository,
		events,
		txManager,
	)
}

func provideCourierService(
	courierOfferRepository courierService.CourierOfferRepository,
	orderRepository courierService.OrderRepository,
	courierStateRepository courierService.CourierStateRepository,
	notifier courierService.NotificationSink,
	clk courierService.Clock,
	txManager courierService.TxManager,
) *courierService.Service {
	return courierService.New(
		courierOfferRepository,
		orderRepository,
		courierStateRepository,
		notifier,
		clk,
		txManager,
	)
}

func provideDispatchService(
	orderRepository dispatchService.OrderRepository,
	shopRepository dispatchService.ShopRepository,
	courierStateRepository dispatchService.CourierStateRepository,
	courierOfferRepository dispatchService.CourierOfferRepository,
	windowFactory dispatchService.DispatchWindowFactory,
	clk dispatchService.Clock,
	txManager dispatchService.TxManager,
) *dispatchService.Service {
	return dispatchService.New(
		orderRepository,
		shopRepository,
		courierStateRepository,
		courierOfferRepository,
		windowFactory,
		clk,
		txManager,
	)
}

func provideSweepInterval(cfg *config.Config) SweepInterval {
	return SweepInterval(cfg.Tasks.DispatchSweepInterval)
}

func provideSweepBatch(cfg *config.Config) SweepBatch {
	return SweepBatch(cfg.Tasks.DispatchSweepBatch)
}

func provideDispatchSweepTask(
	log logger.Logger,
	dispatchSvc dispatch_sweep.Service,
	interval SweepInterval,
	batch SweepBatch,
) *dispatch_sweep.DispatchSweep {
	return dispatch_sweep.NewDispatchSweep(log, dispatchSvc, time.Duration(interval), int64(batch))
}

func provideTaskList(
	dispatchSweepTask *dispatch_sweep.DispatchSweep,
) []background.Task {
	return []background.Task{
		dispatchSweepTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
