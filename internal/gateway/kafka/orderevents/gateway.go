package orderevents

import (
	"context"
	"encoding/json"
	"time"

	"marketplace/pkg/logger"
	retrierconfig "marketplace/pkg/retrier"
	"marketplace/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// OrderCreatedEvent - событие для воркера диспетчеризации.
// Ключом сообщения служит ID заказа, чтобы события одного заказа
// сохраняли порядок в партиции.
type OrderCreatedEvent struct {
	OrderID   string    `json:"order_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Gateway публикует события заказов в брокер. Публикация не влияет на
// исход бизнес-операции: ошибки логируются и учитываются в метриках,
// но наружу не возвращаются. Застрявшие заказы добирает фоновый
// обходчик неназначенных заказов.
type Gateway struct {
	producer producer
	retrier  retrier
	log      gatewayLogger
	topic    string
}

func New(log gatewayLogger, producer producer, topic string) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil, // все ошибки ретраим
	}

	return &Gateway{
		producer: producer,
		retrier:  backoff_adapter.New(retryConfig),
		log:      log.With(logger.NewField("topic", topic)),
		topic:    topic,
	}
}

func (g *Gateway) PublishOrderCreated(ctx context.Context, orderID string) {
	event := OrderCreatedEvent{
		OrderID:   orderID,
		CreatedAt: time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		g.log.Error("marshal order.created event",
			logger.NewField("order", orderID),
			logger.NewField("error", err),
		)
		EventsPublishedTotal.WithLabelValues(g.topic, "error").Inc()
		return
	}

	// доставка с ретраями идет в фоне: ответ создания заказа не ждет
	// брокера и не отменяет публикацию завершением запроса
	go g.deliver(context.WithoutCancel(ctx), orderID, payload)
}

func (g *Gateway) deliver(ctx context.Context, orderID string, payload []byte) {
	start := time.Now()
	err := g.retrier.ExecuteWithContext(ctx, func(context.Context) error {
		return g.producer.Send(g.topic, orderID, payload)
	})
	EventPublishDuration.WithLabelValues(g.topic).Observe(time.Since(start).Seconds())

	if err != nil {
		g.log.Error("publish order.created event",
			logger.NewField("order", orderID),
			logger.NewField("error", err),
		)
		EventsPublishedTotal.WithLabelValues(g.topic, "error").Inc()
		return
	}

	EventsPublishedTotal.WithLabelValues(g.topic, "ok").Inc()
	g.log.Info("order.created event published",
		logger.NewField("order", orderID),
	)
}
