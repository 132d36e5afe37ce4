package courier

import (
	"context"
	"fmt"
	"strings"

	"marketplace/internal/entities"
)

// maxActiveOrders - вместимость курьера. Дополнительные заказы сверх
// первого разрешены только по тому же магазину или тому же покупателю.
const maxActiveOrders = 3

type Service struct {
	courierOfferRepo CourierOfferRepository
	orderRepo        OrderRepository
	courierStateRepo CourierStateRepository
	notifier         NotificationSink
	clock            Clock
	txManager        TxManager
}

func New(
	courierOfferRepo CourierOfferRepository,
	orderRepo OrderRepository,
	courierStateRepo CourierStateRepository,
	notifier NotificationSink,
	clock Clock,
	txManager TxManager,
) *Service {
	return &Service{
		courierOfferRepo: courierOfferRepo,
		orderRepo:        orderRepo,
		courierStateRepo: courierStateRepo,
		notifier:         notifier,
		clock:            clock,
		txManager:        txManager,
	}
}

// AcceptOffer - единственный путь, которым заказ достается курьеру из
// волны. Строки предложения и заказа блокируются, поэтому из всех
// конкурирующих предложений победить может только одно.
func (s *Service) AcceptOffer(ctx context.Context, actor entities.Actor, offerID string) (*entities.CourierOffer, error) {
	if strings.TrimSpace(offerID) == "" {
		return nil, ErrOfferNotFound
	}

	var accepted *entities.CourierOffer
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		offer, err := s.courierOfferRepo.GetByIDForUpdate(ctx, offerID)
		if err != nil {
			return fmt.Errorf("get offer: %w", err)
		}
		if offer.CourierID != actor.UserID {
			return ErrOfferNotYours
		}
		if offer.Status != entities.CourierOfferPending {
			return ErrOfferNotPending
		}

		// ленивое протухание: фоновая зачистка могла еще не дойти
		if s.clock.Now().After(offer.ExpiresAt) {
			if _, err := s.courierOfferRepo.UpdateStatus(ctx, offer.ID, entities.CourierOfferExpired); err != nil {
				return fmt.Errorf("expire offer: %w", err)
			}
			return ErrOfferExpired
		}

		orderEntity, err := s.orderRepo.GetByIDForUpdate(ctx, offer.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if orderEntity.CourierID != nil || orderEntity.Status.IsTerminal() {
			if _, err := s.courierOfferRepo.UpdateStatus(ctx, offer.ID, entities.CourierOfferRejected); err != nil {
				return fmt.Errorf("reject offer: %w", err)
			}
			return ErrOrderTaken
		}

		activeOrders, err := s.orderRepo.ListActiveByCourier(ctx, actor.UserID)
		if err != nil {
			return fmt.Errorf("list active orders: %w", err)
		}
		if len(activeOrders) >= maxActiveOrders {
			return ErrCapacityExceeded
		}
		if len(activeOrders) > 0 && !sharesRoute(activeOrders, orderEntity) {
			return ErrRouteMismatch
		}

		accepted, err = s.courierOfferRepo.UpdateStatus(ctx, offer.ID, entities.CourierOfferAccepted)
		if err != nil {
			return fmt.Errorf("accept offer: %w", err)
		}

		_, err = s.orderRepo.Update(ctx, entities.OrderModify{
			ID:        &offer.OrderID,
			CourierID: &actor.UserID,
		})
		if err != nil {
			return fmt.Errorf("assign order: %w", err)
		}

		if _, err := s.courierOfferRepo.RejectOtherPending(ctx, offer.OrderID, offer.ID); err != nil {
			return fmt.Errorf("reject competitors: %w", err)
		}

		s.notifier.Notify(ctx, entities.Notification{
			ShopID:  orderEntity.ShopID,
			OrderID: &orderEntity.ID,
			Title:   "Courier accepted delivery",
			Content: fmt.Sprintf("Order %s accepted by courier %s", orderEntity.ID, actor.UserID),
			Type:    entities.NotificationOrderStatus,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return accepted, nil
}

func (s *Service) RejectOffer(ctx context.Context, actor entities.Actor, offerID string) (*entities.CourierOffer, error) {
	if strings.TrimSpace(offerID) == "" {
		return nil, ErrOfferNotFound
	}

	var rejected *entities.CourierOffer
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		offer, err := s.courierOfferRepo.GetByIDForUpdate(ctx, offerID)
		if err != nil {
			return fmt.Errorf("get offer: %w", err)
		}
		if offer.CourierID != actor.UserID {
			return ErrOfferNotYours
		}

		// повторный отказ и отказ по уже закрытому предложению - no-op
		if offer.Status != entities.CourierOfferPending {
			rejected = offer
			return nil
		}

		rejected, err = s.courierOfferRepo.UpdateStatus(ctx, offer.ID, entities.CourierOfferRejected)
		if err != nil {
			return fmt.Errorf("reject offer: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rejected, nil
}

func (s *Service) GetMyOffers(ctx context.Context, actor entities.Actor) ([]entities.CourierOffer, error) {
	return s.courierOfferRepo.ListPendingByCourier(ctx, actor.UserID)
}

// UpdateState - heartbeat курьера: доступность и координаты.
func (s *Service) UpdateState(ctx context.Context, actor entities.Actor, stateModify entities.CourierStateModify) (*entities.CourierState, error) {
	stateModify.UserID = &actor.UserID

	if (stateModify.Lat == nil) != (stateModify.Lng == nil) {
		return nil, ErrInvalidLocation
	}
	if stateModify.Lat != nil {
		if !isValidLatitude(*stateModify.Lat) || !isValidLongitude(*stateModify.Lng) {
			return nil, ErrInvalidLocation
		}
	}

	return s.courierStateRepo.Upsert(ctx, stateModify)
}

func (s *Service) GetState(ctx context.Context, actor entities.Actor) (*entities.CourierState, error) {
	return s.courierStateRepo.Get(ctx, actor.UserID)
}

// sharesRoute: новый заказ должен совпадать с одним из текущих по
// магазину или по покупателю.
func sharesRoute(activeOrders []entities.Order, orderEntity *entities.Order) bool {
	for i := range activeOrders {
		if activeOrders[i].ShopID == orderEntity.ShopID || activeOrders[i].UserID == orderEntity.UserID {
			return true
		}
	}
	return false
}
