package dispatch

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/entities"
	"marketplace/pkg/geo"
)

// topCandidates - сколько ближайших курьеров получают предложение
// в одной волне.
const topCandidates = 3

type Service struct {
	orderRepo        OrderRepository
	shopRepo         ShopRepository
	courierStateRepo CourierStateRepository
	courierOfferRepo CourierOfferRepository
	windowFactory    DispatchWindowFactory
	clock            Clock
	txManager        TxManager
}

func New(
	orderRepo OrderRepository,
	shopRepo ShopRepository,
	courierStateRepo CourierStateRepository,
	courierOfferRepo CourierOfferRepository,
	windowFactory DispatchWindowFactory,
	clock Clock,
	txManager TxManager,
) *Service {
	return &Service{
		orderRepo:        orderRepo,
		shopRepo:         shopRepo,
		courierStateRepo: courierStateRepo,
		courierOfferRepo: courierOfferRepo,
		windowFactory:    windowFactory,
		clock:            clock,
		txManager:        txManager,
	}
}

// DispatchForOrder запускает волну предложений для заказа: топ
// ближайших доступных курьеров получают PENDING с дедлайном ответа.
// Пока по заказу есть живые предложения, повторный вызов ничего
// не создает - на этом держится идемпотентность ретраев из брокера.
func (s *Service) DispatchForOrder(ctx context.Context, orderID string) (*entities.DispatchWave, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrInvalidOrderID
	}

	wave := &entities.DispatchWave{OrderID: orderID}
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		orderEntity, err := s.orderRepo.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		// уже разобранный или закрытый заказ - пустая волна, не ошибка:
		// ретраи из брокера и фоновая перераздача зовут вслепую
		if orderEntity.CourierID != nil || orderEntity.Status.IsTerminal() {
			return nil
		}

		if _, err := s.courierOfferRepo.ExpireStale(ctx, &orderID); err != nil {
			return fmt.Errorf("expire stale offers: %w", err)
		}

		live, err := s.courierOfferRepo.CountLivePending(ctx, orderID)
		if err != nil {
			return fmt.Errorf("count pending offers: %w", err)
		}
		if live > 0 {
			return nil
		}

		shop, err := s.shopRepo.GetByID(ctx, orderEntity.ShopID)
		if err != nil {
			return fmt.Errorf("get shop: %w", err)
		}
		// магазин без координат ранжировать не по чему
		if !shop.HasCoordinates() {
			return nil
		}

		now := s.clock.Now()
		states, err := s.courierStateRepo.ListDispatchable(ctx, s.windowFactory.StalenessCutoff(now))
		if err != nil {
			return fmt.Errorf("list couriers: %w", err)
		}

		candidates := make([]geo.Candidate, 0, len(states))
		for i := range states {
			if !states[i].HasLocation() {
				continue
			}
			candidates = append(candidates, geo.Candidate{
				ID: states[i].UserID,
				Location: geo.Point{
					Lat: *states[i].LastLat,
					Lng: *states[i].LastLng,
				},
			})
		}

		origin := geo.Point{Lat: *shop.Latitude, Lng: *shop.Longitude}
		ranked := geo.RankByDistance(origin, candidates)
		if len(ranked) > topCandidates {
			ranked = ranked[:topCandidates]
		}

		deadline := s.windowFactory.OfferDeadline(now)
		for i, candidate := range ranked {
			_, err := s.courierOfferRepo.Upsert(ctx, entities.CourierOfferUpsert{
				OrderID:   orderID,
				CourierID: candidate.ID,
				Rank:      int32(i + 1),
				ExpiresAt: deadline,
			})
			if err != nil {
				return fmt.Errorf("upsert offer: %w", err)
			}
			wave.CourierIDs = append(wave.CourierIDs, candidate.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return wave, nil
}

// DispatchUnassignedOrders - фоновая перераздача: гасит просроченные
// предложения и пробует новую волну для каждого заказа без курьера.
func (s *Service) DispatchUnassignedOrders(ctx context.Context, limit int64) (int64, error) {
	if _, err := s.courierOfferRepo.ExpireStale(ctx, nil); err != nil {
		return 0, fmt.Errorf("expire stale offers: %w", err)
	}

	orders, err := s.orderRepo.ListUnassigned(ctx, limit)
	if err != nil {
		return 0, fmt.Errorf("list unassigned orders: %w", err)
	}

	var dispatched int64
	var errs []error
	for i := range orders {
		wave, err := s.DispatchForOrder(ctx, orders[i].ID)
		if err != nil {
			errs = append(errs, fmt.Errorf("order %s: %w", orders[i].ID, err))
			continue
		}
		if len(wave.CourierIDs) > 0 {
			dispatched++
		}
	}

	return dispatched, errors.Join(errs...)
}
