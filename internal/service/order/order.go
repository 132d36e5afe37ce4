package order

import (
	"context"
	"fmt"
	"math"
	"time"

	"marketplace/internal/entities"
	"marketplace/internal/service/pricing"
)

type Service struct {
	shopRepo         ShopRepository
	productRepo      ProductRepository
	orderRepo        OrderRepository
	offerRepo        OfferRepository
	userRepo         UserRepository
	notifier         NotificationSink
	courierOfferRepo CourierOfferRepository
	events           EventPublisher
	txManager        TxManager
}

func New(
	shopRepo ShopRepository,
	productRepo ProductRepository,
	orderRepo OrderRepository,
	offerRepo OfferRepository,
	userRepo UserRepository,
	notifier NotificationSink,
	courierOfferRepo CourierOfferRepository,
	events EventPublisher,
	txManager TxManager,
) *Service {
	return &Service{
		shopRepo:         shopRepo,
		productRepo:      productRepo,
		orderRepo:        orderRepo,
		offerRepo:        offerRepo,
		userRepo:         userRepo,
		notifier:         notifier,
		courierOfferRepo: courierOfferRepo,
		events:           events,
		txManager:        txManager,
	}
}

// CreateOrder создает заказ с авторитетным пересчетом цен на сервере.
// Строки товаров блокируются на время транзакции, поэтому проверка
// остатка и списание атомарны относительно конкурирующих заказов.
func (s *Service) CreateOrder(ctx context.Context, actor entities.Actor, create entities.OrderCreate) (*entities.Order, error) {
	if !isValidID(create.ShopID) {
		return nil, ErrShopNotFound
	}
	if len(create.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	// POS-заказ оформляет персонал магазина, он сразу DELIVERED.
	// Покупатель оформляет только от своего имени.
	posOrder := actor.IsStaff()
	switch {
	case posOrder:
	case actor.Role == entities.RoleCustomer:
		create.UserID = actor.UserID
	default:
		return nil, ErrForbidden
	}

	var createdOrder *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		shop, err := s.shopRepo.GetByID(ctx, create.ShopID)
		if err != nil {
			return fmt.Errorf("get shop: %w", err)
		}
		if posOrder && !canManageShop(actor, shop.ID) {
			return ErrForbidden
		}

		productIDs := collectProductIDs(create.Items)
		products, err := s.productRepo.GetActiveForUpdate(ctx, shop.ID, productIDs)
		if err != nil {
			return fmt.Errorf("lock products: %w", err)
		}

		productsByID := make(map[string]*entities.Product, len(products))
		for _, p := range products {
			productsByID[p.ID] = p
		}
		for _, id := range productIDs {
			if _, ok := productsByID[id]; !ok {
				return fmt.Errorf("product %s: %w", id, ErrProductNotFound)
			}
		}

		offers, err := s.offerRepo.GetActiveByProducts(ctx, shop.ID, productIDs)
		if err != nil {
			return fmt.Errorf("get offers: %w", err)
		}

		var total float64
		demand := make(map[string]int64, len(productIDs))
		items := make([]entities.OrderItem, 0, len(create.Items))

		for _, line := range create.Items {
			product := productsByID[line.ProductID]

			catalogue := product.Addons
			if shop.Category == entities.ShopRestaurant {
				catalogue = shop.Addons
			}

			quote, err := pricing.Resolve(pricing.Input{
				Product:   product,
				Category:  shop.Category,
				Quantity:  line.Quantity,
				Selection: line.Selection,
				Addons:    line.Addons,
				Catalogue: catalogue,
				Offer:     offers[product.ID],
			})
			if err != nil {
				return fmt.Errorf("resolve price for product %s: %w", product.ID, err)
			}

			demand[product.ID] += quote.StockDelta
			total += quote.UnitPrice * float64(line.Quantity)

			items = append(items, entities.OrderItem{
				ProductID:        product.ID,
				Quantity:         line.Quantity,
				Price:            quote.UnitPrice,
				Addons:           quote.Addons,
				VariantSelection: quote.Normalized,
			})
		}

		for productID, needed := range demand {
			product := productsByID[productID]
			if product.TrackStock && product.Stock != nil && *product.Stock < needed {
				return fmt.Errorf("product %s: %w", productID, ErrInsufficientStock)
			}
		}
		for productID, needed := range demand {
			if err := s.productRepo.ApplyStockDelta(ctx, productID, -needed); err != nil {
				return fmt.Errorf("commit stock: %w", err)
			}
		}

		if !posOrder && shop.DeliveryFee != nil {
			total += *shop.DeliveryFee
		}

		orderEntity := entities.Order{
			ShopID:        shop.ID,
			UserID:        create.UserID,
			Status:        entities.OrderPending,
			Total:         round2(total),
			PaymentMethod: create.PaymentMethod,
			Notes:         create.Notes,
			Items:         items,
		}
		if posOrder {
			now := time.Now().UTC()
			orderEntity.Status = entities.OrderDelivered
			orderEntity.DeliveredAt = &now
		}

		createdOrder, err = s.orderRepo.Create(ctx, orderEntity)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		s.notifier.Notify(ctx, entities.Notification{
			ShopID:  shop.ID,
			OrderID: &createdOrder.ID,
			Title:   "New order",
			Content: fmt.Sprintf("Order %s placed, total %.2f", createdOrder.ID, createdOrder.Total),
			Type:    entities.NotificationOrder,
		})
		if createdOrder.UserID != "" {
			s.notifier.Notify(ctx, entities.Notification{
				ShopID:  shop.ID,
				UserID:  &createdOrder.UserID,
				OrderID: &createdOrder.ID,
				Title:   "Order received",
				Content: fmt.Sprintf("Order %s placed, total %.2f", createdOrder.ID, createdOrder.Total),
				Type:    entities.NotificationOrder,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Диспетчеризация идет отдельным потоком через брокер и не влияет
	// на результат создания заказа.
	if !posOrder {
		s.events.PublishOrderCreated(ctx, createdOrder.ID)
	}

	return createdOrder, nil
}

func (s *Service) UpdateOrder(ctx context.Context, actor entities.Actor, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil || !isValidID(*orderModify.ID) {
		return nil, ErrOrderNotFound
	}
	if orderModify.Status != nil && !isKnownStatus(*orderModify.Status) {
		return nil, fmt.Errorf("status %s: %w", *orderModify.Status, ErrInvalidOrderData)
	}

	var updatedOrder *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.orderRepo.GetByIDForUpdate(ctx, *orderModify.ID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if orderModify.Status != nil && current.Status.IsTerminal() {
			return ErrOrderTerminal
		}

		if err := canModifyOrder(actor, current, orderModify); err != nil {
			return err
		}

		if orderModify.Status != nil {
			switch *orderModify.Status {
			case entities.OrderCancelled:
				if err := s.cancelOrder(ctx, current); err != nil {
					return err
				}
			case entities.OrderDelivered:
				if orderModify.DeliveredAt == nil {
					now := time.Now().UTC()
					orderModify.DeliveredAt = &now
				}
			}
		}

		updatedOrder, err = s.orderRepo.Update(ctx, orderModify)
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}

		if orderModify.Status != nil {
			s.notifier.Notify(ctx, entities.Notification{
				ShopID:  updatedOrder.ShopID,
				UserID:  &updatedOrder.UserID,
				OrderID: &updatedOrder.ID,
				Title:   "Order status changed",
				Content: fmt.Sprintf("Order %s is now %s", updatedOrder.ID, updatedOrder.Status),
				Type:    entities.NotificationOrderStatus,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updatedOrder, nil
}

// cancelOrder возвращает остатки ровно один раз. Повторная отмена
// отбивается условным UPDATE в репозитории, а не проверкой статуса
// в памяти.
func (s *Service) cancelOrder(ctx context.Context, current *entities.Order) error {
	cancelled, err := s.orderRepo.MarkCancelled(ctx, current.ID)
	if err != nil {
		return fmt.Errorf("mark cancelled: %w", err)
	}
	if !cancelled {
		return ErrAlreadyCancelled
	}

	for i := range current.Items {
		delta := restockDelta(&current.Items[i])
		if delta == 0 {
			continue
		}
		if err := s.productRepo.ApplyStockDelta(ctx, current.Items[i].ProductID, delta); err != nil {
			return fmt.Errorf("restock: %w", err)
		}
	}

	if _, err := s.courierOfferRepo.ExpirePendingForOrder(ctx, current.ID); err != nil {
		return fmt.Errorf("expire offers: %w", err)
	}
	return nil
}

// CreateReturn регистрирует возврат по позициям доставленного заказа.
// Возврат сверх проданного количества отбивается на уровне БД.
func (s *Service) CreateReturn(ctx context.Context, actor entities.Actor, orderReturn entities.OrderReturn) (*entities.OrderReturn, error) {
	if !isValidID(orderReturn.OrderID) {
		return nil, ErrOrderNotFound
	}
	if len(orderReturn.Lines) == 0 {
		return nil, ErrInvalidOrderData
	}
	if !actor.IsStaff() {
		return nil, ErrForbidden
	}

	var createdReturn *entities.OrderReturn
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		orderEntity, err := s.orderRepo.GetByIDForUpdate(ctx, orderReturn.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if !canManageShop(actor, orderEntity.ShopID) {
			return ErrForbidden
		}
		if orderEntity.Status != entities.OrderDelivered {
			return fmt.Errorf("order %s is not delivered: %w", orderEntity.ID, ErrInvalidOrderData)
		}

		itemsByID := make(map[string]*entities.OrderItem, len(orderEntity.Items))
		for i := range orderEntity.Items {
			itemsByID[orderEntity.Items[i].ID] = &orderEntity.Items[i]
		}

		for _, line := range orderReturn.Lines {
			item, ok := itemsByID[line.OrderItemID]
			if !ok {
				return fmt.Errorf("order item %s: %w", line.OrderItemID, ErrInvalidOrderData)
			}
			if line.Quantity <= 0 {
				return fmt.Errorf("order item %s: %w", line.OrderItemID, ErrInvalidOrderData)
			}

			if err := s.orderRepo.IncrementReturnedQty(ctx, item.ID, line.Quantity); err != nil {
				return fmt.Errorf("register return: %w", err)
			}
			item.ReturnedQty += line.Quantity

			if orderReturn.Restock {
				if err := s.productRepo.ApplyStockDelta(ctx, item.ProductID, line.Quantity*unitsPerSale(item)); err != nil {
					return fmt.Errorf("restock: %w", err)
				}
			}
		}

		fullyReturned := true
		for i := range orderEntity.Items {
			if orderEntity.Items[i].ReturnedQty < orderEntity.Items[i].Quantity {
				fullyReturned = false
				break
			}
		}
		if fullyReturned {
			refunded := entities.OrderRefunded
			_, err = s.orderRepo.Update(ctx, entities.OrderModify{
				ID:     &orderEntity.ID,
				Status: &refunded,
			})
			if err != nil {
				return fmt.Errorf("refund order: %w", err)
			}
		}

		createdReturn, err = s.orderRepo.CreateReturn(ctx, orderReturn)
		if err != nil {
			return fmt.Errorf("create return: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return createdReturn, nil
}

// AssignCourier назначает курьера вручную, минуя волну предложений.
// Все живые предложения по заказу при этом гасятся.
func (s *Service) AssignCourier(ctx context.Context, actor entities.Actor, orderID, courierID string) (*entities.Order, error) {
	if !isValidID(orderID) {
		return nil, ErrOrderNotFound
	}
	if !isValidID(courierID) {
		return nil, ErrNotACourier
	}
	if !actor.IsStaff() {
		return nil, ErrForbidden
	}

	var updatedOrder *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		orderEntity, err := s.orderRepo.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if !canManageShop(actor, orderEntity.ShopID) {
			return ErrForbidden
		}
		if orderEntity.Status.IsTerminal() {
			return ErrOrderTerminal
		}

		courierUser, err := s.userRepo.GetByID(ctx, courierID)
		if err != nil {
			return fmt.Errorf("get courier: %w", err)
		}
		if courierUser.Role != entities.RoleCourier || !courierUser.IsActive {
			return ErrNotACourier
		}

		updatedOrder, err = s.orderRepo.Update(ctx, entities.OrderModify{
			ID:        &orderID,
			CourierID: &courierID,
		})
		if err != nil {
			return fmt.Errorf("assign courier: %w", err)
		}

		if _, err := s.courierOfferRepo.ExpirePendingForOrder(ctx, orderID); err != nil {
			return fmt.Errorf("expire offers: %w", err)
		}

		s.notifier.Notify(ctx, entities.Notification{
			ShopID:  updatedOrder.ShopID,
			UserID:  &courierID,
			OrderID: &updatedOrder.ID,
			Title:   "Delivery assigned",
			Content: fmt.Sprintf("Order %s assigned to courier %s", updatedOrder.ID, courierUser.Name),
			Type:    entities.NotificationOrderStatus,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updatedOrder, nil
}

func (s *Service) GetOrder(ctx context.Context, actor entities.Actor, orderID string) (*entities.Order, error) {
	if !isValidID(orderID) {
		return nil, ErrOrderNotFound
	}

	orderEntity, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !canViewOrder(actor, orderEntity) {
		return nil, ErrForbidden
	}

	return orderEntity, nil
}

func (s *Service) ListShopOrders(ctx context.Context, actor entities.Actor, shopID string) ([]entities.Order, error) {
	if !isValidID(shopID) {
		return nil, ErrShopNotFound
	}
	if !canManageShop(actor, shopID) {
		return nil, ErrForbidden
	}

	return s.orderRepo.ListByShop(ctx, shopID)
}

func (s *Service) ListMyOrders(ctx context.Context, actor entities.Actor) ([]entities.Order, error) {
	return s.orderRepo.ListByUser(ctx, actor.UserID)
}

func canManageShop(actor entities.Actor, shopID string) bool {
	if actor.Role == entities.RoleAdmin {
		return true
	}
	return actor.Role == entities.RoleMerchant && actor.ShopID == shopID
}

func canViewOrder(actor entities.Actor, orderEntity *entities.Order) bool {
	if canManageShop(actor, orderEntity.ShopID) {
		return true
	}
	if actor.Role == entities.RoleCustomer && orderEntity.UserID == actor.UserID {
		return true
	}
	if actor.Role == entities.RoleCourier &&
		orderEntity.CourierID != nil && *orderEntity.CourierID == actor.UserID {
		return true
	}
	return false
}

// canModifyOrder ограничивает, кто и что может менять в заказе.
// Покупатель только отменяет свой еще не подтвержденный заказ, курьер
// только закрывает доставку по своему заказу.
func canModifyOrder(actor entities.Actor, current *entities.Order, orderModify entities.OrderModify) error {
	if canManageShop(actor, current.ShopID) {
		if orderModify.Status != nil {
			return staffTransition(current.Status, *orderModify.Status)
		}
		return nil
	}

	switch actor.Role {
	case entities.RoleCustomer:
		if current.UserID != actor.UserID {
			return ErrForbidden
		}
		if orderModify.Status == nil ||
			*orderModify.Status != entities.OrderCancelled ||
			current.Status != entities.OrderPending {
			return ErrForbidden
		}
		return nil
	case entities.RoleCourier:
		if current.CourierID == nil || *current.CourierID != actor.UserID {
			return ErrForbidden
		}
		if orderModify.Status != nil && *orderModify.Status != entities.OrderDelivered {
			return ErrForbidden
		}
		return nil
	default:
		return ErrForbidden
	}
}

// staffTransition разрешает персоналу подтверждать и готовить только
// новый заказ, а отменять любой, кроме уже ожидающего курьера.
func staffTransition(from, to entities.OrderStatusType) error {
	switch to {
	case entities.OrderConfirmed, entities.OrderPreparing:
		if from != entities.OrderPending {
			return ErrInvalidTransition
		}
		return nil
	case entities.OrderCancelled:
		if from == entities.OrderReady {
			return ErrInvalidTransition
		}
		return nil
	default:
		return ErrInvalidTransition
	}
}

func collectProductIDs(items []entities.NewOrderItem) []string {
	seen := make(map[string]struct{}, len(items))
	ids := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}
	return ids
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
