package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	orderservice "marketplace/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, shop_id, user_id, courier_id, status, total,
	payment_method, notes, created_at, delivered_at, cod_collected_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	orderEntity.ID = uuid.NewString()

	query := `
		INSERT INTO orders (id, shop_id, user_id, status, total, payment_method, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := r.querier.QueryRow(
		ctx,
		query,
		orderEntity.ID,
		orderEntity.ShopID,
		orderEntity.UserID,
		orderEntity.Status.String(),
		orderEntity.Total,
		orderEntity.PaymentMethod,
		orderEntity.Notes,
	).Scan(&orderEntity.CreatedAt)
	if err != nil {
		// Магазин к этому моменту уже прочитан в транзакции,
		// нарушение FK означает несуществующего покупателя.
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, orderservice.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	itemQuery := `
		INSERT INTO order_items (id, order_id, product_id, quantity, price, addons, variant_selection)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	for i := range orderEntity.Items {
		orderEntity.Items[i].ID = uuid.NewString()
		orderEntity.Items[i].OrderID = orderEntity.ID

		itemDB, err := itemFromDomain(&orderEntity.Items[i])
		if err != nil {
			return nil, err
		}

		_, err = r.querier.Exec(
			ctx,
			itemQuery,
			itemDB.ID,
			itemDB.OrderID,
			itemDB.ProductID,
			itemDB.Quantity,
			itemDB.Price,
			itemDB.Addons,
			itemDB.VariantSelection,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository create item error: %w", err)
		}
	}

	return &orderEntity, nil
}

func (r *Repository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	return r.getOne(ctx, query, orderID)
}

// GetByIDForUpdate блокирует строку заказа до конца транзакции.
func (r *Repository) GetByIDForUpdate(ctx context.Context, orderID string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 FOR UPDATE`

	return r.getOne(ctx, query, orderID)
}

func (r *Repository) getOne(ctx context.Context, query string, orderID string) (*entities.Order, error) {
	var orderDB OrderDB
	err := r.querier.QueryRow(ctx, query, orderID).Scan(
		&orderDB.ID,
		&orderDB.ShopID,
		&orderDB.UserID,
		&orderDB.CourierID,
		&orderDB.Status,
		&orderDB.Total,
		&orderDB.PaymentMethod,
		&orderDB.Notes,
		&orderDB.CreatedAt,
		&orderDB.DeliveredAt,
		&orderDB.CODCollectedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	items, err := r.getItems(ctx, orderDB.ID)
	if err != nil {
		return nil, err
	}

	return ToDomain(&orderDB, items)
}

func (r *Repository) getItems(ctx context.Context, orderID string) ([]OrderItemDB, error) {
	query := `
		SELECT id, order_id, product_id, quantity, price, addons, variant_selection, returned_qty
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository items error: %w", err)
	}
	defer rows.Close()

	var items []OrderItemDB
	for rows.Next() {
		var itemDB OrderItemDB
		err = rows.Scan(
			&itemDB.ID,
			&itemDB.OrderID,
			&itemDB.ProductID,
			&itemDB.Quantity,
			&itemDB.Price,
			&itemDB.Addons,
			&itemDB.VariantSelection,
			&itemDB.ReturnedQty,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository items scan error: %w", err)
		}
		items = append(items, itemDB)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository items rows error: %w", err)
	}

	return items, nil
}

func (r *Repository) Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	builder := qb.
		Update("orders")

	// опциональные поля
	if orderModify.Status != nil {
		builder = builder.Set("status", orderModify.Status.String())
	}
	if orderModify.CourierID != nil {
		builder = builder.Set("courier_id", orderModify.CourierID)
	}
	if orderModify.Notes != nil {
		builder = builder.Set("notes", orderModify.Notes)
	}
	if orderModify.DeliveredAt != nil {
		builder = builder.Set("delivered_at", orderModify.DeliveredAt)
	}
	if orderModify.CODCollectedAt != nil {
		builder = builder.Set("cod_collected_at", orderModify.CODCollectedAt)
	}

	builder = builder.
		Where(sq.Eq{"id": orderModify.ID}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var orderDB OrderDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&orderDB.ID,
		&orderDB.ShopID,
		&orderDB.UserID,
		&orderDB.CourierID,
		&orderDB.Status,
		&orderDB.Total,
		&orderDB.PaymentMethod,
		&orderDB.Notes,
		&orderDB.CreatedAt,
		&orderDB.DeliveredAt,
		&orderDB.CODCollectedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	items, err := r.getItems(ctx, orderDB.ID)
	if err != nil {
		return nil, err
	}

	return ToDomain(&orderDB, items)
}

// MarkCancelled переводит заказ в CANCELLED не более одного раза.
// Возвращает false, если заказ уже был отменен.
func (r *Repository) MarkCancelled(ctx context.Context, orderID string) (bool, error) {
	query := `
		UPDATE orders
		SET status = 'CANCELLED'
		WHERE id = $1 AND status != 'CANCELLED'
	`

	result, err := r.querier.Exec(ctx, query, orderID)
	if err != nil {
		return false, fmt.Errorf("unexpected order repository cancel error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *Repository) ListByShop(ctx context.Context, shopID string) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE shop_id = $1 ORDER BY created_at DESC`

	return r.list(ctx, query, shopID)
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`

	return r.list(ctx, query, userID)
}

// ListActiveByCourier возвращает незавершенные заказы курьера.
// Нужен для проверки вместимости при принятии предложения.
func (r *Repository) ListActiveByCourier(ctx context.Context, courierID string) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
		WHERE courier_id = $1 AND status = ANY($2)
		ORDER BY created_at`

	return r.list(ctx, query, courierID, statusStrings(entities.ActiveOrderStatuses))
}

// ListUnassigned возвращает активные заказы без курьера для повторной
// диспетчеризации фоновой задачей.
func (r *Repository) ListUnassigned(ctx context.Context, limit int64) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
		WHERE courier_id IS NULL AND status = ANY($1)
		ORDER BY created_at
		LIMIT $2`

	return r.list(ctx, query, statusStrings(entities.ActiveOrderStatuses), limit)
}

func (r *Repository) list(ctx context.Context, query string, args ...interface{}) ([]entities.Order, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orders := make([]entities.Order, 0, 8)
	for rows.Next() {
		var orderDB OrderDB
		err = rows.Scan(
			&orderDB.ID,
			&orderDB.ShopID,
			&orderDB.UserID,
			&orderDB.CourierID,
			&orderDB.Status,
			&orderDB.Total,
			&orderDB.PaymentMethod,
			&orderDB.Notes,
			&orderDB.CreatedAt,
			&orderDB.DeliveredAt,
			&orderDB.CODCollectedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list scan error: %w", err)
		}

		orderEntity, err := ToDomain(&orderDB, nil)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *orderEntity)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list rows error: %w", err)
	}

	return orders, nil
}

// IncrementReturnedQty увеличивает возвращенное количество позиции.
// Условие не дает вернуть больше, чем было продано.
func (r *Repository) IncrementReturnedQty(ctx context.Context, orderItemID string, qty int64) error {
	query := `
		UPDATE order_items
		SET returned_qty = returned_qty + $2
		WHERE id = $1 AND returned_qty + $2 <= quantity
	`

	result, err := r.querier.Exec(ctx, query, orderItemID, qty)
	if err != nil {
		return fmt.Errorf("unexpected order repository return error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return orderservice.ErrReturnExceedsSold
	}

	return nil
}

func (r *Repository) CreateReturn(ctx context.Context, orderReturn entities.OrderReturn) (*entities.OrderReturn, error) {
	orderReturn.ID = uuid.NewString()

	lines, err := json.Marshal(orderReturn.Lines)
	if err != nil {
		return nil, fmt.Errorf("order return lines: %w", err)
	}

	query := `
		INSERT INTO order_returns (id, order_id, lines, restock, reason)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err = r.querier.QueryRow(
		ctx,
		query,
		orderReturn.ID,
		orderReturn.OrderID,
		lines,
		orderReturn.Restock,
		orderReturn.Reason,
	).Scan(&orderReturn.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create return error: %w", err)
	}

	return &orderReturn, nil
}

func statusStrings(statuses []entities.OrderStatusType) []string {
	result := make([]string, 0, len(statuses))
	for _, s := range statuses {
		result = append(result, s.String())
	}
	return result
}
