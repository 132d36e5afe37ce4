package courieroffer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	courierservice "marketplace/internal/service/courier"
)

const offerColumns = `id, order_id, courier_id, rank, status, expires_at, responded_at, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Upsert создает предложение для пары (заказ, курьер) либо
// возвращает его в PENDING с новым дедлайном и рангом.
func (r *Repository) Upsert(ctx context.Context, upsert entities.CourierOfferUpsert) (*entities.CourierOffer, error) {
	query := `
		INSERT INTO order_courier_offers (id, order_id, courier_id, rank, status, expires_at)
		VALUES ($1, $2, $3, $4, 'PENDING', $5)
		ON CONFLICT (order_id, courier_id) DO UPDATE SET
			rank         = $4,
			status       = 'PENDING',
			expires_at   = $5,
			responded_at = NULL
		RETURNING ` + offerColumns

	var offerDB CourierOfferDB
	err := r.querier.QueryRow(
		ctx,
		query,
		uuid.NewString(),
		upsert.OrderID,
		upsert.CourierID,
		upsert.Rank,
		upsert.ExpiresAt,
	).Scan(
		&offerDB.ID,
		&offerDB.OrderID,
		&offerDB.CourierID,
		&offerDB.Rank,
		&offerDB.Status,
		&offerDB.ExpiresAt,
		&offerDB.RespondedAt,
		&offerDB.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier offer repository upsert error: %w", err)
	}

	return ToDomain(&offerDB), nil
}

func (r *Repository) GetByID(ctx context.Context, offerID string) (*entities.CourierOffer, error) {
	query := `SELECT ` + offerColumns + ` FROM order_courier_offers WHERE id = $1`

	return r.getOne(ctx, query, offerID)
}

// GetByIDForUpdate блокирует строку предложения на время ответа курьера.
func (r *Repository) GetByIDForUpdate(ctx context.Context, offerID string) (*entities.CourierOffer, error) {
	query := `SELECT ` + offerColumns + ` FROM order_courier_offers WHERE id = $1 FOR UPDATE`

	return r.getOne(ctx, query, offerID)
}

func (r *Repository) getOne(ctx context.Context, query, offerID string) (*entities.CourierOffer, error) {
	var offerDB CourierOfferDB
	err := r.querier.QueryRow(ctx, query, offerID).Scan(
		&offerDB.ID,
		&offerDB.OrderID,
		&offerDB.CourierID,
		&offerDB.Rank,
		&offerDB.Status,
		&offerDB.ExpiresAt,
		&offerDB.RespondedAt,
		&offerDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courierservice.ErrOfferNotFound
		}
		return nil, fmt.Errorf("unexpected courier offer repository get error: %w", err)
	}

	return ToDomain(&offerDB), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, offerID string, status entities.CourierOfferStatusType) (*entities.CourierOffer, error) {
	query := `
		UPDATE order_courier_offers
		SET status = $2, responded_at = NOW()
		WHERE id = $1
		RETURNING ` + offerColumns

	var offerDB CourierOfferDB
	err := r.querier.QueryRow(ctx, query, offerID, status.String()).Scan(
		&offerDB.ID,
		&offerDB.OrderID,
		&offerDB.CourierID,
		&offerDB.Rank,
		&offerDB.Status,
		&offerDB.ExpiresAt,
		&offerDB.RespondedAt,
		&offerDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courierservice.ErrOfferNotFound
		}
		return nil, fmt.Errorf("unexpected courier offer repository update error: %w", err)
	}

	return ToDomain(&offerDB), nil
}

// RejectOtherPending гасит конкурирующие предложения после того, как
// заказ принял один из курьеров.
func (r *Repository) RejectOtherPending(ctx context.Context, orderID, acceptedOfferID string) (int64, error) {
	query := `
		UPDATE order_courier_offers
		SET status = 'REJECTED', responded_at = NOW()
		WHERE order_id = $1 AND id != $2 AND status = 'PENDING'
	`

	result, err := r.querier.Exec(ctx, query, orderID, acceptedOfferID)
	if err != nil {
		return 0, fmt.Errorf("unexpected courier offer repository reject error: %w", err)
	}

	return result.RowsAffected(), nil
}

// ExpirePendingForOrder гасит все живые предложения заказа. Вызывается
// при ручном назначении курьера и при отмене заказа.
func (r *Repository) ExpirePendingForOrder(ctx context.Context, orderID string) (int64, error) {
	query := `
		UPDATE order_courier_offers
		SET status = 'EXPIRED'
		WHERE order_id = $1 AND status = 'PENDING'
	`

	result, err := r.querier.Exec(ctx, query, orderID)
	if err != nil {
		return 0, fmt.Errorf("unexpected courier offer repository expire error: %w", err)
	}

	return result.RowsAffected(), nil
}

// ExpireStale переводит просроченные PENDING в EXPIRED. Без orderID
// обрабатываются все заказы.
func (r *Repository) ExpireStale(ctx context.Context, orderID *string) (int64, error) {
	query := `
		UPDATE order_courier_offers
		SET status = 'EXPIRED'
		WHERE status = 'PENDING' AND expires_at <= NOW()
		  AND ($1::text IS NULL OR order_id = $1)
	`

	result, err := r.querier.Exec(ctx, query, orderID)
	if err != nil {
		return 0, fmt.Errorf("unexpected courier offer repository expire stale error: %w", err)
	}

	return result.RowsAffected(), nil
}

// CountLivePending считает непросроченные PENDING предложения заказа.
// Ненулевое значение означает, что волна диспетчеризации еще идет.
func (r *Repository) CountLivePending(ctx context.Context, orderID string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM order_courier_offers
		WHERE order_id = $1 AND status = 'PENDING' AND expires_at > NOW()
	`

	var count int64
	err := r.querier.QueryRow(ctx, query, orderID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected courier offer repository count error: %w", err)
	}

	return count, nil
}

func (r *Repository) ListPendingByCourier(ctx context.Context, courierID string) ([]entities.CourierOffer, error) {
	query := `SELECT ` + offerColumns + ` FROM order_courier_offers
		WHERE courier_id = $1 AND status = 'PENDING' AND expires_at > NOW()
		ORDER BY expires_at`

	rows, err := r.querier.Query(ctx, query, courierID)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier offer repository list error: %w", err)
	}
	defer rows.Close()

	offers := make([]CourierOfferDB, 0, 8)
	for rows.Next() {
		var offerDB CourierOfferDB
		err = rows.Scan(
			&offerDB.ID,
			&offerDB.OrderID,
			&offerDB.CourierID,
			&offerDB.Rank,
			&offerDB.Status,
			&offerDB.ExpiresAt,
			&offerDB.RespondedAt,
			&offerDB.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected courier offer repository list scan error: %w", err)
		}
		offers = append(offers, offerDB)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected courier offer repository list rows error: %w", err)
	}

	return ToDomainList(offers), nil
}
