package shop

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	orderservice "marketplace/internal/service/order"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, shopID string) (*entities.Shop, error) {
	query := `
		SELECT id, name, category, latitude, longitude, delivery_fee, addons
		FROM shops
		WHERE id = $1
	`

	var shopDB ShopDB
	err := r.querier.QueryRow(ctx, query, shopID).Scan(
		&shopDB.ID,
		&shopDB.Name,
		&shopDB.Category,
		&shopDB.Latitude,
		&shopDB.Longitude,
		&shopDB.DeliveryFee,
		&shopDB.Addons,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrShopNotFound
		}
		return nil, fmt.Errorf("unexpected shop repository get error: %w", err)
	}

	return ToDomain(&shopDB)
}
