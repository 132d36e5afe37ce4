package offer

import (
	"context"
	"fmt"

	"marketplace/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// GetActiveByProducts возвращает действующие промо для набора товаров.
// На товар берется самое свежее активное промо.
func (r *Repository) GetActiveByProducts(ctx context.Context, shopID string, productIDs []string) (map[string]*entities.Offer, error) {
	query := `
		SELECT DISTINCT ON (product_id)
		       id, shop_id, product_id, title, new_price, discount,
		       variant_pricing, is_active, expires_at, created_at
		FROM offers
		WHERE shop_id = $1 AND product_id = ANY($2)
		  AND is_active = TRUE AND expires_at > NOW()
		ORDER BY product_id, created_at DESC
	`

	rows, err := r.querier.Query(ctx, query, shopID, productIDs)
	if err != nil {
		return nil, fmt.Errorf("unexpected offer repository select error: %w", err)
	}
	defer rows.Close()

	offers := make(map[string]*entities.Offer)
	for rows.Next() {
		var offerDB OfferDB
		err = rows.Scan(
			&offerDB.ID,
			&offerDB.ShopID,
			&offerDB.ProductID,
			&offerDB.Title,
			&offerDB.NewPrice,
			&offerDB.Discount,
			&offerDB.VariantPricing,
			&offerDB.IsActive,
			&offerDB.ExpiresAt,
			&offerDB.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected offer repository scan error: %w", err)
		}

		offerEntity, err := ToDomain(&offerDB)
		if err != nil {
			return nil, err
		}
		offers[offerEntity.ProductID] = offerEntity
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected offer repository rows error: %w", err)
	}

	return offers, nil
}
