package product

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

// GetActiveForUpdate блокирует строки товаров на время транзакции.
// Сортировка по id фиксирует порядок взятия блокировок.
func (r *Repository) GetActiveForUpdate(ctx context.Context, shopID string, productIDs []string) ([]*entities.Product, error) {
	query := `
		SELECT id, shop_id, name, price, is_active, stock, track_stock,
		       menu_variants, colors, sizes, pack_options, addons,
		       created_at, updated_at
		FROM products
		WHERE shop_id = $1 AND id = ANY($2) AND is_active = TRUE
		ORDER BY id
		FOR UPDATE
	`

	rows, err := r.querier.Query(ctx, query, shopID, productIDs)
	if err != nil {
		return nil, fmt.Errorf("unexpected product repository select error: %w", err)
	}
	defer rows.Close()

	var products []*entities.Product
	for rows.Next() {
		var productDB ProductDB
		err = rows.Scan(
			&productDB.ID,
			&productDB.ShopID,
			&productDB.Name,
			&productDB.Price,
			&productDB.IsActive,
			&productDB.Stock,
			&productDB.TrackStock,
			&productDB.MenuVariants,
			&productDB.Colors,
			&productDB.Sizes,
			&productDB.PackOptions,
			&productDB.Addons,
			&productDB.CreatedAt,
			&productDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected product repository scan error: %w", err)
		}

		product, err := ToDomain(&productDB)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected product repository rows error: %w", err)
	}

	return products, nil
}

// ApplyStockDelta сдвигает остаток на delta, не опуская его ниже нуля.
// Товары без учёта остатков запрос не трогает.
func (r *Repository) ApplyStockDelta(ctx context.Context, productID string, delta int64) error {
	query := `
		UPDATE products
		SET stock = GREATEST(0, stock + $2), updated_at = NOW()
		WHERE id = $1 AND track_stock = TRUE AND stock IS NOT NULL
	`

	_, err := r.querier.Exec(ctx, query, productID, delta)
	if err != nil {
		return fmt.Errorf("unexpected product repository stock update error: %w", err)
	}

	return nil
}
