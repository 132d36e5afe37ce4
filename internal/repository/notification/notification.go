package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
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

func (r *Repository) Create(ctx context.Context, notificationEntity entities.Notification) (*entities.Notification, error) {
	notificationEntity.ID = uuid.NewString()

	query := `
		INSERT INTO notifications (id, shop_id, user_id, order_id, title, content, type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	err := r.querier.QueryRow(
		ctx,
		query,
		notificationEntity.ID,
		notificationEntity.ShopID,
		notificationEntity.UserID,
		notificationEntity.OrderID,
		notificationEntity.Title,
		notificationEntity.Content,
		notificationEntity.Type.String(),
	).Scan(&notificationEntity.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository create error: %w", err)
	}

	return &notificationEntity, nil
}
