package user

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

func (r *Repository) GetByID(ctx context.Context, userID string) (*entities.User, error) {
	query := `
		SELECT id, name, role, is_active
		FROM users
		WHERE id = $1
	`

	var userEntity entities.User
	var role string
	err := r.querier.QueryRow(ctx, query, userID).Scan(
		&userEntity.ID,
		&userEntity.Name,
		&role,
		&userEntity.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository get error: %w", err)
	}

	userEntity.Role = entities.RoleType(role)
	return &userEntity, nil
}
