package courierstate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	courierservice "marketplace/internal/service/courier"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Get(ctx context.Context, userID string) (*entities.CourierState, error) {
	query := `
		SELECT user_id, is_available, last_lat, last_lng, accuracy, last_seen_at, updated_at
		FROM courier_states
		WHERE user_id = $1
	`

	var stateDB CourierStateDB
	err := r.querier.QueryRow(ctx, query, userID).Scan(
		&stateDB.UserID,
		&stateDB.IsAvailable,
		&stateDB.LastLat,
		&stateDB.LastLng,
		&stateDB.Accuracy,
		&stateDB.LastSeenAt,
		&stateDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courierservice.ErrStateNotFound
		}
		return nil, fmt.Errorf("unexpected courier state repository get error: %w", err)
	}

	return ToDomain(&stateDB), nil
}

// Upsert обновляет heartbeat курьера. last_seen_at ставится в NOW()
// только когда пришли координаты.
func (r *Repository) Upsert(ctx context.Context, stateModify entities.CourierStateModify) (*entities.CourierState, error) {
	if stateModify.UserID == nil {
		return nil, courierservice.ErrMissingRequiredFields
	}

	query := `
		INSERT INTO courier_states (user_id, is_available, last_lat, last_lng, accuracy, last_seen_at, updated_at)
		VALUES ($1, COALESCE($2, FALSE), $3, $4, $5, CASE WHEN $3::float8 IS NOT NULL THEN NOW() END, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			is_available = COALESCE($2, courier_states.is_available),
			last_lat     = COALESCE($3, courier_states.last_lat),
			last_lng     = COALESCE($4, courier_states.last_lng),
			accuracy     = COALESCE($5, courier_states.accuracy),
			last_seen_at = CASE WHEN $3::float8 IS NOT NULL THEN NOW() ELSE courier_states.last_seen_at END,
			updated_at   = NOW()
		RETURNING user_id, is_available, last_lat, last_lng, accuracy, last_seen_at, updated_at
	`

	var stateDB CourierStateDB
	err := r.querier.QueryRow(
		ctx,
		query,
		stateModify.UserID,
		stateModify.IsAvailable,
		stateModify.Lat,
		stateModify.Lng,
		stateModify.Accuracy,
	).Scan(
		&stateDB.UserID,
		&stateDB.IsAvailable,
		&stateDB.LastLat,
		&stateDB.LastLng,
		&stateDB.Accuracy,
		&stateDB.LastSeenAt,
		&stateDB.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier state repository upsert error: %w", err)
	}

	return ToDomain(&stateDB), nil
}

// ListDispatchable возвращает доступных курьеров со свежими
// координатами. Курьеры без heartbeat новее cutoff не участвуют
// в диспетчеризации.
func (r *Repository) ListDispatchable(ctx context.Context, cutoff time.Time) ([]entities.CourierState, error) {
	query := `
		SELECT cs.user_id, cs.is_available, cs.last_lat, cs.last_lng, cs.accuracy, cs.last_seen_at, cs.updated_at
		FROM courier_states cs
		JOIN users u ON u.id = cs.user_id
		WHERE cs.is_available = TRUE
		  AND cs.last_lat IS NOT NULL AND cs.last_lng IS NOT NULL
		  AND cs.last_seen_at >= $1
		  AND u.role = 'COURIER' AND u.is_active = TRUE
	`

	rows, err := r.querier.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier state repository list error: %w", err)
	}
	defer rows.Close()

	states := make([]CourierStateDB, 0, 8)
	for rows.Next() {
		var stateDB CourierStateDB
		err = rows.Scan(
			&stateDB.UserID,
			&stateDB.IsAvailable,
			&stateDB.LastLat,
			&stateDB.LastLng,
			&stateDB.Accuracy,
			&stateDB.LastSeenAt,
			&stateDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected courier state repository list scan error: %w", err)
		}
		states = append(states, stateDB)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected courier state repository list rows error: %w", err)
	}

	return ToDomainList(states), nil
}
