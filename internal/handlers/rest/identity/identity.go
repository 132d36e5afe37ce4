// Package identity разбирает заголовки аутентифицирующего гейтвея.
// Сервис доверяет заголовкам, проверка подписи выполняется выше по
// цепочке.
package identity

import (
	"errors"
	"net/http"
	"strings"

	"marketplace/internal/entities"
)

const (
	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"
	HeaderShopID   = "X-Shop-Id"
)

var ErrUnauthenticated = errors.New("missing or invalid identity headers")

func ActorFromRequest(r *http.Request) (entities.Actor, error) {
	userID := strings.TrimSpace(r.Header.Get(HeaderUserID))
	if userID == "" {
		return entities.Actor{}, ErrUnauthenticated
	}

	role := entities.RoleType(strings.TrimSpace(r.Header.Get(HeaderUserRole)))
	switch role {
	case entities.RoleAdmin, entities.RoleMerchant, entities.RoleCustomer, entities.RoleCourier:
	default:
		return entities.Actor{}, ErrUnauthenticated
	}

	return entities.Actor{
		UserID: userID,
		Role:   role,
		ShopID: strings.TrimSpace(r.Header.Get(HeaderShopID)),
	}, nil
}
