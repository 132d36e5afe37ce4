package order_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"marketplace/internal/entities"
	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/handlers/rest/identity"
	"marketplace/internal/service/order"
	"marketplace/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, err := identity.ActorFromRequest(r)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var orderUpdateDTO dto.OrderUpdate
	err = json.NewDecoder(r.Body).Decode(&orderUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderID := mux.Vars(r)["id"]
	orderModifyEntity := entities.OrderModify{
		ID:             &orderID,
		Notes:          orderUpdateDTO.Notes,
		DeliveredAt:    orderUpdateDTO.DeliveredAt,
		CODCollectedAt: orderUpdateDTO.CODCollectedAt,
	}

	// Опциональные параметры
	if orderUpdateDTO.Status != nil {
		statusType := entities.OrderStatusType(*orderUpdateDTO.Status)
		orderModifyEntity.Status = &statusType
	}

	res, err := h.service.UpdateOrder(r.Context(), actor, orderModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderData):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, order.ErrOrderTerminal),
			errors.Is(err, order.ErrAlreadyCancelled),
			errors.Is(err, order.ErrInvalidTransition):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromOrder(res))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
