package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/handlers/rest/identity"
	"marketplace/internal/service/order"
	"marketplace/internal/service/pricing"
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

	var orderCreateDTO dto.OrderCreate
	err = json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	orderCreateEntity, err := orderCreateDTO.ToEntity()
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	res, err := h.service.CreateOrder(r.Context(), actor, orderCreateEntity)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrEmptyOrder),
			errors.Is(err, order.ErrInvalidOrderData),
			errors.Is(err, pricing.ErrInvalidQuantity),
			errors.Is(err, pricing.ErrSelectionRequired),
			errors.Is(err, pricing.ErrInvalidSelection),
			errors.Is(err, pricing.ErrInvalidAddon):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, order.ErrShopNotFound),
			errors.Is(err, order.ErrProductNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrInsufficientStock):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.FromOrder(res))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
