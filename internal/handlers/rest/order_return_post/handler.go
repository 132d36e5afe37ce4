package order_return_post

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

	var returnCreateDTO dto.ReturnCreate
	err = json.NewDecoder(r.Body).Decode(&returnCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	lines := make([]entities.ReturnLine, 0, len(returnCreateDTO.Lines))
	for _, line := range returnCreateDTO.Lines {
		lines = append(lines, entities.ReturnLine{
			OrderItemID: line.OrderItemID,
			Quantity:    line.Quantity,
		})
	}

	res, err := h.service.CreateReturn(r.Context(), actor, entities.OrderReturn{
		OrderID: mux.Vars(r)["id"],
		Lines:   lines,
		Restock: returnCreateDTO.Restock,
		Reason:  returnCreateDTO.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderData):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrForbidden):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, order.ErrReturnExceedsSold):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.FromOrderReturn(res))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
