package courier_state_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"marketplace/internal/entities"
	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/handlers/rest/identity"
	"marketplace/internal/service/courier"
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
	if actor.Role != entities.RoleCourier {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	var stateUpdateDTO dto.CourierStateUpdate
	err = json.NewDecoder(r.Body).Decode(&stateUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	res, err := h.service.UpdateState(r.Context(), actor, entities.CourierStateModify{
		IsAvailable: stateUpdateDTO.IsAvailable,
		Lat:         stateUpdateDTO.Lat,
		Lng:         stateUpdateDTO.Lng,
		Accuracy:    stateUpdateDTO.Accuracy,
	})
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrMissingRequiredFields),
			errors.Is(err, courier.ErrInvalidLocation):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromCourierState(res))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
