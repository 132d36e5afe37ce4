package offer_accept_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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

	res, err := h.service.AcceptOffer(r.Context(), actor, mux.Vars(r)["id"])
	if err != nil {
		switch {
		case errors.Is(err, courier.ErrOfferNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, courier.ErrOfferNotYours):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, courier.ErrOfferNotPending),
			errors.Is(err, courier.ErrOfferExpired),
			errors.Is(err, courier.ErrOrderTaken),
			errors.Is(err, courier.ErrCapacityExceeded),
			errors.Is(err, courier.ErrRouteMismatch):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromCourierOffer(res))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
