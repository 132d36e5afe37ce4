package dispatch_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"marketplace/internal/handlers/rest/dto"
	"marketplace/internal/handlers/rest/identity"
	"marketplace/internal/service/dispatch"
	"marketplace/internal/service/order"
	"marketplace/pkg/logger"
)

// Handler запускает волну диспетчеризации вручную. Доступно только
// персоналу, обычный путь - событие order.created.
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
	if !actor.IsStaff() {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	res, err := h.service.DispatchForOrder(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.FromDispatchWave(res))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
