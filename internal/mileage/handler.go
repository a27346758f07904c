package mileage

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/vehicle-ledger/internal/transport"
	"github.com/frahmantamala/vehicle-ledger/pkg/logger"
)

type ServiceAPI interface {
	MileageOverTime() ([]Point, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) MileageOverTime(w http.ResponseWriter, r *http.Request) {
	points, err := h.Service.MileageOverTime()
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, points)
}
