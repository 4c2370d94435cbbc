package reservation

import (
	"tourcrm/infras/otel"
	"tourcrm/internal/domains/reservation/model"
	"tourcrm/internal/domains/reservation/model/dto"
	"tourcrm/internal/domains/reservation/service"
	"tourcrm/internal/handlers/resource"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	resource.Handler[model.Reservation, dto.ReservationRequest]
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		Handler: resource.New[model.Reservation, dto.ReservationRequest](service, otel),
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservas", handler.Routes)
}
