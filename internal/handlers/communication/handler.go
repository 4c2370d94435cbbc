package communication

import (
	"tourcrm/infras/otel"
	"tourcrm/internal/domains/communication/model"
	"tourcrm/internal/domains/communication/model/dto"
	"tourcrm/internal/domains/communication/service"
	"tourcrm/internal/handlers/resource"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	resource.Handler[model.Communication, dto.CommunicationRequest]
}

func New(service service.Communication, otel otel.Otel) Handler {
	return Handler{
		Handler: resource.New[model.Communication, dto.CommunicationRequest](service, otel),
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/comunicaciones", handler.Routes)
}
