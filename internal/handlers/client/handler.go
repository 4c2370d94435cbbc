package client

import (
	"tourcrm/infras/otel"
	"tourcrm/internal/domains/client/model"
	"tourcrm/internal/domains/client/model/dto"
	"tourcrm/internal/domains/client/service"
	"tourcrm/internal/handlers/resource"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	resource.Handler[model.Client, dto.ClientRequest]
}

func New(service service.Client, otel otel.Otel) Handler {
	return Handler{
		Handler: resource.New[model.Client, dto.ClientRequest](service, otel),
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/clientes", handler.Routes)
}
