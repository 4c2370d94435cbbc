package provider

import (
	"tourcrm/infras/otel"
	"tourcrm/internal/domains/provider/model"
	"tourcrm/internal/domains/provider/model/dto"
	"tourcrm/internal/domains/provider/service"
	"tourcrm/internal/handlers/resource"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	resource.Handler[model.Provider, dto.ProviderRequest]
}

func New(service service.Provider, otel otel.Otel) Handler {
	return Handler{
		Handler: resource.New[model.Provider, dto.ProviderRequest](service, otel),
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/proveedores", handler.Routes)
}
