package tourpackage

import (
	"tourcrm/infras/otel"
	"tourcrm/internal/domains/tourpackage/model"
	"tourcrm/internal/domains/tourpackage/model/dto"
	"tourcrm/internal/domains/tourpackage/service"
	"tourcrm/internal/handlers/resource"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	resource.Handler[model.Package, dto.PackageRequest]
}

func New(service service.Package, otel otel.Otel) Handler {
	return Handler{
		Handler: resource.New[model.Package, dto.PackageRequest](service, otel),
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/paquetes", handler.Routes)
}
