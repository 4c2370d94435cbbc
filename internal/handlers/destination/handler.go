package destination

import (
	"net/http"
	"strings"
	"tourcrm/infras/otel"
	"tourcrm/internal/domains/destination/model"
	"tourcrm/internal/domains/destination/model/dto"
	"tourcrm/internal/domains/destination/service"
	"tourcrm/internal/handlers/resource"
	"tourcrm/shared/constant"
	"tourcrm/shared/validator"
	"tourcrm/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const categoriaRule = "required,notblank,max=50"

type Handler struct {
	resource.Handler[model.Destination, dto.DestinationRequest]
	service service.Destination
	otel    otel.Otel
}

func New(service service.Destination, otel otel.Otel) Handler {
	return Handler{
		Handler: resource.New[model.Destination, dto.DestinationRequest](service, otel),
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/destinos", func(routerGroup chi.Router) {
		routerGroup.Get("/categoria/{categoria}", handler.ListByCategory)
		handler.Routes(routerGroup)
	})
}

// ListByCategory returns the active destinations of one category ordered by name.
func (handler *Handler) ListByCategory(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".destino.ListByCategory")
	defer scope.End()

	categoria := strings.TrimSpace(chi.URLParam(request, constant.RequestParamCategoria))

	if err := validator.ValidateVar(constant.RequestParamCategoria, categoria, categoriaRule); err != nil {
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.ListByCategory(ctx, categoria)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("categoria", categoria).Msg("failed to list destinations by category")

		response.WithError(writer, err)

		return
	}

	response.WithList(writer, http.StatusOK, res)
}
