// Package resource serves the five CRUD routes of any entity backed by a
// resource.Service.
package resource

import (
	"net/http"
	"tourcrm/infras/otel"
	"tourcrm/shared"
	"tourcrm/shared/constant"
	gDto "tourcrm/shared/dto"
	gResource "tourcrm/shared/resource"
	"tourcrm/shared/validator"
	"tourcrm/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler[T gResource.Model, R gResource.Request[T]] struct {
	service gResource.Service[T, R]
	otel    otel.Otel
}

func New[T gResource.Model, R gResource.Request[T]](service gResource.Service[T, R], otel otel.Otel) Handler[T, R] {
	return Handler[T, R]{
		service: service,
		otel:    otel,
	}
}

// Routes registers list, get, create, update and delete relative to router.
func (handler *Handler[T, R]) Routes(router chi.Router) {
	router.Get("/", handler.List)
	router.Post("/", handler.Create)
	router.Get("/{id}", handler.Get)
	router.Put("/{id}", handler.Update)
	router.Delete("/{id}", handler.Delete)
}

func (handler *Handler[T, R]) spanName(operation string) string {
	return constant.OtelHandlerScopeName + "." + handler.service.Schema().Entity + "." + operation
}

// List returns every row, optionally paginated with page/limit and filtered
// with activo.
func (handler *Handler[T, R]) List(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, handler.spanName("List"))
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, false)

	res, err := handler.service.List(ctx, queryParams, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list rows")

		response.WithError(writer, err)

		return
	}

	response.WithList(writer, http.StatusOK, res)
}

func (handler *Handler[T, R]) Get(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, handler.spanName("Get"))
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to get row")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func (handler *Handler[T, R]) Create(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, handler.spanName("Create"))
	defer scope.End()

	var req R

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create row")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent(handler.service.Schema().Entity + " created")

	response.WithMessageAndJSON(writer, http.StatusCreated, handler.service.Schema().Messages.Created, res)
}

func (handler *Handler[T, R]) Update(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, handler.spanName("Update"))
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	var req R

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update row")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent(handler.service.Schema().Entity + " updated")

	response.WithMessageAndJSON(writer, http.StatusOK, handler.service.Schema().Messages.Updated, res)
}

func (handler *Handler[T, R]) Delete(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, handler.spanName("Delete"))
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		response.WithError(writer, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to delete row")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent(handler.service.Schema().Entity + " deleted")

	response.WithMessage(writer, http.StatusOK, handler.service.Schema().Messages.Deleted)
}
