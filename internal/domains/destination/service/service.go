package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"tourcrm/infras/otel"
	"tourcrm/internal/domains/destination/model"
	"tourcrm/internal/domains/destination/model/dto"
	"tourcrm/internal/domains/destination/repository"
	"tourcrm/shared/constant"
	gDto "tourcrm/shared/dto"
	"tourcrm/shared/resource"
)

var Schema = resource.Schema{
	Entity:         model.EntityName,
	Table:          model.TableName,
	FieldID:        model.FieldID,
	FieldActive:    model.FieldActivo,
	FieldUpdatedAt: model.FieldFechaActualizacion,
	Messages: resource.Messages{
		NotFound: "Destino no encontrado",
		Created:  "Destino creado exitosamente",
		Updated:  "Destino actualizado exitosamente",
		Deleted:  "Destino eliminado exitosamente",
	},
}

type Destination interface {
	resource.Service[model.Destination, dto.DestinationRequest]
	ListByCategory(ctx context.Context, categoria string) ([]model.Destination, error)
}

type serviceImpl struct {
	resource.Service[model.Destination, dto.DestinationRequest]
	otel otel.Otel
}

func New(repo repository.Destination, otel otel.Otel) Destination {
	return &serviceImpl{
		Service: resource.New[model.Destination, dto.DestinationRequest](Schema, repo, otel),
		otel:    otel,
	}
}

// ListByCategory returns the active destinations of a category by name.
func (s *serviceImpl) ListByCategory(ctx context.Context, categoria string) (res []model.Destination, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".destino.ListByCategory")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(model.FieldCategoria, categoria)

	params := gDto.QueryParams{OrderBy: model.TableName + "." + model.FieldNombreDestino + " ASC"}
	filter := gDto.And(
		gDto.Filter{Field: model.FieldCategoria, Operator: gDto.FilterOperatorEq, Value: categoria, Table: model.TableName},
		gDto.Filter{Field: model.FieldActivo, Operator: gDto.FilterOperatorEq, Value: true, Table: model.TableName},
	)

	return s.List(ctx, params, filter)
}
