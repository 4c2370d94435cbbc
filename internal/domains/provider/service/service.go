package service

import (
	"tourcrm/infras/otel"
	"tourcrm/internal/domains/provider/model"
	"tourcrm/internal/domains/provider/model/dto"
	"tourcrm/internal/domains/provider/repository"
	"tourcrm/shared/resource"
)

var Schema = resource.Schema{
	Entity:      model.EntityName,
	Table:       model.TableName,
	FieldID:     model.FieldID,
	FieldActive: model.FieldActivo,
	Messages: resource.Messages{
		NotFound: "Proveedor no encontrado",
		Created:  "Proveedor creado",
		Updated:  "Proveedor actualizado",
		Deleted:  "Proveedor desactivado",
	},
}

type Provider interface {
	resource.Service[model.Provider, dto.ProviderRequest]
}

func New(repo repository.Provider, otel otel.Otel) Provider {
	return resource.New[model.Provider, dto.ProviderRequest](Schema, repo, otel)
}
