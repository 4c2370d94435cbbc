package service

import (
	"tourcrm/infras/otel"
	"tourcrm/internal/domains/client/model"
	"tourcrm/internal/domains/client/model/dto"
	"tourcrm/internal/domains/client/repository"
	"tourcrm/shared/resource"
)

var Schema = resource.Schema{
	Entity:      model.EntityName,
	Table:       model.TableName,
	FieldID:     model.FieldID,
	FieldActive: model.FieldActivo,
	Messages: resource.Messages{
		NotFound: "Cliente no encontrado",
		Created:  "Cliente creado",
		Updated:  "Cliente actualizado",
		Deleted:  "Cliente desactivado",
	},
}

type Client interface {
	resource.Service[model.Client, dto.ClientRequest]
}

func New(repo repository.Client, otel otel.Otel) Client {
	return resource.New[model.Client, dto.ClientRequest](Schema, repo, otel)
}
