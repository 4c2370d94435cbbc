package service

import (
	"tourcrm/infras/otel"
	"tourcrm/internal/domains/communication/model"
	"tourcrm/internal/domains/communication/model/dto"
	"tourcrm/internal/domains/communication/repository"
	"tourcrm/shared/resource"
)

var Schema = resource.Schema{
	Entity:  model.EntityName,
	Table:   model.TableName,
	FieldID: model.FieldID,
	Messages: resource.Messages{
		NotFound: "Interacción no encontrada",
		Created:  "Interacción creada",
		Updated:  "Interacción actualizada",
		Deleted:  "Interacción eliminada",
	},
}

type Communication interface {
	resource.Service[model.Communication, dto.CommunicationRequest]
}

func New(repo repository.Communication, otel otel.Otel) Communication {
	return resource.New[model.Communication, dto.CommunicationRequest](Schema, repo, otel)
}
