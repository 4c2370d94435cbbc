package service

import (
	"tourcrm/infras/otel"
	"tourcrm/internal/domains/reservation/model"
	"tourcrm/internal/domains/reservation/model/dto"
	"tourcrm/internal/domains/reservation/repository"
	"tourcrm/shared/resource"
)

var Schema = resource.Schema{
	Entity:  model.EntityName,
	Table:   model.TableName,
	FieldID: model.FieldID,
	Messages: resource.Messages{
		NotFound: "Reserva no encontrada",
		Created:  "Reserva creada",
		Updated:  "Reserva actualizada",
		Deleted:  "Reserva eliminada",
	},
}

type Reservation interface {
	resource.Service[model.Reservation, dto.ReservationRequest]
}

func New(repo repository.Reservation, otel otel.Otel) Reservation {
	return resource.New[model.Reservation, dto.ReservationRequest](Schema, repo, otel)
}
