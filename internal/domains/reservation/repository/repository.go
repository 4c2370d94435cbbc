package repository

import (
	"tourcrm/infras/otel"
	"tourcrm/infras/postgres"
	"tourcrm/internal/domains/reservation/model"
	gRepo "tourcrm/shared/repository"
)

type Reservation interface {
	gRepo.CRUD[model.Reservation]
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
