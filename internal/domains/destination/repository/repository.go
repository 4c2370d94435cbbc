package repository

import (
	"tourcrm/infras/otel"
	"tourcrm/infras/postgres"
	"tourcrm/internal/domains/destination/model"
	gRepo "tourcrm/shared/repository"
)

type Destination interface {
	gRepo.CRUD[model.Destination]
}

type repositoryImpl struct {
	gRepo.Repository[model.Destination]
}

func New(db *postgres.Connection, otel otel.Otel) Destination {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Destination](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
