package repository

import (
	"tourcrm/infras/otel"
	"tourcrm/infras/postgres"
	"tourcrm/internal/domains/client/model"
	gRepo "tourcrm/shared/repository"
)

type Client interface {
	gRepo.CRUD[model.Client]
}

type repositoryImpl struct {
	gRepo.Repository[model.Client]
}

func New(db *postgres.Connection, otel otel.Otel) Client {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Client](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
