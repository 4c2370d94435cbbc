package repository

import (
	"tourcrm/infras/otel"
	"tourcrm/infras/postgres"
	"tourcrm/internal/domains/provider/model"
	gRepo "tourcrm/shared/repository"
)

type Provider interface {
	gRepo.CRUD[model.Provider]
}

type repositoryImpl struct {
	gRepo.Repository[model.Provider]
}

func New(db *postgres.Connection, otel otel.Otel) Provider {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Provider](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
