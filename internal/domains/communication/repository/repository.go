package repository

import (
	"tourcrm/infras/otel"
	"tourcrm/infras/postgres"
	"tourcrm/internal/domains/communication/model"
	gRepo "tourcrm/shared/repository"
)

type Communication interface {
	gRepo.CRUD[model.Communication]
}

type repositoryImpl struct {
	gRepo.Repository[model.Communication]
}

func New(db *postgres.Connection, otel otel.Otel) Communication {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Communication](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
