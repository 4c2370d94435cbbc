package repository

import (
	"tourcrm/infras/otel"
	"tourcrm/infras/postgres"
	"tourcrm/internal/domains/tourpackage/model"
	gRepo "tourcrm/shared/repository"
)

type Package interface {
	gRepo.CRUD[model.Package]
}

type repositoryImpl struct {
	gRepo.Repository[model.Package]
}

func New(db *postgres.Connection, otel otel.Otel) Package {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Package](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
