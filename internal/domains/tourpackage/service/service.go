package service

import (
	"tourcrm/infras/otel"
	"tourcrm/internal/domains/tourpackage/model"
	"tourcrm/internal/domains/tourpackage/model/dto"
	"tourcrm/internal/domains/tourpackage/repository"
	"tourcrm/shared/resource"
)

var Schema = resource.Schema{
	Entity:      model.EntityName,
	Table:       model.TableName,
	FieldID:     model.FieldID,
	FieldActive: model.FieldActivo,
	Messages: resource.Messages{
		NotFound: "Paquete no encontrado",
		Created:  "Paquete creado",
		Updated:  "Paquete actualizado",
		Deleted:  "Paquete desactivado",
	},
}

type Package interface {
	resource.Service[model.Package, dto.PackageRequest]
}

func New(repo repository.Package, otel otel.Otel) Package {
	return resource.New[model.Package, dto.PackageRequest](Schema, repo, otel)
}
