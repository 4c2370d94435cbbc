// Package resource implements the list/get/create/update/delete flow shared by
// every CRUD entity. An entity plugs in with a Schema, a repository and a
// request type that knows how to turn itself into a row.
package resource

import (
	"tourcrm/shared/dto"
)

// Model is a persisted row identified by a database-generated key.
type Model interface {
	GetID() int64
}

// Request is a validated request body for entity T.
type Request[T Model] interface {
	// ToModel builds the row to insert, applying server-side defaults.
	ToModel() (T, error)
	// Fields returns every mutable column for a full replace.
	Fields() (map[string]any, error)
}

type Messages struct {
	NotFound string
	Created  string
	Updated  string
	Deleted  string
}

// Schema describes how an entity is stored. When FieldActive is empty rows are
// hard deleted; otherwise delete flips the flag. FieldUpdatedAt, when set, is
// stamped on every update and soft delete.
type Schema struct {
	Entity         string
	Table          string
	FieldID        string
	FieldActive    string
	FieldUpdatedAt string
	Messages       Messages
}

func (s Schema) SoftDelete() bool {
	return s.FieldActive != ""
}

// ActiveFilter narrows a list to rows whose active flag equals the query
// parameter, when the entity has one and the caller asked for it.
func (s Schema) ActiveFilter(params dto.QueryParams) dto.FilterGroup {
	if !s.SoftDelete() || params.Activo == nil {
		return dto.FilterGroup{}
	}

	return dto.And(dto.Filter{
		Field:    s.FieldActive,
		Value:    *params.Activo,
		Operator: dto.FilterOperatorEq,
		Table:    s.Table,
	})
}
