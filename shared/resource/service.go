package resource

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"tourcrm/infras/otel"
	"tourcrm/shared"
	"tourcrm/shared/constant"
	"tourcrm/shared/dto"
	"tourcrm/shared/failure"
	"tourcrm/shared/repository"
	"tourcrm/shared/timezone"

	"github.com/rs/zerolog/log"
)

var errWrittenRowMissing = errors.New("row not found after write")

type Service[T Model, R Request[T]] interface {
	Schema() Schema
	List(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup) ([]T, error)
	Get(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, req R) (T, error)
	Update(ctx context.Context, id int64, req R) (T, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl[T Model, R Request[T]] struct {
	schema Schema
	repo   repository.CRUD[T]
	otel   otel.Otel
}

func New[T Model, R Request[T]](schema Schema, repo repository.CRUD[T], otel otel.Otel) Service[T, R] {
	return &serviceImpl[T, R]{
		schema: schema,
		repo:   repo,
		otel:   otel,
	}
}

func (s *serviceImpl[T, R]) Schema() Schema {
	return s.schema
}

func (s *serviceImpl[T, R]) spanName(operation string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelServiceScopeName, s.schema.Entity, operation)
}

func (s *serviceImpl[T, R]) byID(id int64) dto.FilterGroup {
	return shared.FilterByID(id, s.schema.FieldID, s.schema.Table)
}

func (s *serviceImpl[T, R]) List(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup) (res []T, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, s.spanName("List"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if active := s.schema.ActiveFilter(params); len(active.Filters) > 0 {
		if len(filter.Filters) > 0 {
			active.Filters = append(active.Filters, filter)
		}

		filter = active
	}

	res, err = s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Str("entity", s.schema.Entity).Msg("failed to list rows")

		return nil, fmt.Errorf("failed to list %s: %w", s.schema.Entity, err)
	}

	return res, nil
}

func (s *serviceImpl[T, R]) Get(ctx context.Context, id int64) (res T, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, s.spanName("Get"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(s.schema.FieldID, id)

	res, err = s.repo.Get(ctx, s.byID(id))
	if err != nil {
		log.Error().Err(err).Str("entity", s.schema.Entity).Int64("id", id).Msg("failed to get row")

		return res, fmt.Errorf("failed to get %s: %w", s.schema.Entity, err)
	}

	if res.GetID() == 0 {
		return res, failure.NotFound(s.schema.Messages.NotFound) // nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl[T, R]) Create(ctx context.Context, req R) (res T, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, s.spanName("Create"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	model, err := req.ToModel()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	id, err := s.repo.Insert(ctx, model)
	if err != nil {
		log.Error().Err(err).Str("entity", s.schema.Entity).Msg("failed to insert row")

		return res, fmt.Errorf("failed to create %s: %w", s.schema.Entity, err)
	}

	return s.reload(ctx, id)
}

// Update replaces every mutable column in one conditional statement; zero
// affected rows means the id does not exist and nothing was written.
func (s *serviceImpl[T, R]) Update(ctx context.Context, id int64, req R) (res T, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, s.spanName("Update"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(s.schema.FieldID, id)

	fields, err := req.Fields()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if s.schema.FieldUpdatedAt != "" {
		fields[s.schema.FieldUpdatedAt] = timezone.Now()
	}

	affected, err := s.repo.Update(ctx, fields, s.byID(id))
	if err != nil {
		log.Error().Err(err).Str("entity", s.schema.Entity).Int64("id", id).Msg("failed to update row")

		return res, fmt.Errorf("failed to update %s: %w", s.schema.Entity, err)
	}

	if affected == 0 {
		return res, failure.NotFound(s.schema.Messages.NotFound) // nolint:wrapcheck
	}

	return s.reload(ctx, id)
}

func (s *serviceImpl[T, R]) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, s.spanName("Delete"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(s.schema.FieldID, id)

	var affected int64

	if s.schema.SoftDelete() {
		fields := map[string]any{s.schema.FieldActive: false}
		if s.schema.FieldUpdatedAt != "" {
			fields[s.schema.FieldUpdatedAt] = timezone.Now()
		}

		affected, err = s.repo.Update(ctx, fields, s.byID(id))
	} else {
		affected, err = s.repo.Delete(ctx, s.byID(id))
	}

	if err != nil {
		log.Error().Err(err).Str("entity", s.schema.Entity).Int64("id", id).Msg("failed to delete row")

		return fmt.Errorf("failed to delete %s: %w", s.schema.Entity, err)
	}

	if affected == 0 {
		return failure.NotFound(s.schema.Messages.NotFound) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl[T, R]) reload(ctx context.Context, id int64) (T, error) {
	res, err := s.repo.GetFromPrimary(ctx, s.byID(id))
	if err != nil {
		log.Error().Err(err).Str("entity", s.schema.Entity).Int64("id", id).Msg("failed to read written row")

		return res, fmt.Errorf("failed to read %s: %w", s.schema.Entity, err)
	}

	if res.GetID() == 0 {
		return res, fmt.Errorf("%s %d: %w", s.schema.Entity, id, errWrittenRowMissing)
	}

	return res, nil
}
