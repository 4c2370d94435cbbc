package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"tourcrm/config"
	"tourcrm/infras/otel"
	"tourcrm/internal/domains/auth/model/dto"
	userModel "tourcrm/internal/domains/user/model"
	userRepo "tourcrm/internal/domains/user/repository"
	"tourcrm/shared"
	"tourcrm/shared/constant"
	gDto "tourcrm/shared/dto"
	"tourcrm/shared/failure"
	"tourcrm/shared/password"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
}

type serviceImpl struct {
	userRepo userRepo.User
	cfg      *config.Config
	otel     otel.Otel
}

func New(userRepo userRepo.User, cfg *config.Config, otel otel.Otel) Auth {
	return &serviceImpl{
		userRepo: userRepo,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEqFold,
				Value:    req.NormalizedEmail(),
				Table:    userModel.TableName,
			},
		},
	}

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user by email")

		return res, fmt.Errorf("failed to get user by email: %w", err)
	}

	if user.ID == 0 {
		return res, failure.InvalidCredentials
	}

	if !user.Activo {
		return res, failure.InactiveAccount
	}

	legacy, err := password.VerifyStored(req.Password, user.ClaveHash, s.cfg.App.Auth.AllowPlaintext)
	if err != nil {
		return res, failure.InvalidCredentials
	}

	if legacy && s.cfg.App.Auth.UpgradePlaintext {
		s.upgradeCredential(ctx, user.ID, req.Password)
	}

	res.FromUserModel(user)

	return res, nil
}

// upgradeCredential replaces a plaintext credential with its bcrypt hash. A
// failure here never fails the login.
func (s *serviceImpl) upgradeCredential(ctx context.Context, id int64, plain string) {
	hashed, err := password.Hash(plain)
	if err != nil {
		log.Error().Err(err).Int64("usuario_id", id).Msg("failed to hash legacy credential")

		return
	}

	fields := map[string]any{userModel.FieldClaveHash: hashed}

	if _, err := s.userRepo.Update(ctx, fields, shared.FilterByID(id, userModel.FieldID, userModel.TableName)); err != nil {
		log.Error().Err(err).Int64("usuario_id", id).Msg("failed to upgrade legacy credential")

		return
	}

	log.Info().Int64("usuario_id", id).Msg("legacy credential upgraded to bcrypt")
}
