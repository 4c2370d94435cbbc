package service_test

import (
	"context"
	"net/http"
	"testing"
	"tourcrm/infras/otel/mocks"
	"tourcrm/internal/domains/client/model"
	"tourcrm/internal/domains/client/model/dto"
	"tourcrm/internal/domains/client/service"
	gDto "tourcrm/shared/dto"
	"tourcrm/shared/failure"
	gRepoMocks "tourcrm/shared/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClientService_CreateDefaultsActivo(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := gRepoMocks.NewMockCRUD[model.Client](ctrl)
	svc := service.New(repo, mocks.NewOtel())

	repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, row model.Client) (int64, error) {
			assert.True(t, row.Activo)
			assert.Equal(t, "Ana", row.Nombre)

			return 4, nil
		})
	repo.EXPECT().
		GetFromPrimary(gomock.Any(), gomock.Any()).
		Return(model.Client{ID: 4, Nombre: "Ana", Apellido: "Pérez", Activo: true}, nil)

	res, err := svc.Create(context.Background(), dto.ClientRequest{Nombre: "Ana", Apellido: "Pérez"})

	require.NoError(t, err)
	assert.Equal(t, int64(4), res.ID)
}

func TestClientService_DeleteDeactivates(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantCode int
	}{
		{name: "existing client", affected: 1},
		{name: "unknown client", affected: 0, wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := gRepoMocks.NewMockCRUD[model.Client](ctrl)
			svc := service.New(repo, mocks.NewOtel())

			repo.EXPECT().
				Update(gomock.Any(), map[string]any{model.FieldActivo: false}, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ map[string]any, filter gDto.FilterGroup) (int64, error) {
					where, _ := filter.GetWhereClause()
					assert.Contains(t, where, "clientes.cliente_id")

					return tt.affected, nil
				})

			err := svc.Delete(context.Background(), 9)

			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, "Cliente no encontrado")
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestClientService_ListActiveFilter(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := gRepoMocks.NewMockCRUD[model.Client](ctrl)
	svc := service.New(repo, mocks.NewOtel())

	inactive := false

	repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Client, error) {
			where, args := filter.GetWhereClause()
			assert.Equal(t, "(clientes.activo = :activo)", where)
			assert.Equal(t, map[string]any{"activo": false}, args)

			return []model.Client{}, nil
		})

	res, err := svc.List(context.Background(), gDto.QueryParams{Activo: &inactive}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Empty(t, res)
}
