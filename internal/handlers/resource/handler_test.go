package resource_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"tourcrm/infras/otel/mocks"
	"tourcrm/internal/domains/client/model"
	"tourcrm/internal/domains/client/model/dto"
	clientService "tourcrm/internal/domains/client/service"
	"tourcrm/internal/handlers/resource"
	gDto "tourcrm/shared/dto"
	"tourcrm/shared/failure"
	resourceMocks "tourcrm/shared/resource/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*resourceMocks.MockService[model.Client, dto.ClientRequest], http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := resourceMocks.NewMockService[model.Client, dto.ClientRequest](ctrl)
	svc.EXPECT().Schema().Return(clientService.Schema).AnyTimes()

	handler := resource.New[model.Client, dto.ClientRequest](svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/clientes", handler.Routes)

	return svc, router
}

func do(t *testing.T, router http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))

	return rec, decoded
}

func TestHandler_List(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().
		List(gomock.Any(), gDto.QueryParams{}, gDto.FilterGroup{}).
		Return([]model.Client{{ID: 2, Nombre: "Luis"}, {ID: 1, Nombre: "Ana"}}, nil)

	rec, body := do(t, router, http.MethodGet, "/clientes", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["count"])
	assert.Len(t, body["data"], 2)
}

func TestHandler_ListPaginated(t *testing.T) {
	svc, router := setup(t)

	active := true

	svc.EXPECT().
		List(gomock.Any(), gDto.QueryParams{Page: 2, Limit: 5, Activo: &active}, gDto.FilterGroup{}).
		Return(nil, nil)

	rec, body := do(t, router, http.MethodGet, "/clientes?page=2&limit=5&activo=true", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), body["count"])
	assert.Equal(t, []any{}, body["data"])
}

func TestHandler_ListError(t *testing.T) {
	svc, router := setup(t)

	svc.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))

	rec, body := do(t, router, http.MethodGet, "/clientes", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Error interno del servidor", body["message"])
}

func TestHandler_Get(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		setupMock func(svc *resourceMocks.MockService[model.Client, dto.ClientRequest])
		wantCode  int
		wantMsg   string
	}{
		{
			name:   "found",
			target: "/clientes/7",
			setupMock: func(svc *resourceMocks.MockService[model.Client, dto.ClientRequest]) {
				svc.EXPECT().Get(gomock.Any(), int64(7)).Return(model.Client{ID: 7, Nombre: "Ana"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "not found",
			target: "/clientes/99",
			setupMock: func(svc *resourceMocks.MockService[model.Client, dto.ClientRequest]) {
				svc.EXPECT().Get(gomock.Any(), int64(99)).Return(model.Client{}, failure.NotFound("Cliente no encontrado"))
			},
			wantCode: http.StatusNotFound,
			wantMsg:  "Cliente no encontrado",
		},
		{
			name:      "non numeric id",
			target:    "/clientes/abc",
			setupMock: func(*resourceMocks.MockService[model.Client, dto.ClientRequest]) {},
			wantCode:  http.StatusBadRequest,
			wantMsg:   "id inválido",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)
			tt.setupMock(svc)

			rec, body := do(t, router, http.MethodGet, tt.target, "")

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, body["message"])

				return
			}

			data, _ := body["data"].(map[string]any)
			assert.Equal(t, float64(7), data["cliente_id"])
		})
	}
}

func TestHandler_Create(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(svc *resourceMocks.MockService[model.Client, dto.ClientRequest])
		wantCode  int
		wantMsg   string
	}{
		{
			name: "created",
			body: `{"nombre":"Ana","apellido":"Pérez","email":"ana@example.com"}`,
			setupMock: func(svc *resourceMocks.MockService[model.Client, dto.ClientRequest]) {
				svc.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req dto.ClientRequest) (model.Client, error) {
						assert.Equal(t, "Ana", req.Nombre)

						return model.Client{ID: 1, Nombre: req.Nombre, Apellido: req.Apellido, Activo: true}, nil
					})
			},
			wantCode: http.StatusCreated,
			wantMsg:  "Cliente creado",
		},
		{
			name:      "missing required field",
			body:      `{"nombre":"Ana"}`,
			setupMock: func(*resourceMocks.MockService[model.Client, dto.ClientRequest]) {},
			wantCode:  http.StatusBadRequest,
			wantMsg:   "apellido es obligatorio",
		},
		{
			name:      "malformed body",
			body:      `{"nombre":`,
			setupMock: func(*resourceMocks.MockService[model.Client, dto.ClientRequest]) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "database error",
			body: `{"nombre":"Ana","apellido":"Pérez"}`,
			setupMock: func(svc *resourceMocks.MockService[model.Client, dto.ClientRequest]) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(model.Client{}, errors.New("insert failed"))
			},
			wantCode: http.StatusInternalServerError,
			wantMsg:  "Error interno del servidor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)
			tt.setupMock(svc)

			rec, body := do(t, router, http.MethodPost, "/clientes", tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, body["message"])
			}

			if tt.wantCode == http.StatusCreated {
				assert.Equal(t, true, body["success"])
				assert.NotNil(t, body["data"])
			}
		})
	}
}

func TestHandler_Update(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		body      string
		setupMock func(svc *resourceMocks.MockService[model.Client, dto.ClientRequest])
		wantCode  int
		wantMsg   string
	}{
		{
			name:   "updated",
			target: "/clientes/3",
			body:   `{"nombre":"Ana","apellido":"Gómez"}`,
			setupMock: func(svc *resourceMocks.MockService[model.Client, dto.ClientRequest]) {
				svc.EXPECT().Update(gomock.Any(), int64(3), gomock.Any()).Return(model.Client{ID: 3, Apellido: "Gómez"}, nil)
			},
			wantCode: http.StatusOK,
			wantMsg:  "Cliente actualizado",
		},
		{
			name:   "not found",
			target: "/clientes/404",
			body:   `{"nombre":"Ana","apellido":"Gómez"}`,
			setupMock: func(svc *resourceMocks.MockService[model.Client, dto.ClientRequest]) {
				svc.EXPECT().Update(gomock.Any(), int64(404), gomock.Any()).Return(model.Client{}, failure.NotFound("Cliente no encontrado"))
			},
			wantCode: http.StatusNotFound,
			wantMsg:  "Cliente no encontrado",
		},
		{
			name:      "validation runs before the write",
			target:    "/clientes/3",
			body:      `{"apellido":"Gómez"}`,
			setupMock: func(*resourceMocks.MockService[model.Client, dto.ClientRequest]) {},
			wantCode:  http.StatusBadRequest,
			wantMsg:   "nombre es obligatorio",
		},
		{
			name:      "invalid id",
			target:    "/clientes/0",
			body:      `{"nombre":"Ana","apellido":"Gómez"}`,
			setupMock: func(*resourceMocks.MockService[model.Client, dto.ClientRequest]) {},
			wantCode:  http.StatusBadRequest,
			wantMsg:   "id inválido",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)
			tt.setupMock(svc)

			rec, body := do(t, router, http.MethodPut, tt.target, tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantMsg, body["message"])
		})
	}
}

func TestHandler_Delete(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{name: "deleted", wantCode: http.StatusOK, wantMsg: "Cliente desactivado"},
		{name: "not found", err: failure.NotFound("Cliente no encontrado"), wantCode: http.StatusNotFound, wantMsg: "Cliente no encontrado"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := setup(t)
			svc.EXPECT().Delete(gomock.Any(), int64(5)).Return(tt.err)

			rec, body := do(t, router, http.MethodDelete, "/clientes/5", "")

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantMsg, body["message"])
			assert.NotContains(t, body, "data")
		})
	}
}
