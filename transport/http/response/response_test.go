package response_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"tourcrm/shared/failure"
	"tourcrm/transport/http/response"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestWithMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithMessage(rec, http.StatusOK, "Reserva eliminada")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"message":"Reserva eliminada"}`, rec.Body.String())
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithJSON(rec, http.StatusOK, map[string]any{"cliente_id": 1})

	assert.JSONEq(t, `{"success":true,"data":{"cliente_id":1}}`, rec.Body.String())
}

func TestWithMessageAndJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithMessageAndJSON(rec, http.StatusCreated, "Cliente creado", map[string]any{"cliente_id": 1})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Cliente creado","data":{"cliente_id":1}}`, rec.Body.String())
}

func TestWithList(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithList[int](rec, http.StatusOK, nil)

	assert.JSONEq(t, `{"success":true,"data":[],"count":0}`, rec.Body.String())

	rec = httptest.NewRecorder()
	response.WithList(rec, http.StatusOK, []string{"a", "b"})

	assert.JSONEq(t, `{"success":true,"data":["a","b"],"count":2}`, rec.Body.String())
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{name: "not found", err: failure.NotFound("Cliente no encontrado"), wantCode: http.StatusNotFound, wantMessage: "Cliente no encontrado"},
		{name: "bad request", err: failure.BadRequestFromString("nombre es obligatorio"), wantCode: http.StatusBadRequest, wantMessage: "nombre es obligatorio"},
		{name: "wrapped failure", err: fmt.Errorf("login: %w", failure.InvalidCredentials), wantCode: http.StatusUnauthorized, wantMessage: "Credenciales inválidas"},
		{
			name:        "wrap context is not sent",
			err:         fmt.Errorf("failed to get destino: %w", failure.NotFound("Destino no encontrado")),
			wantCode:    http.StatusNotFound,
			wantMessage: "Destino no encontrado",
		},
		{name: "unexpected error is opaque", err: errors.New("dial tcp: connection refused"), wantCode: http.StatusInternalServerError, wantMessage: "Error interno del servidor"},
		{
			name:        "database constraint error is opaque",
			err:         fmt.Errorf("failed to create reserva: %w", &pq.Error{Code: "23503", Constraint: "reservas_cliente_id_fkey"}),
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Error interno del servidor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			response.WithError(rec, tt.err)

			body := decode(t, rec)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantMessage, body["message"])
		})
	}
}

func TestDefaultResponses(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithRequestLimitExceeded(rec)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec = httptest.NewRecorder()
	response.WithPreparingShutdown(rec)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = httptest.NewRecorder()
	response.WithUnhealthy(rec)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = httptest.NewRecorder()
	response.WithNotFoundRoute(rec)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Ruta no encontrada", decode(t, rec)["message"])
}
