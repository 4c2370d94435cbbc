package repository_test

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"
	"tourcrm/infras/otel/mocks"
	"tourcrm/infras/postgres"
	"tourcrm/shared"
	"tourcrm/shared/dto"
	"tourcrm/shared/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reservation struct {
	ID            int64      `db:"reserva_id"`
	ClienteID     int64      `db:"cliente_id"`
	Estado        string     `db:"estado"`
	FechaRegistro *time.Time `db:"fecha_registro" insert:"false"`
	ClienteNombre *string    `db:"cliente_nombre" expr:"clientes.nombre || ' ' || clientes.apellido"`
	NombrePaquete *string    `db:"nombre_paquete" table:"paquetes_turisticos"`
}

func (reservation) GetJoinQuery() string {
	return "LEFT JOIN clientes ON clientes.cliente_id = reservas.cliente_id"
}

type destination struct {
	ID     int64  `db:"destino_id"`
	Nombre string `db:"nombre_destino"`
}

func (destination) GetOrderBy() string {
	return "destinos.nombre_destino ASC"
}

func newRepo(t *testing.T) (repository.Repository[reservation], sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")
	conn := &postgres.Connection{Read: sqlxDB, Write: sqlxDB}

	return repository.NewRepository[reservation]("reserva", "reservas", "reserva_id", conn, mocks.NewOtel()), mock
}

func TestNewRepository_InsertColumns(t *testing.T) {
	repo, _ := newRepo(t)

	assert.Equal(t, []string{"cliente_id", "estado"}, repo.InsertColumns)
}

func TestRepository_Insert(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO reservas (cliente_id, estado) VALUES ($1, $2) RETURNING reserva_id")).
		ExpectQuery().
		WithArgs(int64(3), "pendiente").
		WillReturnRows(sqlmock.NewRows([]string{"reserva_id"}).AddRow(int64(11)))

	id, err := repo.Insert(context.Background(), reservation{ClienteID: 3, Estado: "pendiente"})

	assert.NoError(t, err)
	assert.Equal(t, int64(11), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_InsertError(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO reservas")).
		ExpectQuery().
		WillReturnError(errors.New("violates foreign key constraint"))

	id, err := repo.Insert(context.Background(), reservation{ClienteID: 99, Estado: "pendiente"})

	assert.Error(t, err)
	assert.Zero(t, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Get(t *testing.T) {
	repo, mock := newRepo(t)

	query := "SELECT reservas.reserva_id, reservas.cliente_id, reservas.estado, reservas.fecha_registro, " +
		"(clientes.nombre || ' ' || clientes.apellido) AS cliente_nombre, paquetes_turisticos.nombre_paquete " +
		"FROM reservas LEFT JOIN clientes ON clientes.cliente_id = reservas.cliente_id"

	mock.ExpectPrepare(regexp.QuoteMeta(query)).
		ExpectQuery().
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"reserva_id", "cliente_id", "estado", "fecha_registro", "cliente_nombre", "nombre_paquete"}).
			AddRow(int64(5), int64(3), "confirmada", nil, "Ana Pérez", nil))

	got, err := repo.Get(context.Background(), shared.FilterByID(5, "reserva_id", "reservas"))

	assert.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
	assert.Equal(t, "confirmada", got.Estado)
	require.NotNil(t, got.ClienteNombre)
	assert.Equal(t, "Ana Pérez", *got.ClienteNombre)
	assert.Nil(t, got.NombrePaquete)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetNoRows(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectPrepare("SELECT").
		ExpectQuery().
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"reserva_id"}))

	got, err := repo.GetFromPrimary(context.Background(), shared.FilterByID(404, "reserva_id", "reservas"))

	assert.NoError(t, err)
	assert.Zero(t, got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetAll(t *testing.T) {
	tests := []struct {
		name      string
		params    dto.QueryParams
		fragment  string
		args      []driver.Value
		rowsCount int
	}{
		{
			name:      "unpaginated uses primary key descending",
			params:    dto.QueryParams{},
			fragment:  "ORDER BY reservas.reserva_id DESC",
			rowsCount: 3,
		},
		{
			name:      "paginated",
			params:    dto.QueryParams{Page: 2, Limit: 10},
			fragment:  "ORDER BY reservas.reserva_id DESC LIMIT $1 OFFSET $2",
			args:      []driver.Value{int64(10), int64(10)},
			rowsCount: 1,
		},
		{
			name:      "limit without page starts at the first row",
			params:    dto.QueryParams{Limit: 5},
			fragment:  "LIMIT $1 OFFSET $2",
			args:      []driver.Value{int64(5), int64(0)},
			rowsCount: 1,
		},
		{
			name:      "explicit ordering",
			params:    dto.QueryParams{OrderBy: "reservas.estado ASC"},
			fragment:  "ORDER BY reservas.estado ASC",
			rowsCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepo(t)

			rows := sqlmock.NewRows([]string{"reserva_id", "cliente_id", "estado"})
			for i := range tt.rowsCount {
				rows.AddRow(int64(i+1), int64(1), "pendiente")
			}

			expect := mock.ExpectPrepare(regexp.QuoteMeta(tt.fragment)).ExpectQuery()
			if len(tt.args) > 0 {
				expect = expect.WithArgs(tt.args...)
			}

			expect.WillReturnRows(rows)

			got, err := repo.GetAll(context.Background(), tt.params, dto.FilterGroup{})

			assert.NoError(t, err)
			assert.NotNil(t, got)
			assert.Len(t, got, tt.rowsCount)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetAllNewestFirst(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectPrepare(regexp.QuoteMeta("FROM reservas LEFT JOIN clientes ON clientes.cliente_id = reservas.cliente_id ORDER BY reservas.reserva_id DESC")).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"reserva_id", "cliente_id", "estado"}).
			AddRow(int64(3), int64(1), "pendiente").
			AddRow(int64(2), int64(1), "confirmada").
			AddRow(int64(1), int64(2), "cancelada"))

	got, err := repo.GetAll(context.Background(), dto.QueryParams{}, dto.FilterGroup{})

	require.NoError(t, err)

	ids := make([]int64, 0, len(got))
	for _, row := range got {
		ids = append(ids, row.ID)
	}

	assert.Equal(t, []int64{3, 2, 1}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetAllFilteredAndPaginated(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectPrepare(regexp.QuoteMeta("WHERE (reservas.estado = $1) ORDER BY reservas.reserva_id DESC LIMIT $2 OFFSET $3")).
		ExpectQuery().
		WithArgs("pendiente", int64(5), int64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"reserva_id", "cliente_id", "estado"}).AddRow(int64(9), int64(1), "pendiente"))

	filter := dto.And(dto.Filter{Field: "estado", Value: "pendiente", Operator: dto.FilterOperatorEq, Table: "reservas"})

	got, err := repo.GetAll(context.Background(), dto.QueryParams{Page: 1, Limit: 5}, filter)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetAllModelOrdering(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "postgres")
	repo := repository.NewRepository[destination]("destino", "destinos", "destino_id", &postgres.Connection{Read: sqlxDB, Write: sqlxDB}, mocks.NewOtel())

	mock.ExpectPrepare(regexp.QuoteMeta("ORDER BY destinos.nombre_destino ASC")).
		ExpectQuery().
		WillReturnRows(sqlmock.NewRows([]string{"destino_id", "nombre_destino"}).AddRow(int64(1), "Cusco"))

	got, err := repo.GetAll(context.Background(), dto.QueryParams{}, dto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE reservas SET cliente_id = $1, estado = $2  WHERE (reservas.reserva_id = $3)")).
		WithArgs(int64(4), "cancelada", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.Update(context.Background(),
		map[string]any{"estado": "cancelada", "cliente_id": int64(4)},
		shared.FilterByID(5, "reserva_id", "reservas"),
	)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateGuards(t *testing.T) {
	repo, mock := newRepo(t)

	_, err := repo.Update(context.Background(), map[string]any{}, shared.FilterByID(5, "reserva_id", "reservas"))
	assert.Error(t, err)

	_, err = repo.Update(context.Background(), map[string]any{"estado": "cancelada"}, dto.FilterGroup{})
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
	}{
		{name: "existing row", affected: 1},
		{name: "missing row", affected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepo(t)

			mock.ExpectExec(regexp.QuoteMeta("DELETE FROM reservas  WHERE (reservas.reserva_id = $1)")).
				WithArgs(int64(7)).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			affected, err := repo.Delete(context.Background(), shared.FilterByID(7, "reserva_id", "reservas"))

			assert.NoError(t, err)
			assert.Equal(t, tt.affected, affected)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_DeleteRequiresFilter(t *testing.T) {
	repo, _ := newRepo(t)

	_, err := repo.Delete(context.Background(), dto.FilterGroup{})

	assert.Error(t, err)
}
