package repository

import (
	"regexp"
	"testing"
	"time"

	"gomoto/infras/otel/mocks"
	"gomoto/infras/postgres"
	"gomoto/shared/dto"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type audit struct {
	CreatedAt time.Time `db:"created_at"`
	CreatedBy string    `db:"created_by"`
}

type rental struct {
	ID          string  `db:"id"`
	VehicleID   string  `db:"vehicle_id"`
	TotalAmount float64 `db:"total_amount"`
	VehicleName string  `db:"vehicle_name" table:"vehicles" column:"name"`
	Skipped     string  `db:"-"`
	audit
}

func (rental) GetJoinQuery() string {
	return "LEFT JOIN vehicles ON vehicles.id = rentals.vehicle_id"
}

func newTestRepository() Repository[rental] {
	return NewRepository[rental]("rental", "rentals", "id", nil, mocks.NewOtel())
}

func TestNewRepository_Columns(t *testing.T) {
	repo := newTestRepository()

	assert.Equal(t, []string{"id", "vehicle_id", "total_amount", "created_at", "created_by"}, repo.InsertColumns)
	assert.Equal(t, "LEFT JOIN vehicles ON vehicles.id = rentals.vehicle_id", repo.join)
	assert.Equal(t,
		"rentals.id, rentals.vehicle_id, rentals.total_amount, vehicles.name AS vehicle_name, rentals.created_at, rentals.created_by",
		repo.selectList(nil))
	assert.Equal(t, "rentals.id, rentals.total_amount", repo.selectList([]string{"id", "total_amount"}))
}

func TestRepository_InsertQuery(t *testing.T) {
	repo := newTestRepository()

	assert.Equal(t,
		"INSERT INTO rentals (id, vehicle_id, total_amount, created_at, created_by) VALUES (:id, :vehicle_id, :total_amount, :created_at, :created_by)",
		repo.insertQuery())
}

func TestRepository_OrderBy(t *testing.T) {
	repo := newTestRepository()

	tests := []struct {
		name   string
		params dto.QueryParams
		want   string
	}{
		{name: "default newest first", want: " ORDER BY rentals.created_at DESC"},
		{name: "own column ascending", params: dto.QueryParams{SortBy: "total_amount", SortDir: dto.SortDirAsc}, want: " ORDER BY rentals.total_amount ASC"},
		{name: "joined alias", params: dto.QueryParams{SortBy: "vehicle_name"}, want: " ORDER BY vehicles.name DESC"},
		{name: "unknown column", params: dto.QueryParams{SortBy: "password"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repo.orderBy(tt.params))
		})
	}
}

func TestRepository_UpdateQuery(t *testing.T) {
	repo := newTestRepository()

	query, args := repo.updateQuery(map[string]any{"total_amount": 900.0, "id": "new-id"}, " WHERE (rentals.id = :id)")

	assert.Equal(t, "UPDATE rentals SET id = :set_id, total_amount = :set_total_amount WHERE (rentals.id = :id)", query)
	assert.Equal(t, map[string]any{"set_id": "new-id", "set_total_amount": 900.0}, args)
}

func TestRepository_BuildWhereClause(t *testing.T) {
	repo := newTestRepository()

	where, args := repo.BuildWhereClause(dto.FilterGroup{})
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, _ = repo.BuildWhereClause(dto.FilterGroup{Filters: []any{
		dto.Filter{Field: "id", Value: "r-1", Operator: dto.FilterOperatorEq, Table: "rentals"},
	}})
	assert.Equal(t, " WHERE (rentals.id = :id)", where)
}

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	return sqlx.NewDb(db, "postgres"), mock
}

func byRentalID(id string) dto.FilterGroup {
	return dto.FilterGroup{Filters: []any{
		dto.Filter{Field: "id", Value: id, Operator: dto.FilterOperatorEq, Table: "rentals"},
	}}
}

func TestRepository_GetPools(t *testing.T) {
	columns := []string{"id", "vehicle_id", "total_amount", "vehicle_name", "created_at", "created_by"}
	row := []any{"r-1", "v-1", 1000.0, "Honda City", time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC), "user-1"}

	tests := []struct {
		name string
		get  func(repo Repository[rental]) (rental, error)
		pool string
	}{
		{
			name: "get uses the read pool",
			get: func(repo Repository[rental]) (rental, error) {
				return repo.Get(t.Context(), byRentalID("r-1"))
			},
			pool: "read",
		},
		{
			name: "get primary uses the write pool",
			get: func(repo Repository[rental]) (rental, error) {
				return repo.GetPrimary(t.Context(), byRentalID("r-1"))
			},
			pool: "write",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			read, readMock := newMockDB(t)
			write, writeMock := newMockDB(t)

			expected := map[string]sqlmock.Sqlmock{"read": readMock, "write": writeMock}[tt.pool]
			expected.ExpectQuery(regexp.QuoteMeta("FROM rentals LEFT JOIN vehicles ON vehicles.id = rentals.vehicle_id WHERE (rentals.id = $1) LIMIT 1")).
				WithArgs("r-1").
				WillReturnRows(sqlmock.NewRows(columns).AddRow(row...))

			repo := NewRepository[rental]("rental", "rentals", "id", &postgres.Connection{Read: read, Write: write}, mocks.NewOtel())

			got, err := tt.get(repo)

			require.NoError(t, err)
			assert.Equal(t, "r-1", got.ID)
			assert.Equal(t, "Honda City", got.VehicleName)
			assert.NoError(t, readMock.ExpectationsWereMet())
			assert.NoError(t, writeMock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetNoRows(t *testing.T) {
	read, readMock := newMockDB(t)
	readMock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := NewRepository[rental]("rental", "rentals", "id", &postgres.Connection{Read: read}, mocks.NewOtel())

	got, err := repo.Get(t.Context(), byRentalID("missing"))

	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestRepository_UpdateAffected(t *testing.T) {
	write, writeMock := newMockDB(t)
	writeMock.ExpectExec(regexp.QuoteMeta("UPDATE rentals SET total_amount = $1 WHERE (rentals.id = $2)")).
		WithArgs(900.0, "r-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewRepository[rental]("rental", "rentals", "id", &postgres.Connection{Write: write}, mocks.NewOtel())

	affected, err := repo.UpdateAffected(t.Context(), map[string]any{"total_amount": 900.0}, byRentalID("r-1"))

	require.NoError(t, err)
	assert.Zero(t, affected)
	assert.NoError(t, writeMock.ExpectationsWereMet())
}

func TestRepository_WithTxRollsBack(t *testing.T) {
	write, writeMock := newMockDB(t)
	writeMock.ExpectBegin()
	writeMock.ExpectExec("UPDATE rentals").WillReturnResult(sqlmock.NewResult(0, 1))
	writeMock.ExpectRollback()

	repo := NewRepository[rental]("rental", "rentals", "id", &postgres.Connection{Write: write}, mocks.NewOtel())

	err := repo.WithTx(t.Context(), func(tx *sqlx.Tx) error {
		if err := repo.UpdateTx(t.Context(), tx, map[string]any{"total_amount": 900.0}, byRentalID("r-1")); err != nil {
			return err
		}

		return assert.AnError
	})

	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, writeMock.ExpectationsWereMet())
}
