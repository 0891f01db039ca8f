package sql

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labstore/dialect"
)

func TestOpenDB(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	for _, d := range []string{dialect.Postgres, dialect.MySQL, dialect.SQLite} {
		drv := OpenDB(d, db)
		assert.Equal(t, d, drv.Dialect())
	}
}

func TestDialectPrefix(t *testing.T) {
	// Telemetry wrappers register suffixed driver names; the prefix decides
	// the dialect.
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	drv := NewDriver("mysql-instrumented", Conn{db})
	assert.Equal(t, dialect.MySQL, drv.Dialect())
}

func TestConnExec(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	drv := OpenDB(dialect.Postgres, db)

	mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewResult(0, 3))
	var res Result
	require.NoError(t, drv.Exec(context.Background(), "UPDATE users SET role = $1", []any{"admin"}, &res))
	affected, err := res.RowsAffected()
	require.NoError(t, err)
	assert.EqualValues(t, 3, affected)

	mock.ExpectExec("DELETE").WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, drv.Exec(context.Background(), "DELETE FROM users", []any{}, nil))

	err = drv.Exec(context.Background(), "DELETE FROM users", "not-a-slice", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expect []any")

	err = drv.Exec(context.Background(), "DELETE FROM users", []any{}, "bad-dest")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expect *sql.Result")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConnQuery(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	drv := OpenDB(dialect.SQLite, db)

	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	rows := &Rows{}
	require.NoError(t, drv.Query(context.Background(), "SELECT id FROM users", []any{}, rows))
	ids := []int{}
	require.NoError(t, ScanSlice(rows, &ids))
	require.NoError(t, rows.Close())
	assert.Equal(t, []int{1}, ids)

	err = drv.Query(context.Background(), "SELECT 1", []any{}, "bad-dest")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expect *sql.Rows")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDriverTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	drv := OpenDB(dialect.Postgres, db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	tx, err := drv.Tx(context.Background())
	require.NoError(t, err)
	require.NoError(t, tx.Exec(context.Background(), "INSERT INTO users DEFAULT VALUES", []any{}, nil))
	require.NoError(t, tx.Commit())

	mock.ExpectBegin()
	mock.ExpectRollback()
	tx, err = drv.Tx(context.Background())
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	require.NoError(t, mock.ExpectationsWereMet())
}
