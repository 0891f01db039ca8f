package sql

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labstore/dialect"
)

func queryMock(t *testing.T, columns []string, addRows func(*sqlmock.Rows)) *Rows {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	mockRows := sqlmock.NewRows(columns)
	addRows(mockRows)
	mock.ExpectQuery("SELECT").WillReturnRows(mockRows)
	drv := OpenDB(dialect.Postgres, db)
	rows := &Rows{}
	require.NoError(t, drv.Query(context.Background(), "SELECT 1", []any{}, rows))
	t.Cleanup(func() { rows.Close() })
	return rows
}

func TestScanSlice(t *testing.T) {
	t.Run("Structs", func(t *testing.T) {
		rows := queryMock(t, []string{"province", "count"}, func(r *sqlmock.Rows) {
			r.AddRow("Bangkok", 3)
			r.AddRow("Chiang Mai", 1)
		})
		var v []struct {
			Province string
			Count    int
		}
		require.NoError(t, ScanSlice(rows, &v))
		require.Len(t, v, 2)
		assert.Equal(t, "Bangkok", v[0].Province)
		assert.Equal(t, 3, v[0].Count)
		assert.Equal(t, "Chiang Mai", v[1].Province)
	})
	t.Run("NullableFields", func(t *testing.T) {
		rows := queryMock(t, []string{"panel", "sample_qty"}, func(r *sqlmock.Rows) {
			r.AddRow("avian", nil)
		})
		var v []struct {
			Panel     string
			SampleQty *int
		}
		require.NoError(t, ScanSlice(rows, &v))
		require.Len(t, v, 1)
		assert.Nil(t, v[0].SampleQty)
	})
	t.Run("Ints", func(t *testing.T) {
		rows := queryMock(t, []string{"id"}, func(r *sqlmock.Rows) {
			r.AddRow(7)
			r.AddRow(9)
		})
		var ids []int
		require.NoError(t, ScanSlice(rows, &ids))
		assert.Equal(t, []int{7, 9}, ids)
	})
	t.Run("ColumnMismatch", func(t *testing.T) {
		rows := queryMock(t, []string{"a", "b"}, func(r *sqlmock.Rows) {
			r.AddRow(1, 2)
		})
		var v []struct{ A int }
		err := ScanSlice(rows, &v)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "columns do not match")
	})
	t.Run("UnexportedField", func(t *testing.T) {
		rows := queryMock(t, []string{"province", "count"}, func(r *sqlmock.Rows) {
			r.AddRow("Bangkok", 3)
		})
		var v []struct {
			Province string
			count    int
		}
		err := ScanSlice(rows, &v)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unexported field "count"`)
	})
	t.Run("NonPointer", func(t *testing.T) {
		rows := queryMock(t, []string{"id"}, func(r *sqlmock.Rows) {})
		var ids []int
		require.Error(t, ScanSlice(rows, ids))
	})
}

func TestScanInt(t *testing.T) {
	rows := queryMock(t, []string{"count"}, func(r *sqlmock.Rows) {
		r.AddRow(42)
	})
	n, err := ScanInt(rows)
	require.NoError(t, err)
	assert.Equal(t, 42, n)
}

func TestScanIntNoRows(t *testing.T) {
	rows := queryMock(t, []string{"count"}, func(r *sqlmock.Rows) {})
	_, err := ScanInt(rows)
	require.Error(t, err)
}

func TestScanBool(t *testing.T) {
	rows := queryMock(t, []string{"exists"}, func(r *sqlmock.Rows) {
		r.AddRow(true)
	})
	b, err := ScanBool(rows)
	require.NoError(t, err)
	assert.True(t, b)

	rows = queryMock(t, []string{"exists"}, func(r *sqlmock.Rows) {})
	b, err = ScanBool(rows)
	require.NoError(t, err)
	assert.False(t, b)
}
