package labstore

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labstore/company"
	"labstore/dialect"
	"labstore/dialect/sql"
	"labstore/samplelist"
	"labstore/user"
)

// mockClient returns a client backed by a sqlmock connection for the given
// dialect.
func mockClient(t *testing.T, d string) (*Client, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewClient(Driver(sql.OpenDB(d, db))), mock
}

func TestLimitedIDs(t *testing.T) {
	t.Run("Postgres", func(t *testing.T) {
		p := limitedIDs(dialect.Postgres, "users", nil, 5)
		s := sql.Dialect(dialect.Postgres).Select().From("users")
		s.Where(p)
		query, _ := s.Query()
		assert.Equal(t,
			`SELECT * FROM "users" WHERE "id" IN (SELECT "id" FROM "users" LIMIT 5)`,
			query,
		)
	})
	t.Run("MySQLDerivedTable", func(t *testing.T) {
		// MySQL cannot select from the mutated table inside the subquery.
		p := limitedIDs(dialect.MySQL, "users", sql.EQ("role", "admin"), 5)
		s := sql.Dialect(dialect.MySQL).Select().From("users")
		s.Where(p)
		query, args := s.Query()
		assert.Equal(t,
			"SELECT * FROM `users` WHERE `id` IN (SELECT `id` FROM (SELECT `id` FROM `users` WHERE `role` = ? LIMIT 5) AS `bounded`)",
			query,
		)
		assert.Equal(t, []any{"admin"}, args)
	})
}

func TestConflictSpecCheck(t *testing.T) {
	spec := &conflictSpec{columns: []string{"username"}}
	require.Error(t, spec.check())

	spec.doNothing = true
	require.NoError(t, spec.check())

	spec = &conflictSpec{columns: []string{"username"}}
	spec.set("role", "member")
	require.NoError(t, spec.check())
}

func TestUpsertMissingAction(t *testing.T) {
	client, _ := mockClient(t, dialect.Postgres)
	_, err := client.User.Create().
		SetUsername("u").
		SetEmail("u@lab.co.th").
		SetPassword("secret").
		OnConflictColumns(user.FieldUsername).
		Save(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing ON CONFLICT action")
}

func TestCreateMissingRequiredField(t *testing.T) {
	client, _ := mockClient(t, dialect.Postgres)
	_, err := client.User.Create().SetUsername("u").Save(context.Background())
	require.True(t, IsValidationError(err))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, user.FieldEmail, verr.Name)
}

func TestGroupByValidation(t *testing.T) {
	ctx := context.Background()
	t.Run("InvalidField", func(t *testing.T) {
		client, _ := mockClient(t, dialect.Postgres)
		var v []struct {
			Province string
			Count    int
		}
		err := client.Company.Query().
			GroupBy("no_such_column").
			Aggregate(Count()).
			Scan(ctx, &v)
		require.True(t, IsValidationError(err))
		assert.Contains(t, err.Error(), "invalid field")
	})
	t.Run("HavingOutsideGroup", func(t *testing.T) {
		// The validation fires before any statement reaches the driver.
		client, mock := mockClient(t, dialect.Postgres)
		var v []struct {
			Province string
			Count    int
		}
		err := client.Company.Query().
			GroupBy(company.FieldProvince).
			Aggregate(Count()).
			Having(company.District.EQ("Chatuchak")).
			Scan(ctx, &v)
		require.True(t, IsValidationError(err))
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, company.FieldDistrict, verr.Name)
		require.NoError(t, mock.ExpectationsWereMet())
	})
	t.Run("OrderOutsideGroup", func(t *testing.T) {
		client, mock := mockClient(t, dialect.Postgres)
		var v []struct {
			Province string
			Count    int
		}
		err := client.Company.Query().
			GroupBy(company.FieldProvince).
			Aggregate(Count()).
			OrderBy(company.ByPostalCode()).
			Scan(ctx, &v)
		require.True(t, IsValidationError(err))
		require.NoError(t, mock.ExpectationsWereMet())
	})
	t.Run("HavingOnGroupedField", func(t *testing.T) {
		client, mock := mockClient(t, dialect.Postgres)
		mock.ExpectQuery("SELECT").WillReturnRows(
			sqlmock.NewRows([]string{"province", "count"}).AddRow("Bangkok", 2),
		)
		var v []struct {
			Province string
			Count    int
		}
		err := client.Company.Query().
			GroupBy(company.FieldProvince).
			Aggregate(Count()).
			Having(company.Province.EQ("Bangkok")).
			Scan(ctx, &v)
		require.NoError(t, err)
		require.Len(t, v, 1)
		assert.Equal(t, "Bangkok", v[0].Province)
		assert.Equal(t, 2, v[0].Count)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSelectInvalidField(t *testing.T) {
	client, _ := mockClient(t, dialect.Postgres)
	var v []string
	err := client.Company.Query().Select("nope").Scan(context.Background(), &v)
	require.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "invalid field")
}

func TestDivisionByZero(t *testing.T) {
	client, mock := mockClient(t, dialect.Postgres)
	_, err := client.SampleList.Update().DivSampleQty(0).Save(context.Background())
	require.True(t, IsValidationError(err))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, samplelist.FieldSampleQty, verr.Name)

	err = client.SampleList.UpdateOneID(1).DivSampleQty(0).Exec(context.Background())
	require.True(t, IsValidationError(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConnectByIDsMatchedRows(t *testing.T) {
	// mysql reports changed rows, not matched rows, so a child that
	// already carries the parent value comes back with zero affected.
	// Existence must be established by the count, not the update.
	client, mock := mockClient(t, dialect.MySQL)
	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectExec("UPDATE `sample_list`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	n, err := connectByIDs(context.Background(), client.driver,
		samplelist.Table, samplelist.FieldRequestNo, "REQ-2026-0001", []int{4, 9})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateManyNoMutations(t *testing.T) {
	client, mock := mockClient(t, dialect.Postgres)
	n, err := client.User.Update().Save(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertIDMySQL(t *testing.T) {
	// MySQL has no RETURNING; the id comes from LastInsertId.
	client, mock := mockClient(t, dialect.MySQL)
	mock.ExpectExec("INSERT INTO `receipt_addresses`").
		WillReturnResult(sqlmock.NewResult(42, 1))
	ra, err := client.ReceiptAddress.Create().
		SetAddress("99/9 Moo 5").
		SetProvince("Pathum Thani").
		SetDistrict("Khlong Luang").
		SetSubDistrict("Khlong Nueng").
		SetPostalCode("12120").
		Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, ra.ID)
	assert.Equal(t, "Pathum Thani", ra.Province)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertIDReturning(t *testing.T) {
	client, mock := mockClient(t, dialect.Postgres)
	mock.ExpectQuery("INSERT INTO \"receipt_addresses\"").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	ra, err := client.ReceiptAddress.Create().
		SetAddress("99/9 Moo 5").
		SetProvince("Pathum Thani").
		SetDistrict("Khlong Luang").
		SetSubDistrict("Khlong Nueng").
		SetPostalCode("12120").
		Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, ra.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertIDUnsupportedOnMySQL(t *testing.T) {
	client, _ := mockClient(t, dialect.MySQL)
	_, err := client.User.Create().
		SetUsername("u").
		SetEmail("u@lab.co.th").
		SetPassword("secret").
		OnConflictColumns(user.FieldUsername).
		UpdateNewValues().
		ID(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported by the mysql dialect")
}

func TestCreateBulkNestedEdgesRejected(t *testing.T) {
	client, _ := mockClient(t, dialect.Postgres)
	_, err := client.User.CreateBulk(
		client.User.Create().
			SetUsername("u").
			SetEmail("u@lab.co.th").
			SetPassword("secret").
			AddWorkerProfiles(client.WorkerProfile.Create()),
	).Save(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nested edges are not supported in bulk creation")
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open("oracle", "dsn")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported driver")
}

func TestDebugClient(t *testing.T) {
	var logged []string
	client, mock := mockClient(t, dialect.Postgres)
	client = NewClient(Driver(client.driver), Debug(), Log(func(v ...any) {
		for _, x := range v {
			if s, ok := x.(string); ok {
				logged = append(logged, s)
			}
		}
	}))
	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	_, err := client.User.Query().Count(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, logged)
	assert.Contains(t, logged[0], "driver.Query")
}
