package sql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labstore/dialect"
)

func TestSelector(t *testing.T) {
	t.Run("Postgres", func(t *testing.T) {
		s := Dialect(dialect.Postgres).Select("id", "name").From("companies")
		s.Where(EQ(s.C("province"), "Bangkok"))
		s.OrderField("name", OrderDesc(), OrderNullsLast())
		s.Limit(10).Offset(20)
		query, args := s.Query()
		assert.Equal(t,
			`SELECT "id", "name" FROM "companies" WHERE "companies"."province" = $1 ORDER BY "companies"."name" DESC NULLS LAST LIMIT 10 OFFSET 20`,
			query,
		)
		assert.Equal(t, []any{"Bangkok"}, args)
	})
	t.Run("MySQL", func(t *testing.T) {
		s := Dialect(dialect.MySQL).Select("id").From("companies")
		s.Where(GT(s.C("id"), 5))
		query, args := s.Query()
		assert.Equal(t, "SELECT `id` FROM `companies` WHERE `companies`.`id` > ?", query)
		assert.Equal(t, []any{5}, args)
	})
	t.Run("MySQLNullsEmulation", func(t *testing.T) {
		// MySQL has no NULLS FIRST/LAST; an IS NULL sort key precedes
		// the column term.
		s := Dialect(dialect.MySQL).Select("id").From("document_request")
		s.OrderField("request_date", OrderNullsFirst())
		query, _ := s.Query()
		assert.Equal(t,
			"SELECT `id` FROM `document_request` ORDER BY `document_request`.`request_date` IS NULL DESC, `document_request`.`request_date`",
			query,
		)
	})
	t.Run("OffsetWithoutLimit", func(t *testing.T) {
		// SQLite and MySQL reject a bare OFFSET.
		s := Dialect(dialect.SQLite).Select("id").From("users").Offset(5)
		query, _ := s.Query()
		assert.Contains(t, query, "LIMIT 2147483647 OFFSET 5")

		s = Dialect(dialect.Postgres).Select("id").From("users").Offset(5)
		query, _ = s.Query()
		assert.Equal(t, `SELECT "id" FROM "users" OFFSET 5`, query)
	})
	t.Run("Distinct", func(t *testing.T) {
		s := Dialect(dialect.SQLite).Select("province").From("companies").Distinct()
		query, _ := s.Query()
		assert.Equal(t, `SELECT DISTINCT "province" FROM "companies"`, query)
	})
	t.Run("FromSelect", func(t *testing.T) {
		sub := Dialect(dialect.MySQL).Select("id").From("sample_list").Limit(3)
		s := Dialect(dialect.MySQL).Select("id").FromSelect(sub, "bounded")
		query, _ := s.Query()
		assert.Equal(t, "SELECT `id` FROM (SELECT `id` FROM `sample_list` LIMIT 3) AS `bounded`", query)
	})
	t.Run("OrderOf", func(t *testing.T) {
		s := Dialect(dialect.Postgres).Select("id").From("users")
		_, ok := s.OrderOf("id")
		assert.False(t, ok)
		s.OrderField("id", OrderDesc())
		desc, ok := s.OrderOf("id")
		assert.True(t, ok)
		assert.True(t, desc)
	})
	t.Run("GroupByHaving", func(t *testing.T) {
		s := Dialect(dialect.Postgres).Select().From("sample_list")
		s.Select("animal_type", "COUNT(*)").GroupBy("animal_type")
		s.Having(GT(s.C("animal_type"), "a"))
		query, args := s.Query()
		assert.Equal(t,
			`SELECT "animal_type", COUNT(*) FROM "sample_list" GROUP BY "animal_type" HAVING "sample_list"."animal_type" > $1`,
			query,
		)
		assert.Equal(t, []any{"a"}, args)
	})
}

func TestPredicates(t *testing.T) {
	t.Run("AndOrNot", func(t *testing.T) {
		query, args := Dialect(dialect.Postgres).
			Select("id").From("users").
			Where(Or(EQ("role", "admin"), Not(EQ("is_active", true)))).
			Query()
		assert.Equal(t,
			`SELECT "id" FROM "users" WHERE (("role" = $1) OR (NOT ("is_active" = $2)))`,
			query,
		)
		assert.Equal(t, []any{"admin", true}, args)
	})
	t.Run("InEmpty", func(t *testing.T) {
		query, args := Dialect(dialect.SQLite).
			Select("id").From("users").Where(In("id")).Query()
		assert.Equal(t, `SELECT "id" FROM "users" WHERE FALSE`, query)
		assert.Empty(t, args)
	})
	t.Run("NotInEmpty", func(t *testing.T) {
		query, _ := Dialect(dialect.SQLite).
			Select("id").From("users").Where(NotIn("id")).Query()
		assert.Equal(t, `SELECT "id" FROM "users" WHERE TRUE`, query)
	})
	t.Run("InValues", func(t *testing.T) {
		query, args := Dialect(dialect.Postgres).
			Select("id").From("users").Where(In("id", 1, 2, 3)).Query()
		assert.Equal(t, `SELECT "id" FROM "users" WHERE "id" IN ($1, $2, $3)`, query)
		assert.Equal(t, []any{1, 2, 3}, args)
	})
	t.Run("InSelect", func(t *testing.T) {
		sub := Dialect(dialect.Postgres).Select("request_no").From("document_request")
		query, _ := Dialect(dialect.Postgres).
			Select().From("sample_list").
			Where(InSelect("request_no", sub)).
			Query()
		assert.Equal(t,
			`SELECT * FROM "sample_list" WHERE "request_no" IN (SELECT "request_no" FROM "document_request")`,
			query,
		)
	})
	t.Run("ContainsEscaping", func(t *testing.T) {
		query, args := Dialect(dialect.Postgres).
			Select("id").From("companies").
			Where(Contains("name", "50%_off")).
			Query()
		assert.Equal(t, `SELECT "id" FROM "companies" WHERE "name" LIKE $1 ESCAPE '\'`, query)
		assert.Equal(t, []any{`%50\%\_off%`}, args)
	})
	t.Run("ContainsMySQL", func(t *testing.T) {
		// MySQL escapes backslash by default; no ESCAPE clause.
		query, _ := Dialect(dialect.MySQL).
			Select("id").From("companies").
			Where(Contains("name", "lab")).
			Query()
		assert.Equal(t, "SELECT `id` FROM `companies` WHERE `name` LIKE ?", query)
	})
	t.Run("EqualFold", func(t *testing.T) {
		query, args := Dialect(dialect.Postgres).
			Select("id").From("users").
			Where(EqualFold("email", "Admin@Lab.CO.TH")).
			Query()
		assert.Equal(t, `SELECT "id" FROM "users" WHERE LOWER("email") = $1`, query)
		assert.Equal(t, []any{"admin@lab.co.th"}, args)
	})
	t.Run("NullChecks", func(t *testing.T) {
		query, _ := Dialect(dialect.SQLite).
			Select("id").From("users").
			Where(And(IsNull("role"), NotNull("email"))).
			Query()
		assert.Equal(t, `SELECT "id" FROM "users" WHERE ("role" IS NULL AND "email" IS NOT NULL)`, query)
	})
	t.Run("ExprP", func(t *testing.T) {
		query, args := Dialect(dialect.Postgres).
			Select("id").From("users").
			Where(ExprP("char_length(username) > ?", 3)).
			Query()
		assert.Equal(t, `SELECT "id" FROM "users" WHERE char_length(username) > $1`, query)
		assert.Equal(t, []any{3}, args)
	})
}

func TestInsertBuilder(t *testing.T) {
	t.Run("Postgres", func(t *testing.T) {
		query, args := Dialect(dialect.Postgres).
			Insert("companies").
			Columns("name", "province").
			Values("Central Lab", "Bangkok").
			Returning("id").
			Query()
		assert.Equal(t,
			`INSERT INTO "companies" ("name", "province") VALUES ($1, $2) RETURNING "id"`,
			query,
		)
		assert.Equal(t, []any{"Central Lab", "Bangkok"}, args)
	})
	t.Run("ReturningIgnoredOnMySQL", func(t *testing.T) {
		query, _ := Dialect(dialect.MySQL).
			Insert("companies").
			Columns("name").
			Values("x").
			Returning("id").
			Query()
		assert.Equal(t, "INSERT INTO `companies` (`name`) VALUES (?)", query)
	})
	t.Run("OnConflictDoNothing", func(t *testing.T) {
		query, _ := Dialect(dialect.Postgres).
			Insert("users").
			Columns("username", "email", "password").
			Values("u", "e", "p").
			OnConflictColumns("username").
			DoNothing().
			Query()
		assert.Equal(t,
			`INSERT INTO "users" ("username", "email", "password") VALUES ($1, $2, $3) ON CONFLICT ("username") DO NOTHING`,
			query,
		)
	})
	t.Run("OnConflictDoNothingMySQL", func(t *testing.T) {
		// MySQL has no DO NOTHING; a self-assignment keeps the statement
		// a no-op for conflicting rows.
		query, _ := Dialect(dialect.MySQL).
			Insert("users").
			Columns("username", "email", "password").
			Values("u", "e", "p").
			OnConflictColumns("username").
			DoNothing().
			Query()
		assert.Equal(t,
			"INSERT INTO `users` (`username`, `email`, `password`) VALUES (?, ?, ?) ON DUPLICATE KEY UPDATE `username` = `username`",
			query,
		)
	})
	t.Run("DoUpdateExcluded", func(t *testing.T) {
		query, args := Dialect(dialect.Postgres).
			Insert("users").
			Columns("username", "email").
			Values("u", "e").
			OnConflictColumns("username").
			DoUpdateExcluded("email").
			DoUpdateSet("role", "member").
			Query()
		assert.Equal(t,
			`INSERT INTO "users" ("username", "email") VALUES ($1, $2) ON CONFLICT ("username") DO UPDATE SET "email" = excluded."email", "role" = $3`,
			query,
		)
		assert.Equal(t, []any{"u", "e", "member"}, args)
	})
	t.Run("DoUpdateExcludedMySQL", func(t *testing.T) {
		query, _ := Dialect(dialect.MySQL).
			Insert("users").
			Columns("username", "email").
			Values("u", "e").
			OnConflictColumns("username").
			DoUpdateExcluded("email").
			Query()
		assert.Equal(t,
			"INSERT INTO `users` (`username`, `email`) VALUES (?, ?) ON DUPLICATE KEY UPDATE `email` = VALUES(`email`)",
			query,
		)
	})
	t.Run("MultiRow", func(t *testing.T) {
		query, args := Dialect(dialect.SQLite).
			Insert("sample_list").
			Columns("request_no", "panel").
			Values("REQ-1", "avian").
			Values("REQ-1", "swine").
			Query()
		assert.Equal(t,
			`INSERT INTO "sample_list" ("request_no", "panel") VALUES (?, ?), (?, ?)`,
			query,
		)
		assert.Len(t, args, 4)
	})
	t.Run("ColumnMismatch", func(t *testing.T) {
		ins := Dialect(dialect.SQLite).
			Insert("users").
			Columns("username", "email").
			Values("only-one")
		require.Error(t, ins.Err())
	})
}

func TestUpdateBuilder(t *testing.T) {
	t.Run("SetAndNull", func(t *testing.T) {
		query, args := Dialect(dialect.Postgres).
			Update("users").
			Set("role", "admin").
			SetNull("first_name").
			Where(EQ("id", 3)).
			Query()
		assert.Equal(t,
			`UPDATE "users" SET "role" = $1, "first_name" = NULL WHERE "id" = $2`,
			query,
		)
		assert.Equal(t, []any{"admin", 3}, args)
	})
	t.Run("NumericOps", func(t *testing.T) {
		// NULL counts as zero for arithmetic updates.
		query, args := Dialect(dialect.SQLite).
			Update("sample_list").
			Add("sample_qty", 2).
			Mul("sample_qty", 3).
			Div("sample_qty", 4).
			Query()
		assert.Equal(t,
			`UPDATE "sample_list" SET "sample_qty" = COALESCE("sample_qty", 0) + ?, "sample_qty" = COALESCE("sample_qty", 0) * ?, "sample_qty" = COALESCE("sample_qty", 0) / ?`,
			query,
		)
		assert.Equal(t, []any{2, 3, 4}, args)
	})
	t.Run("Empty", func(t *testing.T) {
		u := Dialect(dialect.Postgres).Update("users")
		assert.True(t, u.Empty())
		u.Set("role", "x")
		assert.False(t, u.Empty())
	})
}

func TestDeleteBuilder(t *testing.T) {
	query, args := Dialect(dialect.MySQL).
		Delete("sample_list").
		Where(And(EQ("request_no", "REQ-1"), In("id", 1, 2))).
		Query()
	assert.Equal(t,
		"DELETE FROM `sample_list` WHERE (`request_no` = ? AND `id` IN (?, ?))",
		query,
	)
	assert.Equal(t, []any{"REQ-1", 1, 2}, args)
}

func TestColumnCollector(t *testing.T) {
	var seen []string
	s := Dialect(dialect.Postgres).Select().From("users")
	s.WithColumnCollector(func(c string) { seen = append(seen, c) })
	s.Where(EQ(s.C("role"), "admin"))
	s.OrderField("email")
	s.WithColumnCollector(nil)
	s.Where(EQ(s.C("id"), 1))
	assert.Equal(t, []string{"role", "email"}, seen)
}

func TestHavingMode(t *testing.T) {
	s := Dialect(dialect.Postgres).Select("role", "COUNT(*)").From("users").GroupBy("role")
	s.HavingMode(true)
	s.Where(GT(s.C("role"), "a"))
	s.HavingMode(false)
	query, _ := s.Query()
	assert.Equal(t,
		`SELECT "role", COUNT(*) FROM "users" GROUP BY "role" HAVING "users"."role" > $1`,
		query,
	)
}
