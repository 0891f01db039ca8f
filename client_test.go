package labstore_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	_ "modernc.org/sqlite"

	"labstore"
	"labstore/dialect/sql"
	"labstore/documentrequest"
	"labstore/samplelist"
	"labstore/user"
	"labstore/workerprofile"
)

var schema = []string{
	`CREATE TABLE companies (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		company_name_en TEXT NOT NULL,
		company_name_th TEXT NOT NULL,
		address TEXT NOT NULL,
		sub_district TEXT NOT NULL,
		district TEXT NOT NULL,
		province TEXT NOT NULL,
		postal_code TEXT NOT NULL,
		tax_id TEXT UNIQUE,
		telephone TEXT,
		fax_number TEXT,
		created_at TIMESTAMP,
		updated_at TIMESTAMP
	)`,
	`CREATE TABLE users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		first_name TEXT,
		last_name TEXT,
		role TEXT,
		is_active BOOLEAN,
		created_at TIMESTAMP,
		updated_at TIMESTAMP
	)`,
	`CREATE TABLE worker_profiles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL REFERENCES users (id),
		title TEXT,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		id_card_number TEXT NOT NULL UNIQUE,
		mobile_phone_number TEXT NOT NULL,
		phone_number TEXT,
		email TEXT,
		id_card_file_path TEXT,
		created_at TIMESTAMP,
		updated_at TIMESTAMP
	)`,
	`CREATE TABLE document_request (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		request_no TEXT NOT NULL UNIQUE,
		user_id INTEGER NOT NULL REFERENCES users (id),
		company_id INTEGER NOT NULL REFERENCES companies (id),
		request_date TIMESTAMP,
		document_type TEXT NOT NULL,
		description TEXT,
		status TEXT,
		paid_status BOOLEAN,
		created_at TIMESTAMP,
		updated_at TIMESTAMP
	)`,
	`CREATE TABLE sample_list (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		request_no TEXT NOT NULL REFERENCES document_request (request_no),
		sent_sample_date TIMESTAMP,
		animal_type TEXT,
		sample_specimen TEXT,
		panel TEXT,
		method TEXT,
		sample_qty INTEGER,
		is_deleted BOOLEAN NOT NULL DEFAULT 0,
		created_at TIMESTAMP,
		updated_at TIMESTAMP
	)`,
	`CREATE TABLE receipt_addresses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		address TEXT NOT NULL,
		province TEXT NOT NULL,
		district TEXT NOT NULL,
		sub_district TEXT NOT NULL,
		postal_code TEXT NOT NULL,
		telephone TEXT,
		fax_number TEXT,
		created_at TIMESTAMP,
		updated_at TIMESTAMP
	)`,
}

// newTestClient opens an in-memory database shared across the pool
// connections of a single test, with foreign keys enforced.
func newTestClient(t *testing.T) *labstore.Client {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", name)
	client, err := labstore.Open("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	ctx := context.Background()
	for _, stmt := range schema {
		_, err := client.ExecContext(ctx, stmt)
		require.NoError(t, err)
	}
	return client
}

func seedUser(t *testing.T, client *labstore.Client, username string) *labstore.User {
	t.Helper()
	u, err := client.User.Create().
		SetUsername(username).
		SetEmail(username + "@lab.local").
		SetPassword("secret").
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func seedCompany(t *testing.T, client *labstore.Client) *labstore.Company {
	t.Helper()
	co, err := client.Company.Create().
		SetCompanyNameEn("Veterinary Diagnostics Co., Ltd.").
		SetCompanyNameTh("บริษัท สัตวแพทย์วินิจฉัย จำกัด").
		SetAddress("99/9 Moo 5").
		SetSubDistrict("Khlong Nueng").
		SetDistrict("Khlong Luang").
		SetProvince("Pathum Thani").
		SetPostalCode("12120").
		Save(context.Background())
	require.NoError(t, err)
	return co
}

func seedRequest(t *testing.T, client *labstore.Client, requestNo string, userID, companyID int) *labstore.DocumentRequest {
	t.Helper()
	dr, err := client.DocumentRequest.Create().
		SetRequestNo(requestNo).
		SetUserID(userID).
		SetCompanyID(companyID).
		SetDocumentType("test_report").
		Save(context.Background())
	require.NoError(t, err)
	return dr
}

func TestCRUDRoundTrip(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	u, err := client.User.Create().
		SetUsername("somchai").
		SetEmail("somchai@lab.local").
		SetPassword("secret").
		SetFirstName("Somchai").
		SetLastName("Jaidee").
		SetIsActive(true).
		Save(ctx)
	require.NoError(t, err)
	require.NotZero(t, u.ID)
	require.NotNil(t, u.FirstName)
	assert.Equal(t, "Somchai", *u.FirstName)
	require.NotNil(t, u.IsActive)
	assert.True(t, *u.IsActive)
	assert.Nil(t, u.Role)

	got, err := client.User.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "somchai", got.Username)
	require.NotNil(t, got.LastName)
	assert.Equal(t, "Jaidee", *got.LastName)
	assert.Nil(t, got.Role)

	byName, err := client.User.GetByUsername(ctx, "somchai")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)

	updated, err := client.User.UpdateOneID(u.ID).
		SetRole("admin").
		ClearLastName().
		Save(ctx)
	require.NoError(t, err)
	require.NotNil(t, updated.Role)
	assert.Equal(t, "admin", *updated.Role)
	assert.Nil(t, updated.LastName)

	missing, err := client.User.Query().
		Where(user.Username.EQ("nobody")).
		FirstOrNil(ctx)
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, client.User.DeleteOneID(u.ID).Exec(ctx))
	_, err = client.User.Get(ctx, u.ID)
	assert.True(t, labstore.IsNotFound(err))

	err = client.User.DeleteOneID(u.ID).Exec(ctx)
	assert.True(t, labstore.IsNotFound(err))
}

func TestUniqueConstraint(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	seedUser(t, client, "somchai")

	_, err := client.User.Create().
		SetUsername("somchai").
		SetEmail("other@lab.local").
		SetPassword("secret").
		Save(ctx)
	require.Error(t, err)
	assert.True(t, labstore.IsConstraintError(err))
	assert.False(t, labstore.IsForeignKeyError(err))
}

func TestForeignKeys(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	t.Run("MissingParent", func(t *testing.T) {
		_, err := client.WorkerProfile.Create().
			SetUserID(9999).
			SetFirstName("Somsri").
			SetLastName("Rakdee").
			SetIDCardNumber("1103700000001").
			SetMobilePhoneNumber("0812345678").
			Save(ctx)
		require.Error(t, err)
		assert.True(t, labstore.IsForeignKeyError(err))
	})
	t.Run("RestrictedDelete", func(t *testing.T) {
		u := seedUser(t, client, "somchai")
		co := seedCompany(t, client)
		dr := seedRequest(t, client, "REQ-2026-0001", u.ID, co.ID)
		_, err := client.SampleList.Create().
			SetRequestNo(dr.RequestNo).
			SetAnimalType("swine").
			SetSampleQty(3).
			Save(ctx)
		require.NoError(t, err)

		err = client.DocumentRequest.DeleteOneID(dr.ID).Exec(ctx)
		require.Error(t, err)
		assert.True(t, labstore.IsForeignKeyError(err))
	})
}

func TestNestedCreate(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	u := seedUser(t, client, "somchai")
	co := seedCompany(t, client)

	dr, err := client.DocumentRequest.Create().
		SetRequestNo("REQ-2026-0001").
		SetUserID(u.ID).
		SetCompanyID(co.ID).
		SetDocumentType("test_report").
		SetStatus("pending").
		AddSampleLists(
			client.SampleList.Create().SetAnimalType("swine").SetSampleQty(5),
			client.SampleList.Create().SetAnimalType("poultry").SetSampleQty(2),
		).
		Save(ctx)
	require.NoError(t, err)

	// Nested builders come back on the created node.
	samples, err := dr.Edges.SampleListsOrErr()
	require.NoError(t, err)
	require.Len(t, samples, 2)
	for _, sl := range samples {
		assert.Equal(t, dr.RequestNo, sl.RequestNo)
		assert.False(t, sl.IsDeleted)
	}

	n, err := client.SampleList.Query().
		Where(samplelist.RequestNo.EQ(dr.RequestNo)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestNestedCreateAtomicity(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	// The connect target does not exist, so the whole create rolls back.
	_, err := client.User.Create().
		SetUsername("somchai").
		SetEmail("somchai@lab.local").
		SetPassword("secret").
		AddWorkerProfiles(
			client.WorkerProfile.Create().
				SetFirstName("Somchai").
				SetLastName("Jaidee").
				SetIDCardNumber("1103700000001").
				SetMobilePhoneNumber("0812345678"),
		).
		ConnectWorkerProfileIDs(9999).
		Save(ctx)
	require.Error(t, err)
	assert.True(t, labstore.IsNotFound(err))

	n, err := client.User.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
	n, err = client.WorkerProfile.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestEagerLoading(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	u := seedUser(t, client, "somchai")
	co := seedCompany(t, client)
	dr := seedRequest(t, client, "REQ-2026-0001", u.ID, co.ID)
	for i, at := range []string{"swine", "poultry", "bovine"} {
		_, err := client.SampleList.Create().
			SetRequestNo(dr.RequestNo).
			SetAnimalType(at).
			SetSampleQty(i + 1).
			Save(ctx)
		require.NoError(t, err)
	}

	t.Run("WithSampleLists", func(t *testing.T) {
		got, err := client.DocumentRequest.Query().
			Where(documentrequest.RequestNo.EQ(dr.RequestNo)).
			WithSampleLists(func(slq *labstore.SampleListQuery) {
				slq.Where(samplelist.AnimalType.NEQ("bovine")).
					Order(samplelist.ByAnimalType())
			}).
			Only(ctx)
		require.NoError(t, err)
		samples, err := got.Edges.SampleListsOrErr()
		require.NoError(t, err)
		require.Len(t, samples, 2)
		require.NotNil(t, samples[0].AnimalType)
		assert.Equal(t, "poultry", *samples[0].AnimalType)
		require.NotNil(t, samples[1].AnimalType)
		assert.Equal(t, "swine", *samples[1].AnimalType)
	})
	t.Run("WithSampleListCount", func(t *testing.T) {
		got, err := client.DocumentRequest.Query().
			Where(documentrequest.RequestNo.EQ(dr.RequestNo)).
			WithSampleListCount().
			Only(ctx)
		require.NoError(t, err)
		n, err := got.Edges.SampleListCountOrErr()
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})
	t.Run("NotLoaded", func(t *testing.T) {
		got, err := client.DocumentRequest.Get(ctx, dr.ID)
		require.NoError(t, err)
		_, err = got.Edges.SampleListsOrErr()
		assert.True(t, labstore.IsNotLoaded(err))
	})
	t.Run("WithRequest", func(t *testing.T) {
		samples, err := client.SampleList.Query().
			WithRequest().
			All(ctx)
		require.NoError(t, err)
		require.Len(t, samples, 3)
		owner, err := samples[0].Edges.RequestOrErr()
		require.NoError(t, err)
		assert.Equal(t, dr.ID, owner.ID)
	})
	t.Run("EntityQueryEdge", func(t *testing.T) {
		got, err := client.DocumentRequest.Get(ctx, dr.ID)
		require.NoError(t, err)
		n, err := got.QuerySampleLists().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})
	t.Run("CountAfterDelete", func(t *testing.T) {
		_, err := client.SampleList.Delete().
			Where(samplelist.AnimalType.EQ("bovine")).
			Exec(ctx)
		require.NoError(t, err)
		got, err := client.DocumentRequest.Query().
			Where(documentrequest.RequestNo.EQ(dr.RequestNo)).
			WithSampleListCount().
			Only(ctx)
		require.NoError(t, err)
		n, err := got.Edges.SampleListCountOrErr()
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})
}

func TestQueryFeatures(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	for _, name := range []string{"anan", "boonmee", "chai", "duangjai", "ekachai"} {
		seedUser(t, client, name)
	}

	t.Run("FilterOrderPage", func(t *testing.T) {
		users, err := client.User.Query().
			Where(user.Username.GT("anan")).
			Order(user.ByUsername(sql.OrderDesc())).
			Offset(1).
			Limit(2).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "duangjai", users[0].Username)
		assert.Equal(t, "chai", users[1].Username)
	})
	t.Run("PredicateComposition", func(t *testing.T) {
		n, err := client.User.Query().
			Where(user.Or(
				user.Username.HasPrefix("a"),
				user.And(user.Username.Contains("chai"), user.Not(user.Username.EQ("ekachai"))),
			)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})
	t.Run("KeysetAscending", func(t *testing.T) {
		ids, err := client.User.Query().Order(user.ByID()).Limit(2).IDs(ctx)
		require.NoError(t, err)
		require.Len(t, ids, 2)
		next, err := client.User.Query().
			Order(user.ByID()).
			AfterID(ids[1]).
			Limit(2).
			IDs(ctx)
		require.NoError(t, err)
		require.Len(t, next, 2)
		assert.Greater(t, next[0], ids[1])
	})
	t.Run("KeysetDescending", func(t *testing.T) {
		ids, err := client.User.Query().Order(user.ByID(sql.OrderDesc())).IDs(ctx)
		require.NoError(t, err)
		require.Len(t, ids, 5)
		next, err := client.User.Query().
			Order(user.ByID(sql.OrderDesc())).
			AfterID(ids[1]).
			Limit(2).
			IDs(ctx)
		require.NoError(t, err)
		require.Len(t, next, 2)
		assert.Equal(t, ids[2], next[0])
	})
	t.Run("OnlyNotSingular", func(t *testing.T) {
		_, err := client.User.Query().Only(ctx)
		assert.True(t, labstore.IsNotSingular(err))
	})
	t.Run("Exist", func(t *testing.T) {
		ok, err := client.User.Query().Where(user.Username.EQ("chai")).Exist(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = client.User.Query().Where(user.Username.EQ("nobody")).Exist(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})
	t.Run("SelectScan", func(t *testing.T) {
		var names []string
		err := client.User.Query().
			Where(user.Username.HasSuffix("chai")).
			Order(user.ByUsername()).
			Select(user.FieldUsername).
			Scan(ctx, &names)
		require.NoError(t, err)
		assert.Equal(t, []string{"ekachai"}, names)
	})
}

func TestRelationFilters(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	withProfile := seedUser(t, client, "somchai")
	seedUser(t, client, "plain")
	_, err := client.WorkerProfile.Create().
		SetUserID(withProfile.ID).
		SetFirstName("Somchai").
		SetLastName("Jaidee").
		SetIDCardNumber("1103700000001").
		SetMobilePhoneNumber("0812345678").
		Save(ctx)
	require.NoError(t, err)

	ids, err := client.User.Query().Where(user.HasWorkerProfiles()).IDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{withProfile.ID}, ids)

	ids, err = client.User.Query().
		Where(user.HasWorkerProfilesWith(workerprofile.IDCardNumber.EQ("1103700000001"))).
		IDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{withProfile.ID}, ids)

	n, err := client.User.Query().
		Where(user.Not(user.HasWorkerProfiles())).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestUpdateMany(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	u := seedUser(t, client, "somchai")
	co := seedCompany(t, client)
	dr := seedRequest(t, client, "REQ-2026-0001", u.ID, co.ID)
	for i := 0; i < 4; i++ {
		_, err := client.SampleList.Create().
			SetRequestNo(dr.RequestNo).
			SetSampleQty(10).
			Save(ctx)
		require.NoError(t, err)
	}

	t.Run("WithLimit", func(t *testing.T) {
		n, err := client.SampleList.Update().
			Where(samplelist.RequestNo.EQ(dr.RequestNo)).
			SetIsDeleted(true).
			Limit(2).
			Save(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		flagged, err := client.SampleList.Query().
			Where(samplelist.IsDeleted.EQ(true)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, flagged)
	})
	t.Run("NumericOps", func(t *testing.T) {
		// 10 + 5 = 15, * 2 = 30, / 3 = 10 applied across all four rows.
		_, err := client.SampleList.Update().AddSampleQty(5).Save(ctx)
		require.NoError(t, err)
		_, err = client.SampleList.Update().MulSampleQty(2).Save(ctx)
		require.NoError(t, err)
		_, err = client.SampleList.Update().DivSampleQty(3).Save(ctx)
		require.NoError(t, err)
		samples, err := client.SampleList.Query().All(ctx)
		require.NoError(t, err)
		require.Len(t, samples, 4)
		for _, sl := range samples {
			require.NotNil(t, sl.SampleQty)
			assert.Equal(t, 10, *sl.SampleQty)
		}
	})
}

func TestUpsert(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	original := seedUser(t, client, "somchai")

	t.Run("UpdateNewValues", func(t *testing.T) {
		id, err := client.User.Create().
			SetUsername("somchai").
			SetEmail("new@lab.local").
			SetPassword("secret").
			OnConflictColumns(user.FieldUsername).
			UpdateNewValues().
			ID(ctx)
		require.NoError(t, err)
		assert.Equal(t, original.ID, id)
		got, err := client.User.Get(ctx, original.ID)
		require.NoError(t, err)
		assert.Equal(t, "new@lab.local", got.Email)
	})
	t.Run("SetOnConflict", func(t *testing.T) {
		id, err := client.User.Create().
			SetUsername("somchai").
			SetEmail("ignored@lab.local").
			SetPassword("secret").
			OnConflictColumns(user.FieldUsername).
			SetRole("reviewer").
			ID(ctx)
		require.NoError(t, err)
		assert.Equal(t, original.ID, id)
		got, err := client.User.Get(ctx, original.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Role)
		assert.Equal(t, "reviewer", *got.Role)
		assert.Equal(t, "new@lab.local", got.Email)
	})
	t.Run("Ignore", func(t *testing.T) {
		err := client.User.Create().
			SetUsername("somchai").
			SetEmail("dropped@lab.local").
			SetPassword("secret").
			OnConflictColumns(user.FieldUsername).
			Ignore().
			Exec(ctx)
		require.NoError(t, err)
		got, err := client.User.Get(ctx, original.ID)
		require.NoError(t, err)
		assert.Equal(t, "new@lab.local", got.Email)
		n, err := client.User.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})
}

func TestCreateBulk(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	t.Run("Save", func(t *testing.T) {
		ras, err := client.ReceiptAddress.CreateBulk(
			client.ReceiptAddress.Create().
				SetAddress("1 Rama IV Rd").
				SetProvince("Bangkok").
				SetDistrict("Pathum Wan").
				SetSubDistrict("Wang Mai").
				SetPostalCode("10330"),
			client.ReceiptAddress.Create().
				SetAddress("99/9 Moo 5").
				SetProvince("Pathum Thani").
				SetDistrict("Khlong Luang").
				SetSubDistrict("Khlong Nueng").
				SetPostalCode("12120"),
		).Save(ctx)
		require.NoError(t, err)
		require.Len(t, ras, 2)
		assert.NotZero(t, ras[0].ID)
		assert.Greater(t, ras[1].ID, ras[0].ID)
		assert.Equal(t, "Bangkok", ras[0].Province)
	})
	t.Run("OnConflictDoNothing", func(t *testing.T) {
		seedUser(t, client, "somchai")
		n, err := client.User.CreateBulk(
			client.User.Create().
				SetUsername("somchai").
				SetEmail("dup@lab.local").
				SetPassword("secret"),
			client.User.Create().
				SetUsername("somsri").
				SetEmail("somsri@lab.local").
				SetPassword("secret"),
		).OnConflictDoNothing().Exec(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		total, err := client.User.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
	})
}

func TestNestedUpdateEdges(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	u := seedUser(t, client, "somchai")
	co := seedCompany(t, client)
	src := seedRequest(t, client, "REQ-2026-0001", u.ID, co.ID)
	dst := seedRequest(t, client, "REQ-2026-0002", u.ID, co.ID)
	a, err := client.SampleList.Create().SetRequestNo(src.RequestNo).SetAnimalType("swine").Save(ctx)
	require.NoError(t, err)
	b, err := client.SampleList.Create().SetRequestNo(src.RequestNo).SetAnimalType("poultry").Save(ctx)
	require.NoError(t, err)

	t.Run("Remove", func(t *testing.T) {
		_, err := client.DocumentRequest.UpdateOneID(src.ID).
			RemoveSampleListIDs(a.ID).
			Save(ctx)
		require.NoError(t, err)
		_, err = client.SampleList.Get(ctx, a.ID)
		assert.True(t, labstore.IsNotFound(err))
	})
	t.Run("Connect", func(t *testing.T) {
		_, err := client.DocumentRequest.UpdateOneID(dst.ID).
			ConnectSampleListIDs(b.ID).
			Save(ctx)
		require.NoError(t, err)
		moved, err := client.SampleList.Get(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, dst.RequestNo, moved.RequestNo)
	})
	t.Run("AddAndStatus", func(t *testing.T) {
		updated, err := client.DocumentRequest.UpdateOneID(dst.ID).
			SetStatus("approved").
			AddSampleLists(client.SampleList.Create().SetAnimalType("bovine")).
			Save(ctx)
		require.NoError(t, err)
		require.NotNil(t, updated.Status)
		assert.Equal(t, "approved", *updated.Status)
		n, err := client.SampleList.Query().
			Where(samplelist.RequestNo.EQ(dst.RequestNo)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})
	t.Run("Clear", func(t *testing.T) {
		_, err := client.DocumentRequest.UpdateOneID(dst.ID).
			ClearSampleLists().
			Save(ctx)
		require.NoError(t, err)
		n, err := client.SampleList.Query().Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
	t.Run("AtomicOnFailure", func(t *testing.T) {
		// The failing connect must also discard the status change.
		_, err := client.DocumentRequest.UpdateOneID(dst.ID).
			SetStatus("rejected").
			ConnectSampleListIDs(9999).
			Save(ctx)
		require.Error(t, err)
		got, err := client.DocumentRequest.Get(ctx, dst.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Status)
		assert.Equal(t, "approved", *got.Status)
	})
}

func TestGroupByAggregate(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	u := seedUser(t, client, "somchai")
	co := seedCompany(t, client)
	for i, status := range []string{"pending", "pending", "approved"} {
		_, err := client.DocumentRequest.Create().
			SetRequestNo(fmt.Sprintf("REQ-2026-%04d", i+1)).
			SetUserID(u.ID).
			SetCompanyID(co.ID).
			SetDocumentType("test_report").
			SetStatus(status).
			Save(ctx)
		require.NoError(t, err)
	}

	t.Run("CountByStatus", func(t *testing.T) {
		var rows []struct {
			Status string
			Count  int
		}
		err := client.DocumentRequest.Query().
			GroupBy(documentrequest.FieldStatus).
			Aggregate(labstore.Count()).
			OrderBy(documentrequest.ByStatus()).
			Scan(ctx, &rows)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "approved", rows[0].Status)
		assert.Equal(t, 1, rows[0].Count)
		assert.Equal(t, "pending", rows[1].Status)
		assert.Equal(t, 2, rows[1].Count)
	})
	t.Run("Having", func(t *testing.T) {
		var rows []struct {
			Status string
			Count  int
		}
		err := client.DocumentRequest.Query().
			GroupBy(documentrequest.FieldStatus).
			Aggregate(labstore.Count()).
			Having(documentrequest.Status.EQ("pending")).
			Scan(ctx, &rows)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, 2, rows[0].Count)
	})
	t.Run("AggregateSelect", func(t *testing.T) {
		var v []struct {
			Max string
		}
		err := client.DocumentRequest.Query().
			Aggregate(labstore.As(labstore.Max(documentrequest.FieldRequestNo), "max")).
			Scan(ctx, &v)
		require.NoError(t, err)
		require.Len(t, v, 1)
		assert.Equal(t, "REQ-2026-0003", v[0].Max)
	})
}

func TestTransactions(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	t.Run("Commit", func(t *testing.T) {
		tx, err := client.Tx(ctx)
		require.NoError(t, err)
		_, err = tx.User.Create().
			SetUsername("committed").
			SetEmail("committed@lab.local").
			SetPassword("secret").
			Save(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.Commit())

		ok, err := client.User.Query().Where(user.Username.EQ("committed")).Exist(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
	})
	t.Run("Rollback", func(t *testing.T) {
		tx, err := client.Tx(ctx)
		require.NoError(t, err)
		_, err = tx.User.Create().
			SetUsername("discarded").
			SetEmail("discarded@lab.local").
			SetPassword("secret").
			Save(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.Rollback())

		ok, err := client.User.Query().Where(user.Username.EQ("discarded")).Exist(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})
	t.Run("NestingRejected", func(t *testing.T) {
		tx, err := client.Tx(ctx)
		require.NoError(t, err)
		defer tx.Rollback()
		_, err = tx.Client().Tx(ctx)
		assert.ErrorIs(t, err, labstore.ErrTxStarted)
	})
	t.Run("DebugClientJoinsTx", func(t *testing.T) {
		// A debug client derived from the transaction stays bound to it;
		// nested edge writes join the running transaction instead of
		// trying to open a second one.
		tx, err := client.Tx(ctx)
		require.NoError(t, err)
		debugged := tx.Client().Debug()
		_, err = debugged.User.Create().
			SetUsername("debugged").
			SetEmail("debugged@lab.local").
			SetPassword("secret").
			AddWorkerProfiles(
				debugged.WorkerProfile.Create().
					SetFirstName("Somchai").
					SetLastName("Jaidee").
					SetIDCardNumber("1103700000009").
					SetMobilePhoneNumber("0899999999"),
			).
			Save(ctx)
		require.NoError(t, err)

		_, err = debugged.Tx(ctx)
		assert.ErrorIs(t, err, labstore.ErrTxStarted)

		require.NoError(t, tx.Commit())
		ok, err := client.User.Query().
			Where(user.Username.EQ("debugged"), user.HasWorkerProfiles()).
			Exist(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
	})
	t.Run("CommitTwice", func(t *testing.T) {
		tx, err := client.Tx(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.Commit())
		assert.NoError(t, tx.Commit())
	})
	t.Run("WithTx", func(t *testing.T) {
		err := client.WithTx(ctx, func(tx *labstore.Tx) error {
			_, err := tx.User.Create().
				SetUsername("callback").
				SetEmail("callback@lab.local").
				SetPassword("secret").
				Save(ctx)
			return err
		})
		require.NoError(t, err)
		ok, err := client.User.Query().Where(user.Username.EQ("callback")).Exist(ctx)
		require.NoError(t, err)
		assert.True(t, ok)

		boom := fmt.Errorf("business rule violated")
		err = client.WithTx(ctx, func(tx *labstore.Tx) error {
			_, err := tx.User.Create().
				SetUsername("undone").
				SetEmail("undone@lab.local").
				SetPassword("secret").
				Save(ctx)
			require.NoError(t, err)
			return boom
		})
		assert.ErrorIs(t, err, boom)
		ok, err = client.User.Query().Where(user.Username.EQ("undone")).Exist(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})
	t.Run("Timeout", func(t *testing.T) {
		tx, err := client.BeginTx(ctx, &labstore.TxOptions{Timeout: 50 * time.Millisecond})
		require.NoError(t, err)
		_, err = tx.User.Create().
			SetUsername("expired").
			SetEmail("expired@lab.local").
			SetPassword("secret").
			Save(ctx)
		require.NoError(t, err)

		time.Sleep(150 * time.Millisecond)
		assert.ErrorIs(t, tx.Commit(), labstore.ErrTxTimedOut)

		ok, err := client.User.Query().Where(user.Username.EQ("expired")).Exist(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})
	t.Run("AcquireTimeout", func(t *testing.T) {
		tx, err := client.BeginTx(ctx, &labstore.TxOptions{AcquireTimeout: time.Second})
		require.NoError(t, err)
		require.NoError(t, tx.Rollback())
	})
}

func TestConcurrentReads(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	for i := 0; i < 10; i++ {
		seedUser(t, client, fmt.Sprintf("user%02d", i))
	}

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			n, err := client.User.Query().Count(ctx)
			if err != nil {
				return err
			}
			if n != 10 {
				return fmt.Errorf("count = %d, want 10", n)
			}
			users, err := client.User.Query().Order(user.ByUsername()).All(ctx)
			if err != nil {
				return err
			}
			if len(users) != 10 {
				return fmt.Errorf("len = %d, want 10", len(users))
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestRawSQL(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	seedUser(t, client, "somchai")

	res, err := client.ExecContext(ctx,
		"INSERT INTO users (username, email, password) VALUES (?, ?, ?)",
		"raw", "raw@lab.local", "secret",
	)
	require.NoError(t, err)
	affected, err := res.RowsAffected()
	require.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	rows, err := client.QueryContext(ctx, "SELECT username FROM users ORDER BY username")
	require.NoError(t, err)
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		names = append(names, name)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"raw", "somchai"}, names)

	// Raw rows surface through the typed query path as well.
	got, err := client.User.GetByUsername(ctx, "raw")
	require.NoError(t, err)
	assert.Equal(t, "raw@lab.local", got.Email)
}
