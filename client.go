package labstore

import (
	"context"
	"fmt"

	"labstore/company"
	"labstore/dialect"
	"labstore/dialect/sql"
	"labstore/documentrequest"
	"labstore/receiptaddress"
	"labstore/samplelist"
	"labstore/user"
	"labstore/workerprofile"
)

// Client is the entry point of the package. It holds one sub-client per
// entity, all sharing a single driver.
type Client struct {
	config
	// Company is the client for interacting with the Company builders.
	Company *CompanyClient
	// DocumentRequest is the client for interacting with the DocumentRequest builders.
	DocumentRequest *DocumentRequestClient
	// ReceiptAddress is the client for interacting with the ReceiptAddress builders.
	ReceiptAddress *ReceiptAddressClient
	// SampleList is the client for interacting with the SampleList builders.
	SampleList *SampleListClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// WorkerProfile is the client for interacting with the WorkerProfile builders.
	WorkerProfile *WorkerProfileClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{}
	client.config.options(opts...)
	client.init()
	return client
}

func (c *Client) init() {
	c.Company = NewCompanyClient(c.config)
	c.DocumentRequest = NewDocumentRequestClient(c.config)
	c.ReceiptAddress = NewReceiptAddressClient(c.config)
	c.SampleList = NewSampleListClient(c.config)
	c.User = NewUserClient(c.config)
	c.WorkerProfile = NewWorkerProfileClient(c.config)
}

// Open opens a database/sql.DB specified by the driver name and the data
// source name, and returns a new client attached to it.
//
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, opts ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(opts, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("labstore: unsupported driver: %q", driverName)
	}
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Dialect returns the driver dialect.
func (c *Client) Dialect() string {
	return c.driver.Dialect()
}

// Debug returns a new debug-client. It's used to get verbose logging on
// specific operations.
//
//	client.Debug().
//		DocumentRequest.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.debug = false
	cfg.options(Debug())
	client := &Client{config: cfg}
	client.init()
	return client
}

// ExecContext executes a raw statement with the placeholder style of the
// configured dialect. It bypasses the builders; parameterize all values.
func (c *Client) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	var res sql.Result
	if err := c.driver.Exec(ctx, query, args, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// QueryContext executes a raw query with the placeholder style of the
// configured dialect. The caller owns closing the returned rows.
func (c *Client) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	rows := &sql.Rows{}
	if err := c.driver.Query(ctx, query, args, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// CompanyClient is a client for the Company entity.
type CompanyClient struct {
	config
}

// NewCompanyClient returns a client for the Company from the given config.
func NewCompanyClient(c config) *CompanyClient {
	return &CompanyClient{config: c}
}

// Create returns a builder for creating a Company entity.
func (c *CompanyClient) Create() *CompanyCreate {
	return &CompanyCreate{config: c.config}
}

// CreateBulk returns a builder for creating a bulk of Company entities.
func (c *CompanyClient) CreateBulk(builders ...*CompanyCreate) *CompanyCreateBulk {
	return &CompanyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Company.
func (c *CompanyClient) Update() *CompanyUpdate {
	return &CompanyUpdate{config: c.config}
}

// UpdateOne returns an update builder for the given entity.
func (c *CompanyClient) UpdateOne(co *Company) *CompanyUpdateOne {
	return c.UpdateOneID(co.ID)
}

// UpdateOneID returns an update builder for the given id.
func (c *CompanyClient) UpdateOneID(id int) *CompanyUpdateOne {
	return &CompanyUpdateOne{config: c.config, id: id}
}

// Delete returns a delete builder for Company.
func (c *CompanyClient) Delete() *CompanyDelete {
	return &CompanyDelete{config: c.config}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CompanyClient) DeleteOne(co *Company) *CompanyDeleteOne {
	return c.DeleteOneID(co.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CompanyClient) DeleteOneID(id int) *CompanyDeleteOne {
	return &CompanyDeleteOne{cd: c.Delete().Where(company.ID.EQ(id))}
}

// Query returns a query builder for Company.
func (c *CompanyClient) Query() *CompanyQuery {
	return &CompanyQuery{config: c.config, ctx: newQueryContext()}
}

// Get returns a Company entity by its id.
func (c *CompanyClient) Get(ctx context.Context, id int) (*Company, error) {
	return c.Query().Where(company.ID.EQ(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CompanyClient) GetX(ctx context.Context, id int) *Company {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// DocumentRequestClient is a client for the DocumentRequest entity.
type DocumentRequestClient struct {
	config
}

// NewDocumentRequestClient returns a client for the DocumentRequest from the
// given config.
func NewDocumentRequestClient(c config) *DocumentRequestClient {
	return &DocumentRequestClient{config: c}
}

// Create returns a builder for creating a DocumentRequest entity.
func (c *DocumentRequestClient) Create() *DocumentRequestCreate {
	return &DocumentRequestCreate{config: c.config}
}

// CreateBulk returns a builder for creating a bulk of DocumentRequest entities.
func (c *DocumentRequestClient) CreateBulk(builders ...*DocumentRequestCreate) *DocumentRequestCreateBulk {
	return &DocumentRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DocumentRequest.
func (c *DocumentRequestClient) Update() *DocumentRequestUpdate {
	return &DocumentRequestUpdate{config: c.config}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentRequestClient) UpdateOne(dr *DocumentRequest) *DocumentRequestUpdateOne {
	return c.UpdateOneID(dr.ID)
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentRequestClient) UpdateOneID(id int) *DocumentRequestUpdateOne {
	return &DocumentRequestUpdateOne{config: c.config, id: id}
}

// Delete returns a delete builder for DocumentRequest.
func (c *DocumentRequestClient) Delete() *DocumentRequestDelete {
	return &DocumentRequestDelete{config: c.config}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentRequestClient) DeleteOne(dr *DocumentRequest) *DocumentRequestDeleteOne {
	return c.DeleteOneID(dr.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentRequestClient) DeleteOneID(id int) *DocumentRequestDeleteOne {
	return &DocumentRequestDeleteOne{dd: c.Delete().Where(documentrequest.ID.EQ(id))}
}

// Query returns a query builder for DocumentRequest.
func (c *DocumentRequestClient) Query() *DocumentRequestQuery {
	return &DocumentRequestQuery{config: c.config, ctx: newQueryContext()}
}

// Get returns a DocumentRequest entity by its id.
func (c *DocumentRequestClient) Get(ctx context.Context, id int) (*DocumentRequest, error) {
	return c.Query().Where(documentrequest.ID.EQ(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentRequestClient) GetX(ctx context.Context, id int) *DocumentRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// GetByRequestNo returns the DocumentRequest entity with the given
// request_no business key.
func (c *DocumentRequestClient) GetByRequestNo(ctx context.Context, requestNo string) (*DocumentRequest, error) {
	return c.Query().Where(documentrequest.RequestNo.EQ(requestNo)).Only(ctx)
}

// QuerySampleLists queries the sample_lists edge of a DocumentRequest.
func (c *DocumentRequestClient) QuerySampleLists(dr *DocumentRequest) *SampleListQuery {
	return NewSampleListClient(c.config).Query().
		Where(samplelist.RequestNo.EQ(dr.RequestNo))
}

// ReceiptAddressClient is a client for the ReceiptAddress entity.
type ReceiptAddressClient struct {
	config
}

// NewReceiptAddressClient returns a client for the ReceiptAddress from the
// given config.
func NewReceiptAddressClient(c config) *ReceiptAddressClient {
	return &ReceiptAddressClient{config: c}
}

// Create returns a builder for creating a ReceiptAddress entity.
func (c *ReceiptAddressClient) Create() *ReceiptAddressCreate {
	return &ReceiptAddressCreate{config: c.config}
}

// CreateBulk returns a builder for creating a bulk of ReceiptAddress entities.
func (c *ReceiptAddressClient) CreateBulk(builders ...*ReceiptAddressCreate) *ReceiptAddressCreateBulk {
	return &ReceiptAddressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReceiptAddress.
func (c *ReceiptAddressClient) Update() *ReceiptAddressUpdate {
	return &ReceiptAddressUpdate{config: c.config}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReceiptAddressClient) UpdateOne(ra *ReceiptAddress) *ReceiptAddressUpdateOne {
	return c.UpdateOneID(ra.ID)
}

// UpdateOneID returns an update builder for the given id.
func (c *ReceiptAddressClient) UpdateOneID(id int) *ReceiptAddressUpdateOne {
	return &ReceiptAddressUpdateOne{config: c.config, id: id}
}

// Delete returns a delete builder for ReceiptAddress.
func (c *ReceiptAddressClient) Delete() *ReceiptAddressDelete {
	return &ReceiptAddressDelete{config: c.config}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReceiptAddressClient) DeleteOne(ra *ReceiptAddress) *ReceiptAddressDeleteOne {
	return c.DeleteOneID(ra.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReceiptAddressClient) DeleteOneID(id int) *ReceiptAddressDeleteOne {
	return &ReceiptAddressDeleteOne{rd: c.Delete().Where(receiptaddress.ID.EQ(id))}
}

// Query returns a query builder for ReceiptAddress.
func (c *ReceiptAddressClient) Query() *ReceiptAddressQuery {
	return &ReceiptAddressQuery{config: c.config, ctx: newQueryContext()}
}

// Get returns a ReceiptAddress entity by its id.
func (c *ReceiptAddressClient) Get(ctx context.Context, id int) (*ReceiptAddress, error) {
	return c.Query().Where(receiptaddress.ID.EQ(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReceiptAddressClient) GetX(ctx context.Context, id int) *ReceiptAddress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// SampleListClient is a client for the SampleList entity.
type SampleListClient struct {
	config
}

// NewSampleListClient returns a client for the SampleList from the given
// config.
func NewSampleListClient(c config) *SampleListClient {
	return &SampleListClient{config: c}
}

// Create returns a builder for creating a SampleList entity.
func (c *SampleListClient) Create() *SampleListCreate {
	return &SampleListCreate{config: c.config}
}

// CreateBulk returns a builder for creating a bulk of SampleList entities.
func (c *SampleListClient) CreateBulk(builders ...*SampleListCreate) *SampleListCreateBulk {
	return &SampleListCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SampleList.
func (c *SampleListClient) Update() *SampleListUpdate {
	return &SampleListUpdate{config: c.config}
}

// UpdateOne returns an update builder for the given entity.
func (c *SampleListClient) UpdateOne(sl *SampleList) *SampleListUpdateOne {
	return c.UpdateOneID(sl.ID)
}

// UpdateOneID returns an update builder for the given id.
func (c *SampleListClient) UpdateOneID(id int) *SampleListUpdateOne {
	return &SampleListUpdateOne{config: c.config, id: id}
}

// Delete returns a delete builder for SampleList.
func (c *SampleListClient) Delete() *SampleListDelete {
	return &SampleListDelete{config: c.config}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SampleListClient) DeleteOne(sl *SampleList) *SampleListDeleteOne {
	return c.DeleteOneID(sl.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SampleListClient) DeleteOneID(id int) *SampleListDeleteOne {
	return &SampleListDeleteOne{sd: c.Delete().Where(samplelist.ID.EQ(id))}
}

// Query returns a query builder for SampleList.
func (c *SampleListClient) Query() *SampleListQuery {
	return &SampleListQuery{config: c.config, ctx: newQueryContext()}
}

// Get returns a SampleList entity by its id.
func (c *SampleListClient) Get(ctx context.Context, id int) (*SampleList, error) {
	return c.Query().Where(samplelist.ID.EQ(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SampleListClient) GetX(ctx context.Context, id int) *SampleList {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRequest queries the request edge of a SampleList.
func (c *SampleListClient) QueryRequest(sl *SampleList) *DocumentRequestQuery {
	return NewDocumentRequestClient(c.config).Query().
		Where(documentrequest.RequestNo.EQ(sl.RequestNo))
}

// UserClient is a client for the User entity.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	return &UserCreate{config: c.config}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	return &UserUpdate{config: c.config}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(u *User) *UserUpdateOne {
	return c.UpdateOneID(u.ID)
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id int) *UserUpdateOne {
	return &UserUpdateOne{config: c.config, id: id}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	return &UserDelete{config: c.config}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(u *User) *UserDeleteOne {
	return c.DeleteOneID(u.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id int) *UserDeleteOne {
	return &UserDeleteOne{ud: c.Delete().Where(user.ID.EQ(id))}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{config: c.config, ctx: newQueryContext()}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id int) (*User, error) {
	return c.Query().Where(user.ID.EQ(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id int) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// GetByUsername returns the User entity with the given unique username.
func (c *UserClient) GetByUsername(ctx context.Context, username string) (*User, error) {
	return c.Query().Where(user.Username.EQ(username)).Only(ctx)
}

// GetByEmail returns the User entity with the given unique email.
func (c *UserClient) GetByEmail(ctx context.Context, email string) (*User, error) {
	return c.Query().Where(user.Email.EQ(email)).Only(ctx)
}

// QueryWorkerProfiles queries the worker_profiles edge of a User.
func (c *UserClient) QueryWorkerProfiles(u *User) *WorkerProfileQuery {
	return NewWorkerProfileClient(c.config).Query().
		Where(workerprofile.UserID.EQ(u.ID))
}

// WorkerProfileClient is a client for the WorkerProfile entity.
type WorkerProfileClient struct {
	config
}

// NewWorkerProfileClient returns a client for the WorkerProfile from the
// given config.
func NewWorkerProfileClient(c config) *WorkerProfileClient {
	return &WorkerProfileClient{config: c}
}

// Create returns a builder for creating a WorkerProfile entity.
func (c *WorkerProfileClient) Create() *WorkerProfileCreate {
	return &WorkerProfileCreate{config: c.config}
}

// CreateBulk returns a builder for creating a bulk of WorkerProfile entities.
func (c *WorkerProfileClient) CreateBulk(builders ...*WorkerProfileCreate) *WorkerProfileCreateBulk {
	return &WorkerProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WorkerProfile.
func (c *WorkerProfileClient) Update() *WorkerProfileUpdate {
	return &WorkerProfileUpdate{config: c.config}
}

// UpdateOne returns an update builder for the given entity.
func (c *WorkerProfileClient) UpdateOne(wp *WorkerProfile) *WorkerProfileUpdateOne {
	return c.UpdateOneID(wp.ID)
}

// UpdateOneID returns an update builder for the given id.
func (c *WorkerProfileClient) UpdateOneID(id int) *WorkerProfileUpdateOne {
	return &WorkerProfileUpdateOne{config: c.config, id: id}
}

// Delete returns a delete builder for WorkerProfile.
func (c *WorkerProfileClient) Delete() *WorkerProfileDelete {
	return &WorkerProfileDelete{config: c.config}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WorkerProfileClient) DeleteOne(wp *WorkerProfile) *WorkerProfileDeleteOne {
	return c.DeleteOneID(wp.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WorkerProfileClient) DeleteOneID(id int) *WorkerProfileDeleteOne {
	return &WorkerProfileDeleteOne{wd: c.Delete().Where(workerprofile.ID.EQ(id))}
}

// Query returns a query builder for WorkerProfile.
func (c *WorkerProfileClient) Query() *WorkerProfileQuery {
	return &WorkerProfileQuery{config: c.config, ctx: newQueryContext()}
}

// Get returns a WorkerProfile entity by its id.
func (c *WorkerProfileClient) Get(ctx context.Context, id int) (*WorkerProfile, error) {
	return c.Query().Where(workerprofile.ID.EQ(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WorkerProfileClient) GetX(ctx context.Context, id int) *WorkerProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// GetByIDCardNumber returns the WorkerProfile entity with the given unique
// id_card_number.
func (c *WorkerProfileClient) GetByIDCardNumber(ctx context.Context, idCardNumber string) (*WorkerProfile, error) {
	return c.Query().Where(workerprofile.IDCardNumber.EQ(idCardNumber)).Only(ctx)
}

// QueryUser queries the user edge of a WorkerProfile.
func (c *WorkerProfileClient) QueryUser(wp *WorkerProfile) *UserQuery {
	return NewUserClient(c.config).Query().
		Where(user.ID.EQ(wp.UserID))
}
