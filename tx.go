package labstore

import (
	"context"
	stdsql "database/sql"
	"errors"
	"sync"
	"time"

	"labstore/dialect"
)

// Tx is a transactional client. It exposes the same per-entity clients as
// Client, bound to one database transaction.
type Tx struct {
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

	tx   dialect.Tx
	once sync.Once
	done error
	// expire rolls back the transaction when the configured timeout passes.
	expire *time.Timer
}

// TxOptions holds the transaction options passed to Client.BeginTx.
type TxOptions struct {
	// Isolation is the transaction isolation level.
	// The driver default is used when zero.
	Isolation stdsql.IsolationLevel
	// ReadOnly marks the transaction as read-only.
	ReadOnly bool
	// AcquireTimeout bounds how long BeginTx waits for a transaction to
	// start, typically for a connection from the pool.
	AcquireTimeout time.Duration
	// Timeout rolls the transaction back if it has not been committed
	// within the given duration. Zero means no limit.
	Timeout time.Duration
}

// Tx returns a new transactional client. The provided context is used until
// the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	return c.BeginTx(ctx, nil)
}

// beginner is implemented by drivers that support transaction options,
// e.g. the database/sql-backed driver.
type beginner interface {
	BeginTx(context.Context, *stdsql.TxOptions) (dialect.Tx, error)
}

// BeginTx returns a transactional client with the given options.
func (c *Client) BeginTx(ctx context.Context, opts *TxOptions) (*Tx, error) {
	if inTx(c.driver) {
		return nil, ErrTxStarted
	}
	begin := func() (dialect.Tx, error) {
		if b, ok := c.driver.(beginner); ok && opts != nil && (opts.Isolation != stdsql.LevelDefault || opts.ReadOnly) {
			return b.BeginTx(ctx, &stdsql.TxOptions{Isolation: opts.Isolation, ReadOnly: opts.ReadOnly})
		}
		return c.driver.Tx(ctx)
	}
	var (
		tx  dialect.Tx
		err error
	)
	if opts != nil && opts.AcquireTimeout > 0 {
		tx, err = beginTimeout(begin, opts.AcquireTimeout)
	} else {
		tx, err = begin()
	}
	if err != nil {
		return nil, err
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	t := &Tx{config: cfg, tx: tx}
	t.init()
	if opts != nil && opts.Timeout > 0 {
		t.expire = time.AfterFunc(opts.Timeout, func() {
			t.once.Do(func() {
				_ = t.tx.Rollback()
				t.done = ErrTxTimedOut
			})
		})
	}
	return t, nil
}

// beginTimeout bounds transaction acquisition without binding the timeout
// to the transaction lifetime. A transaction that arrives after the
// deadline is rolled back.
func beginTimeout(begin func() (dialect.Tx, error), timeout time.Duration) (dialect.Tx, error) {
	type result struct {
		tx  dialect.Tx
		err error
	}
	ch := make(chan result, 1)
	go func() {
		tx, err := begin()
		ch <- result{tx, err}
	}()
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case r := <-ch:
		return r.tx, r.err
	case <-timer.C:
		go func() {
			if r := <-ch; r.tx != nil {
				_ = r.tx.Rollback()
			}
		}()
		return nil, errors.New("labstore: acquiring transaction: timeout")
	}
}

func (tx *Tx) init() {
	tx.Company = NewCompanyClient(tx.config)
	tx.DocumentRequest = NewDocumentRequestClient(tx.config)
	tx.ReceiptAddress = NewReceiptAddressClient(tx.config)
	tx.SampleList = NewSampleListClient(tx.config)
	tx.User = NewUserClient(tx.config)
	tx.WorkerProfile = NewWorkerProfileClient(tx.config)
}

// Commit commits the transaction. Calling Commit or Rollback more than once
// returns the result of the first call.
func (tx *Tx) Commit() error {
	tx.once.Do(func() {
		tx.stopExpire()
		tx.done = tx.tx.Commit()
	})
	return tx.done
}

// Rollback rolls back the transaction.
func (tx *Tx) Rollback() error {
	tx.once.Do(func() {
		tx.stopExpire()
		tx.done = tx.tx.Rollback()
	})
	return tx.done
}

func (tx *Tx) stopExpire() {
	if tx.expire != nil {
		tx.expire.Stop()
	}
}

// Client returns a Client that binds to the current transaction.
func (tx *Tx) Client() *Client {
	client := &Client{config: tx.config}
	client.init()
	return client
}

// WithTx runs the callback in a transaction, committing if it returns nil
// and rolling back otherwise. Panics inside the callback roll back before
// re-panicking.
func (c *Client) WithTx(ctx context.Context, fn func(tx *Tx) error) error {
	tx, err := c.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(tx); err != nil {
		return rollback(tx, err)
	}
	return tx.Commit()
}

// txDriver wraps the given dialect.Tx as a dialect.Driver, binding all
// builder operations derived from it to one running transaction.
type txDriver struct {
	// the driver we started the transaction from.
	drv dialect.Driver
	// tx is the underlying transaction.
	tx dialect.Tx
}

// Tx returns ErrTxStarted. A transaction cannot be nested.
func (tx *txDriver) Tx(context.Context) (dialect.Tx, error) {
	return nil, ErrTxStarted
}

// Dialect returns the dialect of the underlying driver.
func (tx *txDriver) Dialect() string { return tx.drv.Dialect() }

// Close is a no-op; the transaction owner closes via Commit or Rollback.
func (*txDriver) Close() error { return nil }

// Exec executes a statement within the transaction.
func (tx *txDriver) Exec(ctx context.Context, query string, args, v any) error {
	return tx.tx.Exec(ctx, query, args, v)
}

// Query executes a query within the transaction.
func (tx *txDriver) Query(ctx context.Context, query string, args, v any) error {
	return tx.tx.Query(ctx, query, args, v)
}

var _ dialect.Driver = (*txDriver)(nil)
