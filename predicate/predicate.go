// Package predicate defines the filter types used by the entity query
// builders.
package predicate

import (
	"labstore/dialect/sql"
)

// Company is the predicate function for company builders.
type Company func(*sql.Selector)

// DocumentRequest is the predicate function for documentrequest builders.
type DocumentRequest func(*sql.Selector)

// ReceiptAddress is the predicate function for receiptaddress builders.
type ReceiptAddress func(*sql.Selector)

// SampleList is the predicate function for samplelist builders.
type SampleList func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// WorkerProfile is the predicate function for workerprofile builders.
type WorkerProfile func(*sql.Selector)
