package compliance

import (
	"context"
	"errors"
	"fmt"
)

// Payload field names. The first four are required on every submission;
// the timestamps are assigned by the server at creation time.
const (
	// FieldTransactionID is the unique record key, supplied by the caller.
	FieldTransactionID = "transaction_id"

	// FieldAmount is the transaction amount. Presence is required but the
	// value is not type-checked.
	FieldAmount = "amount"

	// FieldTimestamp is the caller-supplied transaction timestamp. The
	// format is not validated.
	FieldTimestamp = "timestamp"

	// FieldStatus is the free-form compliance status.
	FieldStatus = "status"

	// FieldCreatedAt is assigned by the server when the record is created.
	FieldCreatedAt = "created_at"

	// FieldLastModified is assigned at creation. No update operation
	// exists, so it is never touched afterwards.
	FieldLastModified = "last_modified"
)

// StatusCompliant is the status value counted toward the compliance rate.
const StatusCompliant = "compliant"

// StatusUnknown buckets records that carry no status value in the report
// breakdown. Validation makes this unreachable for records accepted over
// the API.
const StatusUnknown = "unknown"

// ErrNotFound is returned when the referenced transaction id is not in the
// store.
var ErrNotFound = errors.New("transaction not found")

// ErrMissingID is returned when a record whose transaction_id is absent
// or not a string is handed to the store. An empty string is a valid id.
var ErrMissingID = errors.New("transaction id is required")

// Transaction is one compliance transaction record. Records are
// schemaless: the submitted payload is preserved verbatim, with
// created_at/last_modified merged in at creation time.
type Transaction map[string]any

// ID returns the transaction_id field, or "" when it is absent or not a
// string.
func (t Transaction) ID() string {
	id, _ := t[FieldTransactionID].(string)
	return id
}

// Status returns the status field as the report bucket it falls into:
// the string value itself, StatusUnknown when absent, or the value's
// string form when it is some other JSON type.
func (t Transaction) Status() string {
	v, ok := t[FieldStatus]
	if !ok {
		return StatusUnknown
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Clone returns a shallow copy of the record.
func (t Transaction) Clone() Transaction {
	cp := make(Transaction, len(t))
	for k, v := range t {
		cp[k] = v
	}
	return cp
}

// Store defines the interface for keeping transaction records.
// The in-memory implementation lives in the inmemory package; the
// abstraction leaves room for a database-backed store later.
type Store interface {
	// Put saves a record keyed by its transaction id, silently replacing
	// any existing record with the same id.
	Put(ctx context.Context, tx Transaction) error

	// Get retrieves a record by id. Returns ErrNotFound when absent.
	Get(ctx context.Context, id string) (Transaction, error)

	// List returns all records in store-defined order.
	List(ctx context.Context) ([]Transaction, error)

	// Delete removes a record by id. Returns ErrNotFound when absent.
	Delete(ctx context.Context, id string) error
}
