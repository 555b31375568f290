package inmemory

import (
	"context"
	"errors"
	"testing"

	"github.com/tbrown320/compliance-cicd-pipeline/internal/compliance"
)

func testTx(id string) compliance.Transaction {
	return compliance.Transaction{
		compliance.FieldTransactionID: id,
		compliance.FieldAmount:        100.0,
		compliance.FieldTimestamp:     "2025-01-29T10:00:00",
		compliance.FieldStatus:        "compliant",
	}
}

func TestStore_PutAndGet(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	if err := store.Put(ctx, testTx("TXN001")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := store.Get(ctx, "TXN001")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ID() != "TXN001" {
		t.Errorf("got ID %q, want %q", got.ID(), "TXN001")
	}
	if got[compliance.FieldAmount] != 100.0 {
		t.Errorf("got amount %v, want 100.0", got[compliance.FieldAmount])
	}
}

func TestStore_Put_MissingID(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	err := store.Put(ctx, compliance.Transaction{
		compliance.FieldAmount: 10.0,
	})
	if !errors.Is(err, compliance.ErrMissingID) {
		t.Errorf("Put without id error = %v, want ErrMissingID", err)
	}

	err = store.Put(ctx, compliance.Transaction{
		compliance.FieldTransactionID: 42,
		compliance.FieldAmount:        10.0,
	})
	if !errors.Is(err, compliance.ErrMissingID) {
		t.Errorf("Put with non-string id error = %v, want ErrMissingID", err)
	}
}

func TestStore_Put_EmptyStringID(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	// The empty string is a legal map key; presence is the only gate.
	if err := store.Put(ctx, testTx("")); err != nil {
		t.Fatalf("Put with empty id failed: %v", err)
	}

	got, err := store.Get(ctx, "")
	if err != nil {
		t.Fatalf("Get with empty id failed: %v", err)
	}
	if got.Status() != "compliant" {
		t.Errorf("got status %q, want %q", got.Status(), "compliant")
	}
}

func TestStore_Put_OverwritesExisting(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	first := testTx("TXN001")
	if err := store.Put(ctx, first); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	second := testTx("TXN001")
	second[compliance.FieldStatus] = "flagged"
	if err := store.Put(ctx, second); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := store.Get(ctx, "TXN001")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Status() != "flagged" {
		t.Errorf("got status %q, want %q (last writer wins)", got.Status(), "flagged")
	}

	records, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("got %d records after overwrite, want 1", len(records))
	}
}

func TestStore_Get_NotFound(t *testing.T) {
	store := NewStore()

	_, err := store.Get(context.Background(), "NONEXISTENT")
	if !errors.Is(err, compliance.ErrNotFound) {
		t.Errorf("Get error = %v, want ErrNotFound", err)
	}
}

func TestStore_Get_ReturnsCopy(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	if err := store.Put(ctx, testTx("TXN001")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := store.Get(ctx, "TXN001")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	got[compliance.FieldStatus] = "tampered"

	again, err := store.Get(ctx, "TXN001")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if again.Status() != "compliant" {
		t.Errorf("stored record was mutated through a returned copy: %v", again)
	}
}

func TestStore_List(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	records, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records from empty store, want 0", len(records))
	}

	for _, id := range []string{"TXN001", "TXN002", "TXN003"} {
		if err := store.Put(ctx, testTx(id)); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}

	records, err = store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	seen := make(map[string]bool)
	for _, tx := range records {
		seen[tx.ID()] = true
	}
	for _, id := range []string{"TXN001", "TXN002", "TXN003"} {
		if !seen[id] {
			t.Errorf("List is missing record %q", id)
		}
	}
}

func TestStore_Delete(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	if err := store.Put(ctx, testTx("TXN001")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	if err := store.Delete(ctx, "TXN001"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	_, err := store.Get(ctx, "TXN001")
	if !errors.Is(err, compliance.ErrNotFound) {
		t.Errorf("Get after Delete error = %v, want ErrNotFound", err)
	}

	if err := store.Delete(ctx, "TXN001"); !errors.Is(err, compliance.ErrNotFound) {
		t.Errorf("second Delete error = %v, want ErrNotFound", err)
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			_ = store.Put(ctx, testTx("TXN-A"))
			_, _ = store.List(ctx)
		}
	}()

	for i := 0; i < 100; i++ {
		_ = store.Put(ctx, testTx("TXN-B"))
		_, _ = store.Get(ctx, "TXN-A")
		_ = store.Delete(ctx, "TXN-B")
	}
	<-done
}
