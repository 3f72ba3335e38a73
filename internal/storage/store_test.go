package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"receiptbook/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSeedAdmin(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p, err := s.GetAdmin(ctx)
	if err != nil {
		t.Fatalf("get admin: %v", err)
	}
	if p.ID != core.AdminID {
		t.Fatalf("admin key = %d, want %d", p.ID, core.AdminID)
	}
	if p.Username != "admin" {
		t.Fatalf("username = %q, want admin", p.Username)
	}
	if p.PreferredLanguage != core.English {
		t.Fatalf("language = %q, want en", p.PreferredLanguage)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte("google")); err != nil {
		t.Fatalf("default password hash does not verify: %v", err)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")

	s1, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	p1, err := s1.GetAdmin(ctx)
	if err != nil {
		t.Fatalf("get admin: %v", err)
	}
	s1.Close()

	// Reopen: migrations are a no-op and the admin is not reseeded.
	s2, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer s2.Close()
	p2, err := s2.GetAdmin(ctx)
	if err != nil {
		t.Fatalf("get admin after reopen: %v", err)
	}
	if p1.PasswordHash != p2.PasswordHash {
		t.Fatalf("admin reseeded on reopen")
	}
}

func TestPutAdminAlwaysTargetsSingleton(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"First", "Second", "Third"} {
		p, err := s.GetAdmin(ctx)
		if err != nil {
			t.Fatalf("get admin: %v", err)
		}
		p.Name = name
		p.ID = 99 // caller-supplied keys must be ignored
		if err := s.PutAdmin(ctx, p); err != nil {
			t.Fatalf("put admin: %v", err)
		}
	}

	p, err := s.GetAdmin(ctx)
	if err != nil {
		t.Fatalf("get admin: %v", err)
	}
	if p.ID != core.AdminID || p.Name != "Third" {
		t.Fatalf("got id=%d name=%q, want id=1 name=Third", p.ID, p.Name)
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM administrators`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("administrators count = %d, want 1", count)
	}
}

func TestAddAndListReceipts(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	numbers := []string{"REC-1", "REC-2", "REC-3"}
	for _, n := range numbers {
		r := core.Receipt{
			ReceiptNumber: n,
			Name:          "Shah",
			Date:          "2024-01-15",
			Amount:        core.Money{Paise: 500000},
			Language:      core.English,
		}
		stored, err := s.AddReceipt(ctx, r)
		if err != nil {
			t.Fatalf("add %s: %v", n, err)
		}
		if stored.ID == 0 {
			t.Fatalf("add %s: no key assigned", n)
		}
	}

	receipts, err := s.ListReceipts(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(receipts) != len(numbers) {
		t.Fatalf("got %d receipts, want %d", len(receipts), len(numbers))
	}
	seen := make(map[string]bool)
	keys := make(map[int64]bool)
	for _, r := range receipts {
		seen[r.ReceiptNumber] = true
		if keys[r.ID] {
			t.Fatalf("duplicate key %d", r.ID)
		}
		keys[r.ID] = true
	}
	for _, n := range numbers {
		if !seen[n] {
			t.Fatalf("missing receipt %s", n)
		}
	}
}

func TestDuplicateReceiptNumber(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	r := core.Receipt{
		ReceiptNumber: "REC-1",
		Name:          "Shah",
		Date:          "2024-01-15",
		Amount:        core.Money{Paise: 500000},
		Language:      core.English,
	}
	if _, err := s.AddReceipt(ctx, r); err != nil {
		t.Fatalf("first add: %v", err)
	}

	r.Name = "Patel"
	_, err := s.AddReceipt(ctx, r)
	if !errors.Is(err, ErrDuplicateReceiptNumber) {
		t.Fatalf("expected ErrDuplicateReceiptNumber, got %v", err)
	}

	// Collection unchanged: same cardinality, same contents.
	receipts, err := s.ListReceipts(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(receipts) != 1 {
		t.Fatalf("got %d receipts, want 1", len(receipts))
	}
	if receipts[0].Name != "Shah" || receipts[0].Amount.Paise != 500000 {
		t.Fatalf("existing receipt mutated: %+v", receipts[0])
	}
}

func TestDeleteReceiptIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	stored, err := s.AddReceipt(ctx, core.Receipt{
		ReceiptNumber: "REC-1",
		Name:          "Shah",
		Date:          "2024-01-15",
		Amount:        core.Money{Paise: 500000},
		Language:      core.English,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := s.DeleteReceipt(ctx, stored.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	receipts, err := s.ListReceipts(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, r := range receipts {
		if r.ID == stored.ID {
			t.Fatalf("receipt %d still listed after delete", stored.ID)
		}
	}

	// Deleting the same key again is a no-op, not an error.
	if err := s.DeleteReceipt(ctx, stored.ID); err != nil {
		t.Fatalf("second delete: %v", err)
	}

	// The freed number is usable again.
	if _, err := s.AddReceipt(ctx, core.Receipt{
		ReceiptNumber: "REC-1",
		Name:          "Patel",
		Date:          "2024-01-16",
		Amount:        core.Money{Paise: 100},
		Language:      core.English,
	}); err != nil {
		t.Fatalf("re-add after delete: %v", err)
	}
}

func TestGetReceiptNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.GetReceipt(context.Background(), 12345)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestExpensesCRUD(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	credit, err := s.AddExpense(ctx, core.Expense{
		Name:      "maintenance",
		Amount:    core.Money{Paise: 100000},
		Operation: core.Credit,
		Date:      "2024-01-15",
	})
	if err != nil {
		t.Fatalf("add credit: %v", err)
	}
	if _, err := s.AddExpense(ctx, core.Expense{
		Name:      "repair",
		Amount:    core.Money{Paise: 30000},
		Operation: core.Debit,
		Date:      "2024-01-16",
	}); err != nil {
		t.Fatalf("add debit: %v", err)
	}

	expenses, err := s.ListExpenses(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(expenses) != 2 {
		t.Fatalf("got %d expenses, want 2", len(expenses))
	}
	if got := core.RunningTotal(expenses); got.Paise != 70000 {
		t.Fatalf("running total = %d, want 70000", got.Paise)
	}

	if err := s.DeleteExpense(ctx, credit.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.DeleteExpense(ctx, credit.ID); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	expenses, err = s.ListExpenses(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(expenses) != 1 || expenses[0].Name != "repair" {
		t.Fatalf("unexpected expenses after delete: %+v", expenses)
	}
}
