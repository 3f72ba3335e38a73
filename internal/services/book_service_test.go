package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"receiptbook/internal/core"
	"receiptbook/internal/storage"
)

func newTestService(t *testing.T) *BookService {
	t.Helper()
	store, err := storage.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewBookService(store)
}

func TestLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		username, password string
		want               bool
	}{
		{"admin", "google", true},
		{"admin", "wrong", false},
		{"root", "google", false},
		{"", "", false},
	}
	for i, tc := range cases {
		got, err := svc.Login(ctx, tc.username, tc.password)
		if err != nil {
			t.Fatalf("case %d: %v", i, err)
		}
		if got != tc.want {
			t.Fatalf("case %d (%s/%s): got %v, want %v", i, tc.username, tc.password, got, tc.want)
		}
	}
}

func TestChangePassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.ChangePassword(ctx, "new-secret"); err != nil {
		t.Fatalf("change password: %v", err)
	}

	if ok, _ := svc.Login(ctx, "admin", "google"); ok {
		t.Fatalf("old password still accepted")
	}
	if ok, _ := svc.Login(ctx, "admin", "new-secret"); !ok {
		t.Fatalf("new password rejected")
	}

	if err := svc.ChangePassword(ctx, ""); err == nil {
		t.Fatalf("expected error for empty password")
	}
}

func TestUpdateAdminProfileForcesSingleton(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	update := core.AdminProfile{
		ID:                42, // must be ignored
		Username:          "hijack",
		Name:              "Yash Pathak",
		BlockNumber:       "B-204",
		Signature:         "data:image/png;base64,iVBORw0KGgo=",
		PreferredLanguage: core.Gujarati,
	}
	if err := svc.UpdateAdminProfile(ctx, update); err != nil {
		t.Fatalf("update: %v", err)
	}

	p, err := svc.GetAdminProfile(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p == nil {
		t.Fatalf("profile absent after update")
	}
	if p.ID != core.AdminID {
		t.Fatalf("profile key = %d, want %d", p.ID, core.AdminID)
	}
	if p.Username != "admin" {
		t.Fatalf("username changed to %q; it is immutable after seed", p.Username)
	}
	if p.Name != "Yash Pathak" || p.BlockNumber != "B-204" || p.PreferredLanguage != core.Gujarati {
		t.Fatalf("update not applied: %+v", p)
	}
	if p.PasswordHash == "" {
		t.Fatalf("password hash lost on profile update")
	}

	// Password still works after a profile-only update.
	if ok, _ := svc.Login(ctx, "admin", "google"); !ok {
		t.Fatalf("login broken after profile update")
	}
}

func TestCreateReceiptWithSuppliedNumber(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	stored, err := svc.CreateReceipt(ctx, core.Receipt{
		ReceiptNumber: "REC-1",
		Name:          "Shah",
		Date:          "2024-01-15",
		Amount:        core.Money{Paise: 500000},
		Language:      core.English,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if stored.ID == 0 || stored.ReceiptNumber != "REC-1" {
		t.Fatalf("unexpected stored receipt: %+v", stored)
	}

	// Same number again: rejected, collection unchanged.
	_, err = svc.CreateReceipt(ctx, core.Receipt{
		ReceiptNumber: "REC-1",
		Name:          "Patel",
		Date:          "2024-01-16",
		Amount:        core.Money{Paise: 100},
		Language:      core.English,
	})
	if !errors.Is(err, ErrDuplicateReceiptNumber) {
		t.Fatalf("expected ErrDuplicateReceiptNumber, got %v", err)
	}
	receipts, err := svc.ListReceipts(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(receipts) != 1 {
		t.Fatalf("got %d receipts, want 1", len(receipts))
	}
}

func TestCreateReceiptGeneratesNumber(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	stored, err := svc.CreateReceipt(ctx, core.Receipt{
		Name:     "Shah",
		Date:     "2024-01-15",
		Amount:   core.Money{Paise: 500000},
		Language: core.English,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if stored.ReceiptNumber == "" {
		t.Fatalf("no receipt number generated")
	}
}

func TestGenerateReceiptNumberDistinctUnderBurst(t *testing.T) {
	svc := newTestService(t)
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		n := svc.GenerateReceiptNumber()
		if seen[n] {
			t.Fatalf("duplicate generated number %q at iteration %d", n, i)
		}
		seen[n] = true
	}
}

func TestCreateReceiptBurstAllStored(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	const n = 50
	for i := 0; i < n; i++ {
		if _, err := svc.CreateReceipt(ctx, core.Receipt{
			Name:     "Member",
			Date:     "2024-01-15",
			Amount:   core.Money{Paise: 100},
			Language: core.English,
		}); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}
	receipts, err := svc.ListReceipts(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(receipts) != n {
		t.Fatalf("got %d receipts, want %d", len(receipts), n)
	}
}

func TestDeleteReceiptIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	stored, err := svc.CreateReceipt(ctx, core.Receipt{
		Name:     "Shah",
		Date:     "2024-01-15",
		Amount:   core.Money{Paise: 100},
		Language: core.English,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.DeleteReceipt(ctx, stored.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteReceipt(ctx, stored.ID); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	got, err := svc.GetReceipt(ctx, stored.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatalf("receipt still present after delete")
	}
}

func TestSetLanguage(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.SetLanguage(ctx, core.Hindi); err != nil {
		t.Fatalf("set language: %v", err)
	}
	p, err := svc.GetAdminProfile(ctx)
	if err != nil || p == nil {
		t.Fatalf("get profile: %v", err)
	}
	if p.PreferredLanguage != core.Hindi {
		t.Fatalf("language = %q, want hi", p.PreferredLanguage)
	}
	if err := svc.SetLanguage(ctx, core.Language("xx")); err == nil {
		t.Fatalf("expected error for invalid language")
	}
}
