// Package services is the domain access layer: the only component other
// layers call for data. It is stateless request/response over the store,
// apart from the counter used for receipt number generation.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync/atomic"
	"time"

	"golang.org/x/crypto/bcrypt"

	"receiptbook/internal/core"
	"receiptbook/internal/storage"
)

// Re-exported so handlers only import this package for error checks.
var (
	ErrDuplicateReceiptNumber = storage.ErrDuplicateReceiptNumber
	ErrNotFound               = storage.ErrNotFound
)

// generateAttempts bounds the retry-with-new-token loop when an auto-generated
// receipt number collides with an existing one.
const generateAttempts = 3

type BookService struct {
	store *storage.Store

	// receiptSeq disambiguates receipt numbers generated within the same
	// millisecond; a bare timestamp collides under rapid successive creates.
	receiptSeq atomic.Int64
}

func NewBookService(store *storage.Store) *BookService {
	return &BookService{store: store}
}

// GetAdminProfile returns the administrator singleton, or (nil, nil) if the
// store was never seeded.
func (s *BookService) GetAdminProfile(ctx context.Context) (*core.AdminProfile, error) {
	p, err := s.store.GetAdmin(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateAdminProfile upserts the profile at the reserved key, ignoring any
// key on the input so the singleton invariant holds regardless of the caller.
// The stored password hash is preserved; password changes go through
// ChangePassword.
func (s *BookService) UpdateAdminProfile(ctx context.Context, p core.AdminProfile) error {
	p.ID = core.AdminID
	current, err := s.store.GetAdmin(ctx)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return err
	}
	if err == nil {
		p.Username = current.Username // immutable after seed
		if p.PasswordHash == "" {
			p.PasswordHash = current.PasswordHash
		}
	}
	if err := p.Validate(); err != nil {
		return err
	}
	return s.store.PutAdmin(ctx, p)
}

// Login compares credentials against the stored profile. A mismatch is a
// normal false outcome, not an error.
func (s *BookService) Login(ctx context.Context, username, password string) (bool, error) {
	p, err := s.store.GetAdmin(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if p.Username != username {
		return false, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)) != nil {
		return false, nil
	}
	return true, nil
}

// ChangePassword stores a bcrypt hash of the new password.
func (s *BookService) ChangePassword(ctx context.Context, newPassword string) error {
	if newPassword == "" {
		return errors.New("empty password")
	}
	p, err := s.store.GetAdmin(ctx)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	p.PasswordHash = string(hash)
	if err := s.store.PutAdmin(ctx, p); err != nil {
		return err
	}
	slog.InfoContext(ctx, "Administrator password updated")
	return nil
}

// SetLanguage updates only the preferred language on the profile.
func (s *BookService) SetLanguage(ctx context.Context, lang core.Language) error {
	if !lang.Valid() {
		return core.ErrInvalidLanguage
	}
	p, err := s.store.GetAdmin(ctx)
	if err != nil {
		return err
	}
	p.PreferredLanguage = lang
	return s.store.PutAdmin(ctx, p)
}

// ListReceipts returns all receipts in insertion order.
func (s *BookService) ListReceipts(ctx context.Context) ([]core.Receipt, error) {
	return s.store.ListReceipts(ctx)
}

// GetReceipt returns one receipt, or (nil, nil) when the key is absent.
func (s *BookService) GetReceipt(ctx context.Context, id int64) (*core.Receipt, error) {
	r, err := s.store.GetReceipt(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// CreateReceipt validates and stores a receipt. When the receipt number is
// empty a token is generated; if a generated token collides, a fresh one is
// tried a bounded number of times. A caller-supplied duplicate fails
// immediately with ErrDuplicateReceiptNumber and leaves the collection
// unchanged.
func (s *BookService) CreateReceipt(ctx context.Context, r core.Receipt) (core.Receipt, error) {
	r.ID = 0
	generated := r.ReceiptNumber == ""
	if generated {
		r.ReceiptNumber = s.GenerateReceiptNumber()
	}
	if err := r.Validate(); err != nil {
		return core.Receipt{}, err
	}

	for attempt := 0; ; attempt++ {
		stored, err := s.store.AddReceipt(ctx, r)
		if err == nil {
			return stored, nil
		}
		if !generated || !errors.Is(err, storage.ErrDuplicateReceiptNumber) || attempt+1 >= generateAttempts {
			return core.Receipt{}, err
		}
		slog.WarnContext(ctx, "Generated receipt number collided, retrying",
			"receipt_number", r.ReceiptNumber, "attempt", attempt+1)
		r.ReceiptNumber = s.GenerateReceiptNumber()
	}
}

// DeleteReceipt removes a receipt; deleting an absent key succeeds.
func (s *BookService) DeleteReceipt(ctx context.Context, id int64) error {
	return s.store.DeleteReceipt(ctx, id)
}

// ListExpenses returns all expenses in insertion order.
func (s *BookService) ListExpenses(ctx context.Context) ([]core.Expense, error) {
	return s.store.ListExpenses(ctx)
}

// CreateExpense validates and stores an expense.
func (s *BookService) CreateExpense(ctx context.Context, e core.Expense) (core.Expense, error) {
	e.ID = 0
	if e.Date == "" {
		e.Date = time.Now().Format("2006-01-02")
	}
	if err := e.Validate(); err != nil {
		return core.Expense{}, err
	}
	return s.store.AddExpense(ctx, e)
}

// DeleteExpense removes an expense; deleting an absent key succeeds.
func (s *BookService) DeleteExpense(ctx context.Context, id int64) error {
	return s.store.DeleteExpense(ctx, id)
}

// GenerateReceiptNumber returns a receipt number token combining the current
// timestamp with a process-wide counter, so bursts within one millisecond
// still produce distinct tokens.
func (s *BookService) GenerateReceiptNumber() string {
	seq := s.receiptSeq.Add(1)
	return "REC-" + strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + strconv.FormatInt(seq, 10)
}
