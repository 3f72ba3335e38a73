// Package storage is the persistence store: a local SQLite database holding
// the administrators, receipts and expenses collections. Schema changes go
// through versioned migrations; the receipt number uniqueness constraint
// lives in the receipts unique index, not in application checks.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"receiptbook/internal/core"

	_ "modernc.org/sqlite"
)

// Seed values for the administrator singleton on first boot.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "google"
	defaultAdminName     = "Default Admin"
	defaultAdminBlock    = "A-101"
)

var (
	// ErrNotFound is returned by point reads of absent keys. Deletes of
	// absent keys are not errors.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateReceiptNumber is returned when an insert collides with the
	// unique receipt number index. The collection is left unchanged.
	ErrDuplicateReceiptNumber = errors.New("receipt number already exists")
)

// Store owns the single database handle. Each method is one atomic
// statement against one collection; there are no multi-step transactions.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at dbPath, applies pending
// migrations and seeds the default administrator when the collection is
// empty. Safe to call on every process start.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	s := &Store{db: db}
	if err := s.seedAdmin(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed administrator: %w", err)
	}

	return s, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// seedAdmin inserts the default administrator at the reserved key when the
// collection is empty, so the singleton exists from first boot. The default
// password is stored as a bcrypt hash, never as plain text.
func (s *Store) seedAdmin(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM administrators`).Scan(&count); err != nil {
		return fmt.Errorf("count administrators: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash default password: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO administrators (id, username, password_hash, name, block_number, signature, preferred_language)
		 VALUES (?, ?, ?, ?, ?, '', ?)`,
		core.AdminID, DefaultAdminUsername, string(hash), defaultAdminName, defaultAdminBlock, string(core.English))
	if err != nil {
		return fmt.Errorf("insert default administrator: %w", err)
	}

	slog.InfoContext(ctx, "Seeded default administrator", "username", DefaultAdminUsername)
	return nil
}

// GetAdmin returns the administrator singleton, or ErrNotFound if the store
// was never seeded. Post-initialization that is a defensive case only.
func (s *Store) GetAdmin(ctx context.Context) (core.AdminProfile, error) {
	var p core.AdminProfile
	var lang string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, name, block_number, signature, preferred_language
		 FROM administrators WHERE id = ?`, core.AdminID).
		Scan(&p.ID, &p.Username, &p.PasswordHash, &p.Name, &p.BlockNumber, &p.Signature, &lang)
	if errors.Is(err, sql.ErrNoRows) {
		return core.AdminProfile{}, ErrNotFound
	}
	if err != nil {
		return core.AdminProfile{}, fmt.Errorf("get administrator: %w", err)
	}
	p.PreferredLanguage = core.ParseLanguage(lang)
	return p, nil
}

// PutAdmin upserts the administrator at the reserved key. Any key on the
// input is ignored, so callers cannot create a second profile.
func (s *Store) PutAdmin(ctx context.Context, p core.AdminProfile) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO administrators (id, username, password_hash, name, block_number, signature, preferred_language)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		   username = excluded.username,
		   password_hash = excluded.password_hash,
		   name = excluded.name,
		   block_number = excluded.block_number,
		   signature = excluded.signature,
		   preferred_language = excluded.preferred_language`,
		core.AdminID, p.Username, p.PasswordHash, p.Name, p.BlockNumber, p.Signature, string(p.PreferredLanguage))
	if err != nil {
		return fmt.Errorf("put administrator: %w", err)
	}
	return nil
}

// ListReceipts returns all receipts in insertion (key) order. Presentation
// ordering is the caller's choice.
func (s *Store) ListReceipts(ctx context.Context) ([]core.Receipt, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, receipt_number, name, date, amount_paise, language FROM receipts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	defer rows.Close()

	var receipts []core.Receipt
	for rows.Next() {
		var r core.Receipt
		var lang string
		if err := rows.Scan(&r.ID, &r.ReceiptNumber, &r.Name, &r.Date, &r.Amount.Paise, &lang); err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		r.Language = core.ParseLanguage(lang)
		receipts = append(receipts, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate receipts: %w", err)
	}
	return receipts, nil
}

// GetReceipt returns one receipt by key, or ErrNotFound.
func (s *Store) GetReceipt(ctx context.Context, id int64) (core.Receipt, error) {
	var r core.Receipt
	var lang string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, receipt_number, name, date, amount_paise, language FROM receipts WHERE id = ?`, id).
		Scan(&r.ID, &r.ReceiptNumber, &r.Name, &r.Date, &r.Amount.Paise, &lang)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Receipt{}, ErrNotFound
	}
	if err != nil {
		return core.Receipt{}, fmt.Errorf("get receipt: %w", err)
	}
	r.Language = core.ParseLanguage(lang)
	return r, nil
}

// AddReceipt inserts a receipt and returns it with its assigned key.
// A receipt number collision returns ErrDuplicateReceiptNumber.
func (s *Store) AddReceipt(ctx context.Context, r core.Receipt) (core.Receipt, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO receipts (receipt_number, name, date, amount_paise, language) VALUES (?, ?, ?, ?, ?)`,
		r.ReceiptNumber, r.Name, r.Date, r.Amount.Paise, string(r.Language))
	if err != nil {
		if isUniqueViolation(err) {
			return core.Receipt{}, fmt.Errorf("%w: %s", ErrDuplicateReceiptNumber, r.ReceiptNumber)
		}
		return core.Receipt{}, fmt.Errorf("add receipt: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.Receipt{}, fmt.Errorf("receipt insert id: %w", err)
	}
	r.ID = id

	slog.InfoContext(ctx, "Receipt saved",
		"id", r.ID,
		"receipt_number", r.ReceiptNumber,
		"name", r.Name,
		"amount_paise", r.Amount.Paise)
	return r, nil
}

// DeleteReceipt removes a receipt by key. Deleting an absent key is a no-op.
func (s *Store) DeleteReceipt(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM receipts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete receipt: %w", err)
	}
	return nil
}

// ListExpenses returns all expenses in insertion (key) order.
func (s *Store) ListExpenses(ctx context.Context) ([]core.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, amount_paise, operation, date FROM expenses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []core.Expense
	for rows.Next() {
		var e core.Expense
		var op string
		if err := rows.Scan(&e.ID, &e.Name, &e.Amount.Paise, &op, &e.Date); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		e.Operation = core.Operation(op)
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}
	return expenses, nil
}

// AddExpense inserts an expense and returns it with its assigned key.
func (s *Store) AddExpense(ctx context.Context, e core.Expense) (core.Expense, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO expenses (name, amount_paise, operation, date) VALUES (?, ?, ?, ?)`,
		e.Name, e.Amount.Paise, string(e.Operation), e.Date)
	if err != nil {
		return core.Expense{}, fmt.Errorf("add expense: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.Expense{}, fmt.Errorf("expense insert id: %w", err)
	}
	e.ID = id

	slog.InfoContext(ctx, "Expense saved",
		"id", e.ID,
		"name", e.Name,
		"operation", string(e.Operation),
		"amount_paise", e.Amount.Paise)
	return e, nil
}

// DeleteExpense removes an expense by key. Deleting an absent key is a no-op.
func (s *Store) DeleteExpense(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	return nil
}

// isUniqueViolation recognizes a unique index collision from the sqlite
// driver. The driver wraps SQLITE_CONSTRAINT_UNIQUE in its error text.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
