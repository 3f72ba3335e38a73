package core

import (
	"errors"
	"strings"
	"time"
)

const (
	English  Language = "en"
	Gujarati Language = "gu"
	Hindi    Language = "hi"
)

const (
	Credit Operation = "credit"
	Debit  Operation = "debit"
)

// AdminID is the reserved key of the administrator singleton. All profile
// reads and writes target this key.
const AdminID int64 = 1

type (
	// Language is a supported locale code.
	Language string

	// Operation determines the sign of an expense in the running total.
	Operation string

	// AdminProfile is the single administrator record. The password is held
	// as a bcrypt hash, never as plain text.
	AdminProfile struct {
		ID                int64
		Username          string
		PasswordHash      string
		Name              string
		BlockNumber       string
		Signature         string // image data URI, empty when not drawn yet
		PreferredLanguage Language
	}

	Receipt struct {
		ID            int64
		ReceiptNumber string
		Name          string
		Date          string // YYYY-MM-DD
		Amount        Money
		Language      Language // locale the receipt was issued in, fixed at creation
	}

	Expense struct {
		ID        int64
		Name      string
		Amount    Money
		Operation Operation
		Date      string // YYYY-MM-DD
	}
)

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyName        = errors.New("empty name")
	ErrEmptyUsername    = errors.New("empty username")
	ErrInvalidLanguage  = errors.New("invalid language")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrInvalidSignature = errors.New("signature must be an image data URI")
)

func (l Language) Valid() bool {
	switch l {
	case English, Gujarati, Hindi:
		return true
	}
	return false
}

// ParseLanguage maps a locale code to a Language, defaulting to English for
// anything unknown.
func ParseLanguage(s string) Language {
	l := Language(strings.ToLower(strings.TrimSpace(s)))
	if !l.Valid() {
		return English
	}
	return l
}

func (o Operation) Valid() bool {
	return o == Credit || o == Debit
}

// ValidateDate checks that s is a real calendar date in YYYY-MM-DD form.
func ValidateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return ErrInvalidDate
	}
	return nil
}

func (p AdminProfile) Validate() error {
	if strings.TrimSpace(p.Username) == "" {
		return ErrEmptyUsername
	}
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if !p.PreferredLanguage.Valid() {
		return ErrInvalidLanguage
	}
	if p.Signature != "" && !strings.HasPrefix(p.Signature, "data:image/") {
		return ErrInvalidSignature
	}
	return nil
}

func (r Receipt) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyName
	}
	if len(r.Name) > 200 {
		return errors.New("name too long (max 200 characters)")
	}
	if err := ValidateDate(r.Date); err != nil {
		return err
	}
	if err := r.Amount.Validate(); err != nil {
		return err
	}
	if !r.Language.Valid() {
		return ErrInvalidLanguage
	}
	return nil
}

func (e Expense) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return ErrEmptyName
	}
	if len(e.Name) > 200 {
		return errors.New("name too long (max 200 characters)")
	}
	if err := ValidateDate(e.Date); err != nil {
		return err
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if !e.Operation.Valid() {
		return ErrInvalidOperation
	}
	return nil
}
