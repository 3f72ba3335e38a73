package core

import "testing"

func TestValidateDate(t *testing.T) {
	cases := []struct {
		s  string
		ok bool
	}{
		{"2024-01-15", true},
		{"2024-12-31", true},
		{"2024-02-30", false},
		{"15-01-2024", false},
		{"", false},
	}
	for i, tc := range cases {
		err := ValidateDate(tc.s)
		if tc.ok && err != nil {
			t.Fatalf("case %d expected ok, got %v", i, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestParseLanguage(t *testing.T) {
	cases := []struct {
		in   string
		want Language
	}{
		{"en", English},
		{"gu", Gujarati},
		{"HI", Hindi},
		{" en ", English},
		{"fr", English},
		{"", English},
	}
	for i, tc := range cases {
		if got := ParseLanguage(tc.in); got != tc.want {
			t.Fatalf("case %d: got %q, want %q", i, got, tc.want)
		}
	}
}

func TestReceiptValidate(t *testing.T) {
	good := Receipt{
		ReceiptNumber: "REC-1",
		Name:          "Shah",
		Date:          "2024-01-15",
		Amount:        Money{Paise: 500000},
		Language:      English,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Receipt{
		{Name: "", Date: "2024-01-15", Amount: Money{Paise: 1}, Language: English},
		{Name: "a", Date: "bad", Amount: Money{Paise: 1}, Language: English},
		{Name: "a", Date: "2024-01-15", Amount: Money{Paise: 0}, Language: English},
		{Name: "a", Date: "2024-01-15", Amount: Money{Paise: 1}, Language: "xx"},
	}
	for i, r := range bads {
		if err := r.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestExpenseValidate(t *testing.T) {
	good := Expense{
		Name:      "Paint",
		Amount:    Money{Paise: 100000},
		Operation: Credit,
		Date:      "2024-01-15",
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Expense{
		{Name: "", Amount: Money{Paise: 1}, Operation: Credit, Date: "2024-01-15"},
		{Name: "a", Amount: Money{Paise: 0}, Operation: Credit, Date: "2024-01-15"},
		{Name: "a", Amount: Money{Paise: 1}, Operation: "multiply", Date: "2024-01-15"},
		{Name: "a", Amount: Money{Paise: 1}, Operation: Debit, Date: ""},
	}
	for i, e := range bads {
		if err := e.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestAdminProfileValidate(t *testing.T) {
	good := AdminProfile{
		Username:          "admin",
		Name:              "Default Admin",
		PreferredLanguage: English,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	withSig := good
	withSig.Signature = "data:image/png;base64,iVBORw0KGgo="
	if err := withSig.Validate(); err != nil {
		t.Fatalf("expected ok with data URI signature, got %v", err)
	}

	badSig := good
	badSig.Signature = "http://example.com/sig.png"
	if err := badSig.Validate(); err == nil {
		t.Fatalf("expected error for non data URI signature")
	}

	noName := good
	noName.Name = " "
	if err := noName.Validate(); err == nil {
		t.Fatalf("expected error for blank name")
	}
}
