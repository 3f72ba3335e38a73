package core

import (
	"math/rand"
	"testing"
)

func TestRunningTotal(t *testing.T) {
	expenses := []Expense{
		{Name: "maintenance", Amount: Money{Paise: 100000}, Operation: Credit, Date: "2024-01-01"},
		{Name: "repair", Amount: Money{Paise: 30000}, Operation: Debit, Date: "2024-01-02"},
	}
	if got := RunningTotal(expenses); got.Paise != 70000 {
		t.Fatalf("got %d paise, want 70000", got.Paise)
	}
}

func TestRunningTotalOrderIndependent(t *testing.T) {
	expenses := []Expense{
		{Amount: Money{Paise: 500}, Operation: Credit},
		{Amount: Money{Paise: 1200}, Operation: Debit},
		{Amount: Money{Paise: 900}, Operation: Credit},
		{Amount: Money{Paise: 50}, Operation: Debit},
		{Amount: Money{Paise: 10000}, Operation: Credit},
	}
	want := RunningTotal(expenses).Paise

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := make([]Expense, len(expenses))
		copy(shuffled, expenses)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		if got := RunningTotal(shuffled).Paise; got != want {
			t.Fatalf("permutation %d: got %d, want %d", i, got, want)
		}
	}
}

func TestTotalCollected(t *testing.T) {
	receipts := []Receipt{
		{Amount: Money{Paise: 500000}},
		{Amount: Money{Paise: 123400}},
	}
	if got := TotalCollected(receipts); got.Paise != 623400 {
		t.Fatalf("got %d paise, want 623400", got.Paise)
	}
	if got := TotalCollected(nil); got.Paise != 0 {
		t.Fatalf("empty set: got %d, want 0", got.Paise)
	}
}
