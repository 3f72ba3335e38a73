package core

// TotalCollected sums all receipt amounts.
func TotalCollected(receipts []Receipt) Money {
	var total int64
	for _, r := range receipts {
		total += r.Amount.Paise
	}
	return Money{Paise: total}
}

// RunningTotal folds expenses into a signed total: credits add, debits
// subtract. Addition commutes, so the result does not depend on the order the
// expenses are listed in.
func RunningTotal(expenses []Expense) Money {
	var total int64
	for _, e := range expenses {
		if e.Operation == Debit {
			total -= e.Amount.Paise
		} else {
			total += e.Amount.Paise
		}
	}
	return Money{Paise: total}
}
