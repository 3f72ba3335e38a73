package http

import (
	"log/slog"
	"net/http"
	"strings"

	"receiptbook/internal/core"
)

type expensesPage struct {
	page
	Expenses     []core.Expense
	RunningTotal string
}

// handleExpenses lists expenses with their running total on GET and adds one
// on POST. The total is a fold over the stored set: credits add, debits
// subtract.
func (s *Server) handleExpenses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.renderExpenses(w, r, page{}, http.StatusOK)
	case http.MethodPost:
		s.handleCreateExpense(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) renderExpenses(w http.ResponseWriter, r *http.Request, shared page, status int) {
	p := expensesPage{page: s.viewerPage(r.Context())}
	p.Flash, p.Error = shared.Flash, shared.Error

	expenses, err := s.svc.ListExpenses(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List expenses failed", "error", err)
		http.Error(w, "store unavailable", http.StatusInternalServerError)
		return
	}
	p.RunningTotal = core.RunningTotal(expenses).String()
	// Presentation order: insertion key descending.
	for i := len(expenses) - 1; i >= 0; i-- {
		p.Expenses = append(p.Expenses, expenses[i])
	}

	if status != http.StatusOK {
		// Content-Type has to be in place before the status line goes out.
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
	}
	s.render(w, r, "expenses.html", p)
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	shared := s.viewerPage(r.Context())
	name := sanitizeInput(r.Form.Get("name"))
	op := core.Operation(strings.TrimSpace(r.Form.Get("operation")))

	paise, err := core.ParseDecimalToPaise(strings.TrimSpace(r.Form.Get("amount")))
	if err != nil {
		shared.Error = shared.T("error")
		s.renderExpenses(w, r, shared, http.StatusUnprocessableEntity)
		return
	}

	expense := core.Expense{
		Name:      name,
		Amount:    core.Money{Paise: paise},
		Operation: op,
	}
	if _, err := s.svc.CreateExpense(r.Context(), expense); err != nil {
		slog.ErrorContext(r.Context(), "Create expense failed", "error", err, "name", name)
		shared.Error = shared.T("error")
		s.renderExpenses(w, r, shared, http.StatusUnprocessableEntity)
		return
	}

	http.Redirect(w, r, "/expenses", http.StatusSeeOther)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	id, ok := formID(r, "id")
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err := s.svc.DeleteExpense(r.Context(), id); err != nil {
		slog.ErrorContext(r.Context(), "Delete expense failed", "error", err, "id", id)
		http.Error(w, "store unavailable", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/expenses", http.StatusSeeOther)
}
