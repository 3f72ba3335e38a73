package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"receiptbook/internal/core"
	"receiptbook/internal/export"
	"receiptbook/internal/services"
)

type receiptsPage struct {
	page
	Receipts []core.Receipt
	Today    string
	Query    string
}

// handleReceipts lists receipts (newest first) on GET and creates one on
// POST. A duplicate receipt number is rejected with 409 and the form can be
// retried; the stored set is untouched.
func (s *Server) handleReceipts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.renderReceipts(w, r, page{}, http.StatusOK)
	case http.MethodPost:
		s.handleCreateReceipt(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) renderReceipts(w http.ResponseWriter, r *http.Request, shared page, status int) {
	p := receiptsPage{
		page:  s.viewerPage(r.Context()),
		Today: time.Now().Format("2006-01-02"),
		Query: sanitizeInput(r.URL.Query().Get("q")),
	}
	p.Flash, p.Error = shared.Flash, shared.Error

	receipts, err := s.svc.ListReceipts(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List receipts failed", "error", err)
		http.Error(w, "store unavailable", http.StatusInternalServerError)
		return
	}
	// Presentation order: insertion key descending.
	for i := len(receipts) - 1; i >= 0; i-- {
		if !receiptMatches(receipts[i], p.Query) {
			continue
		}
		p.Receipts = append(p.Receipts, receipts[i])
	}

	if status != http.StatusOK {
		// Content-Type has to be in place before the status line goes out.
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
	}
	s.render(w, r, "receipts.html", p)
}

// receiptMatches reports whether a receipt matches the search term: a
// case-insensitive substring of the name or receipt number, or a raw
// substring of the date.
func receiptMatches(r core.Receipt, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(r.Name), q) ||
		strings.Contains(strings.ToLower(r.ReceiptNumber), q) ||
		strings.Contains(r.Date, query)
}

func (s *Server) handleCreateReceipt(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	shared := s.viewerPage(r.Context())
	name := sanitizeInput(r.Form.Get("name"))
	date := strings.TrimSpace(r.Form.Get("date"))
	number := sanitizeInput(r.Form.Get("receipt_number"))

	paise, err := core.ParseDecimalToPaise(strings.TrimSpace(r.Form.Get("amount")))
	if err != nil {
		shared.Error = shared.T("error")
		s.renderReceipts(w, r, shared, http.StatusUnprocessableEntity)
		return
	}

	receipt := core.Receipt{
		ReceiptNumber: number,
		Name:          name,
		Date:          date,
		Amount:        core.Money{Paise: paise},
		Language:      shared.Lang, // locale at creation time, fixed for exports
	}

	stored, err := s.svc.CreateReceipt(r.Context(), receipt)
	switch {
	case errors.Is(err, services.ErrDuplicateReceiptNumber):
		shared.Error = shared.T("receiptNumber") + ": " + number
		s.renderReceipts(w, r, shared, http.StatusConflict)
		return
	case err != nil:
		slog.ErrorContext(r.Context(), "Create receipt failed", "error", err, "name", name)
		shared.Error = shared.T("error")
		s.renderReceipts(w, r, shared, http.StatusUnprocessableEntity)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/receipts/pdf?id=%d", stored.ID), http.StatusSeeOther)
}

func (s *Server) handleDeleteReceipt(w http.ResponseWriter, r *http.Request) {
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
	// Idempotent: deleting an absent key is a no-op.
	if err := s.svc.DeleteReceipt(r.Context(), id); err != nil {
		slog.ErrorContext(r.Context(), "Delete receipt failed", "error", err, "id", id)
		http.Error(w, "store unavailable", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/receipts", http.StatusSeeOther)
}

// handleReceiptPDF downloads one receipt as a PDF. Labels come from the
// receipt's stored language, not the viewer's current one.
func (s *Server) handleReceiptPDF(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	id, ok := formID(r, "id")
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	receipt, err := s.svc.GetReceipt(r.Context(), id)
	if err != nil {
		slog.ErrorContext(r.Context(), "Get receipt failed", "error", err, "id", id)
		http.Error(w, "store unavailable", http.StatusInternalServerError)
		return
	}
	if receipt == nil {
		http.NotFound(w, r)
		return
	}

	profile, err := s.svc.GetAdminProfile(r.Context())
	if err != nil || profile == nil {
		slog.ErrorContext(r.Context(), "Load profile for PDF failed", "error", err)
		http.Error(w, "store unavailable", http.StatusInternalServerError)
		return
	}

	pdf, err := export.ReceiptPDF(*receipt, *profile)
	if err != nil {
		slog.ErrorContext(r.Context(), "Render receipt PDF failed", "error", err, "id", id)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=Receipt_%s.pdf", receipt.ReceiptNumber))
	_, _ = w.Write(pdf)
}

// handleReceiptsXLSX downloads the full receipt list as a spreadsheet in the
// viewer's current language.
func (s *Server) handleReceiptsXLSX(w http.ResponseWriter, r *http.Request) {
	shared := s.viewerPage(r.Context())

	receipts, err := s.svc.ListReceipts(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List receipts failed", "error", err)
		http.Error(w, "store unavailable", http.StatusInternalServerError)
		return
	}

	book, err := export.ReceiptsWorkbook(receipts, shared.Lang)
	if err != nil {
		slog.ErrorContext(r.Context(), "Render receipts workbook failed", "error", err)
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.WorkbookFilename(shared.Lang)))
	_, _ = w.Write(book)
}
