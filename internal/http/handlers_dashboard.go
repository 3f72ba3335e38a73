package http

import (
	"log/slog"
	"net/http"

	"receiptbook/internal/core"
)

type dashboardPage struct {
	page
	Welcome        string
	ReceiptCount   int
	TotalAmount    string
	RecentReceipts []core.Receipt
}

// handleDashboard shows the receipt count, the total collected amount and
// recent receipts. Both aggregates are recomputed from the store on every
// fetch; nothing is cached.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	p := dashboardPage{page: s.viewerPage(r.Context())}

	profile, err := s.svc.GetAdminProfile(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Load profile failed", "error", err)
		http.Error(w, "store unavailable", http.StatusInternalServerError)
		return
	}
	if profile != nil {
		p.Welcome = profile.Name
	}

	receipts, err := s.svc.ListReceipts(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "List receipts failed", "error", err)
		http.Error(w, "store unavailable", http.StatusInternalServerError)
		return
	}

	p.ReceiptCount = len(receipts)
	p.TotalAmount = core.TotalCollected(receipts).String()

	// Newest first, capped at five.
	for i := len(receipts) - 1; i >= 0 && len(p.RecentReceipts) < 5; i-- {
		p.RecentReceipts = append(p.RecentReceipts, receipts[i])
	}

	s.render(w, r, "dashboard.html", p)
}
