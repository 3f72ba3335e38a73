package http

import (
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"receiptbook/internal/core"
)

type profilePage struct {
	page
	Profile *core.AdminProfile
}

// SignatureURL marks the stored data URI as a safe image source; the profile
// update path already validated the data:image/ prefix.
func (p profilePage) SignatureURL() template.URL {
	if p.Profile == nil {
		return ""
	}
	return template.URL(p.Profile.Signature)
}

// handleProfile shows the administrator profile on GET and updates name,
// block number and signature on POST. The update always lands on the
// singleton key; it never creates a second profile.
func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.renderProfile(w, r, page{})
	case http.MethodPost:
		s.handleUpdateProfile(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) renderProfile(w http.ResponseWriter, r *http.Request, shared page) {
	p := profilePage{page: s.viewerPage(r.Context())}
	p.Flash, p.Error = shared.Flash, shared.Error

	profile, err := s.svc.GetAdminProfile(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Load profile failed", "error", err)
		http.Error(w, "store unavailable", http.StatusInternalServerError)
		return
	}
	p.Profile = profile
	s.render(w, r, "profile.html", p)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	// Signature data URIs run to hundreds of KB; allow a little headroom.
	r.Body = http.MaxBytesReader(w, r.Body, 2<<20)
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	shared := s.viewerPage(r.Context())
	profile := core.AdminProfile{
		Name:              sanitizeInput(r.Form.Get("name")),
		BlockNumber:       sanitizeInput(r.Form.Get("block_number")),
		Signature:         strings.TrimSpace(r.Form.Get("signature")),
		PreferredLanguage: core.ParseLanguage(r.Form.Get("language")),
	}

	if err := s.svc.UpdateAdminProfile(r.Context(), profile); err != nil {
		slog.ErrorContext(r.Context(), "Update profile failed", "error", err)
		shared.Error = shared.T("error")
		s.renderProfile(w, r, shared)
		return
	}
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	shared := s.viewerPage(r.Context())
	newPassword := r.Form.Get("new_password")
	confirm := r.Form.Get("confirm_password")

	if newPassword == "" || newPassword != confirm {
		shared.Error = shared.T("passwordsDoNotMatch")
		s.renderProfile(w, r, shared)
		return
	}

	if err := s.svc.ChangePassword(r.Context(), newPassword); err != nil {
		slog.ErrorContext(r.Context(), "Change password failed", "error", err)
		shared.Error = shared.T("error")
		s.renderProfile(w, r, shared)
		return
	}

	shared.Flash = shared.T("passwordUpdated")
	s.renderProfile(w, r, shared)
}

func (s *Server) handleSetLanguage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	lang := core.ParseLanguage(r.Form.Get("language"))
	if err := s.svc.SetLanguage(r.Context(), lang); err != nil {
		slog.ErrorContext(r.Context(), "Set language failed", "error", err)
		http.Error(w, "store unavailable", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}
