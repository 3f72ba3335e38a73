package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"receiptbook/internal/core"
	"receiptbook/internal/i18n"
)

// page is the shared template data embedded by every handler's page struct.
// Templates call {{.T "key"}} to resolve labels in the viewer's language.
type page struct {
	Lang  core.Language
	Title string
	Flash string
	Error string
}

func (p page) T(key string) string {
	return i18n.T(p.Lang, key)
}

// viewerPage builds the shared page data from the stored profile's preferred
// language, falling back to English when the profile is unreadable.
func (s *Server) viewerPage(ctx context.Context) page {
	lang := core.English
	if profile, err := s.svc.GetAdminProfile(ctx); err == nil && profile != nil {
		lang = profile.PreferredLanguage
	}
	return page{Lang: lang}
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded", "url", r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		slog.ErrorContext(r.Context(), "Template execution failed", "error", err, "template", name)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// formID parses the record key from a form field.
func formID(r *http.Request, field string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(r.Form.Get(field)), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
