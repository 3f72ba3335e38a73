package http

import (
	"log/slog"
	"net/http"
)

type loginPage struct {
	page
}

// handleLogin renders the login form and checks credentials. A mismatch is a
// normal outcome rendered as an invalid-credentials message, never an error
// response.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	p := loginPage{page: s.viewerPage(r.Context())}

	switch r.Method {
	case http.MethodGet:
		s.render(w, r, "login.html", p)
	case http.MethodPost:
		if !s.loginLimiter.allow(clientIP(r)) {
			slog.WarnContext(r.Context(), "Login rate limit exceeded", "client_ip", clientIP(r))
			w.Header().Set("Retry-After", "60")
			http.Error(w, "Too many login attempts. Please try again later.", http.StatusTooManyRequests)
			return
		}
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		username := sanitizeInput(r.Form.Get("username"))
		password := r.Form.Get("password")

		ok, err := s.svc.Login(r.Context(), username, password)
		if err != nil {
			slog.ErrorContext(r.Context(), "Login check failed", "error", err)
			p.Error = p.T("error")
			w.WriteHeader(http.StatusInternalServerError)
			s.render(w, r, "login.html", p)
			return
		}
		if !ok {
			p.Error = p.T("invalidCredentials")
			s.render(w, r, "login.html", p)
			return
		}

		token, err := s.sessions.Create()
		if err != nil {
			slog.ErrorContext(r.Context(), "Session create failed", "error", err)
			http.Error(w, "session error", http.StatusInternalServerError)
			return
		}
		// Session cookie only: no MaxAge, so it dies with the browser
		// session, and the token set dies with the process.
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		slog.InfoContext(r.Context(), "Administrator logged in", "username", username)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if c, err := r.Cookie(sessionCookie); err == nil {
		s.sessions.Destroy(c.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
