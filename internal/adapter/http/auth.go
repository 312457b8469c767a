package http

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/bnema/mediahub/internal/domain"
	"github.com/bnema/mediahub/internal/infrastructure/logger"
	"github.com/bnema/mediahub/internal/service"
)

const (
	CookieName     = "access_token"
	CookiePath     = "/"
	CookieSameSite = http.SameSiteStrictMode
)

var errAuthRequired = fmt.Errorf("%w: authentication required", service.ErrInvalidToken)

type userKey struct{}

func withUser(ctx context.Context, u *domain.User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

// currentUser returns the authenticated user. Only valid behind requireUser.
func currentUser(r *http.Request) *domain.User {
	u, _ := r.Context().Value(userKey{}).(*domain.User)
	return u
}

// accessToken reads the bearer token, falling back to the session cookie.
func accessToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if cookie, err := r.Cookie(CookieName); err == nil {
		return cookie.Value
	}
	return ""
}

func (s *Server) requireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := accessToken(r)
		if token == "" {
			writeError(w, r, errAuthRequired)
			return
		}
		user, err := s.auth.Authenticate(r.Context(), token)
		if err != nil {
			writeError(w, r, err)
			return
		}
		next(w, r.WithContext(withUser(r.Context(), user)))
	}
}

// requireRole authenticates the request and rejects users whose role fails allow.
func (s *Server) requireRole(allow func(domain.Role) bool, next http.HandlerFunc) http.HandlerFunc {
	return s.requireUser(func(w http.ResponseWriter, r *http.Request) {
		if !allow(currentUser(r).Role) {
			writeError(w, r, fmt.Errorf("%w: insufficient role", domain.ErrForbidden))
			return
		}
		next(w, r)
	})
}

func (s *Server) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return s.requireRole(domain.Role.IsAdmin, next)
}

func (s *Server) requireContentManager(next http.HandlerFunc) http.HandlerFunc {
	return s.requireRole(domain.Role.CanManageContent, next)
}

func (s *Server) setSessionCookie(w http.ResponseWriter, r *http.Request, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		MaxAge:   int(s.auth.TokenTTL().Seconds()),
		Path:     CookiePath,
		Secure:   s.secureRequest(r),
		HttpOnly: true,
		SameSite: CookieSameSite,
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		MaxAge:   -1,
		Path:     CookiePath,
		Secure:   s.secureRequest(r),
		HttpOnly: true,
		SameSite: CookieSameSite,
	})
}

func (s *Server) secureRequest(r *http.Request) bool {
	return r.TLS != nil || (s.behindProxy && r.Header.Get("X-Forwarded-Proto") == "https")
}

type credentials struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	User      *domain.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expiresIn"`
}

func (s *Server) startSession(w http.ResponseWriter, r *http.Request, status int, user *domain.User, token string) {
	s.setSessionCookie(w, r, token)
	writeData(w, status, sessionResponse{
		User:      user,
		Token:     token,
		ExpiresIn: int64(s.auth.TokenTTL().Seconds()),
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	user, err := s.auth.Register(r.Context(), in.Name, in.Email, in.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	token, err := s.auth.IssueToken(user)
	if err != nil {
		writeError(w, r, err)
		return
	}
	logger.Info.Printf("user registered: %s", user.ID)
	s.startSession(w, r, http.StatusCreated, user, token)
}

type loginFunc func(ctx context.Context, email, password string) (*domain.User, string, error)

// handleLogin wraps a login function with per-client rate limiting and a
// growing delay after consecutive failures.
func (s *Server) handleLogin(login loginFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r, s.behindProxy)
		if allowed, retryAfter := s.limiter.Check(ip); !allowed {
			w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())+1))
			writeError(w, r, errRateLimited)
			return
		}

		var in credentials
		if err := decodeJSON(w, r, &in); err != nil {
			writeError(w, r, err)
			return
		}

		user, token, err := login(r.Context(), in.Email, in.Password)
		if err != nil {
			failures := s.failures.RecordFailure(ip)
			logger.Warn.Printf("login failed for %s from %s (%d consecutive)", logger.SanitizeForLog(in.Email), logger.SanitizeForLog(ip), failures)
			if waitErr := s.loginDelay.Wait(r.Context(), failures); waitErr != nil {
				return
			}
			writeError(w, r, err)
			return
		}

		s.failures.RecordSuccess(ip)
		s.limiter.Reset(ip)
		s.startSession(w, r, http.StatusOK, user, token)
	}
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.clearSessionCookie(w, r)
	writeMessage(w, http.StatusOK, "logged out")
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, currentUser(r))
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	user, err := s.auth.UpdateProfile(r.Context(), currentUser(r).ID, in.Name, in.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, user)
}

func (s *Server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var in struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.auth.ChangePassword(r.Context(), currentUser(r).ID, in.CurrentPassword, in.NewPassword); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "password updated")
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.auth.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, users)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.auth.DeleteUser(r.Context(), currentUser(r).ID, id); err != nil {
		writeError(w, r, err)
		return
	}
	logger.Info.Printf("user %s deleted by %s", id, currentUser(r).ID)
	writeMessage(w, http.StatusOK, "user deleted")
}

func (s *Server) handleRoles(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, s.auth.Roles())
}
