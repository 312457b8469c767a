package middleware

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"
)

const (
	CSRFCookieName = "csrf_token"
	CSRFHeaderName = "X-CSRF-Token"
	csrfCookiePath = "/"
	csrfMaxAge     = 86400
	tokenSize      = 32
)

// CSRFProtection implements the double-submit cookie check for requests
// authenticated by the session cookie. Bearer-token and anonymous requests are
// not subject to it since a browser never attaches those on its own.
type CSRFProtection struct {
	secretKey     []byte
	sessionCookie string
}

func NewCSRFProtection(secretKey, sessionCookie string) *CSRFProtection {
	return &CSRFProtection{
		secretKey:     []byte(secretKey),
		sessionCookie: sessionCookie,
	}
}

func (c *CSRFProtection) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie(CSRFCookieName); err != nil {
			token, err := c.GenerateToken()
			if err != nil {
				writeJSONError(w, http.StatusInternalServerError, "internal server error")
				return
			}
			c.setCookie(w, r, token)
		}

		if isSafeMethod(r.Method) || !c.cookieAuthenticated(r) {
			next.ServeHTTP(w, r)
			return
		}

		if !c.validateRequest(r) {
			writeJSONError(w, http.StatusForbidden, "invalid CSRF token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// cookieAuthenticated reports whether the request would be authenticated by
// the session cookie rather than an Authorization header.
func (c *CSRFProtection) cookieAuthenticated(r *http.Request) bool {
	if strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
		return false
	}
	cookie, err := r.Cookie(c.sessionCookie)
	return err == nil && cookie.Value != ""
}

// GenerateToken returns base64(32 random bytes || HMAC-SHA256 of them).
func (c *CSRFProtection) GenerateToken() (string, error) {
	randomBytes := make([]byte, tokenSize)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", err
	}

	token := make([]byte, 0, tokenSize+sha256.Size)
	token = append(token, randomBytes...)
	token = append(token, c.sign(randomBytes)...)
	return base64.URLEncoding.EncodeToString(token), nil
}

func (c *CSRFProtection) sign(data []byte) []byte {
	mac := hmac.New(sha256.New, c.secretKey)
	mac.Write(data)
	return mac.Sum(nil)
}

func (c *CSRFProtection) ValidateToken(token string) bool {
	decoded, err := base64.URLEncoding.DecodeString(token)
	if err != nil || len(decoded) != tokenSize+sha256.Size {
		return false
	}
	return hmac.Equal(decoded[tokenSize:], c.sign(decoded[:tokenSize]))
}

// validateRequest requires the header token to equal the cookie token and
// carry a valid signature.
func (c *CSRFProtection) validateRequest(r *http.Request) bool {
	cookie, err := r.Cookie(CSRFCookieName)
	if err != nil {
		return false
	}
	headerToken := r.Header.Get(CSRFHeaderName)
	if headerToken == "" {
		return false
	}
	if !hmac.Equal([]byte(headerToken), []byte(cookie.Value)) {
		return false
	}
	return c.ValidateToken(headerToken)
}

func (c *CSRFProtection) setCookie(w http.ResponseWriter, r *http.Request, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CSRFCookieName,
		Value:    token,
		Path:     csrfCookiePath,
		MaxAge:   csrfMaxAge,
		Secure:   isTLS(r),
		HttpOnly: false, // read by the client and echoed in X-CSRF-Token
		SameSite: http.SameSiteStrictMode,
	})
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"success":false,"message":"` + message + `"}`))
}
