package middleware

import (
	"crypto/tls"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecretKey     = "test-secret-key-for-csrf-protection"
	testSessionCookie = "access_token"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func csrfCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == CSRFCookieName {
			return c
		}
	}
	return nil
}

func TestCSRFMiddleware_SetsCookie(t *testing.T) {
	csrf := NewCSRFProtection(testSecretKey, testSessionCookie)
	handler := csrf.Middleware(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	cookie := csrfCookie(rec)
	require.NotNil(t, cookie)
	assert.True(t, csrf.ValidateToken(cookie.Value))
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 86400, cookie.MaxAge)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.False(t, cookie.HttpOnly, "the client must be able to read the token")
	assert.False(t, cookie.Secure)
}

func TestCSRFMiddleware_ExistingCookiePreserved(t *testing.T) {
	csrf := NewCSRFProtection(testSecretKey, testSessionCookie)
	handler := csrf.Middleware(okHandler())
	token, err := csrf.GenerateToken()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Nil(t, csrfCookie(rec))
}

func TestCSRFMiddleware_SecureCookieOverTLS(t *testing.T) {
	handler := NewCSRFProtection(testSecretKey, testSessionCookie).Middleware(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.TLS = &tls.ConnectionState{}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	cookie := csrfCookie(rec)
	require.NotNil(t, cookie)
	assert.True(t, cookie.Secure)
}

func TestCSRFMiddleware_UnsafeRequests(t *testing.T) {
	csrf := NewCSRFProtection(testSecretKey, testSessionCookie)
	valid, err := csrf.GenerateToken()
	require.NoError(t, err)
	other, err := csrf.GenerateToken()
	require.NoError(t, err)
	foreign, err := NewCSRFProtection("another-secret", testSessionCookie).GenerateToken()
	require.NoError(t, err)

	tests := []struct {
		name        string
		method      string
		session     bool
		bearer      bool
		cookieToken string
		headerToken string
		want        int
	}{
		{name: "anonymous post passes", method: http.MethodPost, want: http.StatusOK},
		{name: "bearer post passes", method: http.MethodPost, session: true, bearer: true, want: http.StatusOK},
		{name: "session get passes", method: http.MethodGet, session: true, want: http.StatusOK},
		{name: "session post without token", method: http.MethodPost, session: true, want: http.StatusForbidden},
		{name: "session delete without token", method: http.MethodDelete, session: true, want: http.StatusForbidden},
		{name: "session put with matching token", method: http.MethodPut, session: true, cookieToken: valid, headerToken: valid, want: http.StatusOK},
		{name: "mismatched tokens", method: http.MethodPost, session: true, cookieToken: valid, headerToken: other, want: http.StatusForbidden},
		{name: "header without cookie", method: http.MethodPost, session: true, headerToken: valid, want: http.StatusForbidden},
		{name: "signed with another key", method: http.MethodPost, session: true, cookieToken: foreign, headerToken: foreign, want: http.StatusForbidden},
		{name: "garbage token", method: http.MethodPost, session: true, cookieToken: "!!", headerToken: "!!", want: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/v1/media", nil)
			if tt.session {
				req.AddCookie(&http.Cookie{Name: testSessionCookie, Value: "jwt"})
			}
			if tt.bearer {
				req.Header.Set("Authorization", "Bearer jwt")
			}
			if tt.cookieToken != "" {
				req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: tt.cookieToken})
			}
			if tt.headerToken != "" {
				req.Header.Set(CSRFHeaderName, tt.headerToken)
			}
			rec := httptest.NewRecorder()

			csrf.Middleware(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusForbidden {
				assert.JSONEq(t, `{"success":false,"message":"invalid CSRF token"}`, rec.Body.String())
			}
		})
	}
}

func TestCSRFToken_Format(t *testing.T) {
	csrf := NewCSRFProtection(testSecretKey, testSessionCookie)

	token, err := csrf.GenerateToken()
	require.NoError(t, err)
	decoded, err := base64.URLEncoding.DecodeString(token)
	require.NoError(t, err)
	assert.Len(t, decoded, 64)

	again, err := csrf.GenerateToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, again)

	decoded[0] ^= 0xFF
	assert.False(t, csrf.ValidateToken(base64.URLEncoding.EncodeToString(decoded)))
	assert.False(t, csrf.ValidateToken(base64.URLEncoding.EncodeToString(decoded[:40])))
}
