package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/mhd-interiors/crm-console/internal/core/domain"
)

const testSecret = "test-secret"

func issueToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing: %v", err)
	}
	return signed
}

func runAuth(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, *domain.Session) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var captured *domain.Session
	h := Auth(testSecret)(func(c echo.Context) error {
		captured, _ = c.Get(SessionKey).(*domain.Session)
		return c.NoContent(http.StatusOK)
	})

	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, captured
}

func TestAuthAcceptsValidBearer(t *testing.T) {
	tok := issueToken(t, testSecret, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)

	rec, sess := runAuth(t, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if sess == nil || sess.UserID != "u1" {
		t.Fatalf("session = %+v", sess)
	}
}

func TestAuthRejectsMissingHeader(t *testing.T) {
	rec, _ := runAuth(t, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthRejectsWrongSignature(t *testing.T) {
	tok := issueToken(t, "other-secret", jwt.MapClaims{"sub": "u1"})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)

	rec, _ := runAuth(t, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	tok := issueToken(t, testSecret, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)

	rec, _ := runAuth(t, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthRejectsTokenWithoutIdentity(t *testing.T) {
	tok := issueToken(t, testSecret, jwt.MapClaims{"Name": "nobody"})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)

	rec, _ := runAuth(t, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthAcceptsQueryParamFallback(t *testing.T) {
	// Websocket clients cannot set headers from the browser API; the
	// credential travels as a query parameter instead.
	tok := issueToken(t, testSecret, jwt.MapClaims{"sub": "ws-user"})
	req := httptest.NewRequest(http.MethodGet, "/?access_token="+tok, nil)

	rec, sess := runAuth(t, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if sess == nil || sess.UserID != "ws-user" {
		t.Fatalf("session = %+v", sess)
	}
}

func TestRequirePermission(t *testing.T) {
	e := echo.New()

	run := func(sess *domain.Session) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set(SessionKey, sess)

		h := RequirePermission(domain.PermCustomersDelete)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		if err := h(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		return rec.Code
	}

	holder := &domain.Session{UserID: "u", Role: "sales", Permissions: []string{domain.PermCustomersDelete}}
	if code := run(holder); code != http.StatusOK {
		t.Errorf("permission holder got %d", code)
	}

	admin := &domain.Session{UserID: "u", Role: "Admin"}
	if code := run(admin); code != http.StatusOK {
		t.Errorf("admin got %d, admins bypass permission checks", code)
	}

	outsider := &domain.Session{UserID: "u", Role: "sales"}
	if code := run(outsider); code != http.StatusForbidden {
		t.Errorf("outsider got %d, want 403", code)
	}
}
