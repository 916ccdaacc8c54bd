package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func TestDecodeMalformedInput(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"not a token":    "hello world",
		"two segments":   "abc.def",
		"bad base64":     "a!b.c!d.e!f",
		"garbage claims": "eyJhbGciOiJIUzI1NiJ9.bm90anNvbg.sig",
	}
	for name, raw := range cases {
		if sess := Decode(raw); sess != nil {
			t.Errorf("%s: expected nil session, got %+v", name, sess)
		}
	}
}

func TestDecodeFullClaimSet(t *testing.T) {
	raw := signedToken(t, jwt.MapClaims{
		"sub":                   "user-1",
		"Name":                  "Amira Hassan",
		"FirstName":             "Amira",
		"LastName":              "Hassan",
		"email":                 "amira@example.com",
		"Phone":                 "+20100000000",
		RoleClaimURI:            "manager",
		"BranchId":              "branch-9",
		"UserImageUrl":          "https://cdn.example.com/amira.png",
		"IsNotificationEnabled": "true",
		"Permission":            []string{"Permissions.Customers.Create", "Permissions.Customers.Edit"},
		"exp":                   time.Now().Add(time.Hour).Unix(),
	})

	sess := Decode(raw)
	if sess == nil {
		t.Fatal("expected session, got nil")
	}
	if sess.UserID != "user-1" {
		t.Errorf("UserID = %q", sess.UserID)
	}
	if sess.FullName != "Amira Hassan" || sess.FirstName != "Amira" || sess.LastName != "Hassan" {
		t.Errorf("name claims = %q / %q / %q", sess.FullName, sess.FirstName, sess.LastName)
	}
	if sess.Role != "manager" {
		t.Errorf("Role = %q", sess.Role)
	}
	if sess.BranchID != "branch-9" {
		t.Errorf("BranchID = %q", sess.BranchID)
	}
	if !sess.NotificationEnabled {
		t.Error("NotificationEnabled = false, want true")
	}
	if len(sess.Permissions) != 2 {
		t.Errorf("Permissions = %v", sess.Permissions)
	}
}

func TestDecodeExpiredTokenStillDerives(t *testing.T) {
	// Derivation is presentation-side only: an expired credential still
	// yields an identity. The server rejects it on first use instead.
	raw := signedToken(t, jwt.MapClaims{
		"sub": "user-2",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	if sess := Decode(raw); sess == nil || sess.UserID != "user-2" {
		t.Fatalf("expected derivable session, got %+v", sess)
	}
}

func TestDecodeUserIDAliases(t *testing.T) {
	raw := signedToken(t, jwt.MapClaims{"nameid": "user-3"})
	sess := Decode(raw)
	if sess == nil || sess.UserID != "user-3" {
		t.Fatalf("nameid alias not resolved: %+v", sess)
	}

	// sub wins when both are present.
	raw = signedToken(t, jwt.MapClaims{"sub": "primary", "nameid": "secondary"})
	if sess := Decode(raw); sess.UserID != "primary" {
		t.Errorf("UserID = %q, want primary", sess.UserID)
	}
}

func TestDecodeMissingUserID(t *testing.T) {
	raw := signedToken(t, jwt.MapClaims{"Name": "No Identity"})
	if sess := Decode(raw); sess != nil {
		t.Fatalf("expected nil for identity-free claims, got %+v", sess)
	}
}

func TestDecodeRoleFallback(t *testing.T) {
	raw := signedToken(t, jwt.MapClaims{"sub": "u", "role": "sales"})
	if sess := Decode(raw); sess.Role != "sales" {
		t.Errorf("Role = %q, want sales", sess.Role)
	}

	// The URI claim takes precedence over the plain key.
	raw = signedToken(t, jwt.MapClaims{"sub": "u", RoleClaimURI: "admin", "role": "sales"})
	if sess := Decode(raw); sess.Role != "admin" {
		t.Errorf("Role = %q, want admin", sess.Role)
	}
}

func TestPermissionScalarAndArray(t *testing.T) {
	raw := signedToken(t, jwt.MapClaims{"sub": "u", "Permission": "Permissions.Inquiries.Create"})
	sess := Decode(raw)
	if len(sess.Permissions) != 1 || sess.Permissions[0] != "Permissions.Inquiries.Create" {
		t.Fatalf("scalar permission not normalized: %v", sess.Permissions)
	}

	raw = signedToken(t, jwt.MapClaims{
		"sub":        "u",
		"Permission": []string{"A", "B", "A", "", "B"},
	})
	sess = Decode(raw)
	if len(sess.Permissions) != 2 || sess.Permissions[0] != "A" || sess.Permissions[1] != "B" {
		t.Fatalf("permissions not de-duplicated: %v", sess.Permissions)
	}
}

func TestDecodeNotificationFlagVariants(t *testing.T) {
	for _, tc := range []struct {
		raw  any
		want bool
	}{
		{"true", true},
		{"false", false},
		{"True", false}, // exact string match, mirroring the issuing side
		{true, false},   // non-string claim is treated as unset
	} {
		raw := signedToken(t, jwt.MapClaims{"sub": "u", "IsNotificationEnabled": tc.raw})
		if sess := Decode(raw); sess.NotificationEnabled != tc.want {
			t.Errorf("IsNotificationEnabled=%v: got %v, want %v", tc.raw, sess.NotificationEnabled, tc.want)
		}
	}
}
