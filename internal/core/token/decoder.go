// Package token derives a Session from an opaque bearer credential without
// contacting the network. Decoding is fail-soft: any malformed input yields
// a nil Session, never a panic or error.
package token

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/mhd-interiors/crm-console/internal/core/domain"
)

// RoleClaimURI is the historical claim key the backend has used for the
// role. Tokens may alternatively carry a plain "role" claim.
const RoleClaimURI = "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"

// Claim key aliases, ordered: the backend has varied key names over time,
// so lookup walks each list and the first present key wins.
var (
	userIDKeys = []string{"sub", "nameid"}
	roleKeys   = []string{RoleClaimURI, "role"}
)

// Decode parses a three-part bearer credential and extracts the session
// claims from its payload segment. The signature is NOT verified here; this
// is presentation-side derivation only. Returns nil for empty or malformed
// input.
func Decode(raw string) *domain.Session {
	if raw == "" {
		return nil
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil
	}

	return FromClaims(claims)
}

// FromClaims builds a Session from already-parsed claims. Used by Decode and
// by the server auth middleware after signature verification.
func FromClaims(claims jwt.MapClaims) *domain.Session {
	userID := firstString(claims, userIDKeys)
	if userID == "" {
		return nil
	}

	return &domain.Session{
		UserID:              userID,
		FullName:            stringClaim(claims, "Name"),
		FirstName:           stringClaim(claims, "FirstName"),
		LastName:            stringClaim(claims, "LastName"),
		Email:               stringClaim(claims, "email"),
		Phone:               stringClaim(claims, "Phone"),
		Role:                firstString(claims, roleKeys),
		BranchID:            stringClaim(claims, "BranchId"),
		ImageURL:            stringClaim(claims, "UserImageUrl"),
		NotificationEnabled: stringClaim(claims, "IsNotificationEnabled") == "true",
		Permissions:         permissionSet(claims["Permission"]),
	}
}

// permissionSet coerces the raw permission claim into a de-duplicated set.
// The claim may be absent, a single string, or an array of strings.
func permissionSet(raw any) []string {
	var values []string
	switch v := raw.(type) {
	case string:
		values = []string{v}
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				values = append(values, s)
			}
		}
	case []string:
		values = v
	}

	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, p := range values {
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

func stringClaim(claims jwt.MapClaims, key string) string {
	s, _ := claims[key].(string)
	return s
}

func firstString(claims jwt.MapClaims, keys []string) string {
	for _, k := range keys {
		if s, ok := claims[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
