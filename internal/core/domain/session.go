package domain

import "strings"

const RoleAdmin = "admin"

// Session is the identity derived from a bearer credential. It is never
// persisted; it is recomputed from the stored credential at defined refresh
// points (login, logout, explicit reload).
type Session struct {
	UserID              string
	FullName            string
	FirstName           string
	LastName            string
	Email               string
	Phone               string
	Role                string
	BranchID            string
	ImageURL            string
	NotificationEnabled bool
	// Permissions is always a de-duplicated set of capability strings,
	// even when the raw claim encodes a single scalar.
	Permissions []string
}

// HasPermission reports whether the session carries the given capability.
func (s *Session) HasPermission(permission string) bool {
	if s == nil {
		return false
	}
	for _, p := range s.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the session's role is admin, case-insensitively.
func (s *Session) IsAdmin() bool {
	return s != nil && strings.EqualFold(s.Role, RoleAdmin)
}
