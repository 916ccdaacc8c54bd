package domain

import "time"

// User models an operator account in the console.
type User struct {
	ID                  string    `json:"id" bson:"_id,omitempty"`
	FirstName           string    `json:"firstName" bson:"first_name"`
	LastName            string    `json:"lastName" bson:"last_name"`
	Email               string    `json:"email" bson:"email"`
	Phone               string    `json:"phone,omitempty" bson:"phone,omitempty"`
	PasswordHash        string    `json:"-" bson:"password_hash"`
	Role                string    `json:"role" bson:"role"`
	BranchID            string    `json:"branchId,omitempty" bson:"branch_id,omitempty"`
	ImageURL            string    `json:"userImageUrl,omitempty" bson:"image_url,omitempty"`
	NotificationEnabled bool      `json:"isNotificationEnabled" bson:"notification_enabled"`
	Permissions         []string  `json:"permissions" bson:"permissions"`
	CreatedAt           time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt           time.Time `json:"updatedAt" bson:"updated_at"`
}

// FullName joins first and last name for display.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
