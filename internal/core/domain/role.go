package domain

import "time"

// Role is a named bundle of permissions assignable to users.
type Role struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Permissions []string  `json:"permissions" bson:"permissions"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
}

// Known capability strings gating console affordances. The set is open:
// tokens may carry permissions not listed here.
const (
	PermCustomersCreate       = "Permissions.Customers.Create"
	PermCustomersEdit         = "Permissions.Customers.Edit"
	PermCustomersDelete       = "Permissions.Customers.Delete"
	PermCustomerCommentsAdd   = "Permissions.CustomerComments.Create"
	PermInquiriesCreate       = "Permissions.Inquiries.Create"
	PermUsersManage           = "Permissions.Users.Manage"
	PermRolesManage           = "Permissions.Roles.Manage"
	PermMeasurementsApprove   = "Permissions.Measurements.Approve"
	PermNotificationsSend     = "Permissions.Notifications.Send"
)

// AllPermissions lists the capabilities the console knows how to gate on.
func AllPermissions() []string {
	return []string{
		PermCustomersCreate,
		PermCustomersEdit,
		PermCustomersDelete,
		PermCustomerCommentsAdd,
		PermInquiriesCreate,
		PermUsersManage,
		PermRolesManage,
		PermMeasurementsApprove,
		PermNotificationsSend,
	}
}
