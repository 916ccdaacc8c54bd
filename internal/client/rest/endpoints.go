package rest

import (
	"context"
	"net/http"

	"github.com/mhd-interiors/crm-console/internal/core/domain"
	"github.com/mhd-interiors/crm-console/internal/core/listview"
)

// Customers fetches the full customer collection.
func (c *Client) Customers(ctx context.Context) ([]domain.Customer, error) {
	var out []domain.Customer
	err := c.get(ctx, "/customer/all", &out, nil)
	return out, err
}

// CustomerStats fetches the server-computed bucket counts.
func (c *Client) CustomerStats(ctx context.Context) (*listview.CustomerStats, error) {
	var out listview.CustomerStats
	if err := c.get(ctx, "/customer/stats", &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCustomer(ctx context.Context, cust *domain.Customer) (*domain.Customer, error) {
	var out domain.Customer
	if err := c.send(ctx, http.MethodPost, "/customer/create", cust, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateCustomer(ctx context.Context, cust *domain.Customer) error {
	return c.send(ctx, http.MethodPut, "/customer/update", cust, nil)
}

func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	req := c.http.R().SetContext(ctx).SetError(&apiError{}).SetQueryParam("id", id)
	resp, err := req.Delete("/customer/delete")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return respError(resp)
	}
	return nil
}

func (c *Client) CustomerByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	var out domain.Customer
	if err := c.get(ctx, "/customer/by-phone", &out, map[string]string{"phone": phone}); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddCustomerComment(ctx context.Context, customerID, comment string) error {
	body := map[string]string{"customerId": customerID, "comment": comment}
	return c.send(ctx, http.MethodPost, "/customer/add-comment", body, nil)
}

func (c *Client) CustomerComments(ctx context.Context, customerID string) ([]domain.CustomerComment, error) {
	var out []domain.CustomerComment
	err := c.get(ctx, "/customer/comments", &out, map[string]string{"id": customerID})
	return out, err
}

// Inquiries fetches the full inquiry collection.
func (c *Client) Inquiries(ctx context.Context) ([]domain.Inquiry, error) {
	var out []domain.Inquiry
	err := c.get(ctx, "/inquiry/all", &out, nil)
	return out, err
}

func (c *Client) CreateInquiry(ctx context.Context, inq *domain.Inquiry) (*domain.Inquiry, error) {
	var out domain.Inquiry
	if err := c.send(ctx, http.MethodPost, "/inquiry/create", inq, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Workscopes(ctx context.Context) ([]string, error) {
	var out []string
	err := c.get(ctx, "/workscope/all", &out, nil)
	return out, err
}

// Users fetches the full operator collection.
func (c *Client) Users(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	err := c.get(ctx, "/user/all-users", &out, nil)
	return out, err
}

func (c *Client) UsersByBranch(ctx context.Context, branchID string) ([]domain.User, error) {
	var out []domain.User
	query := map[string]string{}
	if branchID != "" {
		query["branchId"] = branchID
	}
	err := c.get(ctx, "/user/by-branch", &out, query)
	return out, err
}

func (c *Client) UsersByRole(ctx context.Context, role string) ([]domain.User, error) {
	var out []domain.User
	err := c.get(ctx, "/user/by-role/"+role, &out, nil)
	return out, err
}

func (c *Client) CreateUser(ctx context.Context, body any) (*domain.User, error) {
	var out domain.User
	if err := c.send(ctx, http.MethodPost, "/user/create", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateUser(ctx context.Context, user *domain.User) error {
	return c.send(ctx, http.MethodPut, "/user/update", user, nil)
}

func (c *Client) ResetPassword(ctx context.Context, userID, newPassword string) error {
	body := map[string]string{"userId": userID, "newPassword": newPassword}
	return c.send(ctx, http.MethodPost, "/user/reset-password", body, nil)
}

// Roles fetches all roles.
func (c *Client) Roles(ctx context.Context) ([]domain.Role, error) {
	var out []domain.Role
	err := c.get(ctx, "/role/all", &out, nil)
	return out, err
}

func (c *Client) CreateRole(ctx context.Context, role *domain.Role) (*domain.Role, error) {
	var out domain.Role
	if err := c.send(ctx, http.MethodPost, "/role/create", role, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Permissions(ctx context.Context) ([]string, error) {
	var out []string
	err := c.get(ctx, "/permission/all", &out, nil)
	return out, err
}

func (c *Client) GrantPermission(ctx context.Context, userID, permission string) error {
	body := map[string]string{"userId": userID, "permission": permission}
	return c.send(ctx, http.MethodPost, "/userclaim/grant", body, nil)
}

func (c *Client) RevokePermission(ctx context.Context, userID, permission string) error {
	body := map[string]string{"userId": userID, "permission": permission}
	return c.send(ctx, http.MethodPost, "/userclaim/revoke", body, nil)
}

func (c *Client) UserPermissions(ctx context.Context, userID string) ([]string, error) {
	var out []string
	err := c.get(ctx, "/userclaim/by-user", &out, map[string]string{"id": userID})
	return out, err
}

// MyMeasurements fetches measurement tasks assigned to the caller.
func (c *Client) MyMeasurements(ctx context.Context) ([]domain.MeasurementTask, error) {
	var out []domain.MeasurementTask
	err := c.get(ctx, "/measurement/my-measurements", &out, nil)
	return out, err
}

func (c *Client) MeasurementApprovals(ctx context.Context) ([]domain.MeasurementTask, error) {
	var out []domain.MeasurementTask
	err := c.get(ctx, "/measurement/approvals", &out, nil)
	return out, err
}

func (c *Client) AssignmentRequests(ctx context.Context) ([]domain.MeasurementTask, error) {
	var out []domain.MeasurementTask
	err := c.get(ctx, "/measurement/assignment-requests", &out, nil)
	return out, err
}

func (c *Client) SubmitMeasurement(ctx context.Context, taskID, fileURL, notes string) error {
	body := map[string]string{"taskId": taskID, "fileUrl": fileURL, "notes": notes}
	return c.send(ctx, http.MethodPost, "/measurement/submit-task", body, nil)
}

func (c *Client) ApproveMeasurement(ctx context.Context, taskID, notes string) error {
	return c.decideMeasurement(ctx, "/measurement/approve", taskID, notes)
}

func (c *Client) RejectMeasurement(ctx context.Context, taskID, notes string) error {
	return c.decideMeasurement(ctx, "/measurement/reject", taskID, notes)
}

func (c *Client) ApproveAssignment(ctx context.Context, taskID, notes string) error {
	return c.decideMeasurement(ctx, "/measurement/assignment/approve", taskID, notes)
}

func (c *Client) RejectAssignment(ctx context.Context, taskID, notes string) error {
	return c.decideMeasurement(ctx, "/measurement/assignment/reject", taskID, notes)
}

func (c *Client) decideMeasurement(ctx context.Context, path, taskID, notes string) error {
	body := map[string]string{"taskId": taskID, "notes": notes}
	return c.send(ctx, http.MethodPost, path, body, nil)
}

// MyNotifications fetches the caller's notifications, newest first.
func (c *Client) MyNotifications(ctx context.Context) ([]domain.Notification, error) {
	var out []domain.Notification
	err := c.get(ctx, "/notification/my", &out, nil)
	return out, err
}

// SendNotification creates a notification; an empty userID broadcasts.
func (c *Client) SendNotification(ctx context.Context, userID, title, message string) (*domain.Notification, error) {
	body := map[string]string{"userId": userID, "title": title, "message": message}
	var out domain.Notification
	if err := c.send(ctx, http.MethodPost, "/notification/send", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
