package handler

import (
	"time"

	"github.com/mhd-interiors/crm-console/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createCustomerRequest struct {
	Name            string     `json:"customerName"    validate:"required"`
	Email           string     `json:"customerEmail"   validate:"omitempty,email"`
	Contact         string     `json:"customerContact" validate:"required"`
	Whatsapp        string     `json:"customerWhatsapp"`
	Address         string     `json:"customerAddress"`
	City            string     `json:"customerCity"`
	Country         string     `json:"customerCountry"`
	Nationality     string     `json:"customerNationality"`
	NextMeetingDate *time.Time `json:"customerNextMeetingDate"`
	VisitedShowroom bool       `json:"isVisitedShowroom"`
	TimeSpent       int        `json:"customerTimeSpent"`
	WayOfContact    string     `json:"wayOfContact" validate:"required"`
	ContactStatus   string     `json:"contactStatusName" validate:"omitempty,oneof=Contacted NeedToContact NeedToFollowUp NotResponding"`
	AssignedTo      string     `json:"customerAssignedTo"`
	BranchID        string     `json:"branchId"`
}

func (r createCustomerRequest) toDomain() *domain.Customer {
	return &domain.Customer{
		Name:             r.Name,
		Email:            r.Email,
		Contact:          r.Contact,
		Whatsapp:         r.Whatsapp,
		Address:          r.Address,
		City:             r.City,
		Country:          r.Country,
		Nationality:      r.Nationality,
		NextMeetingDate:  r.NextMeetingDate,
		VisitedShowroom:  r.VisitedShowroom,
		TimeSpentMinutes: r.TimeSpent,
		WayOfContact:     r.WayOfContact,
		ContactStatus:    domain.ContactStatus(r.ContactStatus),
		AssignedTo:       r.AssignedTo,
		BranchID:         r.BranchID,
	}
}

type addCommentRequest struct {
	CustomerID string `json:"customerId" validate:"required"`
	Comment    string `json:"comment"    validate:"required"`
}
