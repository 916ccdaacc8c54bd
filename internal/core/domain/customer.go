package domain

import "time"

// ContactStatus is the lifecycle state of a customer contact.
type ContactStatus string

const (
	StatusContacted      ContactStatus = "Contacted"
	StatusNeedToContact  ContactStatus = "NeedToContact"
	StatusNeedToFollowUp ContactStatus = "NeedToFollowUp"
	StatusNotResponding  ContactStatus = "NotResponding"
)

// Customer is a CRM customer record. Fields are fetched whole and mutated
// via explicit create/update/delete calls; there is no partial patching.
type Customer struct {
	ID                string        `json:"customerId" bson:"_id,omitempty"`
	Name              string        `json:"customerName" bson:"name"`
	Email             string        `json:"customerEmail,omitempty" bson:"email,omitempty"`
	Contact           string        `json:"customerContact" bson:"contact"`
	Whatsapp          string        `json:"customerWhatsapp,omitempty" bson:"whatsapp,omitempty"`
	Address           string        `json:"customerAddress,omitempty" bson:"address,omitempty"`
	City              string        `json:"customerCity,omitempty" bson:"city,omitempty"`
	Country           string        `json:"customerCountry,omitempty" bson:"country,omitempty"`
	Nationality       string        `json:"customerNationality,omitempty" bson:"nationality,omitempty"`
	NextMeetingDate   *time.Time    `json:"customerNextMeetingDate,omitempty" bson:"next_meeting_date,omitempty"`
	VisitedShowroom   bool          `json:"isVisitedShowroom" bson:"visited_showroom"`
	TimeSpentMinutes  int           `json:"customerTimeSpent" bson:"time_spent_minutes"`
	WayOfContact      string        `json:"wayOfContact" bson:"way_of_contact"`
	ContactStatus     ContactStatus `json:"contactStatusName" bson:"contact_status"`
	AssignedTo        string        `json:"customerAssignedTo,omitempty" bson:"assigned_to,omitempty"`
	AssignedToName    string        `json:"customerAssignedToName,omitempty" bson:"assigned_to_name,omitempty"`
	AssignedBy        string        `json:"customerAssignedBy,omitempty" bson:"assigned_by,omitempty"`
	AssignedDate      *time.Time    `json:"customerAssignedDate,omitempty" bson:"assigned_date,omitempty"`
	BranchID          string        `json:"branchId,omitempty" bson:"branch_id,omitempty"`
	BranchName        string        `json:"branchName,omitempty" bson:"branch_name,omitempty"`
	CreatedBy         string        `json:"userId,omitempty" bson:"created_by,omitempty"`
	EscalationPending bool          `json:"isEscalationRequested,omitempty" bson:"escalation_pending,omitempty"`
	CreatedDate       time.Time     `json:"createdDate" bson:"created_date"`
}

// CustomerComment is an annotation appended to a customer record.
type CustomerComment struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	CustomerID  string    `json:"customerId" bson:"customer_id"`
	Comment     string    `json:"comment" bson:"comment"`
	AuthorID    string    `json:"authorId" bson:"author_id"`
	CreatedDate time.Time `json:"createdDate" bson:"created_date"`
}
