package domain

import "time"

// Inquiry is a project inquiry opened against a customer. It embeds the
// customer and building snapshot taken at creation time.
type Inquiry struct {
	ID          string     `json:"inquiryId" bson:"_id,omitempty"`
	Code        string     `json:"inquiryCode" bson:"code"`
	Description string     `json:"inquiryDescription" bson:"description"`
	StartDate   *time.Time `json:"inquiryStartDate,omitempty" bson:"start_date,omitempty"`
	EndDate     *time.Time `json:"inquiryEndDate,omitempty" bson:"end_date,omitempty"`
	StatusName  string     `json:"inquiryStatusName" bson:"status_name"`
	ManagedBy   string     `json:"managedByUserName,omitempty" bson:"managed_by,omitempty"`

	CustomerName    string     `json:"customerName" bson:"customer_name"`
	CustomerContact string     `json:"customerContact" bson:"customer_contact"`
	CustomerEmail   string     `json:"customerEmail,omitempty" bson:"customer_email,omitempty"`
	CustomerNotes   string     `json:"customerNotes,omitempty" bson:"customer_notes,omitempty"`
	NextMeetingDate *time.Time `json:"customerNextMeetingDate,omitempty" bson:"next_meeting_date,omitempty"`

	BuildingAddress    string `json:"buildingAddress,omitempty" bson:"building_address,omitempty"`
	BuildingTypeOfUnit int    `json:"buildingTypeOfUnit,omitempty" bson:"building_type_of_unit,omitempty"`
	BuildingCondition  int    `json:"buildingCondition,omitempty" bson:"building_condition,omitempty"`
	BuildingFloor      string `json:"buildingFloor,omitempty" bson:"building_floor,omitempty"`
	IsOccupied         bool   `json:"isOccupied,omitempty" bson:"is_occupied,omitempty"`

	MeasurementByCustomer bool       `json:"isMeasurementProvidedByCustomer,omitempty" bson:"measurement_by_customer,omitempty"`
	DesignByCustomer      bool       `json:"isDesignProvidedByCustomer,omitempty" bson:"design_by_customer,omitempty"`
	MeasurementSchedule   *time.Time `json:"measurementScheduleDate,omitempty" bson:"measurement_schedule,omitempty"`

	WorkscopeNames []string  `json:"workscopeNames" bson:"workscope_names"`
	BranchID       string    `json:"branchId,omitempty" bson:"branch_id,omitempty"`
	CreatedBy      string    `json:"createdBy,omitempty" bson:"created_by,omitempty"`
	CreatedDate    time.Time `json:"createdDate" bson:"created_date"`
}
