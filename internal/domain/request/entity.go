package request

import "time"

type Request struct {
	ID          string
	Type        RequestType
	Status      RequestStatus
	Description string
	EmployeeID  string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type RequestItem struct {
	ID          string
	Description string
	Quantity    int
	RequestID   string
}

type RequestType string

const (
	RequestTypeEquipment RequestType = "equipment"
	RequestTypeLeave     RequestType = "leave"
	RequestTypeResource  RequestType = "resource"
	RequestTypeOther     RequestType = "other"
)

type RequestStatus string

// Approved and Rejected are terminal, no transition leads out of them.
const (
	RequestStatusPending  RequestStatus = "Pending"
	RequestStatusApproved RequestStatus = "Approved"
	RequestStatusRejected RequestStatus = "Rejected"
)
