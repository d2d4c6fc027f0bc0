package request

import "time"

type RequestItemParams struct {
	Description string `json:"description"`
	Quantity    *int   `json:"quantity,omitempty"`
}

type CreateRequestRequest struct {
	Type        string              `json:"type"`
	EmployeeID  string              `json:"employeeId"`
	Description string              `json:"description"`
	Items       []RequestItemParams `json:"items,omitempty"`
}

// UpdateRequestRequest never carries status; approval and rejection have
// their own operations. A non-nil Items fully replaces the existing items.
type UpdateRequestRequest struct {
	Type        *string              `json:"type,omitempty"`
	Description *string              `json:"description,omitempty"`
	IsActive    *bool                `json:"isActive,omitempty"`
	Items       *[]RequestItemParams `json:"items,omitempty"`
}

type RequestEmployee struct {
	ID           string  `json:"id"`
	EmployeeCode string  `json:"employeeId"`
	Position     string  `json:"position"`
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	Email        *string `json:"email"`
}

type RequestItemResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}

type RequestResponse struct {
	ID          string                `json:"id"`
	Type        RequestType           `json:"type"`
	Status      RequestStatus         `json:"status"`
	Description string                `json:"description"`
	EmployeeID  string                `json:"employeeId"`
	IsActive    bool                  `json:"isActive"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
	Employee    *RequestEmployee      `json:"employee"`
	Items       []RequestItemResponse `json:"items"`
}
