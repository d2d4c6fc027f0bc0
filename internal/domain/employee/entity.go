package employee

import "time"

type Employee struct {
	ID           string
	EmployeeCode string
	Position     string
	DepartmentID *string
	HireDate     time.Time
	IsActive     bool
	AccountID    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
