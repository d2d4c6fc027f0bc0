package department

import "time"

type Department struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DepartmentCount pairs a department with its active headcount.
type DepartmentCount struct {
	ID            string
	Name          string
	EmployeeCount int
}
