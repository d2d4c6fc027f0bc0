package employee

import "errors"

var (
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrEmployeeCodeExists     = errors.New("employee id already taken")
	ErrAccountAlreadyAssigned = errors.New("account already assigned to an employee")
	ErrSameDepartment         = errors.New("cannot transfer to the same department")
)
