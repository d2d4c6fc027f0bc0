package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/corehr/workforce-backend-go/internal/domain/account"
	"github.com/corehr/workforce-backend-go/internal/domain/department"
	"github.com/corehr/workforce-backend-go/internal/domain/employee"
	"github.com/corehr/workforce-backend-go/internal/domain/workflow"
	"github.com/corehr/workforce-backend-go/internal/pkg/database"
	"github.com/corehr/workforce-backend-go/internal/pkg/validator"
	"github.com/corehr/workforce-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db              *database.DB
	employeeRepo    employee.EmployeeRepository
	departmentRepo  department.DepartmentRepository
	accountRepo     account.AccountRepository
	workflowService workflow.WorkflowService
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	accountRepo account.AccountRepository,
	workflowService workflow.WorkflowService,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:              db,
		employeeRepo:    employeeRepo,
		departmentRepo:  departmentRepo,
		accountRepo:     accountRepo,
		workflowService: workflowService,
	}
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.resolveEmployee(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.toResponse(ctx, emp)
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		resp, err := s.toResponse(ctx, emp)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// CreateEmployee implements employee.EmployeeService. The employee row and
// its onboarding workflow are written in one transaction.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.CreateEmployeeResponse, error) {
	var validationErrs validator.ValidationErrors
	if validator.IsEmpty(req.EmployeeCode) {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "employeeId", Message: "Employee ID is required"})
	}
	if validator.IsEmpty(req.Position) {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "position", Message: "Position is required"})
	}
	if validator.IsEmpty(req.AccountID) {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "accountId", Message: "Account ID is required"})
	}
	hireDate, ok := validator.IsValidDate(req.HireDate)
	if !ok {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "hireDate", Message: "Hire date must be YYYY-MM-DD"})
	}
	if len(validationErrs) > 0 {
		return employee.CreateEmployeeResponse{}, validationErrs
	}

	// Duplicate business key
	if _, err := s.employeeRepo.GetByCode(ctx, req.EmployeeCode); err == nil {
		return employee.CreateEmployeeResponse{}, employee.ErrEmployeeCodeExists
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.CreateEmployeeResponse{}, err
	}

	// An account backs at most one employee
	if _, err := s.employeeRepo.GetByAccountID(ctx, req.AccountID); err == nil {
		return employee.CreateEmployeeResponse{}, employee.ErrAccountAlreadyAssigned
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.CreateEmployeeResponse{}, err
	}

	// The account itself must exist
	if _, err := s.accountRepo.GetByID(ctx, req.AccountID); err != nil {
		return employee.CreateEmployeeResponse{}, err
	}

	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			return employee.CreateEmployeeResponse{}, err
		}
	}

	var created employee.Employee
	var onboarding workflow.Workflow
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var err error
		created, err = s.employeeRepo.Create(txCtx, employee.Employee{
			EmployeeCode: req.EmployeeCode,
			Position:     req.Position,
			DepartmentID: req.DepartmentID,
			HireDate:     hireDate,
			IsActive:     true,
			AccountID:    req.AccountID,
		})
		if err != nil {
			return err
		}

		onboarding, err = s.workflowService.CreateOnboarding(txCtx, created.ID, created.EmployeeCode)
		return err
	})
	if err != nil {
		return employee.CreateEmployeeResponse{}, err
	}

	detail, err := s.toResponse(ctx, created)
	if err != nil {
		return employee.CreateEmployeeResponse{}, err
	}

	return employee.CreateEmployeeResponse{
		EmployeeResponse: detail,
		Onboarding:       s.toWorkflowResponse(onboarding, detail),
	}, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	emp, err := s.resolveEmployee(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Position != nil {
		emp.Position = *req.Position
	}
	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			return employee.EmployeeResponse{}, err
		}
		emp.DepartmentID = req.DepartmentID
	}
	if req.HireDate != nil {
		hireDate, ok := validator.IsValidDate(*req.HireDate)
		if !ok {
			return employee.EmployeeResponse{}, validator.ValidationErrors{
				{Field: "hireDate", Message: "Hire date must be YYYY-MM-DD"},
			}
		}
		emp.HireDate = hireDate
	}
	if req.IsActive != nil {
		emp.IsActive = *req.IsActive
	}

	updated, err := s.employeeRepo.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return s.toResponse(ctx, updated)
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	emp, err := s.resolveEmployee(ctx, id)
	if err != nil {
		return err
	}
	return s.employeeRepo.Delete(ctx, emp.ID)
}

// TransferEmployee implements employee.EmployeeService. The same-department
// check runs before any write, so a rejected transfer has no side effects.
// The department change and the transfer workflow are committed together.
func (s *EmployeeServiceImpl) TransferEmployee(ctx context.Context, identifier string, newDepartmentID string) (employee.TransferEmployeeResponse, error) {
	emp, err := s.resolveEmployee(ctx, identifier)
	if err != nil {
		return employee.TransferEmployeeResponse{}, err
	}

	if !validator.IsValidUUID(newDepartmentID) {
		return employee.TransferEmployeeResponse{}, department.ErrDepartmentNotFound
	}
	if _, err := s.departmentRepo.GetByID(ctx, newDepartmentID); err != nil {
		return employee.TransferEmployeeResponse{}, err
	}

	if emp.DepartmentID != nil && *emp.DepartmentID == newDepartmentID {
		return employee.TransferEmployeeResponse{}, employee.ErrSameDepartment
	}

	oldDepartmentID := emp.DepartmentID

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.employeeRepo.UpdateDepartment(txCtx, emp.ID, newDepartmentID); err != nil {
			return err
		}
		_, err := s.workflowService.CreateTransfer(txCtx, emp.ID, oldDepartmentID, newDepartmentID)
		return err
	})
	if err != nil {
		return employee.TransferEmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.GetByID(ctx, emp.ID)
	if err != nil {
		return employee.TransferEmployeeResponse{}, err
	}
	detail, err := s.toResponse(ctx, updated)
	if err != nil {
		return employee.TransferEmployeeResponse{}, err
	}

	return employee.TransferEmployeeResponse{
		EmployeeResponse: detail,
		Message:          "Employee transferred successfully",
	}, nil
}

// resolveEmployee looks the employee up by surrogate id, falling back to the
// business employee id.
func (s *EmployeeServiceImpl) resolveEmployee(ctx context.Context, identifier string) (employee.Employee, error) {
	if validator.IsValidUUID(identifier) {
		emp, err := s.employeeRepo.GetByID(ctx, identifier)
		if err == nil {
			return emp, nil
		}
		if !errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, err
		}
	}
	return s.employeeRepo.GetByCode(ctx, identifier)
}

// toResponse hydrates the employee detail view. Missing relations resolve to
// explicit nils rather than errors.
func (s *EmployeeServiceImpl) toResponse(ctx context.Context, emp employee.Employee) (employee.EmployeeResponse, error) {
	resp := employee.EmployeeResponse{
		ID:           emp.ID,
		EmployeeCode: emp.EmployeeCode,
		Position:     emp.Position,
		DepartmentID: emp.DepartmentID,
		HireDate:     emp.HireDate.Format("2006-01-02"),
		IsActive:     emp.IsActive,
		AccountID:    emp.AccountID,
	}

	if emp.DepartmentID != nil {
		dept, err := s.departmentRepo.GetByID(ctx, *emp.DepartmentID)
		if err == nil {
			resp.Department = &dept.Name
		} else if !errors.Is(err, department.ErrDepartmentNotFound) {
			return employee.EmployeeResponse{}, err
		}
	}

	acc, err := s.accountRepo.GetByID(ctx, emp.AccountID)
	if err == nil {
		resp.Account = &acc.Email
	} else if !errors.Is(err, account.ErrAccountNotFound) {
		return employee.EmployeeResponse{}, err
	}

	return resp, nil
}

func (s *EmployeeServiceImpl) toWorkflowResponse(w workflow.Workflow, emp employee.EmployeeResponse) workflow.WorkflowResponse {
	return workflow.WorkflowResponse{
		ID:          w.ID,
		EmployeeID:  w.EmployeeID,
		Type:        w.Type,
		Status:      w.Status,
		StartDate:   w.StartDate,
		EndDate:     w.EndDate,
		Description: w.Description,
		CurrentStep: w.CurrentStep,
		TotalSteps:  w.TotalSteps,
		Metadata:    w.Metadata,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
		Employee: &workflow.WorkflowEmployee{
			ID:           emp.ID,
			EmployeeCode: emp.EmployeeCode,
			Position:     emp.Position,
			Department:   emp.Department,
		},
	}
}
