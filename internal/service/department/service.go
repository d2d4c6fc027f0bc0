package department

import (
	"context"
	"fmt"

	"github.com/corehr/workforce-backend-go/internal/domain/department"
	"github.com/corehr/workforce-backend-go/internal/pkg/validator"
)

type DepartmentServiceImpl struct {
	departmentRepo department.DepartmentRepository
}

func NewDepartmentService(departmentRepo department.DepartmentRepository) department.DepartmentService {
	return &DepartmentServiceImpl{departmentRepo: departmentRepo}
}

// GetDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error) {
	dept, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return toResponse(dept), nil
}

// ListDepartments implements department.DepartmentService.
func (s *DepartmentServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		responses = append(responses, toResponse(dept))
	}
	return responses, nil
}

// CreateDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	var validationErrs validator.ValidationErrors
	if validator.IsEmpty(req.Name) {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "name", Message: "Department name is required"})
	}
	if validator.IsEmpty(req.Description) {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "description", Message: "Department description is required"})
	}
	if len(validationErrs) > 0 {
		return department.DepartmentResponse{}, validationErrs
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return toResponse(created), nil
}

// UpdateDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) UpdateDepartment(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	dept, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	if req.Name != nil {
		dept.Name = *req.Name
	}
	if req.Description != nil {
		dept.Description = *req.Description
	}

	updated, err := s.departmentRepo.Update(ctx, dept)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return toResponse(updated), nil
}

// DeleteDepartment implements department.DepartmentService.
func (s *DepartmentServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	return s.departmentRepo.Delete(ctx, id)
}

// DepartmentCounts implements department.DepartmentService.
func (s *DepartmentServiceImpl) DepartmentCounts(ctx context.Context) ([]department.DepartmentCountResponse, error) {
	counts, err := s.departmentRepo.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees per department: %w", err)
	}

	responses := make([]department.DepartmentCountResponse, 0, len(counts))
	for _, c := range counts {
		responses = append(responses, department.DepartmentCountResponse{
			ID:            c.ID,
			Name:          c.Name,
			EmployeeCount: c.EmployeeCount,
		})
	}
	return responses, nil
}

func toResponse(dept department.Department) department.DepartmentResponse {
	return department.DepartmentResponse{
		ID:          dept.ID,
		Name:        dept.Name,
		Description: dept.Description,
	}
}
