package request

import (
	"context"
	"errors"
	"fmt"

	"github.com/corehr/workforce-backend-go/internal/domain/account"
	"github.com/corehr/workforce-backend-go/internal/domain/employee"
	"github.com/corehr/workforce-backend-go/internal/domain/request"
	"github.com/corehr/workforce-backend-go/internal/pkg/database"
	"github.com/corehr/workforce-backend-go/internal/pkg/validator"
	"github.com/corehr/workforce-backend-go/internal/repository/postgresql"
)

type RequestServiceImpl struct {
	db           *database.DB
	requestRepo  request.RequestRepository
	itemRepo     request.RequestItemRepository
	employeeRepo employee.EmployeeRepository
	accountRepo  account.AccountRepository
}

func NewRequestService(
	db *database.DB,
	requestRepo request.RequestRepository,
	itemRepo request.RequestItemRepository,
	employeeRepo employee.EmployeeRepository,
	accountRepo account.AccountRepository,
) request.RequestService {
	return &RequestServiceImpl{
		db:           db,
		requestRepo:  requestRepo,
		itemRepo:     itemRepo,
		employeeRepo: employeeRepo,
		accountRepo:  accountRepo,
	}
}

// GetRequest implements request.RequestService.
func (s *RequestServiceImpl) GetRequest(ctx context.Context, id string) (request.RequestResponse, error) {
	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return request.RequestResponse{}, err
	}
	return s.toResponse(ctx, req)
}

// ListRequests implements request.RequestService.
func (s *RequestServiceImpl) ListRequests(ctx context.Context) ([]request.RequestResponse, error) {
	requests, err := s.requestRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	return s.toResponses(ctx, requests)
}

// GetByEmployeeID implements request.RequestService.
func (s *RequestServiceImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]request.RequestResponse, error) {
	requests, err := s.requestRepo.GetActiveByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests by employee: %w", err)
	}
	return s.toResponses(ctx, requests)
}

// CreateRequest implements request.RequestService. The request row and its
// items are written in one transaction.
func (s *RequestServiceImpl) CreateRequest(ctx context.Context, req request.CreateRequestRequest) (request.RequestResponse, error) {
	var validationErrs validator.ValidationErrors
	if !validator.IsOneOf(req.Type,
		string(request.RequestTypeEquipment), string(request.RequestTypeLeave),
		string(request.RequestTypeResource), string(request.RequestTypeOther)) {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "type", Message: "Request type is required"})
	}
	if validator.IsEmpty(req.EmployeeID) {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "employeeId", Message: "Employee ID is required"})
	}
	if validator.IsEmpty(req.Description) {
		validationErrs = append(validationErrs, validator.ValidationError{Field: "description", Message: "Description is required"})
	}
	for i, item := range req.Items {
		if validator.IsEmpty(item.Description) {
			validationErrs = append(validationErrs, validator.ValidationError{
				Field:   fmt.Sprintf("items[%d].description", i),
				Message: "Item description is required",
			})
		}
		if item.Quantity != nil && *item.Quantity < 1 {
			validationErrs = append(validationErrs, validator.ValidationError{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: "Quantity must be at least 1",
			})
		}
	}
	if len(validationErrs) > 0 {
		return request.RequestResponse{}, validationErrs
	}

	if !validator.IsValidUUID(req.EmployeeID) {
		return request.RequestResponse{}, employee.ErrEmployeeNotFound
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return request.RequestResponse{}, err
	}

	var created request.Request
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var err error
		created, err = s.requestRepo.Create(txCtx, request.Request{
			Type:        request.RequestType(req.Type),
			Status:      request.RequestStatusPending,
			Description: req.Description,
			EmployeeID:  req.EmployeeID,
			IsActive:    true,
		})
		if err != nil {
			return err
		}

		for _, item := range req.Items {
			quantity := 1
			if item.Quantity != nil {
				quantity = *item.Quantity
			}
			if _, err := s.itemRepo.Create(txCtx, request.RequestItem{
				Description: item.Description,
				Quantity:    quantity,
				RequestID:   created.ID,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return request.RequestResponse{}, err
	}

	return s.toResponse(ctx, created)
}

// UpdateRequest implements request.RequestService. Status never changes
// through this path. When req.Items is present the existing items are
// deleted, the new list inserted and the remaining fields saved inside one
// transaction; any failure rolls the whole update back.
func (s *RequestServiceImpl) UpdateRequest(ctx context.Context, id string, req request.UpdateRequestRequest) (request.RequestResponse, error) {
	current, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return request.RequestResponse{}, err
	}

	if req.Type != nil {
		if !validator.IsOneOf(*req.Type,
			string(request.RequestTypeEquipment), string(request.RequestTypeLeave),
			string(request.RequestTypeResource), string(request.RequestTypeOther)) {
			return request.RequestResponse{}, validator.ValidationErrors{
				{Field: "type", Message: "Invalid request type"},
			}
		}
		current.Type = request.RequestType(*req.Type)
	}
	if req.Description != nil {
		current.Description = *req.Description
	}
	if req.IsActive != nil {
		current.IsActive = *req.IsActive
	}

	if req.Items == nil {
		updated, err := s.requestRepo.Update(ctx, current)
		if err != nil {
			return request.RequestResponse{}, err
		}
		return s.toResponse(ctx, updated)
	}

	var updated request.Request
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.itemRepo.DeleteByRequestID(txCtx, id); err != nil {
			return err
		}

		for _, item := range *req.Items {
			quantity := 1
			if item.Quantity != nil {
				quantity = *item.Quantity
			}
			if _, err := s.itemRepo.Create(txCtx, request.RequestItem{
				Description: item.Description,
				Quantity:    quantity,
				RequestID:   id,
			}); err != nil {
				return err
			}
		}

		var err error
		updated, err = s.requestRepo.Update(txCtx, current)
		return err
	})
	if err != nil {
		return request.RequestResponse{}, err
	}

	return s.toResponse(ctx, updated)
}

// ApproveRequest implements request.RequestService.
func (s *RequestServiceImpl) ApproveRequest(ctx context.Context, id string) (request.RequestResponse, error) {
	return s.setStatus(ctx, id, request.RequestStatusApproved)
}

// RejectRequest implements request.RequestService.
func (s *RequestServiceImpl) RejectRequest(ctx context.Context, id string) (request.RequestResponse, error) {
	return s.setStatus(ctx, id, request.RequestStatusRejected)
}

// setStatus moves a pending request to one of the two terminal states.
// Approved and Rejected admit no further transitions.
func (s *RequestServiceImpl) setStatus(ctx context.Context, id string, target request.RequestStatus) (request.RequestResponse, error) {
	current, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return request.RequestResponse{}, err
	}

	switch current.Status {
	case request.RequestStatusApproved:
		return request.RequestResponse{}, request.ErrRequestAlreadyApproved
	case request.RequestStatusRejected:
		return request.RequestResponse{}, request.ErrRequestAlreadyRejected
	}

	if err := s.requestRepo.UpdateStatus(ctx, id, target); err != nil {
		return request.RequestResponse{}, err
	}

	current.Status = target
	return s.toResponse(ctx, current)
}

// DeleteRequest implements request.RequestService.
func (s *RequestServiceImpl) DeleteRequest(ctx context.Context, id string) error {
	return s.requestRepo.Delete(ctx, id)
}

func (s *RequestServiceImpl) toResponses(ctx context.Context, requests []request.Request) ([]request.RequestResponse, error) {
	responses := make([]request.RequestResponse, 0, len(requests))
	for _, req := range requests {
		resp, err := s.toResponse(ctx, req)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// toResponse hydrates the request view with its items and employee summary.
// Missing relations render as explicit absences.
func (s *RequestServiceImpl) toResponse(ctx context.Context, req request.Request) (request.RequestResponse, error) {
	resp := request.RequestResponse{
		ID:          req.ID,
		Type:        req.Type,
		Status:      req.Status,
		Description: req.Description,
		EmployeeID:  req.EmployeeID,
		IsActive:    req.IsActive,
		CreatedAt:   req.CreatedAt,
		UpdatedAt:   req.UpdatedAt,
		Items:       []request.RequestItemResponse{},
	}

	items, err := s.itemRepo.GetByRequestID(ctx, req.ID)
	if err != nil {
		return request.RequestResponse{}, fmt.Errorf("failed to load request items: %w", err)
	}
	for _, item := range items {
		resp.Items = append(resp.Items, request.RequestItemResponse{
			ID:          item.ID,
			Description: item.Description,
			Quantity:    item.Quantity,
		})
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return resp, nil
		}
		return request.RequestResponse{}, err
	}

	summary := request.RequestEmployee{
		ID:           emp.ID,
		EmployeeCode: emp.EmployeeCode,
		Position:     emp.Position,
	}
	acc, err := s.accountRepo.GetByID(ctx, emp.AccountID)
	if err == nil {
		summary.FirstName = &acc.FirstName
		summary.LastName = &acc.LastName
		summary.Email = &acc.Email
	} else if !errors.Is(err, account.ErrAccountNotFound) {
		return request.RequestResponse{}, err
	}
	resp.Employee = &summary

	return resp, nil
}
