package http

import (
	"encoding/json"
	"net/http"

	"github.com/corehr/workforce-backend-go/internal/domain/workflow"
	"github.com/corehr/workforce-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type WorkflowHandler interface {
	ListWorkflows(w http.ResponseWriter, r *http.Request)
	GetWorkflow(w http.ResponseWriter, r *http.Request)
	GetByEmployeeID(w http.ResponseWriter, r *http.Request)
	CreateWorkflow(w http.ResponseWriter, r *http.Request)
	UpdateWorkflow(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	DeleteWorkflow(w http.ResponseWriter, r *http.Request)
}

type workflowHandlerImpl struct {
	workflowService workflow.WorkflowService
}

func NewWorkflowHandler(workflowService workflow.WorkflowService) WorkflowHandler {
	return &workflowHandlerImpl{workflowService: workflowService}
}

// ListWorkflows implements WorkflowHandler
func (h *workflowHandlerImpl) ListWorkflows(w http.ResponseWriter, r *http.Request) {
	results, err := h.workflowService.ListWorkflows(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

// GetWorkflow implements WorkflowHandler
func (h *workflowHandlerImpl) GetWorkflow(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Workflow ID is required", nil)
		return
	}

	result, err := h.workflowService.GetWorkflow(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// GetByEmployeeID implements WorkflowHandler
func (h *workflowHandlerImpl) GetByEmployeeID(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	results, err := h.workflowService.GetByEmployeeID(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, results)
}

// CreateWorkflow implements WorkflowHandler
func (h *workflowHandlerImpl) CreateWorkflow(w http.ResponseWriter, r *http.Request) {
	var req workflow.CreateWorkflowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.workflowService.CreateWorkflow(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Workflow created successfully", result)
}

// UpdateWorkflow implements WorkflowHandler
func (h *workflowHandlerImpl) UpdateWorkflow(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Workflow ID is required", nil)
		return
	}

	var req workflow.UpdateWorkflowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.workflowService.UpdateWorkflow(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// UpdateStatus implements WorkflowHandler
func (h *workflowHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Workflow ID is required", nil)
		return
	}

	var req workflow.UpdateWorkflowStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.workflowService.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// DeleteWorkflow implements WorkflowHandler
func (h *workflowHandlerImpl) DeleteWorkflow(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Workflow ID is required", nil)
		return
	}

	if err := h.workflowService.DeleteWorkflow(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Workflow deleted successfully", nil)
}
