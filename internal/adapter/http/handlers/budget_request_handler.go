package handlers

import (
	"errors"
	"io"
	"net/http"

	request "grantflow/internal/adapter/http/dto/request"
	response "grantflow/internal/adapter/http/dto/response"
	"grantflow/internal/domain/entities"
	"grantflow/internal/usecase"
	"grantflow/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBudgetRequestPayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_REQUEST_INPUT", "Invalid budget request payload", http.StatusBadRequest)

// BudgetRequestHandler handles HTTP requests for the first tier of the
// grant workflow: NGO budget submissions and their two-step approval.

type BudgetRequestHandler struct {
	usecase usecase.IBudgetRequestUseCase
}

func NewBudgetRequestHandler(uc usecase.IBudgetRequestUseCase) *BudgetRequestHandler {
	return &BudgetRequestHandler{usecase: uc}
}

func (h *BudgetRequestHandler) CreateBudgetRequest(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.CreateBudgetRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetRequestPayload.HTTPStatus, errInvalidBudgetRequestPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		appErr := mapBudgetRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBudgetRequest(created))
}

func (h *BudgetRequestHandler) GetBudgetRequest(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	found, err := h.usecase.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		appErr := mapBudgetRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetRequest(found))
}

// ListBudgetRequests filters by project_id or ngo_id query parameters.
func (h *BudgetRequestHandler) ListBudgetRequests(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	projectID := c.Query("project_id")
	ngoID := c.Query("ngo_id")

	var (
		list []entities.BudgetRequest
		err  error
	)
	switch {
	case projectID != "" && ngoID != "":
		var found entities.BudgetRequest
		found, err = h.usecase.GetByProjectAndNgo(c.Request.Context(), actor, projectID, ngoID)
		if err == nil {
			list = []entities.BudgetRequest{found}
		}
	case projectID != "":
		list, err = h.usecase.ListByProject(c.Request.Context(), actor, projectID)
	case ngoID != "":
		list, err = h.usecase.ListByNgo(c.Request.Context(), actor, ngoID)
	default:
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "project_id or ngo_id query parameter is required", http.StatusBadRequest).ToHTTPError())
		return
	}
	if err != nil {
		appErr := mapBudgetRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetRequests(list))
}

func (h *BudgetRequestHandler) ListPendingPMApproval(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	list, err := h.usecase.ListPendingForManager(c.Request.Context(), actor)
	if err != nil {
		appErr := mapBudgetRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetRequests(list))
}

func (h *BudgetRequestHandler) ListPendingAdminApproval(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	list, err := h.usecase.ListPendingForAdmin(c.Request.Context(), actor)
	if err != nil {
		appErr := mapBudgetRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetRequests(list))
}

// ApproveByPM advances a pending request to the admin stage, optionally
// attaching the expense-field schema future utilizations must satisfy.
func (h *BudgetRequestHandler) ApproveByPM(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	// The body is optional; approving without a schema is valid.
	var payload request.ApproveBudgetRequestPMRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidBudgetRequestPayload.HTTPStatus, errInvalidBudgetRequestPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.ApproveByPM(c.Request.Context(), actor, c.Param("id"), payload.ToSchema())
	if err != nil {
		appErr := mapBudgetRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetRequest(updated))
}

func (h *BudgetRequestHandler) ApproveByAdmin(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.ApproveByAdmin(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		appErr := mapBudgetRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetRequest(updated))
}

func (h *BudgetRequestHandler) RejectBudgetRequest(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.RejectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetRequestPayload.HTTPStatus, errInvalidBudgetRequestPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Reject(c.Request.Context(), actor, c.Param("id"), payload.Reason)
	if err != nil {
		appErr := mapBudgetRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudgetRequest(updated))
}

func mapBudgetRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID),
		errors.Is(err, usecase.ErrInvalidNgoID),
		errors.Is(err, usecase.ErrInvalidRequestID),
		errors.Is(err, usecase.ErrInvalidTitle),
		errors.Is(err, usecase.ErrInvalidBudget),
		errors.Is(err, usecase.ErrInvalidSchema):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetRequestExists):
		return pkg.NewDomainErrorSimple("BUDGET_REQUEST_EXISTS", "An active budget request already exists for this NGO in this project", http.StatusConflict)
	case errors.Is(err, usecase.ErrBudgetRequestNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_REQUEST_NOT_FOUND", "Budget request not found", http.StatusNotFound)
	default:
		return mapWorkflowError(err)
	}
}
