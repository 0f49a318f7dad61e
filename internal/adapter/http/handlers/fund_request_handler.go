package handlers

import (
	"context"
	"errors"
	"net/http"

	request "grantflow/internal/adapter/http/dto/request"
	response "grantflow/internal/adapter/http/dto/response"
	"grantflow/internal/domain/entities"
	"grantflow/internal/usecase"
	"grantflow/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidFundRequestPayload = pkg.NewDomainErrorSimple("INVALID_FUND_REQUEST_INPUT", "Invalid fund request payload", http.StatusBadRequest)

// FundRequestHandler handles HTTP requests for withdrawal requests
// raised against an approved budget.

type FundRequestHandler struct {
	usecase usecase.IFundRequestUseCase
}

func NewFundRequestHandler(uc usecase.IFundRequestUseCase) *FundRequestHandler {
	return &FundRequestHandler{usecase: uc}
}

func (h *FundRequestHandler) CreateFundRequest(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.CreateFundRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFundRequestPayload.HTTPStatus, errInvalidFundRequestPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		appErr := mapFundRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromFundRequest(created))
}

func (h *FundRequestHandler) GetFundRequest(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	found, err := h.usecase.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		appErr := mapFundRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFundRequest(found))
}

// ListFundRequests filters by budget_request_id or ngo_id query parameters.
func (h *FundRequestHandler) ListFundRequests(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	budgetRequestID := c.Query("budget_request_id")
	ngoID := c.Query("ngo_id")

	var (
		list []entities.FundRequest
		err  error
	)
	switch {
	case budgetRequestID != "":
		list, err = h.usecase.ListByBudgetRequest(c.Request.Context(), actor, budgetRequestID)
	case ngoID != "":
		list, err = h.usecase.ListByNgo(c.Request.Context(), actor, ngoID)
	default:
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "budget_request_id or ngo_id query parameter is required", http.StatusBadRequest).ToHTTPError())
		return
	}
	if err != nil {
		appErr := mapFundRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFundRequests(list))
}

func (h *FundRequestHandler) ListPendingPMApproval(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	list, err := h.usecase.ListPendingForManager(c.Request.Context(), actor)
	if err != nil {
		appErr := mapFundRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFundRequests(list))
}

func (h *FundRequestHandler) ListPendingAdminApproval(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	list, err := h.usecase.ListPendingForAdmin(c.Request.Context(), actor)
	if err != nil {
		appErr := mapFundRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFundRequests(list))
}

func (h *FundRequestHandler) ApproveByPM(c *gin.Context) {
	h.patchStatusByID(c, h.usecase.ApproveByPM)
}

func (h *FundRequestHandler) ApproveByAdmin(c *gin.Context) {
	h.patchStatusByID(c, h.usecase.ApproveByAdmin)
}

func (h *FundRequestHandler) patchStatusByID(
	c *gin.Context,
	updater func(ctx context.Context, actor entities.Actor, id string) (entities.FundRequest, error),
) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := updater(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		appErr := mapFundRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFundRequest(updated))
}

func (h *FundRequestHandler) RejectFundRequest(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.RejectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFundRequestPayload.HTTPStatus, errInvalidFundRequestPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Reject(c.Request.Context(), actor, c.Param("id"), payload.Reason)
	if err != nil {
		appErr := mapFundRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFundRequest(updated))
}

// ResubmitFundRequest reopens a rejected request with corrected fields
// and sends it back through the approval pipeline.
func (h *FundRequestHandler) ResubmitFundRequest(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.ResubmitFundRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidFundRequestPayload.HTTPStatus, errInvalidFundRequestPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Resubmit(c.Request.Context(), actor, c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapFundRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromFundRequest(updated))
}

func mapFundRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBudgetRequestID),
		errors.Is(err, usecase.ErrInvalidNgoID),
		errors.Is(err, usecase.ErrInvalidRequestID),
		errors.Is(err, usecase.ErrInvalidTitle),
		errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFundRequestNotFound):
		return pkg.NewDomainErrorSimple("FUND_REQUEST_NOT_FOUND", "Fund request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetRequestNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_REQUEST_NOT_FOUND", "Budget request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrParentBudgetNotApproved):
		return pkg.NewDomainErrorSimple("INVALID_PARENT_STATE", "Parent budget request is not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrFundRequestNotResubmission):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Only rejected fund requests can be resubmitted", http.StatusConflict)
	default:
		return mapWorkflowError(err)
	}
}
