package handlers

import (
	"errors"
	"net/http"

	request "grantflow/internal/adapter/http/dto/request"
	response "grantflow/internal/adapter/http/dto/response"
	"grantflow/internal/domain/entities"
	"grantflow/internal/usecase"
	"grantflow/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidUtilizationPayload = pkg.NewDomainErrorSimple("INVALID_UTILIZATION_INPUT", "Invalid utilization payload", http.StatusBadRequest)

// UtilizationHandler handles HTTP requests for expense reports filed
// against disbursed fund requests.

type UtilizationHandler struct {
	usecase usecase.IUtilizationUseCase
}

func NewUtilizationHandler(uc usecase.IUtilizationUseCase) *UtilizationHandler {
	return &UtilizationHandler{usecase: uc}
}

func (h *UtilizationHandler) CreateUtilization(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.CreateUtilizationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUtilizationPayload.HTTPStatus, errInvalidUtilizationPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		appErr := mapUtilizationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromUtilization(created))
}

func (h *UtilizationHandler) GetUtilization(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	found, err := h.usecase.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		appErr := mapUtilizationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUtilization(found))
}

// ListUtilizations filters by fund_request_id or ngo_id query parameters.
func (h *UtilizationHandler) ListUtilizations(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	fundRequestID := c.Query("fund_request_id")
	ngoID := c.Query("ngo_id")

	var (
		list []entities.UtilizationRecord
		err  error
	)
	switch {
	case fundRequestID != "":
		list, err = h.usecase.ListByFundRequest(c.Request.Context(), actor, fundRequestID)
	case ngoID != "":
		list, err = h.usecase.ListByNgo(c.Request.Context(), actor, ngoID)
	default:
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "fund_request_id or ngo_id query parameter is required", http.StatusBadRequest).ToHTTPError())
		return
	}
	if err != nil {
		appErr := mapUtilizationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUtilizations(list))
}

func (h *UtilizationHandler) ListPendingVerification(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	list, err := h.usecase.ListPendingVerification(c.Request.Context(), actor)
	if err != nil {
		appErr := mapUtilizationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUtilizations(list))
}

func (h *UtilizationHandler) VerifyUtilization(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.Verify(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		appErr := mapUtilizationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUtilization(updated))
}

func (h *UtilizationHandler) RejectUtilization(c *gin.Context) {
	actor, appErr := actorFromRequest(c)
	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.RejectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidUtilizationPayload.HTTPStatus, errInvalidUtilizationPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Reject(c.Request.Context(), actor, c.Param("id"), payload.Reason)
	if err != nil {
		appErr := mapUtilizationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUtilization(updated))
}

func mapUtilizationError(err error) *pkg.AppError {
	var missing *entities.MissingRequiredFieldError
	switch {
	case errors.Is(err, usecase.ErrInvalidFundRequestID),
		errors.Is(err, usecase.ErrInvalidNgoID),
		errors.Is(err, usecase.ErrInvalidRequestID),
		errors.Is(err, usecase.ErrInvalidTitle),
		errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrExpenseDetailsRequired):
		return pkg.NewDomainErrorSimple("EXPENSE_DETAILS_REQUIRED", "This project requires additional expense details", http.StatusBadRequest)
	case errors.As(err, &missing):
		return pkg.NewDomainErrorSimple("MISSING_REQUIRED_FIELD", "A required expense field is missing", http.StatusBadRequest).
			WithDetails(map[string]any{"field": missing.Field})
	case errors.Is(err, usecase.ErrUtilizationNotFound):
		return pkg.NewDomainErrorSimple("UTILIZATION_NOT_FOUND", "Utilization record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrFundRequestNotFound):
		return pkg.NewDomainErrorSimple("FUND_REQUEST_NOT_FOUND", "Fund request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrParentFundNotApproved):
		return pkg.NewDomainErrorSimple("INVALID_PARENT_STATE", "Parent fund request is not approved", http.StatusConflict)
	default:
		return mapWorkflowError(err)
	}
}
