package routes

import (
	"grantflow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBudgetRequests = "/budget-requests"
	PathFundRequests   = "/fund-requests"
	PathUtilizations   = "/utilizations"
)

func addGrantRoutes(
	rg *gin.RouterGroup,
	budgetHandler *handlers.BudgetRequestHandler,
	fundHandler *handlers.FundRequestHandler,
	utilizationHandler *handlers.UtilizationHandler,
) {
	budgets := rg.Group(PathBudgetRequests)
	{
		budgets.POST("", budgetHandler.CreateBudgetRequest)
		budgets.GET("", budgetHandler.ListBudgetRequests)
		budgets.GET("/pending-pm", budgetHandler.ListPendingPMApproval)
		budgets.GET("/pending-admin", budgetHandler.ListPendingAdminApproval)
		budgets.GET("/:id", budgetHandler.GetBudgetRequest)
		budgets.PATCH("/:id/approve-pm", budgetHandler.ApproveByPM)
		budgets.PATCH("/:id/approve-admin", budgetHandler.ApproveByAdmin)
		budgets.PATCH("/:id/reject", budgetHandler.RejectBudgetRequest)
	}

	funds := rg.Group(PathFundRequests)
	{
		funds.POST("", fundHandler.CreateFundRequest)
		funds.GET("", fundHandler.ListFundRequests)
		funds.GET("/pending-pm", fundHandler.ListPendingPMApproval)
		funds.GET("/pending-admin", fundHandler.ListPendingAdminApproval)
		funds.GET("/:id", fundHandler.GetFundRequest)
		funds.PATCH("/:id/approve-pm", fundHandler.ApproveByPM)
		funds.PATCH("/:id/approve-admin", fundHandler.ApproveByAdmin)
		funds.PATCH("/:id/reject", fundHandler.RejectFundRequest)
		funds.PUT("/:id/resubmit", fundHandler.ResubmitFundRequest)
	}

	utilizations := rg.Group(PathUtilizations)
	{
		utilizations.POST("", utilizationHandler.CreateUtilization)
		utilizations.GET("", utilizationHandler.ListUtilizations)
		utilizations.GET("/pending", utilizationHandler.ListPendingVerification)
		utilizations.GET("/:id", utilizationHandler.GetUtilization)
		utilizations.PATCH("/:id/verify", utilizationHandler.VerifyUtilization)
		utilizations.PATCH("/:id/reject", utilizationHandler.RejectUtilization)
	}
}
