package routes

import (
	"buffet_festas/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCharges = "/charges"
	PathReports = "/reports"
)

func addBillingRoutes(rg *gin.RouterGroup, chargeHandler *handlers.ChargeHandler) {
	charges := rg.Group(PathCharges)
	{
		charges.POST("/:budget_id", chargeHandler.CreateCharge)
		charges.GET("/:budget_id", chargeHandler.GetCharge)
	}
}

func addReportRoutes(rg *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reports := rg.Group(PathReports)
	{
		reports.GET("/financial", reportHandler.FinancialSummary)
		reports.GET("/top-clients", reportHandler.TopClients)
		reports.GET("/top-freelancers", reportHandler.TopFreelancers)
		reports.GET("/peak-month", reportHandler.PeakMonth)
	}
}
